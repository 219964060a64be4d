package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fundalabs/funda/internal/checker"
	"github.com/fundalabs/funda/internal/gateway"
	"github.com/fundalabs/funda/internal/model"
	"github.com/rs/zerolog/log"
)

// Status is the lesson session state machine's current state. Loading is not
// represented: a session only exists once its question list has loaded, and a
// load failure surfaces as an error from Manager.Start.
type Status string

const (
	StatusActive      Status = "active"
	StatusReview      Status = "review"
	StatusCelebration Status = "celebration"
	StatusQuit        Status = "quit"
)

var (
	ErrSessionOver     = errors.New("session is no longer active")
	ErrNotChecked      = errors.New("current question has not been checked")
	ErrNotInReview     = errors.New("session is not in review")
	ErrAlreadyFinished = errors.New("session already finished")
)

// IncorrectQuestion pairs a question with the feedback's question ID at the
// moment it was answered incorrectly.
type IncorrectQuestion struct {
	Question   model.Question
	QuestionID uint
}

// Scoring holds the configured point values and streak threshold.
type Scoring struct {
	CompletionPoints int
	StreakBonus      int
	StreakThreshold  int
}

// Summary is handed to the end hook when a session reaches celebration or is
// quit.
type Summary struct {
	SessionID      string
	LearnerID      *uint
	LessonID       uint
	Language       string
	TotalQuestions int
	TotalCorrect   int
	TotalIncorrect int
	RetryRounds    int
	BestStreak     int
	Outcome        string
	StartedAt      time.Time
	EndedAt        time.Time
}

// Session drives one learner's pass through a lesson: sequential question
// traversal, feedback, retry of incorrect answers and completion. All methods
// are safe for concurrent use; HTTP handlers for the same session may race.
type Session struct {
	mu sync.Mutex

	id        string
	lessonID  uint
	language  string
	learnerID *uint

	questions []model.Question // active batch: original set or a retry subset
	original  []model.Question // preserved full set
	current   int
	incorrect []IncorrectQuestion
	retrying  bool
	answered  bool
	streak    int
	status    Status
	feedback  FeedbackStore

	lastAnswer checker.Answer

	totalCorrect   int
	totalIncorrect int
	retryRounds    int
	bestStreak     int

	startedAt   time.Time
	lastTouched time.Time

	scoring Scoring
	gw      gateway.ContentGateway
	onEnd   func(Summary)
}

// Snapshot is an immutable view of the session for transport.
type Snapshot struct {
	ID              string           `json:"id"`
	Status          Status           `json:"status"`
	LessonID        uint             `json:"lesson_id"`
	Language        string           `json:"language"`
	CurrentIndex    int              `json:"current_index"`
	BatchSize       int              `json:"batch_size"`
	Retrying        bool             `json:"retrying"`
	IncorrectCount  int              `json:"incorrect_count"`
	Streak          int              `json:"streak"`
	Answered        bool             `json:"answered"`
	Feedback        checker.Feedback `json:"feedback"`
	CurrentQuestion *model.Question  `json:"current_question,omitempty"`
}

// ContinueResult reports what a continue transition produced, including the
// one-time streak celebration overlay trigger.
type ContinueResult struct {
	Snapshot          Snapshot `json:"snapshot"`
	WasCorrect        bool     `json:"was_correct"`
	StreakCelebration bool     `json:"streak_celebration"`
}

func (s *Session) ID() string     { return s.id }
func (s *Session) LessonID() uint { return s.lessonID }

// Check validates the given answer against the current question and stores
// the resulting feedback. Checking with insufficient input is a no-op: the
// returned feedback is unchecked and no state changes.
func (s *Session) Check(ans checker.Answer) (checker.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.status != StatusActive {
		return checker.Feedback{}, ErrSessionOver
	}
	q := s.questions[s.current]
	chk, err := checker.New(q, s.language)
	if err != nil {
		return checker.Feedback{}, err
	}
	if !chk.HasInput(ans) {
		s.answered = false
		return checker.Feedback{QuestionID: q.ID}, nil
	}
	s.answered = true
	fb := chk.Check(ans)
	s.feedback.Set(fb)
	s.lastAnswer = ans
	return fb, nil
}

// Continue consumes the current feedback and advances the state machine:
// records an incorrect answer, updates the streak, increments the index and
// resolves batch completion into review, celebration or the next question.
// It fails with ErrNotChecked when the current question has not been checked,
// so the check/continue ordering is a hard state machine guard rather than a
// UI convention.
func (s *Session) Continue() (ContinueResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.status != StatusActive {
		return ContinueResult{}, ErrSessionOver
	}
	if !s.feedback.IsChecked() {
		return ContinueResult{}, ErrNotChecked
	}

	correct := s.feedback.IsCorrect()
	result := ContinueResult{WasCorrect: correct}

	if correct {
		s.totalCorrect++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
		if s.scoring.StreakThreshold > 0 && s.streak%s.scoring.StreakThreshold == 0 {
			result.StreakCelebration = true
		}
	} else {
		s.totalIncorrect++
		s.streak = 0
		s.incorrect = append(s.incorrect, IncorrectQuestion{
			Question:   s.questions[s.current],
			QuestionID: s.feedback.QuestionID(),
		})
	}

	s.current++
	s.answered = false
	s.feedback.Reset()

	if s.current >= len(s.questions) {
		s.completeBatch()
	}

	result.Snapshot = s.snapshotLocked()
	return result, nil
}

// completeBatch resolves the end of the active question batch. Celebration
// takes precedence over review whenever the incorrect queue is empty,
// regardless of whether this was the first pass or a retry pass.
func (s *Session) completeBatch() {
	wasRetrying := s.retrying

	if wasRetrying {
		// A finished retry batch always restores the original set.
		s.questions = s.original
		s.current = 0
		s.retrying = false
	}

	if len(s.incorrect) == 0 {
		s.status = StatusCelebration
		s.celebrate()
		return
	}
	s.status = StatusReview
}

// Retry swaps the incorrect queue in as the active batch. Only valid in
// review.
func (s *Session) Retry() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTouched = time.Now()

	if s.status != StatusReview {
		return Snapshot{}, ErrNotInReview
	}

	batch := make([]model.Question, 0, len(s.incorrect))
	for _, iq := range s.incorrect {
		batch = append(batch, iq.Question)
	}
	s.questions = batch
	s.current = 0
	s.incorrect = nil
	s.retrying = true
	s.retryRounds++
	s.answered = false
	s.feedback.Reset()
	s.status = StatusActive

	return s.snapshotLocked(), nil
}

// Quit ends the session without completion. No partial progress is persisted
// beyond what gateway calls already recorded.
func (s *Session) Quit() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusCelebration || s.status == StatusQuit {
		return Snapshot{}, ErrAlreadyFinished
	}
	s.status = StatusQuit
	if s.onEnd != nil {
		s.onEnd(s.summaryLocked(model.OutcomeQuit))
	}
	return s.snapshotLocked(), nil
}

// celebrate fires the completion side effects: increment-points and progress
// update. Both are fire-and-forget. Failures are logged, never surfaced, and
// a detached timeout context keeps them from outliving their usefulness.
func (s *Session) celebrate() {
	if s.onEnd != nil {
		s.onEnd(s.summaryLocked(model.OutcomeCelebrated))
	}
	if s.learnerID == nil || s.gw == nil {
		return
	}

	learnerID := *s.learnerID
	inc := gateway.PointsIncrement{
		Points:   s.scoring.CompletionPoints,
		LessonID: s.lessonID,
	}
	if s.scoring.StreakThreshold > 0 && s.bestStreak >= s.scoring.StreakThreshold {
		inc.Points += s.scoring.StreakBonus
		best := s.bestStreak
		inc.Streak = &best
	}
	upd := gateway.ProgressUpdate{
		LessonID: s.lessonID,
		Language: s.language,
		Status:   model.ProgressCompleted,
	}

	gw := s.gw
	sessionID := s.id
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := gw.IncrementPoints(ctx, learnerID, inc); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Uint("learnerID", learnerID).Msg("Failed to increment points on lesson completion")
		}
		if err := gw.UpdateProgress(ctx, learnerID, upd); err != nil {
			log.Error().Err(err).Str("sessionID", sessionID).Uint("learnerID", learnerID).Msg("Failed to update lesson progress on completion")
		}
	}()
}

// Snapshot returns the session's current public state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:             s.id,
		Status:         s.status,
		LessonID:       s.lessonID,
		Language:       s.language,
		CurrentIndex:   s.current,
		BatchSize:      len(s.questions),
		Retrying:       s.retrying,
		IncorrectCount: len(s.incorrect),
		Streak:         s.streak,
		Answered:       s.answered,
		Feedback:       s.feedback.Current(),
	}
	if s.status == StatusActive && s.current < len(s.questions) {
		q := s.questions[s.current]
		snap.CurrentQuestion = &q
	}
	return snap
}

// CurrentQuestion returns the active question plus the last checked feedback
// and answer, for the hint service. The bool is false when the session holds
// no active question.
func (s *Session) CurrentContext() (model.Question, checker.Feedback, checker.Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusActive || s.current >= len(s.questions) {
		return model.Question{}, checker.Feedback{}, checker.Answer{}, false
	}
	return s.questions[s.current], s.feedback.Current(), s.lastAnswer, true
}

func (s *Session) summaryLocked(outcome string) Summary {
	return Summary{
		SessionID:      s.id,
		LearnerID:      s.learnerID,
		LessonID:       s.lessonID,
		Language:       s.language,
		TotalQuestions: len(s.original),
		TotalCorrect:   s.totalCorrect,
		TotalIncorrect: s.totalIncorrect,
		RetryRounds:    s.retryRounds,
		BestStreak:     s.bestStreak,
		Outcome:        outcome,
		StartedAt:      s.startedAt,
		EndedAt:        time.Now(),
	}
}

// IncorrectQueue returns a copy of the pending incorrect-answer queue.
func (s *Session) IncorrectQueue() []IncorrectQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	queue := make([]IncorrectQuestion, len(s.incorrect))
	copy(queue, s.incorrect)
	return queue
}

func (s *Session) expired(ttl time.Duration, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastTouched) > ttl
}
