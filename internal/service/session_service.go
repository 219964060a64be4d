package service

import (
	"context"
	"fmt"

	"github.com/fundalabs/funda/internal/checker"
	"github.com/fundalabs/funda/internal/dto"
	"github.com/fundalabs/funda/internal/model"
	"github.com/fundalabs/funda/internal/repository"
	"github.com/fundalabs/funda/internal/session"
	"github.com/rs/zerolog/log"
)

// SessionService exposes the progression state machine over the service
// layer: start, check, continue, retry, quit and snapshot.
type SessionService interface {
	Start(ctx context.Context, lessonID uint, req dto.SessionStartDTO) (*dto.SessionStateDTO, error)
	Get(sessionID string) (*dto.SessionStateDTO, error)
	Check(sessionID string, ans checker.Answer) (*dto.FeedbackDTO, error)
	Continue(sessionID string) (*dto.ContinueResponseDTO, error)
	Retry(sessionID string) (*dto.SessionStateDTO, error)
	Quit(sessionID string) (*dto.SessionStateDTO, error)
}

type sessionService struct {
	manager    *session.Manager
	lessonRepo repository.LessonRepository
	recordRepo repository.SessionRecordRepository
}

func NewSessionService(
	manager *session.Manager,
	lessonRepo repository.LessonRepository,
	recordRepo repository.SessionRecordRepository,
) SessionService {
	s := &sessionService{
		manager:    manager,
		lessonRepo: lessonRepo,
		recordRepo: recordRepo,
	}
	manager.SetEndHook(s.persistRecord)
	return s
}

// persistRecord writes the history row for a finished session. Best-effort:
// a write failure is logged, the session outcome stands.
func (s *sessionService) persistRecord(sum session.Summary) {
	record := &model.SessionRecord{
		SessionID:      sum.SessionID,
		LearnerID:      sum.LearnerID,
		LessonID:       sum.LessonID,
		Language:       sum.Language,
		TotalQuestions: sum.TotalQuestions,
		TotalCorrect:   sum.TotalCorrect,
		TotalIncorrect: sum.TotalIncorrect,
		RetryRounds:    sum.RetryRounds,
		BestStreak:     sum.BestStreak,
		Outcome:        sum.Outcome,
		StartedAt:      sum.StartedAt,
		EndedAt:        sum.EndedAt,
	}
	go func() {
		if err := s.recordRepo.Create(record); err != nil {
			log.Error().Err(err).Str("sessionID", sum.SessionID).Msg("Failed to persist session record")
		}
	}()
}

func (s *sessionService) Start(ctx context.Context, lessonID uint, req dto.SessionStartDTO) (*dto.SessionStateDTO, error) {
	language := req.Language
	if language == "" {
		lesson, err := s.lessonRepo.FindByID(lessonID)
		if err != nil {
			return nil, fmt.Errorf("lesson not found with ID %d: %w", lessonID, err)
		}
		language = lesson.Language
	}

	sess, err := s.manager.Start(ctx, lessonID, language, req.LearnerID)
	if err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("Failed to start lesson session")
		return nil, err
	}
	state := snapshotToDTO(sess.Snapshot())
	return &state, nil
}

func (s *sessionService) Get(sessionID string) (*dto.SessionStateDTO, error) {
	sess, ok := s.manager.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	state := snapshotToDTO(sess.Snapshot())
	return &state, nil
}

func (s *sessionService) Check(sessionID string, ans checker.Answer) (*dto.FeedbackDTO, error) {
	sess, ok := s.manager.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	fb, err := sess.Check(ans)
	if err != nil {
		return nil, err
	}
	out := dto.FeedbackFromChecker(fb)
	return &out, nil
}

func (s *sessionService) Continue(sessionID string) (*dto.ContinueResponseDTO, error) {
	sess, ok := s.manager.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	result, err := sess.Continue()
	if err != nil {
		return nil, err
	}
	return &dto.ContinueResponseDTO{
		State:             snapshotToDTO(result.Snapshot),
		WasCorrect:        result.WasCorrect,
		StreakCelebration: result.StreakCelebration,
	}, nil
}

func (s *sessionService) Retry(sessionID string) (*dto.SessionStateDTO, error) {
	sess, ok := s.manager.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	snap, err := sess.Retry()
	if err != nil {
		return nil, err
	}
	state := snapshotToDTO(snap)
	return &state, nil
}

func (s *sessionService) Quit(sessionID string) (*dto.SessionStateDTO, error) {
	sess, ok := s.manager.Get(sessionID)
	if !ok {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	snap, err := sess.Quit()
	if err != nil {
		return nil, err
	}
	s.manager.Remove(sessionID)
	state := snapshotToDTO(snap)
	return &state, nil
}

func snapshotToDTO(snap session.Snapshot) dto.SessionStateDTO {
	out := dto.SessionStateDTO{
		ID:             snap.ID,
		Status:         string(snap.Status),
		LessonID:       snap.LessonID,
		Language:       snap.Language,
		CurrentIndex:   snap.CurrentIndex,
		BatchSize:      snap.BatchSize,
		Retrying:       snap.Retrying,
		IncorrectCount: snap.IncorrectCount,
		Streak:         snap.Streak,
		Answered:       snap.Answered,
		Feedback:       dto.FeedbackFromChecker(snap.Feedback),
	}
	if snap.CurrentQuestion != nil {
		q := QuestionToDTO(*snap.CurrentQuestion)
		out.CurrentQuestion = &q
	}
	return out
}
