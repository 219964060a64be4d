package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fundalabs/funda/internal/checker"
	"github.com/fundalabs/funda/internal/gateway"
	"github.com/fundalabs/funda/internal/model"
)

// fakeGateway records calls and signals on done after UpdateProgress, so
// tests can wait for the fire-and-forget celebration goroutine.
type fakeGateway struct {
	questions []model.Question
	loadErr   error

	pointsCalls   []gateway.PointsIncrement
	progressCalls []gateway.ProgressUpdate
	done          chan struct{}
}

func newFakeGateway(questions []model.Question) *fakeGateway {
	return &fakeGateway{questions: questions, done: make(chan struct{}, 1)}
}

func (g *fakeGateway) LessonQuestions(ctx context.Context, lessonID uint) ([]model.Question, error) {
	if g.loadErr != nil {
		return nil, g.loadErr
	}
	return g.questions, nil
}

func (g *fakeGateway) IncrementPoints(ctx context.Context, learnerID uint, inc gateway.PointsIncrement) error {
	g.pointsCalls = append(g.pointsCalls, inc)
	return nil
}

func (g *fakeGateway) UpdateProgress(ctx context.Context, learnerID uint, upd gateway.ProgressUpdate) error {
	g.progressCalls = append(g.progressCalls, upd)
	g.done <- struct{}{}
	return nil
}

func (g *fakeGateway) ReportQuestion(ctx context.Context, questionID uint, learnerID *uint, reason string) error {
	return nil
}

func (g *fakeGateway) waitForCelebration(t *testing.T) {
	t.Helper()
	select {
	case <-g.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for celebration gateway calls")
	}
}

// typedQuestions builds n fill_in_blank questions whose correct typed answer
// is "word<i>".
func typedQuestions(n int) []model.Question {
	blank := 0
	questions := make([]model.Question, 0, n)
	for i := 1; i <= n; i++ {
		id := uint(i)
		w := model.Word{
			ID:           id,
			Translations: model.StringMap{"en": "english", "zu": answerFor(i)},
		}
		questions = append(questions, model.Question{
			ID:            id,
			Type:          model.TypeFillInBlank,
			QuestionOrder: i,
			Words:         []model.Word{w},
			SentenceWords: model.IDList{id},
			BlankIndex:    &blank,
		})
	}
	return questions
}

func answerFor(i int) string {
	return "word" + string(rune('a'+i-1))
}

func startSession(t *testing.T, gw *fakeGateway, scoring Scoring, learnerID *uint) (*Manager, *Session) {
	t.Helper()
	m := NewManager(gw, scoring)
	s, err := m.Start(context.Background(), 7, "zu", learnerID)
	if err != nil {
		t.Fatal(err)
	}
	return m, s
}

func checkAndContinue(t *testing.T, s *Session, i int, correct bool) ContinueResult {
	t.Helper()
	typed := answerFor(i)
	if !correct {
		typed = "wrong"
	}
	fb, err := s.Check(checker.Answer{TypedText: typed})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !fb.IsChecked {
		t.Fatal("expected answer to be checked")
	}
	if fb.IsCorrect != correct {
		t.Fatalf("IsCorrect = %v, want %v", fb.IsCorrect, correct)
	}
	res, err := s.Continue()
	if err != nil {
		t.Fatalf("Continue: %v", err)
	}
	return res
}

func TestAllCorrectReachesCelebration(t *testing.T) {
	gw := newFakeGateway(typedQuestions(3))
	learnerID := uint(42)
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 10}, &learnerID)

	for i := 1; i <= 3; i++ {
		res := checkAndContinue(t, s, i, true)
		if !res.WasCorrect {
			t.Fatalf("question %d: expected WasCorrect", i)
		}
	}

	snap := s.Snapshot()
	if snap.Status != StatusCelebration {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusCelebration)
	}

	gw.waitForCelebration(t)
	if len(gw.pointsCalls) != 1 {
		t.Fatalf("pointsCalls = %d, want 1", len(gw.pointsCalls))
	}
	inc := gw.pointsCalls[0]
	if inc.Points != 10 {
		t.Errorf("Points = %d, want 10 (no streak bonus below threshold)", inc.Points)
	}
	if inc.Streak != nil {
		t.Errorf("Streak = %v, want nil below threshold", *inc.Streak)
	}
	if len(gw.progressCalls) != 1 || gw.progressCalls[0].Status != model.ProgressCompleted {
		t.Errorf("expected one completed progress update, got %+v", gw.progressCalls)
	}
}

func TestStreakBonusAtThreshold(t *testing.T) {
	gw := newFakeGateway(typedQuestions(3))
	learnerID := uint(42)
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 3}, &learnerID)

	var celebrated bool
	for i := 1; i <= 3; i++ {
		res := checkAndContinue(t, s, i, true)
		if res.StreakCelebration {
			celebrated = true
		}
	}
	if !celebrated {
		t.Error("expected a streak celebration at the threshold")
	}

	gw.waitForCelebration(t)
	inc := gw.pointsCalls[0]
	if inc.Points != 15 {
		t.Errorf("Points = %d, want 15 (completion plus streak bonus)", inc.Points)
	}
	if inc.Streak == nil || *inc.Streak != 3 {
		t.Errorf("Streak = %v, want 3", inc.Streak)
	}
}

func TestIncorrectAnswersQueueForReview(t *testing.T) {
	gw := newFakeGateway(typedQuestions(4))
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 10}, nil)

	checkAndContinue(t, s, 1, true)
	checkAndContinue(t, s, 2, false)
	checkAndContinue(t, s, 3, true)
	res := checkAndContinue(t, s, 4, false)

	if res.Snapshot.Status != StatusReview {
		t.Fatalf("Status = %q, want %q", res.Snapshot.Status, StatusReview)
	}
	queue := s.IncorrectQueue()
	if len(queue) != 2 {
		t.Fatalf("incorrect queue length = %d, want 2", len(queue))
	}
	if queue[0].Question.ID != 2 || queue[1].Question.ID != 4 {
		t.Errorf("queue IDs = %d,%d, want 2,4", queue[0].Question.ID, queue[1].Question.ID)
	}
}

func TestRetryReplaysOnlyIncorrect(t *testing.T) {
	gw := newFakeGateway(typedQuestions(3))
	learnerID := uint(42)
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 10}, &learnerID)

	checkAndContinue(t, s, 1, true)
	checkAndContinue(t, s, 2, false)
	checkAndContinue(t, s, 3, true)

	snap, err := s.Retry()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Status != StatusActive || !snap.Retrying {
		t.Fatalf("after retry: status=%q retrying=%v", snap.Status, snap.Retrying)
	}
	if snap.BatchSize != 1 {
		t.Fatalf("retry batch size = %d, want 1", snap.BatchSize)
	}
	if snap.CurrentQuestion == nil || snap.CurrentQuestion.ID != 2 {
		t.Fatal("expected question 2 as the retry question")
	}

	// Answering the retried question correctly empties the queue, and an
	// empty queue at batch end means celebration, not another review.
	res := checkAndContinue(t, s, 2, true)
	if res.Snapshot.Status != StatusCelebration {
		t.Fatalf("Status = %q, want %q", res.Snapshot.Status, StatusCelebration)
	}
	gw.waitForCelebration(t)
}

func TestRetryLoopTerminatesOnlyWhenAllCorrect(t *testing.T) {
	gw := newFakeGateway(typedQuestions(2))
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 10}, nil)

	checkAndContinue(t, s, 1, false)
	checkAndContinue(t, s, 2, false)

	// First retry round: miss question 1 again.
	if _, err := s.Retry(); err != nil {
		t.Fatal(err)
	}
	checkAndContinue(t, s, 1, false)
	res := checkAndContinue(t, s, 2, true)
	if res.Snapshot.Status != StatusReview {
		t.Fatalf("Status = %q, want %q after second miss", res.Snapshot.Status, StatusReview)
	}
	if res.Snapshot.IncorrectCount != 1 {
		t.Fatalf("IncorrectCount = %d, want 1", res.Snapshot.IncorrectCount)
	}

	// Second retry round clears it.
	if _, err := s.Retry(); err != nil {
		t.Fatal(err)
	}
	res = checkAndContinue(t, s, 1, true)
	if res.Snapshot.Status != StatusCelebration {
		t.Fatalf("Status = %q, want %q", res.Snapshot.Status, StatusCelebration)
	}
}

func TestRetryOnlyValidInReview(t *testing.T) {
	gw := newFakeGateway(typedQuestions(2))
	_, s := startSession(t, gw, Scoring{StreakThreshold: 10}, nil)

	if _, err := s.Retry(); !errors.Is(err, ErrNotInReview) {
		t.Fatalf("Retry in active = %v, want ErrNotInReview", err)
	}
}

func TestContinueRequiresCheck(t *testing.T) {
	gw := newFakeGateway(typedQuestions(2))
	_, s := startSession(t, gw, Scoring{StreakThreshold: 10}, nil)

	if _, err := s.Continue(); !errors.Is(err, ErrNotChecked) {
		t.Fatalf("Continue before check = %v, want ErrNotChecked", err)
	}

	// A check with no usable input does not satisfy the guard either.
	fb, err := s.Check(checker.Answer{})
	if err != nil {
		t.Fatal(err)
	}
	if fb.IsChecked {
		t.Fatal("expected empty answer to stay unchecked")
	}
	if _, err := s.Continue(); !errors.Is(err, ErrNotChecked) {
		t.Fatalf("Continue after empty check = %v, want ErrNotChecked", err)
	}
}

func TestStreakResetsOnMiss(t *testing.T) {
	gw := newFakeGateway(typedQuestions(5))
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakBonus: 5, StreakThreshold: 2}, nil)

	res := checkAndContinue(t, s, 1, true)
	if res.StreakCelebration {
		t.Error("no celebration expected at streak 1")
	}
	res = checkAndContinue(t, s, 2, true)
	if !res.StreakCelebration {
		t.Error("expected celebration at streak 2")
	}
	res = checkAndContinue(t, s, 3, false)
	if res.Snapshot.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after a miss", res.Snapshot.Streak)
	}
	res = checkAndContinue(t, s, 4, true)
	if res.StreakCelebration {
		t.Error("no celebration expected at streak 1 after reset")
	}
	res = checkAndContinue(t, s, 5, true)
	if !res.StreakCelebration {
		t.Error("expected celebration when the streak reaches the threshold again")
	}
}

func TestQuit(t *testing.T) {
	gw := newFakeGateway(typedQuestions(2))
	m := NewManager(gw, Scoring{StreakThreshold: 10})

	var summaries []Summary
	m.SetEndHook(func(sum Summary) { summaries = append(summaries, sum) })
	s, err := m.Start(context.Background(), 7, "zu", nil)
	if err != nil {
		t.Fatal(err)
	}

	snap, err := s.Quit()
	if err != nil {
		t.Fatal(err)
	}
	if snap.Status != StatusQuit {
		t.Fatalf("Status = %q, want %q", snap.Status, StatusQuit)
	}
	if len(summaries) != 1 || summaries[0].Outcome != model.OutcomeQuit {
		t.Fatalf("expected one quit summary, got %+v", summaries)
	}

	if _, err := s.Quit(); !errors.Is(err, ErrAlreadyFinished) {
		t.Fatalf("second Quit = %v, want ErrAlreadyFinished", err)
	}
	if _, err := s.Check(checker.Answer{TypedText: "x"}); !errors.Is(err, ErrSessionOver) {
		t.Fatalf("Check after quit = %v, want ErrSessionOver", err)
	}
}

func TestCheckIsIdempotentBeforeContinue(t *testing.T) {
	gw := newFakeGateway(typedQuestions(1))
	_, s := startSession(t, gw, Scoring{CompletionPoints: 10, StreakThreshold: 10}, nil)

	// A wrong check can be replaced by a correct one before continuing.
	if fb, _ := s.Check(checker.Answer{TypedText: "wrong"}); fb.IsCorrect {
		t.Fatal("expected wrong answer to be incorrect")
	}
	fb, _ := s.Check(checker.Answer{TypedText: answerFor(1)})
	if !fb.IsCorrect {
		t.Fatal("expected corrected answer to be correct")
	}
	res, err := s.Continue()
	if err != nil {
		t.Fatal(err)
	}
	if !res.WasCorrect {
		t.Error("Continue should consume the latest feedback")
	}
	if res.Snapshot.IncorrectCount != 0 {
		t.Errorf("IncorrectCount = %d, want 0", res.Snapshot.IncorrectCount)
	}
}
