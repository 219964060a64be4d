package session

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/fundalabs/funda/internal/gateway"
	"github.com/fundalabs/funda/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Manager owns the registry of live sessions. Sessions live in memory only;
// the end hook is where finished sessions get persisted.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	gw      gateway.ContentGateway
	scoring Scoring
	onEnd   func(Summary)
}

func NewManager(gw gateway.ContentGateway, scoring Scoring) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		gw:       gw,
		scoring:  scoring,
	}
}

// SetEndHook installs the callback invoked when any session celebrates or is
// quit. Must be called before Start.
func (m *Manager) SetEndHook(hook func(Summary)) {
	m.onEnd = hook
}

// Start loads the lesson's ordered question list through the gateway and
// registers a new active session. A load failure is returned to the caller as
// is; the client shows a static error, there is no retry here.
func (m *Manager) Start(ctx context.Context, lessonID uint, language string, learnerID *uint) (*Session, error) {
	questions, err := m.gw.LessonQuestions(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("starting session for lesson %d: %w", lessonID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("lesson %d has no questions", lessonID)
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuestionOrder < questions[j].QuestionOrder
	})

	original := make([]model.Question, len(questions))
	copy(original, questions)

	now := time.Now()
	s := &Session{
		id:          uuid.NewString(),
		lessonID:    lessonID,
		language:    language,
		learnerID:   learnerID,
		questions:   questions,
		original:    original,
		status:      StatusActive,
		startedAt:   now,
		lastTouched: now,
		scoring:     m.scoring,
		gw:          m.gw,
		onEnd:       m.onEnd,
	}

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	log.Info().Str("sessionID", s.id).Uint("lessonID", lessonID).Str("language", language).Int("questions", len(questions)).Msg("Lesson session started")
	return s, nil
}

// Get returns the live session with the given ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session from the registry.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// EvictExpired removes sessions idle past the TTL and returns how many were
// dropped. Finished sessions (celebration, quit) are also collected here once
// they go stale.
func (m *Manager) EvictExpired(ttl time.Duration) int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.expired(ttl, now) {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		log.Info().Int("count", evicted).Msg("Evicted expired lesson sessions")
	}
	return evicted
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
