package audio

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Handle identifies one playback slot, usually a lesson session.
type Handle string

// Playback is the active clip sequence for one handle.
type Playback struct {
	Handle Handle     `json:"handle"`
	Clips  []Location `json:"clips"`
	// Skipped lists clips dropped because they failed to resolve. Queued
	// playback skips and logs failures instead of halting or alerting.
	Skipped []string `json:"skipped,omitempty"`
}

// Manager enforces the at-most-one-active-playback-per-handle policy.
// It is an injected component with an explicit lifecycle: starting a new
// playback stops whatever was active first.
type Manager struct {
	mu     sync.Mutex
	active map[Handle]*Playback
}

func NewManager() *Manager {
	return &Manager{active: make(map[Handle]*Playback)}
}

// Play registers a clip sequence as the handle's active playback, replacing
// any playback currently active for that handle. Unresolvable clips are
// skipped and logged, never fatal: a sequence with zero resolvable clips
// still yields an empty playback.
func (m *Manager) Play(handle Handle, resolver *Resolver, unitID uint, language string, filenames []string) *Playback {
	pb := &Playback{Handle: handle}
	for _, name := range filenames {
		loc, err := resolver.Resolve(unitID, language, name)
		if err != nil {
			log.Warn().Err(err).Str("filename", name).Msg("Skipping unresolvable audio clip")
			pb.Skipped = append(pb.Skipped, name)
			continue
		}
		pb.Clips = append(pb.Clips, loc)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if prev, ok := m.active[handle]; ok {
		log.Debug().Str("handle", string(handle)).Int("clips", len(prev.Clips)).Msg("Stopping previous playback")
	}
	m.active[handle] = pb
	return pb
}

// Stop clears the handle's active playback.
func (m *Manager) Stop(handle Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, handle)
}

// Active returns the handle's current playback, if any.
func (m *Manager) Active(handle Handle) (*Playback, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pb, ok := m.active[handle]
	return pb, ok
}

// StopAll tears down every active playback. Called on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.active) > 0 {
		log.Info().Int("count", len(m.active)).Msg("Stopping all active playbacks")
	}
	m.active = make(map[Handle]*Playback)
}
