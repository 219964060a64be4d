package scheduler

import (
	"time"

	"github.com/fundalabs/funda/internal/session"
	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic maintenance jobs: today that is the session
// janitor evicting idle lesson sessions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	manager   *session.Manager
	ttl       time.Duration
}

func New(manager *session.Manager, ttl time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		manager:   manager,
		ttl:       ttl,
	}
}

// Start schedules the janitor and runs the scheduler asynchronously.
func (s *Scheduler) Start() {
	if _, err := s.scheduler.Every(5).Minutes().Do(s.evictSessions); err != nil {
		log.Error().Err(err).Msg("Failed to schedule session janitor")
		return
	}
	s.scheduler.StartAsync()
	log.Info().Dur("ttl", s.ttl).Msg("Session janitor scheduled")
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) evictSessions() {
	s.manager.EvictExpired(s.ttl)
}
