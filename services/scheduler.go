package services

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the periodic publish jobs.
type Scheduler struct {
	News        *NewsService
	Tournaments *TournamentService

	sched gocron.Scheduler
}

func NewScheduler(news *NewsService, tournaments *TournamentService) *Scheduler {
	return &Scheduler{News: news, Tournaments: tournaments}
}

// RunOnce publishes due news and advances tournament statuses.
func (s *Scheduler) RunOnce(now time.Time) {
	if _, err := s.News.PublishDue(now); err != nil {
		log.Printf("[Scheduler] %v", err)
	}
	if err := s.Tournaments.AdvanceStatuses(now); err != nil {
		log.Printf("[Scheduler] %v", err)
	}
}

// Start runs RunOnce immediately and then every interval.
func (s *Scheduler) Start(interval time.Duration) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.RunOnce(time.Now()) }),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register publish job: %w", err)
	}

	sched.Start()
	s.sched = sched
	return nil
}

func (s *Scheduler) Stop() {
	if s.sched == nil {
		return
	}
	if err := s.sched.Shutdown(); err != nil {
		log.Printf("[Scheduler] shutdown: %v", err)
	}
}
