package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler spaces polling cycles by a constant delay.
// The delay is counted from the end of a cycle, so a slow cycle never shortens the next wait.
type PollScheduler struct {
	schedule cron.Schedule
	logger   *logrus.Logger
	now      func() time.Time
}

// NewPollScheduler creates a scheduler for the given retry period.
// Periods below one second are rounded up to one second by cron.Every.
func NewPollScheduler(period time.Duration, logger *logrus.Logger) *PollScheduler {
	return &PollScheduler{
		schedule: cron.Every(period),
		logger:   logger,
		now:      time.Now,
	}
}

// Next returns when the cycle following one finished at t should start.
// cron schedules work in whole seconds, so the sub-second part of t is carried over
// to keep every wait exactly one period long.
func (s *PollScheduler) Next(t time.Time) time.Time {
	whole := t.Truncate(time.Second)
	return s.schedule.Next(whole).Add(t.Sub(whole))
}

// Wait blocks until the next cycle is due. It returns early only when ctx is done.
func (s *PollScheduler) Wait(ctx context.Context) error {
	now := s.now()
	next := s.Next(now)
	s.logger.WithField("next_at", next.Format("15:04:05")).Debug("Waiting for the next poll")

	timer := time.NewTimer(next.Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.Info("Poll scheduler stopped")
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
