// internal/app/polling_service.go
package app

import (
	"context"
	"fmt"

	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/domain/notification"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MessageNotifier is the sink for status and failure messages.
type MessageNotifier interface {
	Notify(ctx context.Context, cycleID string, kind notification.Kind, text string)
}

// Waiter blocks between poll cycles. A non-nil error stops the loop.
type Waiter interface {
	Wait(ctx context.Context) error
}

// PollingService polls the homework API and reports status changes.
// It is driven by a single goroutine; its state is not safe for concurrent use.
type PollingService struct {
	client   homework.Client
	notifier MessageNotifier
	waiter   Waiter
	logger   *logrus.Logger

	cursor      int64  // lower bound for the next query, never decreases
	lastMessage string // last status message sent
	lastFailure string // last failure diagnostic sent
}

func NewPollingService(
	client homework.Client,
	notifier MessageNotifier,
	waiter Waiter,
	logger *logrus.Logger,
	startCursor int64,
) *PollingService {
	return &PollingService{
		client:   client,
		notifier: notifier,
		waiter:   waiter,
		logger:   logger,
		cursor:   startCursor,
	}
}

// Cursor returns the current lower bound of the API query.
func (s *PollingService) Cursor() int64 {
	return s.cursor
}

// Run polls until ctx is cancelled. Every cycle is followed by a full wait,
// whatever its outcome.
func (s *PollingService) Run(ctx context.Context) error {
	s.logger.WithField("cursor", s.cursor).Info("Homework polling started")
	for {
		s.Poll(ctx)
		if err := s.waiter.Wait(ctx); err != nil {
			s.logger.WithError(err).Info("Homework polling stopped")
			return nil
		}
	}
}

// Poll runs a single fetch, validate, format and notify cycle.
func (s *PollingService) Poll(ctx context.Context) {
	cycleID := uuid.NewString()
	log := s.logger.WithFields(logrus.Fields{"cycle_id": cycleID, "cursor": s.cursor})

	resp, message, err := s.check(ctx)
	if err != nil {
		s.handleFailure(ctx, log, cycleID, err)
		return
	}

	if message != s.lastMessage {
		s.notifier.Notify(ctx, cycleID, notification.KindStatus, message)
		s.lastMessage = message
		log.Info("Homework status update reported")
	} else {
		log.Debug("Homework status unchanged, nothing to report")
	}
	s.advance(log, resp.CurrentDate)
}

func (s *PollingService) check(ctx context.Context) (*homework.Response, string, error) {
	payload, err := s.client.FetchStatuses(ctx, s.cursor)
	if err != nil {
		return nil, "", err
	}
	resp, err := homework.Validate(payload)
	if err != nil {
		return nil, "", err
	}
	message, err := homework.Summarize(resp)
	if err != nil {
		return nil, "", err
	}
	return resp, message, nil
}

func (s *PollingService) handleFailure(ctx context.Context, log *logrus.Entry, cycleID string, err error) {
	if ctx.Err() != nil {
		log.WithError(err).Info("Poll cycle interrupted by shutdown")
		return
	}

	log = log.WithError(err).WithField("kind", homework.KindOf(err))
	if homework.IsRecoverable(err) {
		log.Error("Poll cycle failed")
	} else {
		log.Error("Poll cycle failed with an unclassified error")
	}

	text := fmt.Sprintf("Program failure: %v.", err)
	if text == s.lastFailure {
		log.Debug("Same failure already reported, skipping notification")
		return
	}
	s.notifier.Notify(ctx, cycleID, notification.KindFailure, text)
	s.lastFailure = text
}

func (s *PollingService) advance(log *logrus.Entry, next int64) {
	switch {
	case next == 0:
		log.Warn("Response has no current_date, cursor kept")
	case next < s.cursor:
		log.WithField("current_date", next).Warn("current_date is behind the cursor, cursor kept")
	default:
		s.cursor = next
		log.WithField("current_date", next).Debug("Cursor advanced")
	}
}
