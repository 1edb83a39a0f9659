package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"homework_status_bot/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func mustDecode(raw string) any {
	d := json.NewDecoder(strings.NewReader(raw))
	d.UseNumber()
	var v any
	if err := d.Decode(&v); err != nil {
		panic(err)
	}
	return v
}

type fetchResult struct {
	payload any
	err     error
}

// scriptedClient replays results in order and repeats the last one.
type scriptedClient struct {
	results []fetchResult
	cursors []int64
}

func (c *scriptedClient) FetchStatuses(_ context.Context, cursor int64) (any, error) {
	c.cursors = append(c.cursors, cursor)
	i := len(c.cursors) - 1
	if i >= len(c.results) {
		i = len(c.results) - 1
	}
	return c.results[i].payload, c.results[i].err
}

type sentMessage struct {
	kind notification.Kind
	text string
}

type recordingNotifier struct {
	sent []sentMessage
}

func (n *recordingNotifier) Notify(_ context.Context, _ string, kind notification.Kind, text string) {
	n.sent = append(n.sent, sentMessage{kind: kind, text: text})
}

// countingWaiter lets the loop run a fixed number of cycles.
type countingWaiter struct {
	cycles int
	waits  int
}

func (w *countingWaiter) Wait(context.Context) error {
	w.waits++
	if w.waits >= w.cycles {
		return context.Canceled
	}
	return nil
}

type fakeTelegram struct {
	chatIDs []string
	texts   []string
	err     error
}

func (f *fakeTelegram) SendMessage(chatID string, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.texts = append(f.texts, text)
	return f.err
}

type memoryJournal struct {
	entries []*notification.Entry
	err     error
}

func (j *memoryJournal) Record(_ context.Context, e *notification.Entry) error {
	j.entries = append(j.entries, e)
	return j.err
}

var errDial = errors.New("dial tcp: connection refused")
