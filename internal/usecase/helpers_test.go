//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/usecase"
	"hirebot/internal/usecase/shared"
)

var errBoom = errors.New("boom")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memReminderRepo is an in-memory dedup store keyed like the unique constraint.
type memReminderRepo struct {
	mu       sync.Mutex
	records  map[notification.ReminderKey]time.Time
	starts   map[int64]time.Time
	titles   map[int64]string
	conflict bool // Record behaves as if another instance won the insert
	failWith error
	existErr error
}

func newMemReminderRepo() *memReminderRepo {
	return &memReminderRepo{
		records: make(map[notification.ReminderKey]time.Time),
		starts:  make(map[int64]time.Time),
		titles:  make(map[int64]string),
	}
}

func (r *memReminderRepo) Exists(_ context.Context, key notification.ReminderKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existErr != nil {
		return false, r.existErr
	}
	_, ok := r.records[key]
	return ok, nil
}

func (r *memReminderRepo) Record(_ context.Context, key notification.ReminderKey, sentAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	if r.conflict {
		r.records[key] = sentAt
		return false, nil
	}
	if _, ok := r.records[key]; ok {
		return false, nil
	}
	r.records[key] = sentAt
	return true, nil
}

func (r *memReminderRepo) Delete(_ context.Context, key notification.ReminderKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[key]
	delete(r.records, key)
	return ok, nil
}

func (r *memReminderRepo) ListPending(_ context.Context, kind notification.ReminderKind, now time.Time) ([]shared.PendingReminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []shared.PendingReminder
	for key, sentAt := range r.records {
		start, ok := r.starts[key.ActivityID]
		if key.Kind != kind || !ok || !start.After(now.Add(kind.LeadTime())) {
			continue
		}
		out = append(out, shared.PendingReminder{
			Key:           key,
			ActivityTitle: r.titles[key.ActivityID],
			StartTime:     start,
			SentAt:        sentAt,
		})
	}
	return out, nil
}

func (r *memReminderRepo) has(key notification.ReminderKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[key]
	return ok
}

type sentReminder struct {
	UserID     int64
	ActivityID int64
	Title      string
	StartText  string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentReminder
}

func (n *recordingNotifier) NotifyReminder(_ context.Context, recipientID, activityID int64, title, startText string) usecase.Outcome {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentReminder{recipientID, activityID, title, startText})
	return usecase.OutcomeDelivered
}

func (n *recordingNotifier) calls() []sentReminder {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentReminder(nil), n.sent...)
}
