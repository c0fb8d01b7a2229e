package shared

import (
	"context"
	"time"

	"hirebot/internal/domain/notification"
)

// Read-side snapshots assembled on demand; never stored by the notifier
type ApplicationDetail struct {
	ApplicationID int64
	UserID        int64
	Title         string
	Status        notification.ApplicationStatus
	Comment       *string
}

type ActivityDetail struct {
	ID        int64
	Title     string
	StartTime *time.Time
	EndTime   *time.Time
}

// PendingReminder is a dedup record whose activity has not started yet.
type PendingReminder struct {
	Key           notification.ReminderKey
	ActivityTitle string
	StartTime     time.Time
	SentAt        time.Time
}

// NotificationReadStore returns an infra.KindNotFound error for vanished rows.
type NotificationReadStore interface {
	ApplicationDetail(ctx context.Context, applicationID int64) (*ApplicationDetail, error)
	ActivityDetail(ctx context.Context, activityID int64) (*ActivityDetail, error)
	RecipientsForActivity(ctx context.Context, activityID int64) ([]int64, error)
}

type ReminderRepository interface {
	Exists(ctx context.Context, key notification.ReminderKey) (bool, error)
	// Record reports false when the key was already present.
	Record(ctx context.Context, key notification.ReminderKey, sentAt time.Time) (bool, error)
	Delete(ctx context.Context, key notification.ReminderKey) (bool, error)
	ListPending(ctx context.Context, kind notification.ReminderKind, now time.Time) ([]PendingReminder, error)
}

// Sender is the outbound chat channel. Any error means the message was not delivered.
type Sender interface {
	Send(ctx context.Context, recipientID int64, text string) error
}

type Notification struct {
	PID     uint32
	Channel string
	Payload string
}

// ListenConn is a subscription-capable connection that is never shared with query traffic.
type ListenConn interface {
	Listen(ctx context.Context, channel string) error
	WaitForNotification(ctx context.Context) (*Notification, error)
	Close(ctx context.Context) error
}

type ListenConnector interface {
	Connect(ctx context.Context) (ListenConn, error)
}
