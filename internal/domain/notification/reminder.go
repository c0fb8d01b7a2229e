package notification

import (
	"fmt"
	"time"

	"hirebot/internal/pkg/errs"
)

var ErrUnknownReminderKind = errs.New("unknown reminder kind")

type ReminderKind string

// ReminderKind24h is the only reminder policy: one day before the activity starts.
const ReminderKind24h ReminderKind = "24h"

func ParseReminderKind(s string) (ReminderKind, error) {
	if ReminderKind(s) == ReminderKind24h {
		return ReminderKind24h, nil
	}
	return "", errs.Mark(errs.New("reminder kind "+s), ErrUnknownReminderKind)
}

func (k ReminderKind) LeadTime() time.Duration {
	switch k {
	case ReminderKind24h:
		return 24 * time.Hour
	default:
		return 0
	}
}

func (k ReminderKind) String() string { return string(k) }

type ReminderKey struct {
	UserID     int64
	ActivityID int64
	Kind       ReminderKind
}

func NewReminderKey(userID, activityID int64, kind ReminderKind) ReminderKey {
	return ReminderKey{UserID: userID, ActivityID: activityID, Kind: kind}
}

// JobID is stable for a key so re-arming after a replayed trigger is idempotent.
func (k ReminderKey) JobID() string {
	return fmt.Sprintf("activity_reminder_user%d_activity%d_type%s", k.UserID, k.ActivityID, k.Kind)
}

// FireAt returns when the reminder for an activity starting at start should fire.
func (k ReminderKey) FireAt(start time.Time) time.Time {
	return start.Add(-k.Kind.LeadTime())
}
