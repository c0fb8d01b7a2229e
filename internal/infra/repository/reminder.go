package repository

import (
	"context"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra"
	"hirebot/internal/infra/db"
	"hirebot/internal/infra/queries"
	"hirebot/internal/pkg/pgconv"
	"hirebot/internal/usecase/shared"
)

type ReminderQueries interface {
	ReminderExists(ctx context.Context, db db.DBTX, arg queries.ReminderKeyParams) (bool, error)
	InsertReminder(ctx context.Context, db db.DBTX, arg queries.InsertReminderParams) (int64, error)
	DeleteReminder(ctx context.Context, db db.DBTX, arg queries.ReminderKeyParams) (int64, error)
	ListPendingReminders(ctx context.Context, db db.DBTX, reminderType string, startsAfter time.Time) ([]queries.PendingReminderRow, error)
}

type ReminderRepository struct {
	queries ReminderQueries
	db      db.DBTX
}

func NewReminderRepository(queries ReminderQueries, db db.DBTX) *ReminderRepository {
	return &ReminderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReminderRepository) Exists(ctx context.Context, key notification.ReminderKey) (bool, error) {
	exists, err := r.queries.ReminderExists(ctx, r.db, toKeyParams(key))
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reminder record", err)
	}
	return exists, nil
}

// Record reports false, without error, when the key is already recorded.
func (r *ReminderRepository) Record(ctx context.Context, key notification.ReminderKey, sentAt time.Time) (bool, error) {
	params := queries.InsertReminderParams{
		ReminderKeyParams: toKeyParams(key),
		SentAt:            sentAt,
	}

	_, err := r.queries.InsertReminder(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to record reminder", err)
	}

	return true, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, key notification.ReminderKey) (bool, error) {
	affected, err := r.queries.DeleteReminder(ctx, r.db, toKeyParams(key))
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete reminder record", err)
	}
	return affected > 0, nil
}

// ListPending returns records of the given kind whose activity is still far
// enough ahead for the reminder to fire.
func (r *ReminderRepository) ListPending(ctx context.Context, kind notification.ReminderKind, now time.Time) ([]shared.PendingReminder, error) {
	rows, err := r.queries.ListPendingReminders(ctx, r.db, string(kind), now.Add(kind.LeadTime()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending reminders", err)
	}

	result := make([]shared.PendingReminder, 0, len(rows))
	for _, row := range rows {
		k, err := notification.ParseReminderKind(row.ReminderType)
		if err != nil {
			continue
		}
		result = append(result, shared.PendingReminder{
			Key:           notification.NewReminderKey(row.UserID, row.ActivityID, k),
			ActivityTitle: row.ActivityTitle,
			StartTime:     pgconv.TimeFromPgtype(row.StartTime),
			SentAt:        pgconv.TimeFromPgtype(row.SentAt),
		})
	}

	return result, nil
}

func toKeyParams(key notification.ReminderKey) queries.ReminderKeyParams {
	return queries.ReminderKeyParams{
		UserID:       key.UserID,
		ActivityID:   key.ActivityID,
		ReminderType: string(key.Kind),
	}
}
