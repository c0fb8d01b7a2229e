package queries

import (
	"context"
	"time"

	"hirebot/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries builds every statement the notifier issues. Each method takes the
// executor explicitly so callers can pass a pool or a transaction.
type Queries struct {
	sb sq.StatementBuilderType
}

func New() *Queries {
	return &Queries{sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

type ApplicationDetailRow struct {
	ID        int64
	UserID    int64
	Title     string
	Status    string
	HrComment pgtype.Text
}

type ActivityRow struct {
	ID        int64
	Title     string
	StartTime pgtype.Timestamptz
	EndTime   pgtype.Timestamptz
}

type ReminderKeyParams struct {
	UserID       int64
	ActivityID   int64
	ReminderType string
}

type InsertReminderParams struct {
	ReminderKeyParams
	SentAt time.Time
}

type PendingReminderRow struct {
	UserID        int64
	ActivityID    int64
	ReminderType  string
	SentAt        pgtype.Timestamptz
	ActivityTitle string
	StartTime     pgtype.Timestamptz
}

func (q *Queries) applicationDetail(id int64) sq.SelectBuilder {
	return q.sb.
		Select("app.id", "app.user_id", "COALESCE(j.title, act.title, '')", "app.status", "app.hr_comment").
		From("applications app").
		LeftJoin("jobs j ON j.id = app.job_id").
		LeftJoin("activities act ON act.id = app.activity_id").
		Where(sq.Eq{"app.id": id})
}

func (q *Queries) GetApplicationDetail(ctx context.Context, db db.DBTX, id int64) (ApplicationDetailRow, error) {
	var row ApplicationDetailRow
	query, args, err := q.applicationDetail(id).ToSql()
	if err != nil {
		return row, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&row.ID, &row.UserID, &row.Title, &row.Status, &row.HrComment)
	return row, err
}

func (q *Queries) activity(id int64) sq.SelectBuilder {
	return q.sb.
		Select("id", "title", "start_time", "end_time").
		From("activities").
		Where(sq.Eq{"id": id})
}

func (q *Queries) GetActivity(ctx context.Context, db db.DBTX, id int64) (ActivityRow, error) {
	var row ActivityRow
	query, args, err := q.activity(id).ToSql()
	if err != nil {
		return row, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&row.ID, &row.Title, &row.StartTime, &row.EndTime)
	return row, err
}

func (q *Queries) activityRecipients(activityID int64) sq.SelectBuilder {
	return q.sb.
		Select("DISTINCT user_id").
		From("applications").
		Where(sq.Eq{"activity_id": activityID}).
		Where(sq.NotEq{"status": "withdrawn"}).
		OrderBy("user_id")
}

func (q *Queries) ListActivityRecipients(ctx context.Context, db db.DBTX, activityID int64) ([]int64, error) {
	query, args, err := q.activityRecipients(activityID).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func reminderKeyEq(p ReminderKeyParams) sq.Eq {
	return sq.Eq{
		"user_id":       p.UserID,
		"activity_id":   p.ActivityID,
		"reminder_type": p.ReminderType,
	}
}

func (q *Queries) reminderExists(p ReminderKeyParams) sq.SelectBuilder {
	return q.sb.
		Select("1").
		From("activity_reminders").
		Where(reminderKeyEq(p)).
		Prefix("SELECT EXISTS (").
		Suffix(")")
}

func (q *Queries) ReminderExists(ctx context.Context, db db.DBTX, p ReminderKeyParams) (bool, error) {
	query, args, err := q.reminderExists(p).ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	err = db.QueryRow(ctx, query, args...).Scan(&exists)
	return exists, err
}

func (q *Queries) insertReminder(p InsertReminderParams) sq.InsertBuilder {
	return q.sb.
		Insert("activity_reminders").
		Columns("user_id", "activity_id", "reminder_type", "sent_at").
		Values(p.UserID, p.ActivityID, p.ReminderType, p.SentAt).
		Suffix("ON CONFLICT (user_id, activity_id, reminder_type) DO NOTHING RETURNING id")
}

// InsertReminder returns pgx.ErrNoRows when the key already exists.
func (q *Queries) InsertReminder(ctx context.Context, db db.DBTX, p InsertReminderParams) (int64, error) {
	query, args, err := q.insertReminder(p).ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, query, args...).Scan(&id)
	return id, err
}

func (q *Queries) deleteReminder(p ReminderKeyParams) sq.DeleteBuilder {
	return q.sb.
		Delete("activity_reminders").
		Where(reminderKeyEq(p))
}

func (q *Queries) DeleteReminder(ctx context.Context, db db.DBTX, p ReminderKeyParams) (int64, error) {
	query, args, err := q.deleteReminder(p).ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) pendingReminders(reminderType string, startsAfter time.Time) sq.SelectBuilder {
	return q.sb.
		Select("r.user_id", "r.activity_id", "r.reminder_type", "r.sent_at", "a.title", "a.start_time").
		From("activity_reminders r").
		Join("activities a ON a.id = r.activity_id").
		Where(sq.Eq{"r.reminder_type": reminderType}).
		Where(sq.Gt{"a.start_time": startsAfter}).
		OrderBy("a.start_time", "r.user_id")
}

func (q *Queries) ListPendingReminders(ctx context.Context, db db.DBTX, reminderType string, startsAfter time.Time) ([]PendingReminderRow, error) {
	query, args, err := q.pendingReminders(reminderType, startsAfter).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(r pgx.CollectableRow) (PendingReminderRow, error) {
		var row PendingReminderRow
		err := r.Scan(&row.UserID, &row.ActivityID, &row.ReminderType, &row.SentAt, &row.ActivityTitle, &row.StartTime)
		return row, err
	})
}
