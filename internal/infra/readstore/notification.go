package readstore

import (
	"context"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra"
	"hirebot/internal/infra/db"
	"hirebot/internal/infra/queries"
	"hirebot/internal/pkg/pgconv"
	"hirebot/internal/usecase/shared"
)

type NotificationReadQueries interface {
	GetApplicationDetail(ctx context.Context, db db.DBTX, id int64) (queries.ApplicationDetailRow, error)
	GetActivity(ctx context.Context, db db.DBTX, id int64) (queries.ActivityRow, error)
	ListActivityRecipients(ctx context.Context, db db.DBTX, activityID int64) ([]int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      db.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *NotificationReadStore) ApplicationDetail(ctx context.Context, applicationID int64) (*shared.ApplicationDetail, error) {
	row, err := s.queries.GetApplicationDetail(ctx, s.db, applicationID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("application not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get application detail", err)
	}

	status, err := notification.ParseApplicationStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("application has unknown status", err)
	}

	title := row.Title
	if title == "" {
		title = notification.DefaultTargetTitle
	}

	return &shared.ApplicationDetail{
		ApplicationID: row.ID,
		UserID:        row.UserID,
		Title:         title,
		Status:        status,
		Comment:       pgconv.StringPtrFromPgtype(row.HrComment),
	}, nil
}

func (s *NotificationReadStore) ActivityDetail(ctx context.Context, activityID int64) (*shared.ActivityDetail, error) {
	row, err := s.queries.GetActivity(ctx, s.db, activityID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get activity", err)
	}

	return toActivityDetailFromRow(row), nil
}

func (s *NotificationReadStore) RecipientsForActivity(ctx context.Context, activityID int64) ([]int64, error) {
	ids, err := s.queries.ListActivityRecipients(ctx, s.db, activityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity recipients", err)
	}
	return ids, nil
}

func toActivityDetailFromRow(row queries.ActivityRow) *shared.ActivityDetail {
	return &shared.ActivityDetail{
		ID:        row.ID,
		Title:     row.Title,
		StartTime: pgconv.TimePtrFromPgtype(row.StartTime),
		EndTime:   pgconv.TimePtrFromPgtype(row.EndTime),
	}
}
