package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra"
	"hirebot/internal/infra/metrics"
	"hirebot/internal/pkg/config"
	"hirebot/internal/pkg/errs"
	"hirebot/internal/usecase/shared"
)

// Outcome is the explicit result of one handler unit or one delivery attempt.
type Outcome string

const (
	OutcomeDelivered      Outcome = "delivered"
	OutcomeDeliveryFailed Outcome = "delivery_failed"
	OutcomeMalformed      Outcome = "malformed_payload"
	OutcomeDetailMissing  Outcome = "detail_missing"
	OutcomeLookupFailed   Outcome = "lookup_failed"
	OutcomeNoRecipients   Outcome = "no_recipients"
	OutcomePanicked       Outcome = "panicked"
)

const (
	kindStatusChange       = "status_change"
	kindActivityTimeChange = "activity_time_change"
	kindReminder           = "reminder"
)

// EventDispatcher is what the listener hands decoded events to.
type EventDispatcher interface {
	DispatchApplicationUpdate(ctx context.Context, applicationID int64) Outcome
	DispatchActivityUpdate(ctx context.Context, activityID int64) Outcome
}

// ReminderNotifier is what a fired reminder timer calls.
type ReminderNotifier interface {
	NotifyReminder(ctx context.Context, recipientID, activityID int64, title, startText string) Outcome
}

// Dispatcher renders messages and makes exactly one delivery attempt per recipient.
// Delivery failures are logged and reported as an Outcome, never as an error.
type Dispatcher struct {
	sender shared.Sender
	reads  shared.NotificationReadStore
	loc    *time.Location
	logger *slog.Logger
}

func NewDispatcher(sender shared.Sender, reads shared.NotificationReadStore, cfg config.Config, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		reads:  reads,
		loc:    cfg.Scheduler.Location(),
		logger: logger.With(slog.String("component", "dispatcher")),
	}
}

func (d *Dispatcher) NotifyStatusChange(ctx context.Context, recipientID, applicationID int64, title string, status notification.ApplicationStatus, comment *string) Outcome {
	text := notification.RenderStatusChange(title, status, comment)
	return d.send(ctx, kindStatusChange, recipientID, text,
		slog.Int64("application_id", applicationID),
		slog.String("status", status.String()),
	)
}

func (d *Dispatcher) NotifyActivityTimeChange(ctx context.Context, recipientID int64, title string, activityID int64, start, end time.Time) Outcome {
	text := notification.RenderActivityTimeChange(title, activityID, start, end, d.loc)
	return d.send(ctx, kindActivityTimeChange, recipientID, text,
		slog.Int64("activity_id", activityID),
	)
}

func (d *Dispatcher) NotifyReminder(ctx context.Context, recipientID, activityID int64, title, startText string) Outcome {
	text := notification.RenderReminder(title, activityID, startText)
	return d.send(ctx, kindReminder, recipientID, text,
		slog.Int64("activity_id", activityID),
	)
}

// DispatchApplicationUpdate re-fetches the application and notifies its owner.
func (d *Dispatcher) DispatchApplicationUpdate(ctx context.Context, applicationID int64) Outcome {
	log := d.logger.With(slog.Int64("application_id", applicationID))

	detail, err := d.reads.ApplicationDetail(ctx, applicationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Warn("application vanished before notification", "error", errs.Mark(err, errs.ErrDetailNotFound).Error())
			return OutcomeDetailMissing
		}
		log.Error("failed to load application detail", "error", err.Error())
		return OutcomeLookupFailed
	}

	if detail.UserID == 0 || detail.Status == "" {
		log.Error("application detail incomplete, skipping", "user_id", detail.UserID, "status", detail.Status.String())
		return OutcomeDetailMissing
	}

	log.Info("dispatching application status update", "user_id", detail.UserID, "status", detail.Status.String())
	return d.NotifyStatusChange(ctx, detail.UserID, applicationID, detail.Title, detail.Status, detail.Comment)
}

// DispatchActivityUpdate fans the new activity time out to every applicant.
// Each recipient is sent to independently; one failure does not affect the others.
func (d *Dispatcher) DispatchActivityUpdate(ctx context.Context, activityID int64) Outcome {
	log := d.logger.With(slog.Int64("activity_id", activityID))

	activity, err := d.reads.ActivityDetail(ctx, activityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			log.Warn("activity vanished before notification", "error", errs.Mark(err, errs.ErrDetailNotFound).Error())
			return OutcomeDetailMissing
		}
		log.Error("failed to load activity detail", "error", err.Error())
		return OutcomeLookupFailed
	}

	if activity.StartTime == nil || activity.EndTime == nil {
		log.Error("activity has no start or end time, skipping", "title", activity.Title)
		return OutcomeDetailMissing
	}

	recipients, err := d.reads.RecipientsForActivity(ctx, activityID)
	if err != nil {
		log.Error("failed to load activity recipients", "error", err.Error())
		return OutcomeLookupFailed
	}
	if len(recipients) == 0 {
		log.Info("no recipients for activity update")
		return OutcomeNoRecipients
	}

	log.Info("dispatching activity time change", "title", activity.Title, "recipients", len(recipients))

	outcomes := make([]Outcome, len(recipients))
	var wg sync.WaitGroup
	for i, userID := range recipients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error("recipient dispatch panicked", "user_id", userID, "panic", r)
					outcomes[i] = OutcomePanicked
				}
			}()
			outcomes[i] = d.NotifyActivityTimeChange(ctx, userID, activity.Title, activityID, *activity.StartTime, *activity.EndTime)
		}()
	}
	wg.Wait()

	for _, o := range outcomes {
		if o != OutcomeDelivered {
			return OutcomeDeliveryFailed
		}
	}
	return OutcomeDelivered
}

func (d *Dispatcher) send(ctx context.Context, kind string, recipientID int64, text string, attrs ...any) Outcome {
	log := d.logger.With(attrs...).With(slog.String("kind", kind), slog.Int64("user_id", recipientID))

	started := time.Now()
	err := d.sender.Send(ctx, recipientID, text)
	metrics.ObserveDispatch(time.Since(started))

	if err != nil {
		err = errs.Mark(err, errs.ErrDeliveryFailed)
		log.Error("failed to deliver notification", "error", err.Error())
		metrics.IncDispatch(kind, string(OutcomeDeliveryFailed))
		return OutcomeDeliveryFailed
	}

	log.Info("notification delivered")
	metrics.IncDispatch(kind, string(OutcomeDelivered))
	return OutcomeDelivered
}
