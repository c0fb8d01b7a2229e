package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra/metrics"
	"hirebot/internal/pkg/clock"
	"hirebot/internal/pkg/config"
	"hirebot/internal/pkg/errs"
	"hirebot/internal/usecase/shared"
)

type ScheduleResult string

const (
	ScheduleArmed          ScheduleResult = "armed"
	ScheduleAlreadyHandled ScheduleResult = "already_handled"
	ScheduleDeclined       ScheduleResult = "declined"
	// ScheduleCancelled means a concurrent Cancel removed the reminder before it was recorded.
	ScheduleCancelled ScheduleResult = "cancelled"
)

type recordState int

const (
	recordPending recordState = iota
	recordWritten
	recordMissing
)

// ReminderScheduler is the surface exposed to request handlers.
type ReminderScheduler interface {
	Schedule(ctx context.Context, userID int64, activity shared.ActivityDetail) (ScheduleResult, error)
	Cancel(ctx context.Context, userID, activityID int64, kind notification.ReminderKind) error
	ArmedCount() int
}

type reminderJob struct {
	key       notification.ReminderKey
	fireAt    time.Time
	title     string
	startText string
	timer     clock.Timer

	// guarded by Scheduler.mu
	record    recordState
	cancelled bool
}

// Scheduler owns the in-process timer set. The durable dedup record is written
// only after the timer is armed, and a record conflict wins over the local timer.
type Scheduler struct {
	repo     shared.ReminderRepository
	notifier ReminderNotifier
	clock    clock.Clock
	loc      *time.Location
	kind     notification.ReminderKind
	logger   *slog.Logger

	reconcileOnStart bool

	mu       sync.Mutex
	jobs     map[string]*reminderJob
	stopped  bool
	inflight sync.WaitGroup
}

func NewScheduler(repo shared.ReminderRepository, notifier ReminderNotifier, clk clock.Clock, cfg config.Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		repo:             repo,
		notifier:         notifier,
		clock:            clk,
		loc:              cfg.Scheduler.Location(),
		kind:             notification.ReminderKind24h,
		logger:           logger.With(slog.String("component", "scheduler")),
		reconcileOnStart: cfg.Scheduler.ReconcileOnStart,
		jobs:             make(map[string]*reminderJob),
	}
}

func (s *Scheduler) Schedule(ctx context.Context, userID int64, activity shared.ActivityDetail) (ScheduleResult, error) {
	key := notification.NewReminderKey(userID, activity.ID, s.kind)
	log := s.logger.With(
		slog.Int64("user_id", userID),
		slog.Int64("activity_id", activity.ID),
		slog.String("job_id", key.JobID()),
	)

	if s.isStopped() {
		return "", errs.ErrSchedulerStopped
	}

	handled, err := s.repo.Exists(ctx, key)
	if err != nil {
		return "", errs.Wrap(err, "check reminder record")
	}
	if handled {
		log.Info("reminder already handled, skipping")
		metrics.IncReminder("skipped")
		return ScheduleAlreadyHandled, nil
	}

	if activity.StartTime == nil {
		log.Warn("activity has no start time, reminder declined")
		metrics.IncReminder("declined")
		return ScheduleDeclined, nil
	}

	now := s.clock.Now()
	fireAt := key.FireAt(*activity.StartTime)
	if !fireAt.After(now) {
		log.Info("reminder window already passed, declined",
			"fire_at", fireAt, "error", errs.ErrSchedulingDeclined.Error())
		metrics.IncReminder("declined")
		return ScheduleDeclined, nil
	}

	job := &reminderJob{
		key:       key,
		fireAt:    fireAt,
		title:     activity.Title,
		startText: notification.FormatTime(*activity.StartTime, s.loc),
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return "", errs.ErrSchedulerStopped
	}
	if cur, armed := s.jobs[key.JobID()]; armed {
		missing := cur.record == recordMissing
		s.mu.Unlock()
		if missing {
			s.ensureRecord(ctx, cur, now, log)
		}
		log.Info("reminder timer already armed, skipping")
		metrics.IncReminder("skipped")
		return ScheduleAlreadyHandled, nil
	}
	job.record = recordPending
	s.armLocked(job, now)
	s.mu.Unlock()

	created, err := s.repo.Record(ctx, key, now)

	s.mu.Lock()
	cancelled := job.cancelled
	job.record = recordWritten
	if err != nil {
		job.record = recordMissing
	}
	s.mu.Unlock()

	if cancelled {
		if err == nil && created {
			if _, derr := s.repo.Delete(ctx, key); derr != nil {
				log.Error("failed to remove record of cancelled reminder", "error", derr.Error())
			}
		}
		log.Info("reminder cancelled while being scheduled")
		return ScheduleCancelled, nil
	}

	if err != nil {
		// The timer stays armed; the next Schedule for this key retries the write.
		log.Error("reminder armed but record write failed", "error", err.Error())
		metrics.IncReminder("record_failed")
		return ScheduleArmed, nil
	}
	if !created {
		s.disarm(job)
		log.Info("reminder recorded concurrently elsewhere, local timer disarmed")
		metrics.IncReminder("skipped")
		return ScheduleAlreadyHandled, nil
	}

	log.Info("reminder armed", "fire_at", fireAt)
	metrics.IncReminder("armed")
	return ScheduleArmed, nil
}

// ensureRecord retries the dedup write for a timer whose first write failed.
// A conflict counts as success: the record exists either way.
func (s *Scheduler) ensureRecord(ctx context.Context, job *reminderJob, now time.Time, log *slog.Logger) {
	_, err := s.repo.Record(ctx, job.key, now)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		log.Error("reminder record still missing", "error", err.Error())
		metrics.IncReminder("record_failed")
		return
	}
	job.record = recordWritten
}

// Cancel is idempotent: a missing timer or record is not an error.
func (s *Scheduler) Cancel(ctx context.Context, userID, activityID int64, kind notification.ReminderKind) error {
	key := notification.NewReminderKey(userID, activityID, kind)
	log := s.logger.With(slog.String("job_id", key.JobID()))

	s.mu.Lock()
	if job, ok := s.jobs[key.JobID()]; ok {
		job.timer.Stop()
		job.cancelled = true
		delete(s.jobs, key.JobID())
		log.Info("reminder timer removed")
	} else {
		log.Info("no armed reminder timer to remove")
	}
	s.publishArmedLocked()
	s.mu.Unlock()

	deleted, err := s.repo.Delete(ctx, key)
	if err != nil {
		return errs.Wrap(err, "delete reminder record")
	}
	if !deleted {
		log.Info("no reminder record to delete")
	}

	metrics.IncReminder("cancelled")
	return nil
}

// Reconcile re-arms reminders whose record survived a restart but whose timer did not.
func (s *Scheduler) Reconcile(ctx context.Context) (int, error) {
	now := s.clock.Now()

	pending, err := s.repo.ListPending(ctx, s.kind, now)
	if err != nil {
		return 0, errs.Wrap(err, "list pending reminders")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return 0, errs.ErrSchedulerStopped
	}

	rearmed := 0
	for _, p := range pending {
		fireAt := p.Key.FireAt(p.StartTime)
		if !fireAt.After(now) {
			continue
		}
		if _, armed := s.jobs[p.Key.JobID()]; armed {
			continue
		}
		s.armLocked(&reminderJob{
			key:       p.Key,
			fireAt:    fireAt,
			title:     p.ActivityTitle,
			startText: notification.FormatTime(p.StartTime, s.loc),
			record:    recordWritten,
		}, now)
		rearmed++
		metrics.IncReminder("rearmed")
	}

	s.logger.Info("reminder reconciliation finished", "pending", len(pending), "rearmed", rearmed)
	return rearmed, nil
}

func (s *Scheduler) Start(ctx context.Context) error {
	if !s.reconcileOnStart {
		return nil
	}
	if _, err := s.Reconcile(ctx); err != nil {
		// not fatal: new schedules still work, only restart recovery is skipped
		s.logger.Error("reminder reconciliation failed", "error", err.Error())
	}
	return nil
}

// Stop refuses new arms and lets armed reminders lapse. Callbacks already
// running are waited for until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	for id, job := range s.jobs {
		job.timer.Stop()
		delete(s.jobs, id)
	}
	s.publishArmedLocked()
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errs.Wrap(ctx.Err(), "wait for reminder callbacks")
	}
}

func (s *Scheduler) Armed(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[jobID]
	return ok
}

func (s *Scheduler) ArmedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

func (s *Scheduler) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

func (s *Scheduler) armLocked(job *reminderJob, now time.Time) {
	id := job.key.JobID()
	s.jobs[id] = job
	job.timer = s.clock.AfterFunc(job.fireAt.Sub(now), func() { s.fire(id, job) })
	s.publishArmedLocked()
}

// disarm removes job only if it is still the one registered under its id.
func (s *Scheduler) disarm(job *reminderJob) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := job.key.JobID()
	if cur, ok := s.jobs[id]; ok && cur == job {
		job.timer.Stop()
		delete(s.jobs, id)
		s.publishArmedLocked()
	}
}

func (s *Scheduler) fire(id string, job *reminderJob) {
	s.mu.Lock()
	if cur, ok := s.jobs[id]; !ok || cur != job || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.jobs, id)
	s.publishArmedLocked()
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("reminder callback panicked", "job_id", id, "panic", r)
		}
	}()

	metrics.IncReminder("fired")
	outcome := s.notifier.NotifyReminder(context.Background(), job.key.UserID, job.key.ActivityID, job.title, job.startText)
	if outcome != OutcomeDelivered {
		s.logger.Warn("reminder lost, no retry", "job_id", id, "outcome", string(outcome))
	}
}

func (s *Scheduler) publishArmedLocked() {
	metrics.SetRemindersArmed(len(s.jobs))
}
