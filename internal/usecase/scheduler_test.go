//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra/metrics"
	"hirebot/internal/pkg/clock"
	"hirebot/internal/pkg/config"
	"hirebot/internal/pkg/errs"
	"hirebot/internal/usecase"
	"hirebot/internal/usecase/shared"
	sharedmock "hirebot/tests/mock/shared"
	usecasemock "hirebot/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var schedulerEpoch = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type schedulerFixture struct {
	clock    *clock.MockClock
	repo     *memReminderRepo
	notifier *recordingNotifier
	sched    *usecase.Scheduler
}

func newSchedulerFixture() *schedulerFixture {
	f := &schedulerFixture{
		clock:    clock.NewMockClock(schedulerEpoch),
		repo:     newMemReminderRepo(),
		notifier: &recordingNotifier{},
	}
	f.sched = usecase.NewScheduler(f.repo, f.notifier, f.clock, config.NewTestConfig(), discardLogger())
	return f
}

func activityStartingIn(id int64, d time.Duration) shared.ActivityDetail {
	start := schedulerEpoch.Add(d)
	end := start.Add(2 * time.Hour)
	return shared.ActivityDetail{ID: id, Title: "Open Day", StartTime: &start, EndTime: &end}
}

func TestScheduler_FiresOnceAtLeadTime(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()
	activity := activityStartingIn(42, 48*time.Hour)
	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)

	result, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, result)
	assert.True(t, f.sched.Armed(key.JobID()))
	assert.True(t, f.repo.has(key))
	assert.Equal(t, []time.Time{schedulerEpoch.Add(24 * time.Hour)}, f.clock.Pending())

	f.clock.Add(23 * time.Hour)
	assert.Empty(t, f.notifier.calls())

	firedBefore := metrics.ReminderCount("fired")
	f.clock.Add(time.Hour)
	assert.Equal(t, firedBefore+1, metrics.ReminderCount("fired"))
	calls := f.notifier.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, sentReminder{
		UserID:     7,
		ActivityID: 42,
		Title:      "Open Day",
		StartText:  "03.06.2025 at 10:00 UTC",
	}, calls[0])
	assert.Equal(t, 0, f.sched.ArmedCount())

	// the record survives firing so a repeat request stays a no-op
	result, err = f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleAlreadyHandled, result)
}

func TestScheduler_Idempotent(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()
	activity := activityStartingIn(42, 48*time.Hour)

	first, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	second, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)

	assert.Equal(t, usecase.ScheduleArmed, first)
	assert.Equal(t, usecase.ScheduleAlreadyHandled, second)
	assert.Equal(t, 1, f.sched.ArmedCount())
	assert.Len(t, f.clock.Pending(), 1)

	// a different recipient of the same activity is independent
	other, err := f.sched.Schedule(ctx, 8, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, other)
	assert.Equal(t, 2, f.sched.ArmedCount())
}

func TestScheduler_ConcurrentScheduleArmsOnce(t *testing.T) {
	f := newSchedulerFixture()
	activity := activityStartingIn(42, 48*time.Hour)

	const callers = 16
	results := make([]usecase.ScheduleResult, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := f.sched.Schedule(context.Background(), 7, activity)
			assert.NoError(t, err)
			results[i] = r
		}()
	}
	wg.Wait()

	armed := 0
	for _, r := range results {
		if r == usecase.ScheduleArmed {
			armed++
		} else {
			assert.Equal(t, usecase.ScheduleAlreadyHandled, r)
		}
	}
	assert.Equal(t, 1, armed)
	assert.Equal(t, 1, f.sched.ArmedCount())

	f.clock.Add(24 * time.Hour)
	assert.Len(t, f.notifier.calls(), 1)
}

func TestScheduler_Declines(t *testing.T) {
	tests := []struct {
		name     string
		activity shared.ActivityDetail
	}{
		{name: "starts within the lead time", activity: activityStartingIn(42, 23*time.Hour)},
		{name: "fire time equals now", activity: activityStartingIn(42, 24*time.Hour)},
		{name: "already started", activity: activityStartingIn(42, -time.Hour)},
		{name: "no start time", activity: shared.ActivityDetail{ID: 42, Title: "Open Day"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSchedulerFixture()

			result, err := f.sched.Schedule(context.Background(), 7, tt.activity)
			require.NoError(t, err)
			assert.Equal(t, usecase.ScheduleDeclined, result)
			assert.Equal(t, 0, f.sched.ArmedCount())
			assert.Empty(t, f.clock.Pending())
			assert.False(t, f.repo.has(notification.NewReminderKey(7, 42, notification.ReminderKind24h)))
		})
	}
}

func TestScheduler_Cancel(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()
	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)

	_, err := f.sched.Schedule(ctx, 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)

	require.NoError(t, f.sched.Cancel(ctx, 7, 42, notification.ReminderKind24h))
	assert.False(t, f.sched.Armed(key.JobID()))
	assert.False(t, f.repo.has(key))
	assert.Empty(t, f.clock.Pending())

	f.clock.Add(48 * time.Hour)
	assert.Empty(t, f.notifier.calls())

	// nothing left to cancel
	assert.NoError(t, f.sched.Cancel(ctx, 7, 42, notification.ReminderKind24h))
	assert.NoError(t, f.sched.Cancel(ctx, 99, 99, notification.ReminderKind24h))
}

func TestScheduler_RecordConflictDisarms(t *testing.T) {
	f := newSchedulerFixture()
	f.repo.conflict = true

	result, err := f.sched.Schedule(context.Background(), 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleAlreadyHandled, result)
	assert.Equal(t, 0, f.sched.ArmedCount())
	assert.Empty(t, f.clock.Pending())
}

func TestScheduler_RecordFailureKeepsTimer(t *testing.T) {
	f := newSchedulerFixture()
	f.repo.failWith = assert.AnError

	failedBefore := metrics.ReminderCount("record_failed")
	result, err := f.sched.Schedule(context.Background(), 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, result)
	assert.Equal(t, 1, f.sched.ArmedCount())
	assert.Equal(t, failedBefore+1, metrics.ReminderCount("record_failed"))

	f.clock.Add(24 * time.Hour)
	assert.Len(t, f.notifier.calls(), 1)
}

func TestScheduler_ExistsFailure(t *testing.T) {
	f := newSchedulerFixture()
	f.repo.existErr = assert.AnError

	_, err := f.sched.Schedule(context.Background(), 7, activityStartingIn(42, 48*time.Hour))
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, f.sched.ArmedCount())
}

func TestScheduler_ReconcileOnStart(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()

	future := notification.NewReminderKey(7, 42, notification.ReminderKind24h)
	past := notification.NewReminderKey(8, 43, notification.ReminderKind24h)
	f.repo.records[future] = schedulerEpoch.Add(-time.Hour)
	f.repo.records[past] = schedulerEpoch.Add(-time.Hour)
	f.repo.starts[42] = schedulerEpoch.Add(30 * time.Hour)
	f.repo.starts[43] = schedulerEpoch.Add(10 * time.Hour)
	f.repo.titles[42] = "Open Day"

	require.NoError(t, f.sched.Start(ctx))
	assert.True(t, f.sched.Armed(future.JobID()))
	assert.False(t, f.sched.Armed(past.JobID()))

	// reconciling twice does not double-arm
	n, err := f.sched.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Len(t, f.clock.Pending(), 1)

	f.clock.Add(6 * time.Hour)
	calls := f.notifier.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(7), calls[0].UserID)
	assert.Equal(t, "Open Day", calls[0].Title)
}

func TestScheduler_Stop(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()

	_, err := f.sched.Schedule(ctx, 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)

	require.NoError(t, f.sched.Stop(ctx))
	assert.Equal(t, 0, f.sched.ArmedCount())
	assert.Empty(t, f.clock.Pending())

	f.clock.Add(48 * time.Hour)
	assert.Empty(t, f.notifier.calls())

	_, err = f.sched.Schedule(ctx, 8, activityStartingIn(42, 48*time.Hour))
	assert.ErrorIs(t, err, errs.ErrSchedulerStopped)
}

func TestScheduler_ArmsBeforeRecording(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockReminderRepository(ctrl)
	notifier := usecasemock.NewMockReminderNotifier(ctrl)
	clk := clock.NewMockClock(schedulerEpoch)
	sched := usecase.NewScheduler(repo, notifier, clk, config.NewTestConfig(), discardLogger())

	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)

	gomock.InOrder(
		repo.EXPECT().Exists(gomock.Any(), key).Return(false, nil),
		repo.EXPECT().Record(gomock.Any(), key, schedulerEpoch).
			DoAndReturn(func(context.Context, notification.ReminderKey, time.Time) (bool, error) {
				// the timer must already be armed when the record is written
				assert.True(t, sched.Armed(key.JobID()))
				return true, nil
			}),
	)

	result, err := sched.Schedule(context.Background(), 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, result)

	// a failed delivery is not retried
	notifier.EXPECT().
		NotifyReminder(gomock.Any(), int64(7), int64(42), "Open Day", "03.06.2025 at 10:00 UTC").
		Return(usecase.OutcomeDeliveryFailed).
		Times(1)

	clk.Add(24 * time.Hour)
	clk.Add(48 * time.Hour)
	assert.Equal(t, 0, sched.ArmedCount())
}

func TestScheduler_CancelDeleteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockReminderRepository(ctrl)
	sched := usecase.NewScheduler(repo, usecasemock.NewMockReminderNotifier(ctrl),
		clock.NewMockClock(schedulerEpoch), config.NewTestConfig(), discardLogger())

	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)
	repo.EXPECT().Delete(gomock.Any(), key).Return(false, errBoom)

	err := sched.Cancel(context.Background(), 7, 42, notification.ReminderKind24h)
	assert.ErrorIs(t, err, errBoom)
}

func TestScheduler_ArmedWithoutRecordRetriesWrite(t *testing.T) {
	f := newSchedulerFixture()
	ctx := context.Background()
	activity := activityStartingIn(42, 48*time.Hour)
	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)

	f.repo.failWith = errBoom
	first, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleArmed, first)
	assert.False(t, f.repo.has(key))

	f.repo.mu.Lock()
	f.repo.failWith = nil
	f.repo.mu.Unlock()

	second, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleAlreadyHandled, second)
	assert.True(t, f.repo.has(key), "armed timer must end up with a dedup record")
	assert.True(t, f.sched.Armed(key.JobID()))
	assert.Len(t, f.clock.Pending(), 1)

	// once written, later calls do not write again
	third, err := f.sched.Schedule(ctx, 7, activity)
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleAlreadyHandled, third)

	f.clock.Add(24 * time.Hour)
	assert.Len(t, f.notifier.calls(), 1)
}

func TestScheduler_CancelDuringRecordWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := sharedmock.NewMockReminderRepository(ctrl)
	clk := clock.NewMockClock(schedulerEpoch)
	sched := usecase.NewScheduler(repo, usecasemock.NewMockReminderNotifier(ctrl), clk, config.NewTestConfig(), discardLogger())

	ctx := context.Background()
	key := notification.NewReminderKey(7, 42, notification.ReminderKind24h)

	recorded := false
	repo.EXPECT().Exists(gomock.Any(), key).Return(false, nil)
	repo.EXPECT().Record(gomock.Any(), key, schedulerEpoch).
		DoAndReturn(func(context.Context, notification.ReminderKey, time.Time) (bool, error) {
			// Cancel arrives after the timer is armed, before the row is visible
			require.NoError(t, sched.Cancel(ctx, 7, 42, notification.ReminderKind24h))
			recorded = true
			return true, nil
		})
	// first from Cancel (nothing yet), then from Schedule cleaning up its own row
	gomock.InOrder(
		repo.EXPECT().Delete(gomock.Any(), key).Return(false, nil),
		repo.EXPECT().Delete(gomock.Any(), key).
			DoAndReturn(func(context.Context, notification.ReminderKey) (bool, error) {
				recorded = false
				return true, nil
			}),
	)

	result, err := sched.Schedule(ctx, 7, activityStartingIn(42, 48*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, usecase.ScheduleCancelled, result)
	assert.False(t, sched.Armed(key.JobID()))
	assert.False(t, recorded, "cancelled reminder must not leave a record behind")
	assert.Empty(t, clk.Pending())
}
