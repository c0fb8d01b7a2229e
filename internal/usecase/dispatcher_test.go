//go:build unit

package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"hirebot/internal/domain/notification"
	"hirebot/internal/infra"
	"hirebot/internal/infra/metrics"
	"hirebot/internal/pkg/config"
	"hirebot/internal/usecase"
	"hirebot/internal/usecase/shared"
	sharedmock "hirebot/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSender *sharedmock.MockSender
	mockReads  *sharedmock.MockNotificationReadStore
	dispatcher *usecase.Dispatcher
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = sharedmock.NewMockSender(s.mockCtrl)
	s.mockReads = sharedmock.NewMockNotificationReadStore(s.mockCtrl)
	s.dispatcher = usecase.NewDispatcher(s.mockSender, s.mockReads, config.NewTestConfig(), discardLogger())
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

// ================================================================================
// Application status updates
// ================================================================================

func (s *DispatcherTestSuite) TestDispatchApplicationUpdate() {
	ctx := context.Background()

	s.Run("delivers the rendered status to the applicant", func() {
		detail := &shared.ApplicationDetail{
			ApplicationID: 5,
			UserID:        77,
			Title:         "Backend Intern",
			Status:        notification.StatusHired,
		}
		s.mockReads.EXPECT().ApplicationDetail(gomock.Any(), int64(5)).Return(detail, nil).Times(1)

		var got string
		s.mockSender.EXPECT().Send(gomock.Any(), int64(77), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, text string) error {
				got = text
				return nil
			}).Times(1)

		outcome := s.dispatcher.DispatchApplicationUpdate(ctx, 5)
		s.Equal(usecase.OutcomeDelivered, outcome)
		s.Equal(notification.RenderStatusChange("Backend Intern", notification.StatusHired, nil), got)
	})

	s.Run("vanished application is skipped", func() {
		s.mockReads.EXPECT().ApplicationDetail(gomock.Any(), int64(5)).
			Return(nil, infra.WrapRepoErr("application not found", nil, infra.KindNotFound)).Times(1)

		s.Equal(usecase.OutcomeDetailMissing, s.dispatcher.DispatchApplicationUpdate(ctx, 5))
	})

	s.Run("lookup failure is reported", func() {
		s.mockReads.EXPECT().ApplicationDetail(gomock.Any(), int64(5)).
			Return(nil, infra.WrapRepoErr("failed to get application detail", errBoom)).Times(1)

		s.Equal(usecase.OutcomeLookupFailed, s.dispatcher.DispatchApplicationUpdate(ctx, 5))
	})

	s.Run("incomplete detail is skipped", func() {
		s.mockReads.EXPECT().ApplicationDetail(gomock.Any(), int64(5)).
			Return(&shared.ApplicationDetail{ApplicationID: 5, Status: notification.StatusOffer}, nil).Times(1)

		s.Equal(usecase.OutcomeDetailMissing, s.dispatcher.DispatchApplicationUpdate(ctx, 5))
	})

	s.Run("delivery failure is attempted once and not retried", func() {
		detail := &shared.ApplicationDetail{ApplicationID: 5, UserID: 77, Title: "Backend Intern", Status: notification.StatusRejected}
		s.mockReads.EXPECT().ApplicationDetail(gomock.Any(), int64(5)).Return(detail, nil).Times(1)
		s.mockSender.EXPECT().Send(gomock.Any(), int64(77), gomock.Any()).Return(errBoom).Times(1)

		before := metrics.DispatchCount("status_change", "delivery_failed")
		s.Equal(usecase.OutcomeDeliveryFailed, s.dispatcher.DispatchApplicationUpdate(ctx, 5))
		s.Equal(before+1, metrics.DispatchCount("status_change", "delivery_failed"))
	})
}

// ================================================================================
// Activity time changes
// ================================================================================

func (s *DispatcherTestSuite) TestDispatchActivityUpdate() {
	ctx := context.Background()
	start := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	activity := &shared.ActivityDetail{ID: 42, Title: "Open Day", StartTime: &start, EndTime: &end}

	s.Run("every recipient is attempted even when one fails", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).Return(activity, nil).Times(1)
		s.mockReads.EXPECT().RecipientsForActivity(gomock.Any(), int64(42)).Return([]int64{1, 2, 3}, nil).Times(1)

		var mu sync.Mutex
		attempted := map[int64]string{}
		s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id int64, text string) error {
				mu.Lock()
				attempted[id] = text
				mu.Unlock()
				if id == 2 {
					return errBoom
				}
				return nil
			}).Times(3)

		outcome := s.dispatcher.DispatchActivityUpdate(ctx, 42)
		s.Equal(usecase.OutcomeDeliveryFailed, outcome)
		s.Len(attempted, 3)
		want := notification.RenderActivityTimeChange("Open Day", 42, start, end, time.UTC)
		for _, text := range attempted {
			s.Equal(want, text)
		}
	})

	s.Run("all delivered", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).Return(activity, nil).Times(1)
		s.mockReads.EXPECT().RecipientsForActivity(gomock.Any(), int64(42)).Return([]int64{1, 2}, nil).Times(1)
		s.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		s.Equal(usecase.OutcomeDelivered, s.dispatcher.DispatchActivityUpdate(ctx, 42))
	})

	s.Run("no recipients", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).Return(activity, nil).Times(1)
		s.mockReads.EXPECT().RecipientsForActivity(gomock.Any(), int64(42)).Return(nil, nil).Times(1)

		s.Equal(usecase.OutcomeNoRecipients, s.dispatcher.DispatchActivityUpdate(ctx, 42))
	})

	s.Run("missing times are skipped", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).
			Return(&shared.ActivityDetail{ID: 42, Title: "Open Day", StartTime: &start}, nil).Times(1)

		s.Equal(usecase.OutcomeDetailMissing, s.dispatcher.DispatchActivityUpdate(ctx, 42))
	})

	s.Run("vanished activity is skipped", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).
			Return(nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)).Times(1)

		s.Equal(usecase.OutcomeDetailMissing, s.dispatcher.DispatchActivityUpdate(ctx, 42))
	})

	s.Run("recipient lookup failure", func() {
		s.mockReads.EXPECT().ActivityDetail(gomock.Any(), int64(42)).Return(activity, nil).Times(1)
		s.mockReads.EXPECT().RecipientsForActivity(gomock.Any(), int64(42)).Return(nil, errBoom).Times(1)

		s.Equal(usecase.OutcomeLookupFailed, s.dispatcher.DispatchActivityUpdate(ctx, 42))
	})
}

// ================================================================================
// Reminders
// ================================================================================

func (s *DispatcherTestSuite) TestNotifyReminder() {
	var got string
	s.mockSender.EXPECT().Send(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, text string) error {
			got = text
			return nil
		}).Times(1)

	outcome := s.dispatcher.NotifyReminder(context.Background(), 7, 42, "Open Day", "03.06.2025 at 10:00 UTC")
	s.Equal(usecase.OutcomeDelivered, outcome)
	s.Equal(notification.RenderReminder("Open Day", 42, "03.06.2025 at 10:00 UTC"), got)
}
