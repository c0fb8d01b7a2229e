package api

import (
	"context"
	"errors"
	"net/http"

	"hirebot/internal/domain/notification"
	reqdto "hirebot/internal/handler/dto/request"
	resdto "hirebot/internal/handler/dto/response"
	"hirebot/internal/handler/httperr"
	"hirebot/internal/infra"
	"hirebot/internal/pkg/errs"
	"hirebot/internal/usecase"
	"hirebot/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// ActivityLookup is the slice of the read store the reminder endpoints need.
type ActivityLookup interface {
	ActivityDetail(ctx context.Context, activityID int64) (*shared.ActivityDetail, error)
}

type ReminderHandler struct {
	scheduler  usecase.ReminderScheduler
	activities ActivityLookup
}

func NewReminderHandler(scheduler usecase.ReminderScheduler, activities ActivityLookup) *ReminderHandler {
	return &ReminderHandler{scheduler: scheduler, activities: activities}
}

// Schedule arms the 24h reminder for one applicant of an activity.
func (h *ReminderHandler) Schedule(c *gin.Context) {
	var req reqdto.ScheduleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	activity, err := h.activities.ActivityDetail(c.Request.Context(), req.ActivityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Activity not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load activity", nil)
		return
	}

	result, err := h.scheduler.Schedule(c.Request.Context(), req.UserID, *activity)
	if err != nil {
		if errors.Is(err, errs.ErrSchedulerStopped) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Scheduler is shutting down", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to schedule reminder", nil)
		return
	}

	key := notification.NewReminderKey(req.UserID, req.ActivityID, notification.ReminderKind24h)
	resp := resdto.FromScheduleResult(key, result)

	if result == usecase.ScheduleDeclined {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errs.ErrSchedulingDeclined, "Reminder window already passed", resp)
		return
	}
	if result == usecase.ScheduleCancelled {
		httperr.AbortWithError(c, http.StatusConflict, errs.ErrScheduleCancelled, "Reminder was cancelled concurrently", resp)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

// Cancel removes an armed reminder and its record. Missing reminders are not an error.
func (h *ReminderHandler) Cancel(c *gin.Context) {
	var uri reqdto.CancelReminderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reminder id", nil)
		return
	}

	kind, err := notification.ParseReminderKind(c.DefaultQuery("kind", string(notification.ReminderKind24h)))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown reminder kind", nil)
		return
	}

	if err := h.scheduler.Cancel(c.Request.Context(), uri.UserID, uri.ActivityID, kind); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reminder", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
