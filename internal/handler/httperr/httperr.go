package httperr

import (
	"errors"

	"hirebot/internal/infra"
	"hirebot/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for the logging middleware
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = Code(err)
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Code maps known failures to a stable machine-readable code.
func Code(err error) string {
	switch {
	case errors.Is(err, errs.ErrSchedulingDeclined):
		return "scheduling_declined"
	case errors.Is(err, errs.ErrSchedulerStopped):
		return "scheduler_stopped"
	case errors.Is(err, errs.ErrScheduleCancelled):
		return "schedule_cancelled"
	case infra.IsKind(err, infra.KindNotFound):
		return "not_found"
	case infra.IsKind(err, infra.KindDBFailure):
		return "database_failure"
	default:
		return ""
	}
}
