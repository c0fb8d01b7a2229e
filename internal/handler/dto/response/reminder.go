package response

import (
	"hirebot/internal/domain/notification"
	"hirebot/internal/usecase"
)

type ReminderResponse struct {
	JobID      string `json:"job_id"`
	UserID     int64  `json:"user_id"`
	ActivityID int64  `json:"activity_id"`
	Result     string `json:"result"`
}

func FromScheduleResult(key notification.ReminderKey, result usecase.ScheduleResult) ReminderResponse {
	return ReminderResponse{
		JobID:      key.JobID(),
		UserID:     key.UserID,
		ActivityID: key.ActivityID,
		Result:     string(result),
	}
}
