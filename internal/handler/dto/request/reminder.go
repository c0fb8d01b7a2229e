package request

type ScheduleReminderRequest struct {
	UserID     int64 `json:"user_id" binding:"required,gt=0"`
	ActivityID int64 `json:"activity_id" binding:"required,gt=0"`
}

type CancelReminderURI struct {
	UserID     int64 `uri:"user_id" binding:"required,gt=0"`
	ActivityID int64 `uri:"activity_id" binding:"required,gt=0"`
}
