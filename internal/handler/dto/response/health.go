package response

import "hirebot/internal/usecase"

type HealthResponse struct {
	Status         string `json:"status"`
	Listener       string `json:"listener"`
	ArmedReminders int    `json:"armed_reminders"`
}

func FromHealth(h usecase.Health) HealthResponse {
	status := "ok"
	if !h.Healthy() {
		status = "degraded"
	}
	return HealthResponse{
		Status:         status,
		Listener:       h.Listener.String(),
		ArmedReminders: h.ArmedReminders,
	}
}
