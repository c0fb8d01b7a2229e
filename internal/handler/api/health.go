package api

import (
	"net/http"

	resdto "hirebot/internal/handler/dto/response"
	"hirebot/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthReporter interface {
	Health() usecase.Health
}

type HealthHandler struct {
	reporter HealthReporter
}

func NewHealthHandler(reporter HealthReporter) *HealthHandler {
	return &HealthHandler{reporter: reporter}
}

// Check answers 503 while the listener is not subscribed.
func (h *HealthHandler) Check(c *gin.Context) {
	health := h.reporter.Health()
	code := http.StatusOK
	if !health.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resdto.FromHealth(health))
}
