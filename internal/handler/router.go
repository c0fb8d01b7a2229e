package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"hirebot/internal/handler/api"
	"hirebot/internal/handler/middleware"
	"hirebot/internal/infra/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, logger *slog.Logger, healthHandler *api.HealthHandler, reminderHandler *api.ReminderHandler) {
	setupMiddleware(engine, logger)
	setupRoutes(engine, healthHandler, reminderHandler)
}

func setupMiddleware(engine *gin.Engine, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, healthHandler *api.HealthHandler, reminderHandler *api.ReminderHandler) {
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/health", Handler: healthHandler.Check},
		{Method: http.MethodGet, Path: "/metrics", Handler: gin.WrapH(metrics.Handler())},
	})

	internal := engine.Group("/internal")
	{
		reminders := internal.Group("/reminders")
		addRoutes(reminders, []route{
			{Method: http.MethodPost, Path: "", Handler: reminderHandler.Schedule},
			{Method: http.MethodDelete, Path: "/:user_id/:activity_id", Handler: reminderHandler.Cancel},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
