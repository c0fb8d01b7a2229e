package messenger

import (
	"context"
	"log/slog"
)

// LogMessenger only logs outgoing messages. Used when no bot token is configured.
type LogMessenger struct {
	logger *slog.Logger
}

func NewLogMessenger(logger *slog.Logger) *LogMessenger {
	return &LogMessenger{logger: logger.With(slog.String("component", "log_messenger"))}
}

func (m *LogMessenger) Send(_ context.Context, recipientID int64, text string) error {
	m.logger.Info("outgoing message", "user_id", recipientID, "text", text)
	return nil
}
