package components

import (
	"log/slog"

	"hirebot/internal/infra/messenger"
	"hirebot/internal/pkg/config"
	"hirebot/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessengerModule = fx.Module("messenger",
	fx.Provide(
		NewSender,
	),
)

// NewSender falls back to logging messages when no bot token is configured.
func NewSender(cfg config.Config, logger *slog.Logger) (shared.Sender, error) {
	if cfg.Discord.BotToken == "" {
		logger.Warn("DISCORD_BOT_TOKEN not set, outgoing messages will only be logged")
		return messenger.NewLogMessenger(logger), nil
	}
	return messenger.NewDiscordMessenger(cfg.Discord.BotToken, logger)
}
