package messenger

import (
	"context"
	"log/slog"
	"strconv"
	"unicode/utf8"

	"hirebot/internal/pkg/errs"

	"github.com/bwmarrin/discordgo"
)

// Discord rejects message content longer than this many characters.
const maxMessageLength = 2000

type discordAPI interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordMessenger delivers notifications as direct messages from the bot account.
type DiscordMessenger struct {
	api    discordAPI
	logger *slog.Logger
}

func NewDiscordMessenger(token string, logger *slog.Logger) (*DiscordMessenger, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, errs.Wrap(err, "create discord session")
	}
	return newDiscordMessenger(session, logger), nil
}

func newDiscordMessenger(api discordAPI, logger *slog.Logger) *DiscordMessenger {
	return &DiscordMessenger{
		api:    api,
		logger: logger.With(slog.String("component", "discord_messenger")),
	}
}

func (m *DiscordMessenger) Send(ctx context.Context, recipientID int64, text string) error {
	dm, err := m.api.UserChannelCreate(strconv.FormatInt(recipientID, 10), discordgo.WithContext(ctx))
	if err != nil {
		return errs.Wrap(err, "open direct message channel")
	}

	_, err = m.api.ChannelMessageSendComplex(dm.ID, &discordgo.MessageSend{
		Content: truncate(text, maxMessageLength),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return errs.Wrap(err, "send direct message")
	}

	m.logger.Debug("direct message sent", "user_id", recipientID, "channel_id", dm.ID)
	return nil
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}
