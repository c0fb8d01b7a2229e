package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, credentials)
// - default: Values common across all environments (channels, backoff, lead time)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Log       LogConfig
	Listener  ListenerConfig
	Scheduler SchedulerConfig
	Dispatch  DispatchConfig
	Discord   DiscordConfig
}

type ServerConfig struct {
	Port string `envconfig:"SERVER_PORT" default:"8080"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Moscow"`

	// Applies the embedded schema and notify triggers on startup.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Format         string `envconfig:"LOG_FORMAT" default:"json"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

type ListenerConfig struct {
	StatusChannel    string        `envconfig:"LISTENER_STATUS_CHANNEL" default:"application_updates"`
	ActivityChannel  string        `envconfig:"LISTENER_ACTIVITY_CHANNEL" default:"activity_updates"`
	ReconnectBackoff time.Duration `envconfig:"LISTENER_RECONNECT_BACKOFF" default:"30s"`
}

type SchedulerConfig struct {
	// Zone used when rendering activity start times in reminder text.
	TimeZone         string `envconfig:"SCHEDULER_TIMEZONE" default:"Europe/Moscow"`
	ReconcileOnStart bool   `envconfig:"SCHEDULER_RECONCILE_ON_START" default:"true"`
}

type DispatchConfig struct {
	DrainTimeout time.Duration `envconfig:"DISPATCH_DRAIN_TIMEOUT" default:"10s"`
}

type DiscordConfig struct {
	// Empty token selects the log-only messenger.
	BotToken string `envconfig:"DISCORD_BOT_TOKEN"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c SchedulerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433", // Test DB port
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			TimeZone:    "UTC",
			AutoMigrate: true,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Format:         "text",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Listener: ListenerConfig{
			StatusChannel:    "application_updates",
			ActivityChannel:  "activity_updates",
			ReconnectBackoff: 100 * time.Millisecond,
		},
		Scheduler: SchedulerConfig{
			TimeZone:         "UTC",
			ReconcileOnStart: true,
		},
		Dispatch: DispatchConfig{
			DrainTimeout: time.Second,
		},
	}
}
