// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-tales/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "TALES_"

// Config holds all configuration for the server
type Config struct {
	Port      int    `env:"PORT" envDefault:"50051"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Redis     RedisConfig     `envPrefix:"REDIS_"`
	Rooms     RoomConfig      `envPrefix:"ROOM_"`
	Journal   JournalConfig   `envPrefix:"JOURNAL_"`
	Gemini    GeminiConfig    `envPrefix:"GEMINI_"`
	Auth      AuthConfig      `envPrefix:"AUTH_"`
	Telemetry TelemetryConfig `envPrefix:"OTEL_"`
}

// RedisConfig selects the room store. An empty URL keeps rooms in memory.
type RedisConfig struct {
	URL      string `env:"URL"`
	PoolSize int    `env:"POOL_SIZE" envDefault:"10"`
}

// RoomConfig tunes room lifetime and watching
type RoomConfig struct {
	TTL           time.Duration `env:"TTL" envDefault:"24h"`
	PollInterval  time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	JanitorPeriod time.Duration `env:"JANITOR_PERIOD" envDefault:"1m"`
}

// JournalConfig locates the SQLite turn journal
type JournalConfig struct {
	Path string `env:"PATH" envDefault:":memory:"`
}

// GeminiConfig configures the narrator
type GeminiConfig struct {
	APIKey     string        `env:"API_KEY"`
	BaseURL    string        `env:"BASE_URL"`
	TextModel  string        `env:"TEXT_MODEL"`
	ImageModel string        `env:"IMAGE_MODEL"`
	Language   string        `env:"LANGUAGE"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"60s"`
}

// AuthConfig configures session tokens
type AuthConfig struct {
	Secret   string        `env:"SECRET"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// TelemetryConfig turns on OTLP tracing when Endpoint is set
type TelemetryConfig struct {
	Endpoint    string `env:"ENDPOINT"`
	Enabled     bool   `env:"ENABLED" envDefault:"true"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"rpg-tales"`
}

// Load reads the given .env files when present, then the environment.
// Variables already set in the environment win over .env files.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", file)
		}
		slog.Debug("loaded env file", "file", file)
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("TALES_PORT", c.Port, 1, 65535, vb)
	errors.ValidateOneOf("TALES_LOG_FORMAT", strings.ToLower(c.LogFormat), []string{"text", "json"}, vb)
	errors.ValidateRequired("TALES_GEMINI_API_KEY", c.Gemini.APIKey, vb)
	if len(c.Auth.Secret) < 16 {
		vb.Field("TALES_AUTH_SECRET", "must be at least 16 characters")
	}
	if c.Rooms.TTL <= 0 {
		vb.Field("TALES_ROOM_TTL", "must be positive")
	}
	if c.Rooms.PollInterval <= 0 {
		vb.Field("TALES_ROOM_POLL_INTERVAL", "must be positive")
	}
	if c.Rooms.JanitorPeriod <= 0 {
		vb.Field("TALES_ROOM_JANITOR_PERIOD", "must be positive")
	}
	if c.Gemini.Timeout <= 0 {
		vb.Field("TALES_GEMINI_TIMEOUT", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// NewLogger builds the process logger described by the config
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
