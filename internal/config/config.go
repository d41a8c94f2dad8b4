package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	HTTPAddr           string `env:"HTTP_ADDR" env-default:":8080"`
	AppBaseURL         string `env:"APP_BASE_URL" env-default:"http://localhost:3000"`
	LineChannelToken   string `env:"LINE_CHANNEL_ACCESS_TOKEN"`
	LineAPIEndpoint    string `env:"LINE_API_ENDPOINT" env-default:"https://api.line.me"`
	MaintenanceMode    string `env:"MAINTENANCE_MODE"`
	NotifyRecipientIDs string `env:"NOTIFY_RECIPIENT_IDS"`
	DatabaseURL        string `env:"DATABASE_URL"`
	RedisAddr          string `env:"REDIS_ADDR"`
	NATSURL            string `env:"NATS_URL"`
	PushTimeout        string `env:"PUSH_TIMEOUT" env-default:"10s"`
	OTLPEndpoint       string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	RateLimitRPS       int    `env:"RATE_LIMIT_RPS" env-default:"20"`
	LogLevel           string `env:"LOG_LEVEL" env-default:"info"`
}

func Load() (*Config, error) {
	var cfg Config

	// ReadConfig reads from ENV and optionally from a file if needed.
	// We use ReadEnv to focus strictly on Environment Variables as per current project architecture.
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	return &cfg, nil
}

// PushTimeoutDuration parses PUSH_TIMEOUT, falling back to 10s on junk.
func (c *Config) PushTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.PushTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
