package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port            string        `env:"PORT"             envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	DBHost       string `env:"DB_HOST"        envDefault:"localhost"`
	DBUser       string `env:"DB_USER"        envDefault:"payroll"`
	DBPassword   string `env:"DB_PASSWORD"    envDefault:"payroll"`
	DBName       string `env:"DB_NAME"        envDefault:"payroll"`
	DBPort       string `env:"DB_PORT"        envDefault:"5432"`
	DBSSLMode    string `env:"DB_SSLMODE"     envDefault:"disable"`
	DBMaxRetries int    `env:"DB_MAX_RETRIES" envDefault:"5"`

	RedisAddr   string `env:"REDIS_ADDR"   envDefault:"localhost:6379"`
	KafkaBroker string `env:"KAFKA_BROKER" envDefault:"localhost:9092"`

	JWTSecret string `env:"JWT_SECRET"`

	OutboxPollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL" envDefault:"5s"`
	OutboxBatchSize    int           `env:"OUTBOX_BATCH_SIZE"    envDefault:"50"`

	PayRateLimit float64 `env:"PAY_RATE_LIMIT" envDefault:"2"`
	PayRateBurst int     `env:"PAY_RATE_BURST" envDefault:"5"`

	DefaultDailyRate string `env:"DEFAULT_DAILY_RATE" envDefault:"100000"`
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.DailyRate(); err != nil {
		return nil, err
	}
	if cfg.DBMaxRetries < 1 {
		cfg.DBMaxRetries = 1
	}

	return cfg, nil
}

// DailyRate is the fallback rate used when app_settings holds no usable value.
func (c *Config) DailyRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.DefaultDailyRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("DEFAULT_DAILY_RATE %q: %w", c.DefaultDailyRate, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("DEFAULT_DAILY_RATE must not be negative")
	}
	return rate, nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
