package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"github.com/SyedMohamedHyder/BankAccount/internal/domain"
)

// Config holds the environment-driven settings for bankctl.
type Config struct {
	InterestRate    string `env:"INTEREST_RATE" envDefault:"0.05"`
	TimeZoneName    string `env:"TZ_NAME" envDefault:"UTC"`
	TimeZoneHours   int    `env:"TZ_OFFSET_HOURS" envDefault:"0"`
	TimeZoneMinutes int    `env:"TZ_OFFSET_MINUTES" envDefault:"0"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// Rate parses the configured interest rate.
func (c *Config) Rate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.InterestRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: bad INTEREST_RATE %q: %w", c.InterestRate, err)
	}
	return rate, nil
}

// TimeZone builds the configured account timezone.
func (c *Config) TimeZone() (domain.TimeZone, error) {
	return domain.NewTimeZone(c.TimeZoneName, c.TimeZoneHours, c.TimeZoneMinutes)
}
