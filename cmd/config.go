package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"foodbot/internal/adapters/out/postgres"
	"foodbot/internal/core/domain/services"
	"foodbot/internal/pkg/errs"
)

// Config holds the raw settings read from the environment. Parsing happens
// in the accessor methods so a bad value is reported with its variable name.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	ShopOpenDays string
	ShopOpensAt  string
	ShopClosesAt string
	ShopTimezone string

	CartIdleTTL       string
	CartSweepInterval string

	LogLevel string
}

// Defaults maps every environment variable to the value used when it is
// unset or empty.
var Defaults = map[string]string{
	"HTTP_PORT":           "8080",
	"DB_HOST":             "localhost",
	"DB_PORT":             "5432",
	"DB_USER":             "postgres",
	"DB_PASSWORD":         "",
	"DB_NAME":             "foodbot",
	"DB_SSLMODE":          "disable",
	"SHOP_OPEN_DAYS":      "mon,tue,sun",
	"SHOP_OPENS_AT":       "08:00",
	"SHOP_CLOSES_AT":      "22:00",
	"SHOP_TIMEZONE":       "",
	"CART_IDLE_TTL":       "0",
	"CART_SWEEP_INTERVAL": "1m",
	"LOG_LEVEL":           "info",
}

// LoadConfig reads every setting through lookup, falling back to Defaults.
func LoadConfig(lookup func(key string) string) Config {
	get := func(key string) string {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			return v
		}
		return Defaults[key]
	}

	return Config{
		HTTPPort:          get("HTTP_PORT"),
		DBHost:            get("DB_HOST"),
		DBPort:            get("DB_PORT"),
		DBUser:            get("DB_USER"),
		DBPassword:        get("DB_PASSWORD"),
		DBName:            get("DB_NAME"),
		DBSslMode:         get("DB_SSLMODE"),
		ShopOpenDays:      get("SHOP_OPEN_DAYS"),
		ShopOpensAt:       get("SHOP_OPENS_AT"),
		ShopClosesAt:      get("SHOP_CLOSES_AT"),
		ShopTimezone:      get("SHOP_TIMEZONE"),
		CartIdleTTL:       get("CART_IDLE_TTL"),
		CartSweepInterval: get("CART_SWEEP_INTERVAL"),
		LogLevel:          get("LOG_LEVEL"),
	}
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return postgres.DSN(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// BusinessHours parses the shop schedule.
func (c Config) BusinessHours() (services.BusinessHours, error) {
	location := time.Local
	if c.ShopTimezone != "" {
		loc, err := time.LoadLocation(c.ShopTimezone)
		if err != nil {
			return services.BusinessHours{}, errs.NewValueIsInvalidErrorWithCause("SHOP_TIMEZONE", err)
		}
		location = loc
	}

	days, err := services.ParseWeekdays(c.ShopOpenDays)
	if err != nil {
		return services.BusinessHours{}, fmt.Errorf("SHOP_OPEN_DAYS: %w", err)
	}
	opensAt, err := services.ParseClock(c.ShopOpensAt)
	if err != nil {
		return services.BusinessHours{}, fmt.Errorf("SHOP_OPENS_AT: %w", err)
	}
	closesAt, err := services.ParseClock(c.ShopClosesAt)
	if err != nil {
		return services.BusinessHours{}, fmt.Errorf("SHOP_CLOSES_AT: %w", err)
	}

	return services.NewBusinessHours(days, opensAt, closesAt, location)
}

// IdleTTL returns how long an untouched cart is kept. Zero disables expiry.
func (c Config) IdleTTL() (time.Duration, error) {
	return parseDuration("CART_IDLE_TTL", c.CartIdleTTL)
}

// SweepInterval returns how often idle carts are looked for.
func (c Config) SweepInterval() (time.Duration, error) {
	return parseDuration("CART_SWEEP_INTERVAL", c.CartSweepInterval)
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

func parseDuration(key, raw string) (time.Duration, error) {
	if raw == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	if d < 0 {
		return 0, errs.NewValueIsOutOfRangeError(key, raw, "0", "unbounded")
	}
	return d, nil
}
