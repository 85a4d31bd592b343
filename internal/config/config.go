package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port               string
	ContentPath        string
	Timezone           string
	PhoneRegion        string
	StatusRefresh      time.Duration
	JWTSecret          string
	TokenTTL           time.Duration
	EditorEmail        string
	EditorPasswordHash string
	RateLimitLogin     RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		ContentPath:        os.Getenv("SITE_CONTENT_PATH"),
		Timezone:           getEnv("SITE_TIMEZONE", "Africa/Johannesburg"),
		PhoneRegion:        strings.ToUpper(getEnv("SITE_PHONE_REGION", "ZA")),
		StatusRefresh:      parseDuration(getEnv("STATUS_REFRESH", "60s"), time.Minute),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:           parseDuration(getEnv("JWT_TTL", "12h"), 12*time.Hour),
		EditorEmail:        strings.ToLower(strings.TrimSpace(os.Getenv("EDITOR_EMAIL"))),
		EditorPasswordHash: os.Getenv("EDITOR_PASSWORD_HASH"),
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid SITE_TIMEZONE value: %w", err)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_LOGIN", "5/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_LOGIN value: %w", err)
	}
	cfg.RateLimitLogin = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
