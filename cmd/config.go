package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orders/internal/jobs"
)

const (
	defaultHTTPPort        = "8080"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	HTTPPort            string
	LogLevel            string
	LogFormat           string
	StatsReportSchedule string
	SeedSampleOrders    bool
	ShutdownTimeout     time.Duration
}

// LoadConfig reads the configuration through getenv, usually os.Getenv after
// godotenv has populated the environment. Unset variables take their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	config := Config{
		HTTPPort:            valueOr(getenv("HTTP_PORT"), defaultHTTPPort),
		LogLevel:            valueOr(getenv("LOG_LEVEL"), "info"),
		LogFormat:           valueOr(getenv("LOG_FORMAT"), "text"),
		StatsReportSchedule: valueOr(getenv("STATS_REPORT_SCHEDULE"), jobs.DefaultStatsSchedule),
		ShutdownTimeout:     defaultShutdownTimeout,
	}

	if _, err := strconv.ParseUint(config.HTTPPort, 10, 16); err != nil {
		return Config{}, fmt.Errorf("HTTP_PORT %q is not a valid port: %w", config.HTTPPort, err)
	}

	if _, err := parseLogLevel(config.LogLevel); err != nil {
		return Config{}, err
	}

	if config.LogFormat != "text" && config.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json, got %q", config.LogFormat)
	}

	if v := getenv("SEED_SAMPLE_ORDERS"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("SEED_SAMPLE_ORDERS %q is not a boolean: %w", v, err)
		}
		config.SeedSampleOrders = seed
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT %q is not a duration: %w", v, err)
		}
		config.ShutdownTimeout = timeout
	}

	return config, nil
}

// NewLogger builds the application logger from LogLevel and LogFormat.
func NewLogger(config Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(config.LogLevel)
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: level}
	if config.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, options)), nil
	}
	return slog.New(slog.NewTextHandler(w, options)), nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q is not a log level: %w", s, err)
	}
	return level, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
