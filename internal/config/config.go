package config

import (
	"errors"
	"fmt"
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var ErrMissingAPIKey = errors.New("FORTNITE_API_KEY environment variable is required")

// Error marks a failure to load configuration, so callers can find it
// beneath whatever wrapping the dependency container adds.
type Error struct {
	Err error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

type Config struct {
	APIKey   string
	Variant  string
	StatsURL string
	LogLevel string
	NoColor  bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		APIKey:   getEnv("FORTNITE_API_KEY", ""),
		Variant:  getEnv("FORTNITE_API_VARIANT", constants.VariantSummary),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		NoColor:  os.Getenv("NO_COLOR") != "",
	}

	if cfg.APIKey == "" {
		return nil, &Error{Err: ErrMissingAPIKey}
	}

	switch cfg.Variant {
	case constants.VariantSummary:
		cfg.StatsURL = getEnv("FORTNITE_API_URL", constants.SummaryStatsURL)
	case constants.VariantCounter:
		cfg.StatsURL = getEnv("FORTNITE_API_URL", constants.CounterStatsURL)
	default:
		return nil, &Error{Err: fmt.Errorf("FORTNITE_API_VARIANT must be %q or %q, got %q",
			constants.VariantSummary, constants.VariantCounter, cfg.Variant)}
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, &Error{Err: fmt.Errorf("invalid LOG_LEVEL: %w", err)}
	}

	logger.Debug().
		Str("variant", cfg.Variant).
		Str("stats_url", cfg.StatsURL).
		Str("log_level", cfg.LogLevel).
		Bool("no_color", cfg.NoColor).
		Msg("configuration loaded")

	return cfg, nil
}

// Shape is the payload shape the configured variant returns.
func (c *Config) Shape() domain.Shape {
	if c.Variant == constants.VariantCounter {
		return domain.ShapeCounter
	}
	return domain.ShapeSummary
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
