package service

import (
	"context"
	"fmt"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
	"fortnite-stats/internal/stats"

	"github.com/rs/zerolog"
)

// StatsClient is the upstream surface the service needs; *api.Client
// satisfies it.
type StatsClient interface {
	GetSummaryStats(ctx context.Context, q domain.StatsQuery) (stats.Payload, error)
	GetCounterStats(ctx context.Context, username string) (stats.Payload, error)
}

type StatsService struct {
	client StatsClient
	shape  domain.Shape
	logger zerolog.Logger
}

func NewStatsService(client StatsClient, cfg *config.Config, logger zerolog.Logger) *StatsService {
	return &StatsService{client: client, shape: cfg.Shape(), logger: logger}
}

func (s *StatsService) Lookup(ctx context.Context, lookup domain.Lookup) (*domain.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	logger := s.loggerFrom(ctx)

	logger.Info().
		Str("identifier", lookup.Identifier).
		Str("account_type", string(lookup.AccountType)).
		Bool("account_id", lookup.IsAccountID).
		Str("shape", s.shape.String()).
		Msg("fetching stats")

	var (
		payload stats.Payload
		window  domain.TimeWindow
		err     error
	)
	if s.shape == domain.ShapeCounter {
		payload, err = s.fetchCounters(ctx, lookup)
	} else {
		payload, window, err = s.fetchSeasonOrLifetime(ctx, lookup)
	}
	if err != nil {
		logger.Error().Err(err).Str("identifier", lookup.Identifier).Msg("failed to fetch stats")
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}

	logger.Debug().Msg("stats response received")

	summary, err := stats.Detect(payload, s.shape).Normalize(payload)
	if err != nil {
		logger.Warn().Err(err).Str("identifier", lookup.Identifier).Msg("no stats in response")
		return nil, err
	}
	summary.TimeWindow = window

	logger.Info().
		Str("name", summary.Name).
		Int("modes", len(summary.Modes)).
		Str("time_window", string(window)).
		Msg("stats normalized")
	return summary, nil
}

// fetchSeasonOrLifetime asks for the current season first and retries once
// with the lifetime window when the season bucket is empty.
func (s *StatsService) fetchSeasonOrLifetime(ctx context.Context, lookup domain.Lookup) (stats.Payload, domain.TimeWindow, error) {
	q := domain.StatsQuery{Lookup: lookup, TimeWindow: domain.TimeWindowSeason}

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	payload, err := s.client.GetSummaryStats(apiCtx, q)
	if err != nil {
		return nil, "", err
	}
	if !stats.NeedsLifetimeFallback(payload) {
		return payload, q.TimeWindow, nil
	}

	s.loggerFrom(ctx).Info().Msg("no season stats found, trying lifetime stats")
	q.TimeWindow = domain.TimeWindowLifetime

	lifetimeCtx, lifetimeCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer lifetimeCancel()

	payload, err = s.client.GetSummaryStats(lifetimeCtx, q)
	if err != nil {
		return nil, "", err
	}
	return payload, q.TimeWindow, nil
}

func (s *StatsService) fetchCounters(ctx context.Context, lookup domain.Lookup) (stats.Payload, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	return s.client.GetCounterStats(apiCtx, lookup.Identifier)
}

// loggerFrom prefers the lookup-scoped logger carried by ctx.
func (s *StatsService) loggerFrom(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}
