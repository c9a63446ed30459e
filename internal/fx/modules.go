package fx

import (
	"fortnite-stats/internal/api"
	"fortnite-stats/internal/cli"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/logger"
	"fortnite-stats/internal/render"
	"fortnite-stats/internal/service"

	"go.uber.org/fx"
)

func ProvideStatsClient(c *api.Client) service.StatsClient {
	return c
}

func ProvideStatsLookup(s *service.StatsService) cli.StatsLookup {
	return s
}

// Module needs a render.Streams supplied by the caller.
var Module = fx.Options(
	logger.Module,
	fx.Provide(config.Load),
	// api client
	fx.Provide(api.NewClient),
	fx.Provide(ProvideStatsClient),
	// svc
	fx.Provide(service.NewStatsService),
	fx.Provide(ProvideStatsLookup),
	// output
	fx.Provide(render.NewPresenter),
	fx.Provide(cli.NewRunner),
)
