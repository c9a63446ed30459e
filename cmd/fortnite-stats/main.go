package main

import (
	"context"
	"errors"
	"fortnite-stats/internal/cli"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/constants"
	fxmodules "fortnite-stats/internal/fx"
	"fortnite-stats/internal/render"
	"os"

	"go.uber.org/dig"
	"go.uber.org/fx"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], render.OSStreams()))
}

func run(ctx context.Context, args []string, streams render.Streams) int {
	var runner *cli.Runner

	app := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Supply(streams),
		fx.Populate(&runner),
	)
	if err := app.Err(); err != nil {
		fallback := render.NewPresenter(&config.Config{NoColor: os.Getenv("NO_COLOR") != ""}, streams)
		fallback.Failure(startupCause(err))
		return cli.ExitFailure
	}

	if err := app.Start(ctx); err != nil {
		return runner.Report(err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return runner.Report(runner.Run(ctx, args))
}

// startupCause strips container wrapping so the user sees the real problem.
func startupCause(err error) error {
	var cfgErr *config.Error
	if errors.As(err, &cfgErr) {
		return cfgErr
	}
	return dig.RootCause(err)
}
