package cli

import (
	"context"
	"fortnite-stats/internal/domain"
	"fortnite-stats/internal/input"
	"fortnite-stats/internal/render"
	"fortnite-stats/internal/tracing"

	"github.com/rs/zerolog"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

type StatsLookup interface {
	Lookup(ctx context.Context, lookup domain.Lookup) (*domain.Summary, error)
}

type Runner struct {
	stats     StatsLookup
	presenter *render.Presenter
	logger    zerolog.Logger
}

func NewRunner(stats StatsLookup, presenter *render.Presenter, logger zerolog.Logger) *Runner {
	return &Runner{stats: stats, presenter: presenter, logger: logger}
}

// Run performs one player lookup. It never exits the process; the caller
// turns the returned error into an exit status.
func (r *Runner) Run(ctx context.Context, args []string) error {
	lookup, err := input.Resolve(args)
	if err != nil {
		return err
	}

	ctx, logger := tracing.Start(ctx, r.logger)
	logger.Info().
		Str("identifier", lookup.Identifier).
		Str("account_type", string(lookup.AccountType)).
		Msg("looking up player")

	summary, err := r.stats.Lookup(ctx, lookup)
	if err != nil {
		return err
	}

	r.presenter.Summary(summary, lookup.Identifier)
	return nil
}

// Report prints err for the user and returns the matching exit status.
func (r *Runner) Report(err error) int {
	if err == nil {
		return ExitOK
	}
	r.presenter.Failure(err)
	return ExitCode(err)
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	return ExitFailure
}
