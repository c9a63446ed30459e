package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fortnite-stats/internal/api"
	"fortnite-stats/internal/cli"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/constants"
	fxmodules "fortnite-stats/internal/fx"
	"fortnite-stats/internal/render"
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/dig"
	"go.uber.org/fx"
)

// legacy endpoints worth checking when the stats API changes
var probePaths = []string{"", "/search", "/account"}

func main() {
	name := "Ninja"
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	os.Exit(run(context.Background(), name, constants.LegacyStatsURL, render.OSStreams()))
}

func run(ctx context.Context, name, baseURL string, streams render.Streams) int {
	var (
		client *api.Client
		logger zerolog.Logger
	)

	app := fx.New(
		fxmodules.Module,
		fx.NopLogger,
		fx.Supply(streams),
		fx.Populate(&client, &logger),
	)
	if err := app.Err(); err != nil {
		var cfgErr *config.Error
		if !errors.As(err, &cfgErr) {
			err = dig.RootCause(err)
		}
		fmt.Fprintf(streams.Stderr, "Error: %v\n", err)
		return cli.ExitFailure
	}

	logger.Info().Str("name", name).Msg("testing fortnite api endpoints")

	for _, path := range probePaths {
		url := baseURL + path
		params := [][2]string{{"name", name}, {"platform", "epic"}}
		fmt.Fprintf(streams.Stdout, "Testing endpoint: %s\n", url)

		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		status, body, err := client.Probe(apiCtx, url, params)
		cancel()
		if err != nil {
			logger.Warn().Err(err).Str("url", url).Msg("probe failed")
			fmt.Fprintf(streams.Stderr, "Error: %v\n", err)
		} else {
			fmt.Fprintf(streams.Stdout, "Status: %d\n", status)
			fmt.Fprintf(streams.Stdout, "Response: %s\n", indent(body))
		}
		io.WriteString(streams.Stdout, "-----------------------------------\n")
	}

	return cli.ExitOK
}

func indent(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
