package logger

import (
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/render"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// New logs to the stderr stream so stdout carries only the stats output.
func New(streams render.Streams) zerolog.Logger {
	return NewWithWriter(consoleWriter(streams.Stderr))
}

func NewWithWriter(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(zerolog.DebugLevel)

	return logger
}

// consoleWriter only colors real terminals.
func consoleWriter(w io.Writer) io.Writer {
	out, noColor := w, true
	if f, ok := w.(*os.File); ok {
		out = colorable.NewColorable(f)
		noColor = os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(f.Fd())
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: "15:04:05",
	}
}

// ApplyLevel raises the global level to the configured one.
func ApplyLevel(cfg *config.Config) error {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

var Module = fx.Options(
	fx.Provide(New),
	fx.Invoke(ApplyLevel),
)
