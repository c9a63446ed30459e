package render

import (
	"errors"
	"fmt"
	"fortnite-stats/internal/api"
	"fortnite-stats/internal/config"
	"fortnite-stats/internal/domain"
	"fortnite-stats/internal/input"
	"io"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type palette struct {
	red    *color.Color
	green  *color.Color
	yellow *color.Color
	blue   *color.Color
	cyan   *color.Color
}

// newPalette pins every painter on or off so the package-level
// color.NoColor guess never decides for us.
func newPalette(enabled bool) palette {
	p := palette{
		red:    color.New(color.FgRed),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		blue:   color.New(color.FgBlue),
		cyan:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.red, p.green, p.yellow, p.blue, p.cyan} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

type Presenter struct {
	Stdout io.Writer
	Stderr io.Writer
	color  bool
	colors palette
}

type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

func OSStreams() Streams {
	return Streams{Stdout: os.Stdout, Stderr: os.Stderr}
}

// NewPresenter enables color only when stdout is a terminal and NO_COLOR is
// unset; the text itself never depends on it.
func NewPresenter(cfg *config.Config, s Streams) *Presenter {
	p := NewPlain(s.Stdout, s.Stderr)

	out, ok := s.Stdout.(*os.File)
	if !ok || cfg.NoColor || !isatty.IsTerminal(out.Fd()) {
		return p
	}
	p.color = true
	p.colors = newPalette(true)
	p.Stdout = colorable.NewColorable(out)
	if errOut, ok := s.Stderr.(*os.File); ok {
		p.Stderr = colorable.NewColorable(errOut)
	}
	return p
}

// NewPlain writes uncolored text to the given streams.
func NewPlain(stdout, stderr io.Writer) *Presenter {
	return &Presenter{Stdout: stdout, Stderr: stderr, colors: newPalette(false)}
}

func (p *Presenter) paint(c *color.Color, s string) string {
	return c.Sprint(s)
}

func (p *Presenter) Summary(s *domain.Summary, identifier string) {
	w := p.Stdout

	name := s.Name
	if name == "" {
		name = identifier
	}
	fmt.Fprintln(w, "\n"+p.paint(p.colors.green, fmt.Sprintf("=== %s ===", name)))
	if s.AccountLevel > 0 {
		fmt.Fprintln(w, p.paint(p.colors.blue, fmt.Sprintf("Account Level: %d", s.AccountLevel)))
	}
	if s.BattlePassLevel > 0 {
		fmt.Fprintln(w, p.paint(p.colors.blue, fmt.Sprintf("Battle Pass Level: %d", s.BattlePassLevel)))
	}

	if s.Overall != nil {
		fmt.Fprintln(w, "\n"+p.paint(p.colors.cyan, "OVERALL STATS"))
		p.modeLines(w, *s.Overall)
		fmt.Fprintf(w, "Time Played: %d hours\n", Hours(s.Overall.MinutesPlayed))
	} else {
		fmt.Fprintln(w, "\n"+p.paint(p.colors.yellow, "No overall stats available"))
	}

	for _, m := range s.Modes {
		fmt.Fprintln(w, "\n"+p.paint(p.colors.cyan, strings.ToUpper(m.Mode)))
		p.modeLines(w, m.Stats)
	}
	if len(s.Modes) == 0 {
		fmt.Fprintln(w, "\n"+p.paint(p.colors.yellow, "No mode-specific stats available"))
	}
}

func (p *Presenter) modeLines(w io.Writer, m domain.ModeStats) {
	fmt.Fprintf(w, "Wins: %s\n", p.paint(p.colors.yellow, fmt.Sprint(m.Wins)))
	fmt.Fprintf(w, "Win Rate: %s\n", Percent(m.WinRate))
	fmt.Fprintf(w, "Matches: %d\n", m.Matches)
	fmt.Fprintf(w, "Kills: %d\n", m.Kills)
	fmt.Fprintf(w, "K/D: %s\n", Ratio(m.KD))
}

// Failure prints the diagnostic for err on stderr, with a hint where the
// user can fix the invocation.
func (p *Presenter) Failure(err error) {
	w := p.Stderr

	var (
		httpErr *api.HTTPError
		typeErr *input.InvalidAccountTypeError
	)
	switch {
	case errors.As(err, &httpErr):
		fmt.Fprintln(w, p.paint(p.colors.red, "Error: "+httpErr.Error()))
		fmt.Fprintln(w, p.paint(p.colors.yellow, "API Response: "+string(httpErr.Body)))
	case errors.Is(err, config.ErrMissingAPIKey):
		fmt.Fprintln(w, p.paint(p.colors.red, "Error: "+err.Error()))
		fmt.Fprintln(w, p.paint(p.colors.yellow, "Get an API key from https://fortnite-api.com/"))
		fmt.Fprintln(w, p.paint(p.colors.yellow, Usage))
	case errors.Is(err, input.ErrMissingIdentifier):
		fmt.Fprintln(w, p.paint(p.colors.red, "Error: "+err.Error()))
		fmt.Fprintln(w, p.paint(p.colors.yellow, Usage))
		fmt.Fprintln(w, p.paint(p.colors.yellow, "Supported account types: "+input.SupportedAccountTypes()))
	case errors.As(err, &typeErr):
		fmt.Fprintln(w, p.paint(p.colors.red, "Error: "+err.Error()))
		fmt.Fprintln(w, p.paint(p.colors.yellow, "Supported account types: "+input.SupportedAccountTypes()))
	default:
		fmt.Fprintln(w, p.paint(p.colors.red, "Error: "+err.Error()))
	}
}

const Usage = "Usage: FORTNITE_API_KEY=your_api_key fortnite-stats <username|accountId> [accountType]"

func Percent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

func Ratio(r float64) string {
	return fmt.Sprintf("%.2f", r)
}

func Hours(minutes int) int {
	return int(math.Floor(float64(minutes) / 60))
}
