package stats

import (
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
)

// CounterNormalizer reads payloads that only carry raw counters under
// global_stats.<mode> and derives the ratios itself.
type CounterNormalizer struct{}

func (CounterNormalizer) Shape() domain.Shape { return domain.ShapeCounter }

func (CounterNormalizer) Normalize(p Payload) (*domain.Summary, error) {
	if result, ok := p["result"].(bool); ok && !result {
		return nil, &NotFoundError{Reason: text(p, "error")}
	}
	account, ok := object(p["account"])
	if !ok {
		return nil, &NotFoundError{Reason: text(p, "error")}
	}

	summary := &domain.Summary{
		Shape:        domain.ShapeCounter,
		Name:         text(p, "name"),
		AccountLevel: integer(account, "level"),
	}

	global, _ := object(p["global_stats"])

	var total counters
	for _, mode := range constants.Modes {
		raw, ok := object(global[mode])
		if !ok {
			continue
		}
		c := readCounters(raw)
		total.add(c)
		summary.Modes = append(summary.Modes, domain.ModeResult{Mode: mode, Stats: c.derive()})
	}

	if len(summary.Modes) > 0 {
		overall := total.derive()
		summary.Overall = &overall
	}

	return summary, nil
}

type counters struct {
	wins    int
	matches int
	kills   int
	minutes int
}

func readCounters(m map[string]any) counters {
	return counters{
		wins:    integer(m, "placetop1"),
		matches: integer(m, "matchesplayed"),
		kills:   integer(m, "kills"),
		minutes: integer(m, "minutesplayed"),
	}
}

func (c *counters) add(o counters) {
	c.wins = saturatingAdd(c.wins, o.wins)
	c.matches = saturatingAdd(c.matches, o.matches)
	c.kills = saturatingAdd(c.kills, o.kills)
	c.minutes = saturatingAdd(c.minutes, o.minutes)
}

// derive approximates deaths as non-winning matches; the upstream exposes
// no death counter.
func (c counters) derive() domain.ModeStats {
	matches, wins := float64(c.matches), float64(c.wins)
	return domain.ModeStats{
		Wins:          c.wins,
		Matches:       c.matches,
		Kills:         c.kills,
		MinutesPlayed: c.minutes,
		WinRate:       wins / max(matches, 1),
		KD:            float64(c.kills) / max(1, matches-wins),
	}
}
