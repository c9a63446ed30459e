package stats

import (
	"fortnite-stats/internal/constants"
	"fortnite-stats/internal/domain"
)

// SummaryNormalizer reads payloads whose ratios are already computed
// upstream, nested under data.stats.<mode>.
type SummaryNormalizer struct{}

func (SummaryNormalizer) Shape() domain.Shape { return domain.ShapeSummary }

func (SummaryNormalizer) Normalize(p Payload) (*domain.Summary, error) {
	data, ok := object(p["data"])
	if !ok {
		return nil, &NotFoundError{Reason: text(p, "error")}
	}

	summary := &domain.Summary{Shape: domain.ShapeSummary}

	if account, ok := object(data["account"]); ok {
		summary.Name = text(account, "name")
		summary.AccountLevel = integer(account, "level")
	}
	if bp, ok := object(data["battlePass"]); ok {
		summary.BattlePassLevel = integer(bp, "level")
	}

	buckets, _ := object(data["stats"])

	if all, ok := object(buckets["all"]); ok {
		overall := summaryMode(all)
		summary.Overall = &overall
	}

	for _, mode := range constants.Modes {
		raw, ok := object(buckets[mode])
		if !ok || !anyPositive(raw) {
			continue
		}
		summary.Modes = append(summary.Modes, domain.ModeResult{Mode: mode, Stats: summaryMode(raw)})
	}

	return summary, nil
}

func summaryMode(m map[string]any) domain.ModeStats {
	return domain.ModeStats{
		Wins:          integer(m, "wins"),
		Matches:       integer(m, "matches"),
		Kills:         integer(m, "kills"),
		MinutesPlayed: integer(m, "minutesPlayed"),
		WinRate:       float(m, "winRate"),
		KD:            float(m, "kd"),
	}
}
