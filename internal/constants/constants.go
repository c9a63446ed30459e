package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
	ShutdownTimeout    = 5 * time.Second

	MaxRedirects = 5
)

const (
	SummaryStatsURL = "https://fortnite-api.com/v2/stats/br/v2"
	CounterStatsURL = "https://fortniteapi.io/v1/stats"
	LegacyStatsURL  = "https://fortnite-api.com/v1/stats/br"
)

const (
	// identifiers longer than this are treated as opaque account IDs
	AccountIDMinLength = 20

	ImageAll = "all"
)

const (
	VariantSummary = "v2"
	VariantCounter = "io"
)

// Modes in display order.
var Modes = []string{"solo", "duo", "trio", "squad"}
