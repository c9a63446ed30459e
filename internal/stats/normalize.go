package stats

import (
	"errors"
	"fortnite-stats/internal/domain"
)

var ErrPlayerNotFound = errors.New("player not found")

// NotFoundError carries the upstream's own explanation when it gave one.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string {
	if e.Reason == "" {
		return ErrPlayerNotFound.Error()
	}
	return ErrPlayerNotFound.Error() + ": " + e.Reason
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrPlayerNotFound
}

type Normalizer interface {
	Shape() domain.Shape
	Normalize(p Payload) (*domain.Summary, error)
}

// Detect picks the strategy from the payload's top-level keys and uses
// fallback when none of them is conclusive.
func Detect(p Payload, fallback domain.Shape) Normalizer {
	if _, ok := p["data"]; ok {
		return SummaryNormalizer{}
	}
	for _, k := range []string{"account", "global_stats", "result"} {
		if _, ok := p[k]; ok {
			return CounterNormalizer{}
		}
	}
	return ForShape(fallback)
}

func ForShape(shape domain.Shape) Normalizer {
	if shape == domain.ShapeCounter {
		return CounterNormalizer{}
	}
	return SummaryNormalizer{}
}

// NeedsLifetimeFallback reports whether a season response carries no usable
// overall bucket: either it is missing or it has neither matches nor kills.
func NeedsLifetimeFallback(p Payload) bool {
	all, ok := path(p, "data", "stats", "all")
	if !ok {
		return true
	}
	return float(all, "matches") == 0 && float(all, "kills") == 0
}
