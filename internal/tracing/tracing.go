package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const LookupIDKey contextKey = "lookup_id"

// Start tags ctx and logger with a fresh lookup ID so every log line and
// upstream request of one invocation can be correlated.
func Start(ctx context.Context, logger zerolog.Logger) (context.Context, zerolog.Logger) {
	lookupID := uuid.New().String()

	ctx = context.WithValue(ctx, LookupIDKey, lookupID)

	loggerWithID := logger.With().Str("lookup_id", lookupID).Logger()
	ctx = loggerWithID.WithContext(ctx)

	return ctx, loggerWithID
}

func LookupID(ctx context.Context) string {
	if id, ok := ctx.Value(LookupIDKey).(string); ok {
		return id
	}
	return ""
}
