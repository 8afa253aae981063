package runid

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

// New returns a fresh run ID.
func New() string {
	return uuid.NewString()
}

func WithContext(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, contextKey{}, runID)
}

func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	runID, ok := ctx.Value(contextKey{}).(string)
	if !ok {
		return ""
	}
	return runID
}
