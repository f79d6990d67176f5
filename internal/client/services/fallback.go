package services

import (
	"context"
	"errors"

	"github.com/orwel/orwel-cli/internal/logging"
	"github.com/orwel/orwel-cli/internal/shared"
)

// source is one tier of a fallback chain: a named fetch attempt.
type source[T any] struct {
	name string
	fn   func(ctx context.Context) (T, error)
}

// resolve tries each source once, in order, and returns the first successful
// result. There are no retries within a tier. A success with an empty value
// is still a success: an authoritative "nothing matched" must not be papered
// over by a lower tier. Failures are logged and swallowed; when every tier
// fails, ok is false.
func resolve[T any](ctx context.Context, log logging.Logger, what string, sources ...source[T]) (val T, ok bool) {
	for _, s := range sources {
		v, err := s.fn(ctx)
		if err == nil {
			return v, true
		}
		if errors.Is(err, shared.ErrNotConfigured) {
			log.Debug(ctx, "source not configured, skipping", "what", what, "source", s.name)
			continue
		}
		log.Warn(ctx, "source failed, trying next tier", "what", what, "source", s.name, "error", err)
	}
	log.Error(ctx, "all sources failed", "what", what)
	return val, false
}
