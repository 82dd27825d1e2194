package app

import (
	"context"
	"errors"

	"github.com/Sathvikar01/Event-Management-System/internal/domain"
)

// tierUnavailable reports whether an error means "this strategy cannot run
// here", as opposed to a real answer like not-found. Only the former falls
// through to the next tier.
func tierUnavailable(err error) bool {
	return errors.Is(err, domain.ErrRoutineUnsupported) ||
		errors.Is(err, domain.ErrStorageUnavailable)
}

// resolve runs strategies in order until one yields a definitive result. The
// last tier's error is returned as-is when every tier is unavailable.
func resolve[T any](ctx context.Context, tiers ...func(context.Context) (T, error)) (T, error) {
	var zero T
	var err error
	for _, tier := range tiers {
		var v T
		v, err = tier(ctx)
		if err == nil {
			return v, nil
		}
		if !tierUnavailable(err) {
			return zero, err
		}
	}
	return zero, err
}
