package instance

import (
	"context"
	"iter"
	"slices"

	"github.com/sectrean/di-builder/internal/errors"
)

// Factory creates one value for [BuildMany]. It receives its own copy of the [Builder].
type Factory[T any] func(ctx context.Context, b *Builder) (T, error)

// BuildMany calls each factory with an empty copy of b, then injects the results
// into b as a single []T argument.
//
// Factories are called in order, one at a time. If a factory returns an error, BuildMany
// stops and returns it, and nothing is injected into b.
//
// Constructors that take the results must declare a []T parameter.
// The returned slice does not share storage with the injected argument.
func BuildMany[T any](ctx context.Context, b *Builder, factories ...Factory[T]) ([]T, error) {
	if b == nil {
		return nil, errors.Errorf("build many: %w: builder is nil", ErrInvalidArgument)
	}
	for i, f := range factories {
		if f == nil {
			return nil, errors.Errorf("build many: %w: factory %d is nil", ErrInvalidArgument, i)
		}
	}

	results := make([]T, 0, len(factories))
	for _, f := range factories {
		val, err := f(ctx, b.Copy())
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}

	b.With(slices.Clone(results))
	return results, nil
}

// BuildManyFrom calls fn with an empty copy of b for each item in source, then injects
// the results into b as a single []T argument.
//
// Items are handled in order, one at a time. If fn returns an error, BuildManyFrom
// stops and returns it, and nothing is injected into b. The returned slice does not
// share storage with the injected argument.
//
// Use [slices.Values] to build from a slice:
//
//	instance.BuildManyFrom(ctx, b, slices.Values(cfg.Handlers), newHandler)
func BuildManyFrom[S, T any](
	ctx context.Context,
	b *Builder,
	source iter.Seq[S],
	fn func(context.Context, *Builder, S) (T, error),
) ([]T, error) {
	if b == nil {
		return nil, errors.Errorf("build many from: %w: builder is nil", ErrInvalidArgument)
	}
	if source == nil {
		return nil, errors.Errorf("build many from: %w: source is nil", ErrInvalidArgument)
	}
	if fn == nil {
		return nil, errors.Errorf("build many from: %w: fn is nil", ErrInvalidArgument)
	}

	results := []T{}
	for item := range source {
		val, err := fn(ctx, b.Copy(), item)
		if err != nil {
			return nil, err
		}
		results = append(results, val)
	}

	b.With(slices.Clone(results))
	return results, nil
}
