// Package dicontext carries a [di.Scope] on a [context.Context].
//
// Use it where a Scope cannot be injected, such as HTTP handlers served with
// a request scope.
package dicontext

import (
	"context"
	"reflect"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/instance"
	"github.com/sectrean/di-builder/internal/errors"
)

// ErrNoScope is returned when there is no [di.Scope] on the [context.Context].
var ErrNoScope = errors.New("scope not found on context")

type scopeContextKey struct{}

// WithScope returns a new [context.Context] that carries the provided [di.Scope].
func WithScope(ctx context.Context, s di.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey{}, s)
}

// Scope returns the [di.Scope] stored on the [context.Context], if present.
func Scope(ctx context.Context) di.Scope {
	if s, ok := ctx.Value(scopeContextKey{}).(di.Scope); ok {
		return s
	}
	return nil
}

// Resolve a service of type T from the [di.Scope] stored on the [context.Context].
func Resolve[T any](ctx context.Context, opts ...di.ResolveOption) (T, error) {
	var val T

	s := Scope(ctx)
	if s == nil {
		return val, errors.Wrapf(ErrNoScope, "resolve %s from context", reflect.TypeFor[T]())
	}

	val, err := di.Resolve[T](ctx, s, opts...)
	return val, errors.Wrap(err, "resolve from context")
}

// MustResolve resolves a service of type T from the [di.Scope] stored on the
// [context.Context].
//
// If the service cannot be resolved, this function will panic.
func MustResolve[T any](ctx context.Context, opts ...di.ResolveOption) T {
	val, err := Resolve[T](ctx, opts...)
	if err != nil {
		panic(err)
	}
	return val
}

// NewBuilder creates an [instance.Builder] with the [di.Scope] stored on the
// [context.Context].
func NewBuilder(ctx context.Context, registry *di.Registry) (*instance.Builder, error) {
	s := Scope(ctx)
	if s == nil {
		return nil, errors.Wrap(ErrNoScope, "new builder from context")
	}

	return instance.New(s, registry)
}
