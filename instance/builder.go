package instance

import (
	"context"
	"reflect"
	"slices"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/internal/errors"
)

// Builder creates instances using injected arguments and a [di.Scope].
//
// A Builder is not safe for concurrent use. Use [Builder.Copy] to give each
// goroutine or nested factory its own Builder.
type Builder struct {
	scope    di.Scope
	registry *di.Registry
	args     []any
}

// New creates a [Builder] that activates constructors with the given [di.Scope].
//
// The [di.Registry] is not used to build instances. It is handed to copies of the Builder
// so extensions can inspect the registrations.
func New(scope di.Scope, registry *di.Registry) (*Builder, error) {
	if scope == nil {
		return nil, errors.Errorf("new builder: %w: scope is nil", ErrInvalidArgument)
	}
	if registry == nil {
		return nil, errors.Errorf("new builder: %w: registry is nil", ErrInvalidArgument)
	}

	return &Builder{
		scope:    scope,
		registry: registry,
	}, nil
}

// With injects arguments for the next call to [Build].
//
// Arguments are appended in order. They are not checked until an instance is built.
// With returns the Builder for chaining.
func (b *Builder) With(args ...any) *Builder {
	b.args = append(b.args, args...)
	return b
}

// CopyOption is used to configure [Builder.Copy].
type CopyOption func(*copyConfig)

type copyConfig struct {
	inheritArgs bool
}

// InheritArgs makes [Builder.Copy] start with the arguments injected so far.
func InheritArgs() CopyOption {
	return func(c *copyConfig) {
		c.inheritArgs = true
	}
}

// Copy returns a new [Builder] with the same [di.Scope] and [di.Registry].
//
// The copy has no injected arguments unless [InheritArgs] is used.
// Arguments added to the copy never show up in the source, and the other way around.
func (b *Builder) Copy(opts ...CopyOption) *Builder {
	var cfg copyConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Builder{
		scope:    b.scope,
		registry: b.registry,
	}
	if cfg.inheritArgs {
		c.args = slices.Clone(b.args)
	}

	return c
}

// Scope returns the [di.Scope] used to activate constructors.
func (b *Builder) Scope() di.Scope {
	return b.scope
}

// Registry returns the [di.Registry] the Builder was created with.
func (b *Builder) Registry() *di.Registry {
	return b.registry
}

// Args returns a copy of the injected arguments.
func (b *Builder) Args() []any {
	return slices.Clone(b.args)
}

// Build creates an instance of type t with the constructor registered for it.
//
// Errors from [di.Scope.Activate] are returned as-is.
// Build may be called more than once. Each call creates a new instance.
func (b *Builder) Build(ctx context.Context, t reflect.Type) (any, error) {
	if t == nil {
		return nil, errors.Errorf("build: %w: type is nil", ErrInvalidArgument)
	}

	return b.scope.Activate(ctx, t, slices.Clone(b.args)...)
}

// Build creates an instance of type T with the given [Builder].
func Build[T any](ctx context.Context, b *Builder) (T, error) {
	var val T
	if b == nil {
		return val, errors.Errorf("build: %w: builder is nil", ErrInvalidArgument)
	}

	anyVal, err := b.Build(ctx, reflect.TypeFor[T]())
	if err != nil {
		return val, err
	}

	if anyVal != nil {
		val = anyVal.(T)
	}
	return val, nil
}

// MustBuild creates an instance of type T with the given [Builder].
//
// If the instance cannot be built, this function will panic.
func MustBuild[T any](ctx context.Context, b *Builder) T {
	val, err := Build[T](ctx, b)
	if err != nil {
		panic(err)
	}
	return val
}
