package di

import (
	"context"
	"reflect"
	"sync/atomic"
)

// Scope allows you to resolve services and activate constructors.
//
// A Scope can be injected into service functions and constructors. It may be used while the
// function runs, for example to create an instance builder, and it may be stored and used later.
// While the function runs, it must not be shared with other goroutines.
//
// Scope is implemented by *Container.
type Scope interface {
	// Contains returns true if the Scope has a service of the given type.
	//
	// Available options:
	// 	- [WithTag] specifies the tag associated with the service.
	Contains(t reflect.Type, opts ...ResolveOption) bool

	// Resolve returns a service of the given type from the Scope.
	// Resolving a slice type returns every service registered for the element type.
	//
	// Available options:
	// 	- [WithTag] specifies the tag associated with the service.
	Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error)

	// Activate creates a new instance of type t using the constructor registered
	// with [WithConstructor].
	//
	// Each injected argument is bound, in order, to the first unbound constructor parameter
	// whose type it is assignable to. An argument that fits no parameter returns
	// [ErrNoConstructor]. Parameters without an argument are resolved from the Scope.
	Activate(ctx context.Context, t reflect.Type, args ...any) (any, error)
}

// ResolveOption can be used when calling [Resolve], [MustResolve],
// [Container.Resolve], or [Container.Contains].
//
// Available options:
//   - [WithTag]
type ResolveOption interface {
	applyServiceKey(serviceKey) serviceKey
}

// Resolve a service of the given type from the [Scope].
func Resolve[T any](ctx context.Context, s Scope, opts ...ResolveOption) (T, error) {
	var val T
	anyVal, err := s.Resolve(ctx, reflect.TypeFor[T](), opts...)
	if err != nil {
		return val, err
	}

	if anyVal != nil {
		val = anyVal.(T)
	}
	return val, nil
}

// ResolveAll resolves every service registered for type T from the [Scope],
// in registration order.
func ResolveAll[T any](ctx context.Context, s Scope, opts ...ResolveOption) ([]T, error) {
	return Resolve[[]T](ctx, s, opts...)
}

// MustResolve resolves a service of the given type from the [Scope].
//
// If the service cannot be resolved, this function will panic.
func MustResolve[T any](ctx context.Context, s Scope, opts ...ResolveOption) T {
	val, err := Resolve[T](ctx, s, opts...)
	if err != nil {
		panic(err)
	}
	return val
}

// injectedScope wraps a Container to be injected as a Scope dependency.
//
// Until the function it was injected into returns, it shares the resolution
// path of that function so dependency cycles are detected. After that it
// behaves like the Container.
type injectedScope struct {
	scope   *Container
	visitor resolveVisitor
	done    atomic.Bool
}

func newInjectedScope(scope *Container, visitor resolveVisitor) *injectedScope {
	return &injectedScope{
		scope:   scope,
		visitor: visitor,
	}
}

func (s *injectedScope) setDone() {
	s.done.Store(true)
}

func (s *injectedScope) path() resolveVisitor {
	if s.done.Load() {
		return make(resolveVisitor)
	}
	return s.visitor
}

func (s *injectedScope) Contains(t reflect.Type, opts ...ResolveOption) bool {
	return s.scope.Contains(t, opts...)
}

func (s *injectedScope) Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error) {
	return s.scope.resolve(ctx, newServiceKey(t, opts), s.path())
}

func (s *injectedScope) Activate(ctx context.Context, t reflect.Type, args ...any) (any, error) {
	return s.scope.activate(ctx, t, args, s.path())
}

var _ Scope = (*injectedScope)(nil)
