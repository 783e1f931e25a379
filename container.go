package di

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sectrean/di-builder/internal/errors"
)

// Container is a dependency injection container.
// It is used to resolve services by first resolving their dependencies,
// and to activate types registered with [WithConstructor].
type Container struct {
	parent       *Container
	services     map[serviceKey][]service
	constructors map[reflect.Type]*constructor
	resolved     *xsync.MapOf[service, *resolveFuture]
	closers      []Closer
	closersMu    sync.Mutex
	closed       atomic.Bool
}

var _ Scope = (*Container)(nil)

// NewContainer creates a new [Container] with the provided options.
//
// Available options:
//   - [WithService] registers a service with a value or constructor function.
//   - [WithConstructor] registers a constructor used by [Container.Activate].
//   - [WithModule] applies the options in a [Module].
//   - [WithRegistry] applies the options in a [Registry].
func NewContainer(opts ...ContainerOption) (*Container, error) {
	c := newContainer(nil)

	err := c.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "new container")
	}

	return c, nil
}

func newContainer(parent *Container) *Container {
	return &Container{
		parent:       parent,
		services:     make(map[serviceKey][]service),
		constructors: make(map[reflect.Type]*constructor),
		resolved:     xsync.NewMapOf[service, *resolveFuture](),
	}
}

func (c *Container) applyOptions(opts []ContainerOption) error {
	// Flatten any modules before sorting and applying options
	opts = flattenModules(opts)

	// Use a stable sort because the registration order of services matters
	slices.SortStableFunc(opts, func(a, b ContainerOption) int {
		return cmp.Compare(a.order(), b.order())
	})

	return applyOptions(opts, func(o ContainerOption) error {
		return o.applyContainer(c)
	})
}

func (c *Container) register(svc service) {
	if len(svc.Aliases()) == 0 {
		c.registerKey(svc.Key(), svc)
	} else {
		for _, alias := range svc.Aliases() {
			c.registerKey(serviceKey{Type: alias, Tag: svc.Key().Tag}, svc)
		}
	}

	// Options are applied before the Container is returned, so no lock is needed here.
	if vs, ok := svc.(*valueService); ok {
		if closer := vs.CloserFor(vs.val); closer != nil {
			c.closers = append(c.closers, closer)
		}
	}
}

func (c *Container) registerKey(key serviceKey, svc service) {
	c.services[key] = append(c.services[key], svc)
}

func (c *Container) registerConstructor(ctor *constructor) {
	for _, t := range ctor.Types() {
		c.constructors[t] = ctor
	}
}

func (c *Container) lookupService(key serviceKey) service {
	for scope := c; scope != nil; scope = scope.parent {
		svcs, ok := scope.services[key]
		if !ok {
			continue
		}

		// Return the last registered service for this key
		return svcs[len(svcs)-1]
	}

	return nil
}

func (c *Container) lookupConstructor(t reflect.Type) *constructor {
	for scope := c; scope != nil; scope = scope.parent {
		if ctor, ok := scope.constructors[t]; ok {
			return ctor
		}
	}

	return nil
}

// NewScope creates a new [Container] with a child scope.
//
// Services and constructors registered with the parent [Container] are inherited by the child.
// Additional services can be registered with the new scope if needed and they will be isolated from
// the parent and sibling containers.
func (c *Container) NewScope(opts ...ContainerOption) (*Container, error) {
	if c.closed.Load() {
		return nil, errors.Wrap(ErrContainerClosed, "new scope")
	}

	scope := newContainer(c)

	err := scope.applyOptions(opts)
	if err != nil {
		return nil, errors.Wrap(err, "new scope")
	}

	return scope, nil
}

// Contains returns true if the [Container] has a service registered for the given [reflect.Type].
// For a slice type, it reports whether the element type is registered.
//
// Available options:
//   - [WithTag] specifies the tag associated with the service.
func (c *Container) Contains(t reflect.Type, opts ...ResolveOption) bool {
	if t.Kind() == reflect.Slice {
		t = t.Elem()
	}

	key := newServiceKey(t, opts)
	for scope := c; scope != nil; scope = scope.parent {
		if _, found := scope.services[key]; found {
			return true
		}
	}

	return false
}

// Resolve a service of the given [reflect.Type].
//
// The type must be registered with the [Container]. Resolving a slice type returns every
// service registered for the element type, in registration order.
// This will return an error if the [Container] has been closed.
//
// Available options:
//   - [WithTag] specifies the tag associated with the service.
func (c *Container) Resolve(ctx context.Context, t reflect.Type, opts ...ResolveOption) (any, error) {
	return c.resolve(ctx, newServiceKey(t, opts), make(resolveVisitor))
}

func (c *Container) resolve(ctx context.Context, key serviceKey, visitor resolveVisitor) (any, error) {
	if key.Type == nil {
		return nil, errors.New("resolve: type is nil")
	}

	if c.closed.Load() {
		return nil, errors.Wrapf(ErrContainerClosed, "resolve %s", key)
	}

	val, err := resolveKey(ctx, c, key, visitor, false)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", key)
	}

	return val, nil
}

// Activate creates a new instance of type t with the constructor registered by [WithConstructor].
//
// Each injected argument is bound to the first unbound constructor parameter it is assignable to.
// The remaining parameters are resolved from the Container. See [Scope.Activate].
func (c *Container) Activate(ctx context.Context, t reflect.Type, args ...any) (any, error) {
	return c.activate(ctx, t, args, make(resolveVisitor))
}

func resolveKey(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	visitor resolveVisitor,
	optional bool,
) (any, error) {
	if key.Type.Kind() == reflect.Slice {
		return resolveSliceKey(ctx, scope, key, visitor, optional)
	}

	svc := scope.lookupService(key)
	if svc == nil {
		return nil, ErrServiceNotRegistered
	}

	return resolveService(ctx, scope, svc, visitor)
}

func resolveSliceKey(
	ctx context.Context,
	scope *Container,
	key serviceKey,
	visitor resolveVisitor,
	optional bool,
) (any, error) {
	elementKey := serviceKey{
		Type: key.Type.Elem(),
		Tag:  key.Tag,
	}

	// Parent registrations come first so the slice follows registration order.
	var chain []*Container
	for s := scope; s != nil; s = s.parent {
		chain = append(chain, s)
	}
	slices.Reverse(chain)

	sliceVal := reflect.MakeSlice(key.Type, 0, 0)
	found := false

	for _, s := range chain {
		for _, svc := range s.services[elementKey] {
			val, err := resolveService(ctx, scope, svc, visitor)
			if err != nil {
				return nil, err
			}
			sliceVal = reflect.Append(sliceVal, safeReflectValue(elementKey.Type, val))
			found = true
		}
	}

	if !found && !optional {
		return nil, ErrServiceNotRegistered
	}

	return sliceVal.Interface(), nil
}

func resolveService(
	ctx context.Context,
	scope *Container,
	svc service,
	visitor resolveVisitor,
) (any, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Singletons live in the scope they are registered with.
	// Scoped services live in the current scope.
	lifetime := svc.Lifetime()
	if lifetime == Singleton {
		scope = svc.Scope()
	} else if lifetime == Scoped && scope.parent == nil {
		return nil, errors.New("scoped service must be resolved from a child scope")
	}

	// Check the trail before waiting on a result, or a service that depends
	// on itself would wait for itself.
	if !visitor.Enter(svc) {
		return nil, ErrDependencyCycle
	}
	defer visitor.Leave(svc)

	if lifetime == Transient {
		return createService(ctx, scope, svc, visitor)
	}

	fut, loaded := scope.resolved.LoadOrCompute(svc, newResolveFuture)
	if loaded {
		return fut.Result()
	}

	defer func() {
		if r := recover(); r != nil {
			scope.resolved.Delete(svc)
			fut.setResult(nil, fmt.Errorf("panic creating service %s: %v", svc.Key(), r))
			panic(r)
		}
	}()

	val, err := createService(ctx, scope, svc, visitor)
	if err != nil {
		// Waiting callers get the error. The next call tries again.
		scope.resolved.Delete(svc)
	}
	fut.setResult(val, err)

	return val, err
}

func createService(
	ctx context.Context,
	scope *Container,
	svc service,
	visitor resolveVisitor,
) (any, error) {
	deps := svc.Dependencies()
	depVals := make([]reflect.Value, len(deps))

	var injected *injectedScope
	defer func() {
		if injected != nil {
			injected.setDone()
		}
	}()

	for i, depKey := range deps {
		var depVal any
		var depErr error

		switch depKey.Type {
		case typeContext:
			depVal = ctx

		case typeScope:
			if injected == nil {
				injected = newInjectedScope(scope, visitor)
			}
			depVal = injected

		default:
			// The last parameter of a variadic function is optional.
			optional := i == len(deps)-1 && svc.IsVariadic()
			depVal, depErr = resolveKey(ctx, scope, depKey, visitor, optional)
		}

		if depErr != nil {
			return nil, errors.Wrapf(depErr, "dependency %s", depKey)
		}
		depVals[i] = safeReflectValue(depKey.Type, depVal)
	}

	val, err := svc.New(depVals)
	if err != nil {
		return val, err
	}

	if closer := svc.CloserFor(val); closer != nil {
		scope.closersMu.Lock()
		scope.closers = append(scope.closers, closer)
		scope.closersMu.Unlock()
	}

	return val, nil
}

// Close the [Container] and resolved services.
//
// Services are closed in the reverse order they were created.
// Errors returned from closing services are joined together.
//
// Close will return an error if called more than once.
func (c *Container) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return errors.Wrap(ErrContainerClosed, "close: closed already")
	}

	c.closersMu.Lock()
	closers := c.closers
	c.closers = nil
	c.closersMu.Unlock()

	// Close services in LIFO order because later services depend on earlier ones.
	var errs errors.MultiError
	for i := len(closers) - 1; i >= 0; i-- {
		errs = errs.Append(closers[i].Close(ctx))
	}

	return errs.Wrap("close")
}

func newServiceKey(t reflect.Type, opts []ResolveOption) serviceKey {
	key := serviceKey{Type: t}
	for _, opt := range opts {
		key = opt.applyServiceKey(key)
	}
	return key
}
