package di

import (
	"slices"
	"sync"

	"github.com/sectrean/di-builder/internal/errors"
)

// Registry is the ordered list of registrations a [Container] is created from.
//
// Startup code adds services and constructors to a Registry, then creates the Container
// with [WithRegistry]. Service functions may capture the Registry and hand it to an
// instance builder, which passes it along to the builders it copies.
//
// Example:
//
//	reg := di.NewRegistry()
//	reg.Add(
//		di.WithService(NewCommonDependency),
//		di.WithConstructor(NewPipeline),
//		di.WithService(func(ctx context.Context, s di.Scope) (*Pipeline, error) {
//			b, err := instance.New(s, reg)
//			if err != nil {
//				return nil, err
//			}
//			return instance.Build[*Pipeline](ctx, b)
//		}),
//	)
//
//	c, err := di.NewContainer(di.WithRegistry(reg))
type Registry struct {
	mu   sync.RWMutex
	opts []ContainerOption
}

// NewRegistry creates a [Registry] holding the provided options.
func NewRegistry(opts ...ContainerOption) *Registry {
	return &Registry{
		opts: slices.Clone(opts),
	}
}

// Add appends options to the Registry. It returns the Registry for chaining.
func (r *Registry) Add(opts ...ContainerOption) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.opts = append(r.opts, opts...)
	return r
}

// Len returns the number of options added to the Registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.opts)
}

// Module returns a snapshot of the options added so far.
func (r *Registry) Module() Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.opts)
}

// WithRegistry applies the options in a [Registry] when calling [NewContainer] or [Container.NewScope].
//
// Options added to the Registry after the Container is created have no effect on it.
func WithRegistry(r *Registry) ContainerOption {
	if r == nil {
		return newContainerOption(orderService, func(*Container) error {
			return errors.New("with registry: registry is nil")
		})
	}

	return r.Module()
}
