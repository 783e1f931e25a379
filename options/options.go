// Package options provides named, typed option values for services created by a
// [di.Container] and an instance builder.
//
// Register the options type once with [AddOptions], then register any number of
// configurators for each name with [Configure] or [Bind]:
//
//	c, err := di.NewContainer(
//		options.AddOptions[HandlerOptions](),
//		options.Bind[HandlerOptions]("pipelines:0:handlers:0", cfg.Section("pipelines:0:handlers:0")),
//	)
//
// A constructor that takes an [Options] value receives the options selected with [WithNamed]:
//
//	// NewHandler(opts options.Options[HandlerOptions]) *Handler
//	b, err = options.WithNamed[HandlerOptions](ctx, b, "pipelines:0:handlers:0")
//	h, err := instance.Build[*Handler](ctx, b)
package options

import (
	"context"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/config"
	"github.com/sectrean/di-builder/instance"
	"github.com/sectrean/di-builder/internal/errors"
)

// DefaultName is the name of the options injected as an Options[T] service.
const DefaultName = ""

// Options holds an options value of type T.
type Options[T any] interface {
	Value() T
}

type wrapper[T any] struct {
	value T
}

func (w wrapper[T]) Value() T {
	return w.value
}

// Wrap returns an [Options] holding v.
func Wrap[T any](v T) Options[T] {
	return wrapper[T]{value: v}
}

// Monitor returns named options values of type T.
//
// Each name is computed once by applying the configurators registered for it, in order.
// A name with no configurators returns the zero value of T.
type Monitor[T any] interface {
	Get(name string) (T, error)
}

// Configurator updates the options value with a given name.
// Configurators are registered as services by [Configure] and [Bind].
type Configurator[T any] struct {
	name string
	fn   func(*T) error
}

// Name returns the name of the options value the Configurator applies to.
func (c *Configurator[T]) Name() string {
	return c.name
}

func (c *Configurator[T]) apply(v *T) error {
	if c.fn == nil {
		return errors.Errorf("configure %q: fn is nil", c.name)
	}
	return c.fn(v)
}

type result[T any] struct {
	val T
	err error
}

type monitor[T any] struct {
	configs []*Configurator[T]
	cache   *xsync.MapOf[string, result[T]]
}

func newMonitor[T any](configs ...*Configurator[T]) *monitor[T] {
	return &monitor[T]{
		configs: configs,
		cache:   xsync.NewMapOf[string, result[T]](),
	}
}

func (m *monitor[T]) Get(name string) (T, error) {
	r, _ := m.cache.LoadOrCompute(name, func() result[T] {
		return m.create(name)
	})
	return r.val, r.err
}

func (m *monitor[T]) create(name string) result[T] {
	var val T
	for _, c := range m.configs {
		if c.name != name {
			continue
		}

		if err := c.apply(&val); err != nil {
			return result[T]{err: errors.Wrapf(err, "options %s", reflect.TypeFor[T]())}
		}
	}

	return result[T]{val: val}
}

// AddOptions registers a [Monitor] for options of type T, and an [Options] service
// holding the options named [DefaultName].
func AddOptions[T any]() di.ContainerOption {
	return di.WithModule(di.Module{
		di.WithService(newMonitor[T], di.As[Monitor[T]]()),
		di.WithService(func(m Monitor[T]) (Options[T], error) {
			val, err := m.Get(DefaultName)
			if err != nil {
				return nil, err
			}
			return Wrap(val), nil
		}),
	})
}

// Configure registers a function that updates the options with the given name.
//
// Configurators are applied in the order they are registered.
func Configure[T any](name string, fn func(*T) error) di.ContainerOption {
	return di.WithService(&Configurator[T]{name: name, fn: fn})
}

// Bind registers a configurator that decodes a configuration section into the options
// with the given name.
func Bind[T any](name string, section *config.Section) di.ContainerOption {
	return Configure(name, func(v *T) error {
		if section == nil {
			return errors.Errorf("bind %q: section is nil", name)
		}
		return section.Decode(v)
	})
}

// WithNamed injects the options with the given name into the builder, wrapped
// in an [Options] value.
//
// The [Monitor] is resolved from the builder's [di.Scope]. If [AddOptions] was not
// used to register it, the resolve error is returned.
func WithNamed[T any](ctx context.Context, b *instance.Builder, name string) (*instance.Builder, error) {
	if b == nil {
		return nil, errors.Errorf("with named options: %w: builder is nil", instance.ErrInvalidArgument)
	}

	m, err := di.Resolve[Monitor[T]](ctx, b.Scope())
	if err != nil {
		return nil, err
	}

	val, err := m.Get(name)
	if err != nil {
		return nil, err
	}

	return b.With(Wrap(val)), nil
}

// With injects the options created by fn into the builder, wrapped in an [Options] value.
func With[T any](b *instance.Builder, fn func() (T, error)) (*instance.Builder, error) {
	if b == nil {
		return nil, errors.Errorf("with options: %w: builder is nil", instance.ErrInvalidArgument)
	}
	if fn == nil {
		return nil, errors.Errorf("with options: %w: fn is nil", instance.ErrInvalidArgument)
	}

	val, err := fn()
	if err != nil {
		return nil, err
	}

	return b.With(Wrap(val)), nil
}
