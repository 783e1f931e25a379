package di

import (
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// WithConstructor registers a constructor function with a new Container when calling
// [NewContainer], [Container.NewScope], or [Registry.Add].
//
// Constructors are not services. They are used by [Scope.Activate] to create a new instance
// of the constructor's return type every time it is called, with parameters taken from
// the injected arguments first and from the Scope second.
//
// The function must return T or (T, error). The constructor is registered for T and for
// any aliases added with [As]. Registering another constructor for the same type replaces it.
//
// Example:
//
//	c, err := di.NewContainer(
//		di.WithService(NewCommonDependency),
//		di.WithConstructor(NewHandler),
//	)
//
//	// NewHandler(CommonDependency, options.Options[HandlerOptions]) *Handler
//	h, err := c.Activate(ctx, reflect.TypeFor[*Handler](), options.Wrap(HandlerOptions{}))
func WithConstructor(fn any, opts ...ConstructorOption) ContainerOption {
	return newContainerOption(orderConstructor, func(c *Container) error {
		if fn == nil {
			return errors.New("with constructor: fn is nil")
		}

		fnType := reflect.TypeOf(fn)
		if fnType.Kind() != reflect.Func {
			return errors.Errorf("with constructor %T: fn must be a function", fn)
		}

		ctor, err := newConstructor(fn, opts)
		if err != nil {
			return errors.Wrapf(err, "with constructor %T", fn)
		}

		c.registerConstructor(ctor)
		return nil
	})
}

// ConstructorOption is used to configure a constructor when calling [WithConstructor].
//
// Available options:
//   - [As] registers the constructor for an additional type.
type ConstructorOption interface {
	applyConstructor(*constructor) error
}

type constructor struct {
	t       reflect.Type
	fn      reflect.Value
	params  []reflect.Type
	aliases []reflect.Type
}

func newConstructor(fn any, opts []ConstructorOption) (*constructor, error) {
	t, params, err := funcSignature(reflect.TypeOf(fn))
	if err != nil {
		return nil, err
	}

	ctor := &constructor{
		t:      t,
		fn:     reflect.ValueOf(fn),
		params: params,
	}

	err = applyOptions(opts, func(opt ConstructorOption) error {
		return opt.applyConstructor(ctor)
	})
	if err != nil {
		return nil, err
	}

	return ctor, nil
}

func (c *constructor) AddAlias(alias reflect.Type) error {
	if !c.t.AssignableTo(alias) {
		return errors.Errorf("type %s not assignable to %s", c.t, alias)
	}

	c.aliases = append(c.aliases, alias)
	return nil
}

// Types returns every type the constructor is registered for.
func (c *constructor) Types() []reflect.Type {
	return append([]reflect.Type{c.t}, c.aliases...)
}

func (c *constructor) IsVariadic() bool {
	return c.fn.Type().IsVariadic()
}

// bind matches injected arguments to parameters.
//
// Arguments are taken in order. Each one is bound to the first unbound parameter
// it is assignable to. An argument that fits no parameter is an error.
// Parameters left unbound have an invalid reflect.Value.
func (c *constructor) bind(args []any) ([]reflect.Value, error) {
	in := make([]reflect.Value, len(c.params))

	for i, arg := range args {
		if arg == nil {
			return nil, errors.Errorf("%w: argument %d is nil", ErrNoConstructor, i)
		}

		argType := reflect.TypeOf(arg)
		bound := false

		for j, p := range c.params {
			if !in[j].IsValid() && argType.AssignableTo(p) {
				in[j] = reflect.ValueOf(arg)
				bound = true
				break
			}
		}

		if !bound {
			return nil, errors.Errorf("%w: argument %d of type %s matches no parameter of %s",
				ErrNoConstructor, i, argType, c.fn.Type())
		}
	}

	return in, nil
}

func (c *constructor) String() string {
	return c.fn.Type().String()
}
