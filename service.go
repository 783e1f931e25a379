package di

import (
	"fmt"
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// WithService registers the provided function or value with a new Container
// when calling [NewContainer], [Container.NewScope], or [Registry.Add].
//
// If a function is provided, it will be called to create the service when resolved.
//
// This function can take any number of arguments which will also be resolved from the Container.
// The function may also accept a [context.Context] or [di.Scope]. The injected Scope can be used
// while the function runs, which is how factories hand the Scope to an instance builder.
//
// The function must return a service, or the service and an error.
// The service will be registered as the return type of the function (struct, pointer, or interface).
//
// If a value is provided, it will be returned as the service when resolved.
// The value can be a struct or pointer.
// (It will be registered as the actual type even if the variable was declared as an interface.)
//
// Available options:
//   - [Lifetime] is used to specify how services are created when resolved.
//   - [As] registers an alias for a service.
//   - [WithTag] specifies the tag associated with a service.
//   - [WithTagged] specifies a tag for a dependency.
//   - [WithCloseFunc] specifies a function to be called when the service is closed.
//   - [IgnoreCloser] specifies that the service should not be closed by the Container.
//   - [WithCloser] specifies that the service should be closed by the Container.
//     This is the default for function services. Value services are not closed by default.
func WithService(funcOrValue any, opts ...ServiceOption) ContainerOption {
	// WithService(NewService)   // registered as a func
	// WithService(NewService()) // registered as a value
	return newContainerOption(orderService, func(c *Container) error {
		if funcOrValue == nil {
			return errors.New("with service: funcOrValue is nil")
		}

		if _, ok := funcOrValue.(ServiceOption); ok {
			return errors.Errorf("with service %T: unexpected ServiceOption as funcOrValue", funcOrValue)
		}

		var svc service
		var err error
		if reflect.TypeOf(funcOrValue).Kind() == reflect.Func {
			svc, err = newFuncService(c, funcOrValue, opts...)
		} else {
			svc, err = newValueService(c, funcOrValue, opts...)
		}

		if err != nil {
			return errors.Wrapf(err, "with service %T", funcOrValue)
		}

		c.register(svc)
		return nil
	})
}

func validateServiceType(t reflect.Type) error {
	switch t {
	// These are the only special types used by the Container.
	case typeContext,
		typeScope,
		typeError:
		return errors.New("invalid service type")
	}

	switch t.Kind() {
	case reflect.Interface,
		reflect.Ptr,
		reflect.Struct:
		return nil
	}

	return errors.New("invalid service type")
}

// ServiceOption is used to configure service registration calling [WithService].
type ServiceOption interface {
	applyService(service) error
}

type serviceOption func(service) error

func (o serviceOption) applyService(s service) error {
	return o(s)
}

// service provides information about a service and how to resolve it.
type service interface {
	// Key returns the type and tag the service is registered with.
	Key() serviceKey
	Type() reflect.Type
	SetTag(tag any)

	// Aliases returns the types that this service can be resolved as.
	Aliases() []reflect.Type
	AddAlias(alias reflect.Type) error

	Lifetime() Lifetime
	SetLifetime(Lifetime) error

	// Scope returns the Container the service was registered with.
	Scope() *Container

	// Dependencies returns the keys of the services this service depends on.
	// The returned slice may be modified in place by options.
	Dependencies() []serviceKey

	// IsVariadic returns true if the last dependency is optional.
	IsVariadic() bool

	// New uses the dependencies to create a new instance of the service.
	New(deps []reflect.Value) (any, error)

	// CloserFor returns a Closer for a value created by the service, if any.
	CloserFor(val any) Closer
	SetCloserFactory(closerFactory)
}

type serviceKey struct {
	Type reflect.Type
	Tag  any
}

func (k serviceKey) String() string {
	if k.Tag == nil {
		return k.Type.String()
	}
	return fmt.Sprintf("%s (Tag %v)", k.Type, k.Tag)
}
