package di

import (
	"github.com/sectrean/di-builder/internal/errors"
)

var (
	// ErrServiceNotRegistered is returned when a service, or a dependency of a service,
	// is not registered with the Container.
	ErrServiceNotRegistered = errors.New("service not registered")

	// ErrDependencyCycle is returned when a service depends on itself, directly or indirectly.
	ErrDependencyCycle = errors.New("dependency cycle detected")

	// ErrContainerClosed is returned when the Container is used after it has been closed.
	ErrContainerClosed = errors.New("container closed")

	// ErrNoConstructor is returned by [Scope.Activate] when no constructor is registered
	// for the requested type, or the injected arguments do not fit the constructor.
	ErrNoConstructor = errors.New("no suitable constructor")
)
