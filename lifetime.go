package di

import "fmt"

// Lifetime specifies how services are created when resolved.
//
// Available lifetimes:
//   - [Singleton] specifies that a service is created once and subsequent requests return the same instance.
//   - [Transient] specifies that a service is created for each request.
//   - [Scoped] specifies that a service is created once per scope.
type Lifetime uint8

const (
	// Singleton specifies that a service is created once and subsequent requests to resolve return the same instance.
	//
	// This is the default lifetime for services.
	Singleton Lifetime = iota

	// Transient specifies that a service is created for each request.
	Transient

	// Scoped specifies that a service is created once per scope.
	// Scoped services must be resolved from a child scope created with [Container.NewScope].
	Scoped
)

// Lifetime can be passed directly to [WithService]:
//
//	di.WithService(NewHandler, di.Transient)
func (l Lifetime) applyService(s service) error {
	return s.SetLifetime(l)
}

var _ ServiceOption = Singleton

func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "Singleton"
	case Transient:
		return "Transient"
	case Scoped:
		return "Scoped"
	default:
		return fmt.Sprintf("Unknown Lifetime %d", l)
	}
}
