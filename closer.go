package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// Closer is used to close a service when closing the Container.
//
// If a resolved service implements Closer, or one of the other compatible function signatures,
// the Close function will be called when the Container is closed.
//
// Any of these Close method signatures are supported:
//
//	Close(context.Context) error
//	Close(context.Context)
//	Close() error
//	Close()
//
// Only values returned by service functions are closed. Instances created with
// [Scope.Activate] (for example by an instance builder inside a service function)
// are owned by the caller.
type Closer interface {
	Close(ctx context.Context) error
}

// WithCloser is used to close a service when the Container is closed.
//
// Value services are not closed by default. To close a value service, use this option.
func WithCloser() ServiceOption {
	return serviceOption(func(s service) error {
		s.SetCloserFactory(getCloser)
		return nil
	})
}

// IgnoreCloser is used when you do not want a service that implements Closer, or another
// supported Close function signature, to be closed when the Container is closed.
func IgnoreCloser() ServiceOption {
	return serviceOption(func(s service) error {
		s.SetCloserFactory(nil)
		return nil
	})
}

type closerFactory func(val any) Closer

// WithCloseFunc can be used to set a custom function to call for a service when the Container is closed.
//
// Example:
//
//	di.WithCloseFunc(func(ctx context.Context, s *http.Server) error {
//		return s.Shutdown(ctx)
//	})
//
// This option will return an error if the service type is not assignable to T.
func WithCloseFunc[T any](f func(context.Context, T) error) ServiceOption {
	return serviceOption(func(s service) error {
		closerType := reflect.TypeFor[T]()
		if !s.Type().AssignableTo(closerType) {
			return errors.Errorf("with close func: service type %s is not assignable to %s",
				s.Type(), closerType)
		}

		s.SetCloserFactory(func(val any) Closer {
			return closeFunc(func(ctx context.Context) error {
				return f(ctx, val.(T))
			})
		})
		return nil
	})
}

// getCloser returns the Closer interface if the given value implements it,
// or any of the compatible Close function signatures.
func getCloser(val any) Closer {
	switch c := val.(type) {
	case Closer:
		return c
	case interface{ Close(context.Context) }:
		return closeFunc(func(ctx context.Context) error {
			c.Close(ctx)
			return nil
		})
	case interface{ Close() error }:
		return closeFunc(func(context.Context) error {
			return c.Close()
		})
	case interface{ Close() }:
		return closeFunc(func(context.Context) error {
			c.Close()
			return nil
		})
	default:
		return nil
	}
}

type closeFunc func(context.Context) error

func (f closeFunc) Close(ctx context.Context) error {
	return f(ctx)
}
