package di

import (
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// As registers an alias for a service or a constructor.
// Use with [WithService] or [WithConstructor].
//
// The service type must be assignable to T.
//
// Example:
//
//	di.WithService(NewStore, di.As[Reader](), di.As[Writer]())
func As[T any]() AliasOption {
	return aliasOption{t: reflect.TypeFor[T]()}
}

// AliasOption is an option that can be used when calling [WithService] or [WithConstructor].
type AliasOption interface {
	ServiceOption
	ConstructorOption
}

type aliasOption struct {
	t reflect.Type
}

func (o aliasOption) applyService(s service) error {
	return errors.Wrapf(s.AddAlias(o.t), "as %s", o.t)
}

func (o aliasOption) applyConstructor(c *constructor) error {
	return errors.Wrapf(c.AddAlias(o.t), "as %s", o.t)
}

var _ AliasOption = aliasOption{}
