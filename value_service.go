package di

import (
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// valueService is a service registered with a value instead of a function.
type valueService struct {
	key           serviceKey
	val           any
	scope         *Container
	closerFactory closerFactory
	aliases       []reflect.Type
}

func newValueService(scope *Container, val any, opts ...ServiceOption) (*valueService, error) {
	t := reflect.TypeOf(val)
	if err := validateServiceType(t); err != nil {
		return nil, err
	}

	svc := &valueService{
		key:   serviceKey{Type: t},
		val:   val,
		scope: scope,
	}

	err := applyOptions(opts, func(opt ServiceOption) error {
		return opt.applyService(svc)
	})
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *valueService) Key() serviceKey {
	return s.key
}

func (s *valueService) Type() reflect.Type {
	return s.key.Type
}

func (s *valueService) SetTag(tag any) {
	s.key.Tag = tag
}

func (s *valueService) Aliases() []reflect.Type {
	return s.aliases
}

func (s *valueService) AddAlias(alias reflect.Type) error {
	if !s.key.Type.AssignableTo(alias) {
		return errors.Errorf("type %s not assignable to %s", s.key.Type, alias)
	}

	s.aliases = append(s.aliases, alias)
	return nil
}

func (*valueService) Lifetime() Lifetime {
	return Singleton
}

func (*valueService) SetLifetime(l Lifetime) error {
	if l != Singleton {
		return errors.Errorf("lifetime %s: value services are always Singleton", l)
	}
	return nil
}

func (s *valueService) Scope() *Container {
	return s.scope
}

func (*valueService) Dependencies() []serviceKey {
	return nil
}

func (*valueService) IsVariadic() bool {
	return false
}

func (s *valueService) New([]reflect.Value) (any, error) {
	return s.val, nil
}

func (s *valueService) CloserFor(val any) Closer {
	// The Container does not own values unless a closer was set with an option.
	if val != nil && s.closerFactory != nil {
		return s.closerFactory(val)
	}

	return nil
}

func (s *valueService) SetCloserFactory(cf closerFactory) {
	s.closerFactory = cf
}

func (s *valueService) String() string {
	return s.key.Type.String()
}

var _ service = (*valueService)(nil)
