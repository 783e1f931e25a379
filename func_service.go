package di

import (
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// funcService is a service created by calling a constructor function.
type funcService struct {
	key           serviceKey
	scope         *Container
	fn            reflect.Value
	deps          []serviceKey
	aliases       []reflect.Type
	lifetime      Lifetime
	closerFactory closerFactory
}

func newFuncService(scope *Container, fn any, opts ...ServiceOption) (*funcService, error) {
	fnType := reflect.TypeOf(fn)

	t, params, err := funcSignature(fnType)
	if err != nil {
		return nil, err
	}

	deps := make([]serviceKey, len(params))
	for i, p := range params {
		deps[i] = serviceKey{Type: p}
	}

	svc := &funcService{
		key:           serviceKey{Type: t},
		scope:         scope,
		fn:            reflect.ValueOf(fn),
		deps:          deps,
		closerFactory: getCloser,
	}

	err = applyOptions(opts, func(opt ServiceOption) error {
		return opt.applyService(svc)
	})
	if err != nil {
		return nil, err
	}

	return svc, nil
}

func (s *funcService) Key() serviceKey {
	return s.key
}

func (s *funcService) Type() reflect.Type {
	return s.key.Type
}

func (s *funcService) SetTag(tag any) {
	s.key.Tag = tag
}

func (s *funcService) Aliases() []reflect.Type {
	return s.aliases
}

func (s *funcService) AddAlias(alias reflect.Type) error {
	if !s.key.Type.AssignableTo(alias) {
		return errors.Errorf("type %s not assignable to %s", s.key.Type, alias)
	}

	s.aliases = append(s.aliases, alias)
	return nil
}

func (s *funcService) Lifetime() Lifetime {
	return s.lifetime
}

func (s *funcService) SetLifetime(l Lifetime) error {
	s.lifetime = l
	return nil
}

func (s *funcService) Scope() *Container {
	return s.scope
}

func (s *funcService) Dependencies() []serviceKey {
	return s.deps
}

func (s *funcService) IsVariadic() bool {
	return s.fn.Type().IsVariadic()
}

func (s *funcService) New(deps []reflect.Value) (any, error) {
	return callFunc(s.fn, deps)
}

func (s *funcService) CloserFor(val any) Closer {
	if val == nil || s.closerFactory == nil {
		return nil
	}

	return s.closerFactory(val)
}

func (s *funcService) SetCloserFactory(cf closerFactory) {
	s.closerFactory = cf
}

func (s *funcService) String() string {
	return s.fn.Type().String()
}

var _ service = (*funcService)(nil)
