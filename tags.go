package di

import (
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// WithTag is used to specify the tag associated with a service.
//
// WithTag can be used with:
//   - [WithService]
//   - [Resolve]
//   - [MustResolve]
//   - [Container.Resolve]
//   - [Container.Contains]
func WithTag(tag any) TagOption {
	return tagOption{tag: tag}
}

// WithTagged is used to specify a tag for a service dependency when calling
// [WithService] or [Invoke].
//
// This option can be used multiple times to specify tags for several dependencies.
//
// Example:
//
//	c, err := di.NewContainer(
//		di.WithService(db.NewPrimaryDB, di.WithTag(db.Primary)),
//		di.WithService(db.NewReplicaDB, di.WithTag(db.Replica)),
//		di.WithService(storage.NewReadWriteStore,
//			di.WithTagged[*db.DB](db.Primary),
//		),
//		di.WithService(storage.NewReadOnlyStore,
//			di.WithTagged[*db.DB](db.Replica),
//		),
//	)
//
// This option will return an error if the service does not have a dependency of type Dependency.
func WithTagged[Dependency any](tag any) DependencyTagOption {
	return depTagOption{
		t:   reflect.TypeFor[Dependency](),
		tag: tag,
	}
}

// TagOption is used to specify the tag associated with a service when calling [WithService],
// [Resolve], [Container.Resolve], or [Container.Contains].
type TagOption interface {
	ServiceOption
	ResolveOption
}

// DependencyTagOption is used to specify a tag for a dependency when calling [WithService] or [Invoke].
type DependencyTagOption interface {
	ServiceOption
	InvokeOption
}

type tagOption struct {
	tag any
}

func (o tagOption) applyService(s service) error {
	s.SetTag(o.tag)
	return nil
}

func (o tagOption) applyServiceKey(key serviceKey) serviceKey {
	return serviceKey{
		Type: key.Type,
		Tag:  o.tag,
	}
}

var _ TagOption = tagOption{}

type depTagOption struct {
	t   reflect.Type
	tag any
}

// applyDeps assigns the tag to the first dependency of the right type that does not already have a tag.
//
// The slice is modified in place.
func (o depTagOption) applyDeps(deps []serviceKey) error {
	for i := range deps {
		if deps[i].Type == o.t && deps[i].Tag == nil {
			deps[i].Tag = o.tag
			return nil
		}
	}
	return errors.Errorf("with tagged %s: parameter not found", o.t)
}

func (o depTagOption) applyService(s service) error {
	return o.applyDeps(s.Dependencies())
}

func (o depTagOption) applyInvokeConfig(c *invokeConfig) error {
	return o.applyDeps(c.deps)
}

var _ DependencyTagOption = depTagOption{}
