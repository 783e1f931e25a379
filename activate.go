package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

func (c *Container) activate(
	ctx context.Context,
	t reflect.Type,
	args []any,
	visitor resolveVisitor,
) (any, error) {
	if t == nil {
		return nil, errors.New("activate: type is nil")
	}

	if c.closed.Load() {
		return nil, errors.Wrapf(ErrContainerClosed, "activate %s", t)
	}

	val, err := activateType(ctx, c, t, args, visitor)
	if err != nil {
		return nil, errors.Wrapf(err, "activate %s", t)
	}

	return val, nil
}

// activateType calls the constructor for t.
//
// Injected arguments take precedence over the Scope: a parameter bound to an
// argument is never resolved, even if a service of that type is registered.
func activateType(
	ctx context.Context,
	scope *Container,
	t reflect.Type,
	args []any,
	visitor resolveVisitor,
) (any, error) {
	ctor := scope.lookupConstructor(t)
	if ctor == nil {
		return nil, ErrNoConstructor
	}

	in, err := ctor.bind(args)
	if err != nil {
		return nil, err
	}

	var injected *injectedScope
	defer func() {
		if injected != nil {
			injected.setDone()
		}
	}()

	for i, p := range ctor.params {
		if in[i].IsValid() {
			continue
		}

		var val any
		var resolveErr error

		switch p {
		case typeContext:
			val = ctx

		case typeScope:
			if injected == nil {
				injected = newInjectedScope(scope, visitor)
			}
			val = injected

		default:
			optional := i == len(ctor.params)-1 && ctor.IsVariadic()
			val, resolveErr = resolveKey(ctx, scope, serviceKey{Type: p}, visitor, optional)
		}

		if resolveErr != nil {
			return nil, errors.Wrapf(resolveErr, "parameter %d %s", i, p)
		}
		in[i] = safeReflectValue(p, val)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return callFunc(ctor.fn, in)
}
