package di

import (
	"context"
	"reflect"

	"github.com/sectrean/di-builder/internal/errors"
)

// These are commonly used types.
var (
	typeError   = reflect.TypeFor[error]()
	typeContext = reflect.TypeFor[context.Context]()
	typeScope   = reflect.TypeFor[Scope]()
)

func safeReflectValue(t reflect.Type, val any) reflect.Value {
	if val == nil {
		return reflect.Zero(t)
	}

	return reflect.ValueOf(val)
}

// funcSignature inspects a constructor function.
// It returns the type the function creates and the types of its parameters.
func funcSignature(fnType reflect.Type) (reflect.Type, []reflect.Type, error) {
	var t reflect.Type
	switch {
	case fnType.NumOut() == 1:
		t = fnType.Out(0)
	case fnType.NumOut() == 2 && fnType.Out(1) == typeError:
		t = fnType.Out(0)
	default:
		return nil, nil, errors.New("function must return Service or (Service, error)")
	}

	if err := validateServiceType(t); err != nil {
		return nil, nil, err
	}

	params := make([]reflect.Type, fnType.NumIn())
	for i := range fnType.NumIn() {
		params[i] = fnType.In(i)
	}

	return t, params, nil
}

// callFunc calls fn and splits the results into a value and an error.
func callFunc(fn reflect.Value, in []reflect.Value) (any, error) {
	var out []reflect.Value
	if fn.Type().IsVariadic() {
		out = fn.CallSlice(in)
	} else {
		out = fn.Call(in)
	}

	val := out[0].Interface()

	var err error
	if len(out) == 2 {
		err, _ = out[1].Interface().(error)
	}

	return val, err
}

// Apply functional options and join any errors together.
func applyOptions[O any](opts []O, f func(O) error) error {
	var errs errors.MultiError
	for _, o := range opts {
		errs = errs.Append(f(o))
	}

	return errs.Join()
}
