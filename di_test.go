package di_test

import (
	"context"

	"github.com/sectrean/di-builder/internal/testtypes"
	"github.com/sectrean/di-builder/internal/testutils"
)

var LogError = testutils.LogError

type testContextKey struct{}

func ContextWithTestValue(ctx context.Context, val any) context.Context {
	return context.WithValue(ctx, testContextKey{}, val)
}

// Printer is activated in tests with a mix of injected and resolved parameters.
type Printer struct {
	Prefix Prefix
	A      testtypes.InterfaceA
	Name   Name
}

func NewPrinter(prefix Prefix, a testtypes.InterfaceA, name Name) *Printer {
	return &Printer{Prefix: prefix, A: a, Name: name}
}

type Name string

type Prefix string

// Greeting takes two parameters of the same type.
type Greeting struct {
	From Name
	To   Name
}

func NewGreeting(from, to Name) *Greeting {
	return &Greeting{From: from, To: to}
}
