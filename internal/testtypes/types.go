// Package testtypes holds small service types used by the container tests.
package testtypes

import (
	"context"
	"reflect"
)

var (
	TypeStructA    = reflect.TypeFor[StructA]()
	TypeStructAPtr = reflect.TypeFor[*StructA]()
	TypeInterfaceA = reflect.TypeFor[InterfaceA]()

	TypeStructBPtr = reflect.TypeFor[*StructB]()
	TypeInterfaceB = reflect.TypeFor[InterfaceB]()

	TypeInterfaceC = reflect.TypeFor[InterfaceC]()
)

type InterfaceA interface {
	A()
	Close(context.Context) error
}

type InterfaceB interface {
	B()
	Close(context.Context)
}

type InterfaceC interface {
	C()
	Close() error
}

// StructA carries a Tag so tests can tell instances apart.
type StructA struct {
	Tag any
}

func (StructA) A()                          {}
func (StructA) Close(context.Context) error { return nil }

type StructB struct {
	A InterfaceA
}

func (StructB) B()                    {}
func (StructB) Close(context.Context) {}

type StructC struct {
	A InterfaceA
	B InterfaceB
}

func (StructC) C()           {}
func (StructC) Close() error { return nil }

func NewInterfaceA() InterfaceA {
	return &StructA{}
}

func NewStructAPtr() *StructA {
	return &StructA{}
}

func NewInterfaceB(a InterfaceA) InterfaceB {
	return &StructB{A: a}
}

func NewStructBPtr(a *StructA) *StructB {
	return &StructB{A: a}
}

func NewInterfaceC(a InterfaceA, b InterfaceB) InterfaceC {
	return &StructC{A: a, B: b}
}
