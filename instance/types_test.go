package instance_test

import (
	"github.com/sectrean/di-builder/internal/testutils"
)

var LogError = testutils.LogError

type CommonDependency interface {
	Common()
}

type commonDependency struct {
	name string
}

func (*commonDependency) Common() {}

func NewCommonDependency() CommonDependency {
	return &commonDependency{name: "registered"}
}

type Handler interface {
	Handle() int
}

type Handler0 struct {
	Dep CommonDependency
}

func NewHandler0(dep CommonDependency) *Handler0 {
	return &Handler0{Dep: dep}
}

func (*Handler0) Handle() int {
	return 0
}

type Handler1 struct{}

func NewHandler1() *Handler1 {
	return &Handler1{}
}

func (*Handler1) Handle() int {
	return 1
}

type Handler2 struct {
	Dep CommonDependency
}

func NewHandler2(dep CommonDependency) *Handler2 {
	return &Handler2{Dep: dep}
}

func (*Handler2) Handle() int {
	return 2
}

type Handler3 struct{}

func NewHandler3() *Handler3 {
	return &Handler3{}
}

func (*Handler3) Handle() int {
	return 3
}

// NumberHandler returns the number it was built with.
type NumberHandler struct {
	N int
}

func NewNumberHandler(n int) *NumberHandler {
	return &NumberHandler{N: n}
}

func (h *NumberHandler) Handle() int {
	return h.N
}

type Pipeline struct {
	Handlers []Handler
}

func NewPipeline(handlers []Handler) *Pipeline {
	return &Pipeline{Handlers: handlers}
}

func (p *Pipeline) Process() []int {
	out := make([]int, 0, len(p.Handlers))
	for _, h := range p.Handlers {
		out = append(out, h.Handle())
	}
	return out
}
