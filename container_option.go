package di

// ContainerOption is used to configure a new [Container] when calling [NewContainer],
// [Container.NewScope], or [Registry.Add].
//
// Available options:
//   - [WithService] registers a service with a value or constructor function.
//   - [WithConstructor] registers a constructor used by [Scope.Activate].
//   - [WithModule] applies a group of options.
//   - [WithRegistry] applies the options collected by a [Registry].
type ContainerOption interface {
	order() optionOrder
	applyContainer(*Container) error
}

type optionOrder int8

const (
	orderService optionOrder = iota
	orderConstructor
)

func newContainerOption(order optionOrder, fn func(*Container) error) ContainerOption {
	return containerOption{fn: fn, ord: order}
}

type containerOption struct {
	fn  func(*Container) error
	ord optionOrder
}

func (o containerOption) order() optionOrder {
	return o.ord
}

func (o containerOption) applyContainer(c *Container) error {
	return o.fn(c)
}
