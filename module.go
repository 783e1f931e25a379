package di

// A Module is a collection of container options.
// It can be used to export a re-usable group of related services.
//
// Example:
//
//	var HandlerModule = di.Module{
//		di.WithService(NewLogger),
//		di.WithConstructor(NewUpperHandler),
//		di.WithConstructor(NewPrefixHandler),
//	}
type Module []ContainerOption

// Modules are flattened before options are applied.
func (Module) applyContainer(*Container) error { return nil }
func (Module) order() optionOrder              { return orderService }

// WithModule applies the options in a [Module] when calling [NewContainer] or [Container.NewScope].
//
// Example:
//
//	c, err := di.NewContainer(
//		di.WithModule(HandlerModule),
//		di.WithService(NewPipeline),
//	)
func WithModule(m Module) ContainerOption {
	return m
}

func flattenModules(opts []ContainerOption) []ContainerOption {
	flat := make([]ContainerOption, 0, len(opts))
	for _, opt := range opts {
		if mod, ok := opt.(Module); ok {
			flat = append(flat, flattenModules(mod)...)
			continue
		}

		flat = append(flat, opt)
	}

	return flat
}
