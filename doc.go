/*
Package di is a dependency injection container built for instance builders.

A [Container] resolves services registered with [WithService] and creates instances of
types registered with [WithConstructor]. Constructors are activated with [Scope.Activate],
which takes explicit arguments first and resolves the remaining parameters from the Container.
The instance builder in package instance is built on top of Activate.

Registrations are usually collected in a [Registry] during startup:

	reg := di.NewRegistry()
	reg.Add(
		di.WithService(NewCommonDependency),
		di.WithConstructor(NewHandler0),
		di.WithConstructor(NewHandler1),
		di.WithConstructor(NewPipeline),
		di.WithService(func(ctx context.Context, s di.Scope) (*Pipeline, error) {
			b, err := instance.New(s, reg)
			if err != nil {
				return nil, err
			}

			_, err = instance.BuildMany(ctx, b,
				func(ctx context.Context, b *instance.Builder) (Handler, error) {
					return instance.Build[*Handler0](ctx, b)
				},
				func(ctx context.Context, b *instance.Builder) (Handler, error) {
					return instance.Build[*Handler1](ctx, b)
				},
			)
			if err != nil {
				return nil, err
			}

			return instance.Build[*Pipeline](ctx, b)
		}),
	)

	c, err := di.NewContainer(di.WithRegistry(reg))
*/
package di
