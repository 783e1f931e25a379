// Package instance provides a fluent builder that creates instances with constructors
// registered in a [di.Container].
//
// A [Builder] holds injected arguments. When [Build] is called, each constructor parameter
// is filled with an injected argument of an assignable type if there is one, and
// resolved from the [di.Scope] otherwise.
//
// Builders are usually created inside a service function, using the [di.Scope] injected
// into that function:
//
//	reg.Add(
//		di.WithService(NewCommonDependency),
//		di.WithConstructor(NewHandler0),
//		di.WithConstructor(NewHandler1),
//		di.WithConstructor(NewPipeline),
//		di.WithService(func(ctx context.Context, s di.Scope) (*Pipeline, error) {
//			b, err := instance.New(s, reg)
//			if err != nil {
//				return nil, err
//			}
//
//			_, err = instance.BuildMany[Handler](ctx, b,
//				func(ctx context.Context, b *instance.Builder) (Handler, error) {
//					return instance.Build[*Handler0](ctx, b)
//				},
//				func(ctx context.Context, b *instance.Builder) (Handler, error) {
//					return instance.Build[*Handler1](ctx, b)
//				},
//			)
//			if err != nil {
//				return nil, err
//			}
//
//			// NewPipeline(handlers []Handler) *Pipeline
//			return instance.Build[*Pipeline](ctx, b)
//		}),
//	)
//
// Extensions that add arguments, like options.WithNamed, take a *Builder and return it.
// Hand a [Builder.Copy] to code you do not control so its arguments do not flow back
// into your builder.
package instance
