package instance_test

import (
	"context"
	stderrors "errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/instance"
)

func Test_BuildMany(t *testing.T) {
	t.Run("results in order", func(t *testing.T) {
		b := newBuilder(t,
			di.WithConstructor(NewNumberHandler),
		)

		var factories []instance.Factory[Handler]
		for i := range 3 {
			factories = append(factories, func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*NumberHandler](ctx, b.With(i))
			})
		}

		got, err := instance.BuildMany(context.Background(), b, factories...)
		require.NoError(t, err)

		want := []Handler{&NumberHandler{N: 0}, &NumberHandler{N: 1}, &NumberHandler{N: 2}}
		assert.Equal(t, want, got)

		// The results are injected as a single argument.
		assert.Equal(t, []any{want}, b.Args())
	})

	t.Run("factories get empty copies", func(t *testing.T) {
		b := newBuilder(t).With("parent")
		var seen []*instance.Builder

		factory := func(_ context.Context, c *instance.Builder) (int, error) {
			assert.Empty(t, c.Args())
			assert.NotSame(t, b, c)
			assert.Same(t, b.Registry(), c.Registry())

			c.With("leak")
			seen = append(seen, c)
			return len(seen), nil
		}

		got, err := instance.BuildMany[int](context.Background(), b, factory, factory)
		require.NoError(t, err)

		assert.Equal(t, []int{1, 2}, got)
		assert.NotSame(t, seen[0], seen[1])
		assert.Equal(t, []any{"parent", []int{1, 2}}, b.Args())
	})

	t.Run("results not shared with argument", func(t *testing.T) {
		b := newBuilder(t)
		factory := func(context.Context, *instance.Builder) (int, error) {
			return 1, nil
		}

		got, err := instance.BuildMany[int](context.Background(), b, factory, factory)
		require.NoError(t, err)

		got[0] = 100
		assert.Equal(t, []any{[]int{1, 1}}, b.Args())
	})

	t.Run("no factories", func(t *testing.T) {
		b := newBuilder(t)

		got, err := instance.BuildMany[Handler](context.Background(), b)
		require.NoError(t, err)

		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, []any{[]Handler{}}, b.Args())
	})

	t.Run("factory error", func(t *testing.T) {
		b := newBuilder(t).With("parent")
		factoryErr := stderrors.New("factory error")
		calls := 0

		got, err := instance.BuildMany[int](context.Background(), b,
			func(context.Context, *instance.Builder) (int, error) {
				calls++
				return 0, nil
			},
			func(context.Context, *instance.Builder) (int, error) {
				calls++
				return 0, factoryErr
			},
			func(context.Context, *instance.Builder) (int, error) {
				calls++
				return 0, nil
			},
		)

		assert.Nil(t, got)
		assert.Same(t, factoryErr, err)
		assert.Equal(t, 2, calls)
		assert.Equal(t, []any{"parent"}, b.Args())
	})

	t.Run("nil builder", func(t *testing.T) {
		got, err := instance.BuildMany[int](context.Background(), nil)
		LogError(t, err)

		assert.Nil(t, got)
		assert.EqualError(t, err, "build many: invalid argument: builder is nil")
		assert.ErrorIs(t, err, instance.ErrInvalidArgument)
	})

	t.Run("nil factory", func(t *testing.T) {
		b := newBuilder(t)
		called := false

		got, err := instance.BuildMany[int](context.Background(), b,
			func(context.Context, *instance.Builder) (int, error) {
				called = true
				return 0, nil
			},
			nil,
		)
		LogError(t, err)

		assert.Nil(t, got)
		assert.EqualError(t, err, "build many: invalid argument: factory 1 is nil")
		assert.ErrorIs(t, err, instance.ErrInvalidArgument)
		assert.False(t, called)
		assert.Empty(t, b.Args())
	})
}

func Test_BuildManyFrom(t *testing.T) {
	t.Run("results in order", func(t *testing.T) {
		b := newBuilder(t,
			di.WithConstructor(NewNumberHandler),
		)

		got, err := instance.BuildManyFrom(context.Background(), b, slices.Values([]int{3, 1, 2}),
			func(ctx context.Context, b *instance.Builder, n int) (Handler, error) {
				return instance.Build[*NumberHandler](ctx, b.With(n))
			},
		)
		require.NoError(t, err)

		want := []Handler{&NumberHandler{N: 3}, &NumberHandler{N: 1}, &NumberHandler{N: 2}}
		assert.Equal(t, want, got)
		assert.Equal(t, []any{want}, b.Args())
	})

	t.Run("results not shared with argument", func(t *testing.T) {
		b := newBuilder(t)

		got, err := instance.BuildManyFrom(context.Background(), b, slices.Values([]int{1, 2}),
			func(_ context.Context, _ *instance.Builder, n int) (int, error) {
				return n, nil
			},
		)
		require.NoError(t, err)

		got[0] = 100
		assert.Equal(t, []any{[]int{1, 2}}, b.Args())
	})

	t.Run("empty source", func(t *testing.T) {
		b := newBuilder(t)

		got, err := instance.BuildManyFrom(context.Background(), b, slices.Values([]string(nil)),
			func(context.Context, *instance.Builder, string) (int, error) {
				assert.Fail(t, "should not be called")
				return 0, nil
			},
		)
		require.NoError(t, err)

		assert.Equal(t, []int{}, got)
		assert.Equal(t, []any{[]int{}}, b.Args())
	})

	t.Run("fn gets empty copies", func(t *testing.T) {
		b := newBuilder(t).With("parent")

		_, err := instance.BuildManyFrom(context.Background(), b, slices.Values([]string{"a", "b"}),
			func(_ context.Context, c *instance.Builder, s string) (string, error) {
				assert.Empty(t, c.Args())
				c.With(s)
				return s, nil
			},
		)
		require.NoError(t, err)

		assert.Equal(t, []any{"parent", []string{"a", "b"}}, b.Args())
	})

	t.Run("fn error stops iteration", func(t *testing.T) {
		b := newBuilder(t)
		fnErr := stderrors.New("fn error")
		var visited []int

		got, err := instance.BuildManyFrom(context.Background(), b, slices.Values([]int{1, 2, 3}),
			func(_ context.Context, _ *instance.Builder, n int) (int, error) {
				visited = append(visited, n)
				if n == 2 {
					return 0, fnErr
				}
				return n, nil
			},
		)

		assert.Nil(t, got)
		assert.Same(t, fnErr, err)
		assert.Equal(t, []int{1, 2}, visited)
		assert.Empty(t, b.Args())
	})

	t.Run("nil builder", func(t *testing.T) {
		got, err := instance.BuildManyFrom(context.Background(), nil, slices.Values([]int{1}),
			func(context.Context, *instance.Builder, int) (int, error) { return 0, nil },
		)

		assert.Nil(t, got)
		assert.EqualError(t, err, "build many from: invalid argument: builder is nil")
	})

	t.Run("nil source", func(t *testing.T) {
		b := newBuilder(t)

		got, err := instance.BuildManyFrom(context.Background(), b, nil,
			func(context.Context, *instance.Builder, int) (int, error) { return 0, nil },
		)
		LogError(t, err)

		assert.Nil(t, got)
		assert.EqualError(t, err, "build many from: invalid argument: source is nil")
		assert.ErrorIs(t, err, instance.ErrInvalidArgument)
	})

	t.Run("nil fn", func(t *testing.T) {
		b := newBuilder(t)

		got, err := instance.BuildManyFrom[int, int](context.Background(), b, slices.Values([]int{1}), nil)
		LogError(t, err)

		assert.Nil(t, got)
		assert.EqualError(t, err, "build many from: invalid argument: fn is nil")
		assert.ErrorIs(t, err, instance.ErrInvalidArgument)
	})
}

// Two pipelines built from their own handlers share one registered dependency.
func Test_PipelinesWithSharedDependency(t *testing.T) {
	newPipeline := func(reg *di.Registry, factories ...instance.Factory[Handler]) any {
		return func(ctx context.Context, s di.Scope) (*Pipeline, error) {
			b, err := instance.New(s, reg)
			if err != nil {
				return nil, err
			}

			_, err = instance.BuildMany(ctx, b, factories...)
			if err != nil {
				return nil, err
			}

			return instance.Build[*Pipeline](ctx, b)
		}
	}

	reg := di.NewRegistry()
	reg.Add(
		di.WithService(NewCommonDependency),
		di.WithConstructor(NewHandler0),
		di.WithConstructor(NewHandler1),
		di.WithConstructor(NewHandler2),
		di.WithConstructor(NewHandler3),
		di.WithConstructor(NewPipeline),
		di.WithService(newPipeline(reg,
			func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*Handler0](ctx, b)
			},
			func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*Handler1](ctx, b)
			},
		)),
		di.WithService(newPipeline(reg,
			func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*Handler2](ctx, b)
			},
			func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*Handler3](ctx, b)
			},
		)),
	)

	c, err := di.NewContainer(di.WithRegistry(reg))
	require.NoError(t, err)

	ctx := context.Background()
	pipelines, err := di.ResolveAll[*Pipeline](ctx, c)
	require.NoError(t, err)
	require.Len(t, pipelines, 2)

	assert.Equal(t, []int{0, 1}, pipelines[0].Process())
	assert.Equal(t, []int{2, 3}, pipelines[1].Process())

	// Handlers are not shared between pipelines, but the dependency is.
	dep, err := di.Resolve[CommonDependency](ctx, c)
	require.NoError(t, err)
	assert.Same(t, dep, pipelines[0].Handlers[0].(*Handler0).Dep)
	assert.Same(t, dep, pipelines[1].Handlers[0].(*Handler2).Dep)

	// Singletons are built once.
	again, err := di.ResolveAll[*Pipeline](ctx, c)
	require.NoError(t, err)
	assert.Same(t, pipelines[0], again[0])
	assert.Same(t, pipelines[1], again[1])
}

type closeRecorder struct {
	name   string
	closed *[]string
}

func (r *closeRecorder) Handle() int {
	return len(r.name)
}

func (r *closeRecorder) Close() {
	*r.closed = append(*r.closed, r.name)
}

// Only the value returned by the service function is closed with the Container.
func Test_BuiltInstancesNotClosed(t *testing.T) {
	var closed []string

	reg := di.NewRegistry()
	reg.Add(
		di.WithConstructor(func() *closeRecorder {
			return &closeRecorder{name: "handler", closed: &closed}
		}),
		di.WithService(func(ctx context.Context, s di.Scope) (*closeRecorder, error) {
			b, err := instance.New(s, reg)
			if err != nil {
				return nil, err
			}

			_, err = instance.BuildMany(ctx, b, func(ctx context.Context, b *instance.Builder) (Handler, error) {
				return instance.Build[*closeRecorder](ctx, b)
			})
			if err != nil {
				return nil, err
			}

			return &closeRecorder{name: "service", closed: &closed}, nil
		}),
	)

	c, err := di.NewContainer(di.WithRegistry(reg))
	require.NoError(t, err)

	ctx := context.Background()
	_, err = di.Resolve[*closeRecorder](ctx, c)
	require.NoError(t, err)

	err = c.Close(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"service"}, closed)
}
