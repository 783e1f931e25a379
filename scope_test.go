package di_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/internal/testtypes"
)

func Test_MustResolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithService(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		got := di.MustResolve[testtypes.InterfaceA](context.Background(), c)
		assert.Equal(t, &testtypes.StructA{}, got)
	})

	t.Run("with tag", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithService(testtypes.NewInterfaceA, di.WithTag("tag")),
			di.WithService(func() testtypes.InterfaceA {
				assert.Fail(t, "should not be called")
				return nil
			}),
		)
		require.NoError(t, err)

		got := di.MustResolve[testtypes.InterfaceA](context.Background(), c, di.WithTag("tag"))
		assert.Equal(t, &testtypes.StructA{}, got)
	})

	t.Run("error", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		assert.PanicsWithError(t,
			"resolve testtypes.InterfaceA: service not registered",
			func() {
				di.MustResolve[testtypes.InterfaceA](context.Background(), c)
			},
		)
	})
}

func Test_ResolveAll(t *testing.T) {
	t.Run("registration order", func(t *testing.T) {
		f := &testtypes.Factory{}

		c, err := di.NewContainer(
			di.WithService(f.NewInterfaceA),
			di.WithService(f.NewInterfaceA),
			di.WithService(f.NewInterfaceA),
		)
		require.NoError(t, err)

		got, err := di.ResolveAll[testtypes.InterfaceA](context.Background(), c)
		assert.Equal(t, testtypes.ExpectInterfaceA(3), got)
		assert.NoError(t, err)
		assert.Equal(t, 3, f.Count())
	})

	t.Run("with tag", func(t *testing.T) {
		a := &testtypes.StructA{Tag: "tagged"}

		c, err := di.NewContainer(
			di.WithService(testtypes.NewInterfaceA),
			di.WithService(a, di.As[testtypes.InterfaceA](), di.WithTag("tag")),
		)
		require.NoError(t, err)

		got, err := di.ResolveAll[testtypes.InterfaceA](context.Background(), c, di.WithTag("tag"))
		assert.Equal(t, []testtypes.InterfaceA{a}, got)
		assert.NoError(t, err)
	})

	t.Run("not registered", func(t *testing.T) {
		c, err := di.NewContainer()
		require.NoError(t, err)

		got, err := di.ResolveAll[testtypes.InterfaceA](context.Background(), c)
		LogError(t, err)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, di.ErrServiceNotRegistered)
	})
}
