package di_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sectrean/di-builder"
	"github.com/sectrean/di-builder/internal/testtypes"
)

func Test_Registry(t *testing.T) {
	t.Run("add and create container", func(t *testing.T) {
		reg := di.NewRegistry(
			di.WithService(testtypes.NewInterfaceA),
		)
		reg.Add(
			di.WithService(testtypes.NewInterfaceB),
			di.WithConstructor(NewPrinter),
		)
		assert.Equal(t, 3, reg.Len())

		c, err := di.NewContainer(di.WithRegistry(reg))
		require.NoError(t, err)

		assert.True(t, c.Contains(testtypes.TypeInterfaceA))
		assert.True(t, c.Contains(testtypes.TypeInterfaceB))

		_, err = c.Activate(context.Background(), typePrinter, Prefix(""), Name(""))
		assert.NoError(t, err)
	})

	t.Run("snapshot", func(t *testing.T) {
		reg := di.NewRegistry(
			di.WithService(testtypes.NewInterfaceA),
		)

		c, err := di.NewContainer(di.WithRegistry(reg))
		require.NoError(t, err)

		reg.Add(di.WithService(testtypes.NewInterfaceB))

		assert.False(t, c.Contains(testtypes.TypeInterfaceB))
		assert.Len(t, reg.Module(), 2)
	})

	t.Run("captured by service func", func(t *testing.T) {
		reg := di.NewRegistry()
		reg.Add(
			di.WithService(testtypes.NewInterfaceA),
			di.WithService(reg),
		)

		c, err := di.NewContainer(di.WithRegistry(reg))
		require.NoError(t, err)

		got, err := di.Resolve[*di.Registry](context.Background(), c)
		assert.Same(t, reg, got)
		assert.NoError(t, err)
	})

	t.Run("nil", func(t *testing.T) {
		c, err := di.NewContainer(di.WithRegistry(nil))
		LogError(t, err)

		assert.Nil(t, c)
		assert.EqualError(t, err, "new container: with registry: registry is nil")
	})

	t.Run("child scope", func(t *testing.T) {
		c, err := di.NewContainer(
			di.WithService(testtypes.NewInterfaceA),
		)
		require.NoError(t, err)

		reg := di.NewRegistry(di.WithService(testtypes.NewInterfaceB, di.Scoped))
		scope, err := c.NewScope(di.WithRegistry(reg))
		require.NoError(t, err)

		b, err := di.Resolve[testtypes.InterfaceB](context.Background(), scope)
		assert.NotNil(t, b)
		assert.NoError(t, err)
	})
}
