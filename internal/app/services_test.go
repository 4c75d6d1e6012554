//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/label-service/config"
	"github.com/guttosm/label-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeServices(t *testing.T) {
	t.Run("default layout", func(t *testing.T) {
		components := InitializeServices(config.LayoutConfig{})
		require.NotNil(t, components)
		require.NotNil(t, components.Generator)

		svc, ok := components.Generator.(*service.LabelGeneratorService)
		require.True(t, ok)
		assert.Equal(t, 3, svc.Grid().Columns)
		assert.Equal(t, 10, svc.Grid().Rows)
	})

	t.Run("layout overrides applied", func(t *testing.T) {
		components := InitializeServices(config.LayoutConfig{Columns: 4, Rows: 6})

		svc, ok := components.Generator.(*service.LabelGeneratorService)
		require.True(t, ok)
		assert.Equal(t, 4, svc.Grid().Columns)
		assert.Equal(t, 6, svc.Grid().Rows)
	})

	t.Run("partial override keeps remaining dimension", func(t *testing.T) {
		components := InitializeServices(config.LayoutConfig{Columns: 2})

		svc, ok := components.Generator.(*service.LabelGeneratorService)
		require.True(t, ok)
		assert.Equal(t, 2, svc.Grid().Columns)
		assert.Equal(t, 10, svc.Grid().Rows)
	})
}
