package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAllocateDesign(t *testing.T) {
	t.Run("splits half the lot for basics", func(t *testing.T) {
		alloc, err := AllocateDesign(200, []DesignOption{{Name: "dormitorio", Area: 20, Price: 1500}})
		require.NoError(t, err)
		require.Equal(t, 100.0, alloc.AreaBasic)
		require.Equal(t, 100.0, alloc.AreaAvailable)
	})

	t.Run("sums areas and prices", func(t *testing.T) {
		alloc, err := AllocateDesign(200, []DesignOption{
			{Name: "dormitorio", Area: 40, Price: 1500},
			{Name: "oficina", Area: 30, Price: 900},
		})
		require.NoError(t, err)
		require.Equal(t, 70.0, alloc.AreaUsed)
		require.Equal(t, 70.0, alloc.OccupancyPct)
		require.Equal(t, 2400.0, alloc.TotalPrice)
	})

	t.Run("rejects options that do not fit", func(t *testing.T) {
		_, err := AllocateDesign(200, []DesignOption{
			{Name: "dormitorio", Area: 60, Price: 1500},
			{Name: "piscina", Area: 50, Price: 3000},
		})
		var insufficient *InsufficientAreaError
		require.True(t, errors.As(err, &insufficient))
		require.Equal(t, 10.0, insufficient.Deficit)
		require.Equal(t, "Área insuficiente. Faltan 10.00 m²", insufficient.Error())
	})

	t.Run("exact fit is allowed", func(t *testing.T) {
		alloc, err := AllocateDesign(100, []DesignOption{{Area: 50, Price: 10}})
		require.NoError(t, err)
		require.Equal(t, 100.0, alloc.OccupancyPct)
	})

	t.Run("zero-valued options count as zero", func(t *testing.T) {
		alloc, err := AllocateDesign(80, []DesignOption{{Name: "terraza"}, {Area: 10, Price: 500}})
		require.NoError(t, err)
		require.Equal(t, 10.0, alloc.AreaUsed)
		require.Equal(t, 500.0, alloc.TotalPrice)
	})

	t.Run("zero available area yields zero occupancy", func(t *testing.T) {
		alloc, err := AllocateDesign(0, []DesignOption{{Area: 0, Price: 0}})
		require.NoError(t, err)
		require.Equal(t, 0.0, alloc.OccupancyPct)
	})
}
