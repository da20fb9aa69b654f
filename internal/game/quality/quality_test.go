package quality

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gdrcalc/internal/data"
	"github.com/udisondev/gdrcalc/internal/model"
)

func TestAccumulate_Base(t *testing.T) {
	t.Parallel()

	tiers := data.MustLoadCatalog().Qualities()
	acc, err := Accumulate(tiers, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(0), acc.Points)
	assert.Equal(t, 0, acc.Multiplier.Cmp(big.NewRat(1, 1)), "base multiplier = %s", acc.Multiplier)
}

func TestAccumulate_Compounds(t *testing.T) {
	t.Parallel()

	tiers := data.MustLoadCatalog().Qualities()
	tests := []struct {
		index      int
		wantPoints int32
		wantMult   *big.Rat
	}{
		{1, 2, big.NewRat(3, 2)},         // Alta Qualità
		{2, 5, big.NewRat(3, 1)},         // ×1.5×2
		{3, 9, big.NewRat(9, 1)},         // ×3
		{4, 13, big.NewRat(45, 1)},       // ×5
		{10, 58, big.NewRat(2812500, 1)}, // Enambre
	}
	for _, tt := range tests {
		acc, err := Accumulate(tiers, tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.wantPoints, acc.Points, "points at %q", tiers[tt.index].Name)
		assert.Equal(t, 0, acc.Multiplier.Cmp(tt.wantMult), "multiplier at %q = %s, want %s",
			tiers[tt.index].Name, acc.Multiplier, tt.wantMult)
	}
}

func TestAccumulate_Monotonic(t *testing.T) {
	t.Parallel()

	tiers := data.MustLoadCatalog().Qualities()
	prev, err := Accumulate(tiers, 0)
	require.NoError(t, err)
	for i := 1; i < len(tiers); i++ {
		acc, err := Accumulate(tiers, i)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, acc.Points, prev.Points, "points drop at %q", tiers[i].Name)
		assert.GreaterOrEqual(t, acc.Multiplier.Cmp(prev.Multiplier), 0, "multiplier drops at %q", tiers[i].Name)
		prev = acc
	}
}

func TestAccumulate_SkipsTierZero(t *testing.T) {
	t.Parallel()

	// Tier 0 values are never read, even if they were not the identity.
	tiers := []model.QualityTier{
		{Name: "odd base", DistributablePoints: 7, CostMultiplier: 9},
		{Name: "next", DistributablePoints: 1, CostMultiplier: 2},
	}
	acc, err := Accumulate(tiers, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(1), acc.Points)
	assert.InDelta(t, 2.0, acc.MultiplierFloat(), 0)
}

func TestAccumulate_OutOfRange(t *testing.T) {
	t.Parallel()

	tiers := data.MustLoadCatalog().Qualities()
	_, err := Accumulate(tiers, -1)
	assert.Error(t, err)
	_, err = Accumulate(tiers, len(tiers))
	assert.Error(t, err)
}

func TestAccumulate_NonFinite(t *testing.T) {
	t.Parallel()

	tiers := []model.QualityTier{
		{Name: "Base", CostMultiplier: 1},
		{Name: "broken", CostMultiplier: math.Inf(1)},
	}
	_, err := Accumulate(tiers, 1)
	assert.Error(t, err)
}

func TestAccumulate_DecimalMultiplier(t *testing.T) {
	t.Parallel()

	tiers := []model.QualityTier{
		{Name: "Base", CostMultiplier: 1},
		{Name: "Buona", DistributablePoints: 1, CostMultiplier: 1.15},
		{Name: "Ottima", DistributablePoints: 1, CostMultiplier: 1.1},
	}
	acc, err := Accumulate(tiers, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Multiplier.Cmp(big.NewRat(23, 20)), "got %s", acc.Multiplier)

	acc, err = Accumulate(tiers, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, acc.Multiplier.Cmp(big.NewRat(253, 200)), "got %s", acc.Multiplier)
}

func TestAccumulate_PointsOverflow(t *testing.T) {
	t.Parallel()

	tiers := []model.QualityTier{
		{Name: "Base", CostMultiplier: 1},
		{Name: "a", DistributablePoints: math.MaxInt32, CostMultiplier: 1},
		{Name: "b", DistributablePoints: 1, CostMultiplier: 1},
	}
	acc, err := Accumulate(tiers, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), acc.Points)

	_, err = Accumulate(tiers, 2)
	assert.Error(t, err)
}
