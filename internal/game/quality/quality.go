// Package quality accumulates quality tiers.
//
// Each tier above the base one adds its own distributable points and
// multiplies the cost by its own factor, so selecting tier N applies every
// tier 1..N: the multipliers compound.
package quality

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/udisondev/gdrcalc/internal/model"
)

// Accumulated is the cumulative effect of all tiers up to the selected one.
type Accumulated struct {
	Points     int32
	Multiplier *big.Rat
}

// Accumulate walks tiers[1..index] in order. Tier 0 is the baseline and
// never contributes, so index 0 yields (0, 1).
func Accumulate(tiers []model.QualityTier, index int) (Accumulated, error) {
	if index < 0 || index >= len(tiers) {
		return Accumulated{}, fmt.Errorf("quality index %d out of range [0, %d)", index, len(tiers))
	}

	var points int64
	mult := big.NewRat(1, 1)
	for i := 1; i <= index; i++ {
		tier := tiers[i]
		factor, err := decimalRat(tier.CostMultiplier)
		if err != nil {
			return Accumulated{}, fmt.Errorf("quality %q: %w", tier.Name, err)
		}
		points += int64(tier.DistributablePoints)
		if points > math.MaxInt32 {
			return Accumulated{}, fmt.Errorf("quality %q: cumulative points overflow int32", tier.Name)
		}
		mult.Mul(mult, factor)
	}
	return Accumulated{Points: int32(points), Multiplier: mult}, nil
}

// decimalRat converts m through its shortest decimal form, so 1.15 becomes
// 23/20 and not the binary value just below it.
func decimalRat(m float64) (*big.Rat, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return nil, fmt.Errorf("non-finite multiplier %v", m)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(m, 'g', -1, 64))
	if !ok {
		return nil, fmt.Errorf("unparsable multiplier %v", m)
	}
	return r, nil
}

// MultiplierFloat is a convenience for display; precision may be lost.
func (a Accumulated) MultiplierFloat() float64 {
	f, _ := a.Multiplier.Float64()
	return f
}
