// Package forge computes the final stats and cost of a crafted weapon or armor.
//
// Calculation flow:
//  1. Resolve category (per item kind), material and quality by exact name
//  2. Accumulate quality tiers up to the selected one (points, compounded multiplier)
//  3. Cost = (material + optional Nyryl) × weight × multiplier, rounded and formatted
//  4. Stats = category base + optional Nyryl + material; ranged weapons then
//     reset hits to the category base and threshold to 0
//
// A Calculator holds only read-only state and may be shared between goroutines.
package forge

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/udisondev/gdrcalc/internal/data"
	"github.com/udisondev/gdrcalc/internal/game/cost"
	"github.com/udisondev/gdrcalc/internal/game/quality"
	"github.com/udisondev/gdrcalc/internal/model"
)

// Calculator turns a selection into a Result.
type Calculator struct {
	catalog *data.Catalog
	costs   *cost.Formatter
}

// NewCalculator creates a Calculator over catalog. A nil formatter means cost.Default().
func NewCalculator(catalog *data.Catalog, costs *cost.Formatter) *Calculator {
	if costs == nil {
		costs = cost.Default()
	}
	return &Calculator{catalog: catalog, costs: costs}
}

// Catalog returns the tables the calculator reads.
func (c *Calculator) Catalog() *data.Catalog { return c.catalog }

// Formatter returns the cost formatter in use.
func (c *Calculator) Formatter() *cost.Formatter { return c.costs }

// selection is a fully resolved input.
type selection struct {
	weapon   model.WeaponCategory
	armor    model.ArmorCategory
	material model.Material
	quality  int
}

// Calculate validates in and computes the result. On any invalid selection
// it returns an error matching ErrInvalidSelection and no result.
func (c *Calculator) Calculate(in model.CalculationInput) (*model.Result, error) {
	sel, err := c.resolve(in)
	if err != nil {
		slog.Debug("selection rejected", "kind", in.Kind, "category", in.CategoryName, "err", err)
		return nil, err
	}

	acc, err := quality.Accumulate(c.catalog.Qualities(), sel.quality)
	if err != nil {
		return nil, fmt.Errorf("accumulating quality %q: %w", in.QualityName, err)
	}

	nyryl := c.catalog.Nyryl()
	raw := new(big.Rat).SetInt(BaseCost(sel.material, nyryl, in.UseNyryl, in.Weight))
	raw.Mul(raw, acc.Multiplier)

	costText, costMO, err := c.costs.FormatRounded(raw)
	if err != nil {
		return nil, fmt.Errorf("formatting cost: %w", err)
	}

	var res *model.Result
	switch in.Kind {
	case model.ItemKindWeapon:
		stats := ComposeWeapon(sel.weapon, sel.material, nyryl, in.UseNyryl)
		res = model.NewResult(stats, acc.Points, costText, costMO, "")
	default:
		stats := ComposeArmor(sel.armor, sel.material, nyryl, in.UseNyryl)
		res = model.NewResult(stats, acc.Points, costText, costMO, sel.armor.Penalty)
	}

	slog.Debug("item calculated",
		"kind", in.Kind,
		"category", in.CategoryName,
		"material", in.MaterialName,
		"quality", in.QualityName,
		"nyryl", in.UseNyryl,
		"weight", in.Weight,
		"points", res.DistributablePoints,
		"cost", res.Cost)
	return res, nil
}

func (c *Calculator) resolve(in model.CalculationInput) (selection, error) {
	var sel selection

	if !in.Kind.Valid() {
		return sel, fmt.Errorf("%w: %d", ErrInvalidItemKind, in.Kind)
	}
	if in.Kind == model.ItemKindWeapon {
		cat, ok := c.catalog.WeaponCategory(in.CategoryName)
		if !ok {
			return sel, newLookupError(TableWeaponCategory, in.CategoryName, c.catalog.CategoryNames(in.Kind))
		}
		sel.weapon = cat
	} else {
		cat, ok := c.catalog.ArmorCategory(in.CategoryName)
		if !ok {
			return sel, newLookupError(TableArmorCategory, in.CategoryName, c.catalog.CategoryNames(in.Kind))
		}
		sel.armor = cat
	}

	mat, ok := c.catalog.Material(in.MaterialName)
	if !ok {
		return sel, newLookupError(TableMaterial, in.MaterialName, c.catalog.MaterialNames())
	}
	sel.material = mat

	idx, ok := c.catalog.QualityIndex(in.QualityName)
	if !ok {
		return sel, newLookupError(TableQuality, in.QualityName, c.catalog.QualityNames())
	}
	sel.quality = idx

	if in.Weight < 1 {
		return sel, fmt.Errorf("%w: got %d", ErrInvalidQuantity, in.Weight)
	}
	return sel, nil
}

// BaseCost is the cost in MO before the quality multiplier:
// material.CostMO × weight, plus nyryl.CostMO × weight when useNyryl is set.
func BaseCost(material, nyryl model.Material, useNyryl bool, weight int64) *big.Int {
	w := big.NewInt(weight)
	total := new(big.Int).Mul(big.NewInt(material.CostMO), w)
	if useNyryl {
		total.Add(total, new(big.Int).Mul(big.NewInt(nyryl.CostMO), w))
	}
	return total
}

// ComposeWeapon sums category, optional Nyryl and material modifiers.
// Modifiers are flat: weight does not scale them.
func ComposeWeapon(cat model.WeaponCategory, mat, nyryl model.Material, useNyryl bool) model.WeaponStats {
	s := model.WeaponStats{
		Precision: cat.Precision,
		Damage:    cat.Damage,
		Hits:      cat.Hits,
		Threshold: cat.Threshold,
	}

	if useNyryl {
		s.Precision += nyryl.Precision
		s.Damage += nyryl.Damage
		s.Hits += nyryl.Hits
		s.Threshold += nyryl.Threshold
	}

	s.Precision += mat.Precision
	s.Damage += mat.Damage
	s.Hits += mat.Hits
	s.Threshold += mat.Threshold

	// Ranged weapons keep the category's hits and never have a threshold,
	// whatever the materials add.
	if cat.IsRanged() {
		s.Hits = cat.Hits
		s.Threshold = 0
	}
	return s
}

// ComposeArmor sums category, optional Nyryl and material modifiers.
// Missing armor modifiers on a material count as 0.
func ComposeArmor(cat model.ArmorCategory, mat, nyryl model.Material, useNyryl bool) model.ArmorStats {
	s := model.ArmorStats{
		PhysicalDamageReduction: cat.PhysicalDamageReduction,
		MagicalProtection:       cat.MagicalProtection,
		Hits:                    cat.Hits,
		Threshold:               cat.Threshold,
		BaseWeight:              cat.BaseWeight,
	}

	if useNyryl {
		s.PhysicalDamageReduction += nyryl.PDR()
		s.MagicalProtection += nyryl.MP()
		s.Hits += nyryl.Hits
		s.Threshold += nyryl.Threshold
	}

	s.PhysicalDamageReduction += mat.PDR()
	s.MagicalProtection += mat.MP()
	s.Hits += mat.Hits
	s.Threshold += mat.Threshold
	return s
}
