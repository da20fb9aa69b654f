package model

import "math/big"

// CalculationInput is the selection the calculator works on.
type CalculationInput struct {
	Kind         ItemKind
	CategoryName string
	MaterialName string
	QualityName  string
	UseNyryl     bool
	Weight       int64 // weight/size multiplier, >= 1
}

// Stats is the per-kind stat bundle of a Result.
// Implemented only by WeaponStats and ArmorStats.
type Stats interface {
	Kind() ItemKind
	isStats()
}

// WeaponStats — итоговые характеристики оружия.
type WeaponStats struct {
	Precision int32
	Damage    int32
	Hits      int32
	Threshold int32
}

func (WeaponStats) Kind() ItemKind { return ItemKindWeapon }
func (WeaponStats) isStats()       {}

// ArmorStats — итоговые характеристики брони.
type ArmorStats struct {
	PhysicalDamageReduction int32
	MagicalProtection       int32
	Hits                    int32
	Threshold               int32
	BaseWeight              int32
}

func (ArmorStats) Kind() ItemKind { return ItemKindArmor }
func (ArmorStats) isStats()       {}

// Result is the outcome of one calculation. It is built fresh per call and
// not modified afterwards.
type Result struct {
	Stats               Stats
	DistributablePoints int32
	Cost                string
	Penalty             string // armor only; empty when absent

	costMO *big.Int
}

// NewResult assembles a Result. costMO is the rounded cost in MO and is copied.
func NewResult(stats Stats, points int32, cost string, costMO *big.Int, penalty string) *Result {
	r := &Result{
		Stats:               stats,
		DistributablePoints: points,
		Cost:                cost,
		Penalty:             penalty,
	}
	if costMO != nil {
		r.costMO = new(big.Int).Set(costMO)
	}
	return r
}

// CostMO returns a copy of the rounded cost in MO.
func (r *Result) CostMO() *big.Int {
	if r.costMO == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.costMO)
}

// Weapon returns the weapon stats, ok=false for an armor result.
func (r *Result) Weapon() (WeaponStats, bool) {
	s, ok := r.Stats.(WeaponStats)
	return s, ok
}

// Armor returns the armor stats, ok=false for a weapon result.
func (r *Result) Armor() (ArmorStats, bool) {
	s, ok := r.Stats.(ArmorStats)
	return s, ok
}
