package model

import (
	"fmt"
	"strings"
)

// ItemKind selects which calculator path applies: weapon or armor.
type ItemKind int32

const (
	ItemKindWeapon ItemKind = iota
	ItemKindArmor
)

// String returns human-readable item kind name.
func (k ItemKind) String() string {
	switch k {
	case ItemKindWeapon:
		return "Weapon"
	case ItemKindArmor:
		return "Armor"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k ItemKind) Valid() bool {
	return k == ItemKindWeapon || k == ItemKindArmor
}

// ParseItemKind accepts "weapon"/"armor" and the Italian "arma"/"armatura"
// (case-insensitive).
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weapon", "arma", "armi":
		return ItemKindWeapon, nil
	case "armor", "armour", "armatura", "armature":
		return ItemKindArmor, nil
	default:
		return 0, fmt.Errorf("unknown item kind %q", s)
	}
}

// WeaponSubtype — Mischia (melee) или Distanza (ranged).
type WeaponSubtype int32

const (
	WeaponMelee WeaponSubtype = iota
	WeaponRanged
)

// String returns the Italian label used by the tables.
func (s WeaponSubtype) String() string {
	switch s {
	case WeaponMelee:
		return "Mischia"
	case WeaponRanged:
		return "Distanza"
	default:
		return "Unknown"
	}
}

// ParseWeaponSubtype accepts "Mischia"/"melee" and "Distanza"/"ranged".
func ParseWeaponSubtype(s string) (WeaponSubtype, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mischia", "melee":
		return WeaponMelee, nil
	case "distanza", "ranged":
		return WeaponRanged, nil
	default:
		return 0, fmt.Errorf("unknown weapon subtype %q", s)
	}
}

// WeaponCategory — базовые характеристики категории оружия.
type WeaponCategory struct {
	Name      string
	Subtype   WeaponSubtype
	Precision int32
	Damage    int32
	Hits      int32
	Threshold int32
}

// IsRanged reports whether the ranged hits/threshold override applies.
func (c WeaponCategory) IsRanged() bool { return c.Subtype == WeaponRanged }

// ArmorCategory — базовые характеристики категории брони.
type ArmorCategory struct {
	Name                    string
	PhysicalDamageReduction int32
	MagicalProtection       int32
	Threshold               int32
	Hits                    int32
	BaseWeight              int32
	Penalty                 string // empty when the category has no penalty note
}

// Material is a crafting material. Weapon modifiers are always present;
// armor modifiers are optional and a nil pointer counts as zero.
type Material struct {
	Name      string
	Precision int32
	Damage    int32
	Hits      int32
	Threshold int32

	PhysicalDamageReduction *int32
	MagicalProtection       *int32

	// CostMO is the price of one weight unit in MO.
	CostMO int64
}

// PDR returns the physical damage reduction modifier, absent treated as 0.
func (m Material) PDR() int32 {
	if m.PhysicalDamageReduction == nil {
		return 0
	}
	return *m.PhysicalDamageReduction
}

// MP returns the magical protection modifier, absent treated as 0.
func (m Material) MP() int32 {
	if m.MagicalProtection == nil {
		return 0
	}
	return *m.MagicalProtection
}

// QualityTier is one rank of crafting quality. Points and multiplier are
// marginal: they compound with every lower tier.
type QualityTier struct {
	Name                string
	DistributablePoints int32
	CostMultiplier      float64
}
