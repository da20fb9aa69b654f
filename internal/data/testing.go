package data

import "github.com/udisondev/gdrcalc/internal/model"

// BuiltinTables returns a copy of the built-in tables.
// Intended for tests from other packages that need a modified catalog.
func BuiltinTables() Tables {
	t := Tables{
		Weapons:   append([]model.WeaponCategory(nil), weaponCategoryDefs...),
		Armors:    append([]model.ArmorCategory(nil), armorCategoryDefs...),
		Materials: make([]model.Material, len(materialDefs)),
		Nyryl:     cloneMaterial(nyrylDef),
		Qualities: append([]model.QualityTier(nil), qualityDefs...),
	}
	for i := range materialDefs {
		t.Materials[i] = cloneMaterial(materialDefs[i])
	}
	return t
}

// Modifier returns a pointer to v, for optional armor modifiers in test fixtures.
func Modifier(v int32) *int32 { return modifier(v) }
