package data

import "github.com/udisondev/gdrcalc/internal/model"

// Built-in tables of the "GDR" item rules. Order matters: it is the order
// shown to users, and for qualityDefs it is the accumulation order.

var weaponCategoryDefs = []model.WeaponCategory{
	{Name: "Armi Leggere", Subtype: model.WeaponMelee, Precision: 2, Damage: 1, Hits: 1, Threshold: 1},
	{Name: "Armi Bilanciate", Subtype: model.WeaponMelee, Precision: 1, Damage: 2, Hits: 2, Threshold: 1},
	{Name: "Armi Pesanti", Subtype: model.WeaponMelee, Precision: 0, Damage: 4, Hits: 3, Threshold: 4},
	{Name: "Armi a Distanza Precise", Subtype: model.WeaponRanged, Precision: 2, Damage: 1, Hits: 1, Threshold: 0},
	{Name: "Armi a Distanza Bilanciate", Subtype: model.WeaponRanged, Precision: 1, Damage: 2, Hits: 1, Threshold: 0},
	{Name: "Armi a Distanza Pesanti", Subtype: model.WeaponRanged, Precision: 0, Damage: 6, Hits: 1, Threshold: 0},
}

var armorCategoryDefs = []model.ArmorCategory{
	{Name: "Armature Leggere", PhysicalDamageReduction: 2, MagicalProtection: 2, Threshold: 4, Hits: 1, BaseWeight: 2},
	{Name: "Armature Medie", PhysicalDamageReduction: 4, MagicalProtection: 4, Threshold: 6, Hits: 2, BaseWeight: 4},
	{
		Name: "Armature Pesanti", PhysicalDamageReduction: 6, MagicalProtection: 6, Threshold: 8, Hits: 4, BaseWeight: 8,
		Penalty: "Penalità di 1 taglia dado sulle prove di Destrezza e Prontezza.",
	},
}

// Costs are per weight unit, in MO. The top materials exceed int32.
var materialDefs = []model.Material{
	{Name: "Legno", Precision: 1, Damage: 0, Hits: 0, Threshold: 0, CostMO: 1},
	{Name: "Cuoio", Precision: 0, Damage: 0, Hits: 0, Threshold: 0, CostMO: 1},
	{Name: "Ferro", Precision: 1, Damage: 3, Hits: 1, Threshold: 5, CostMO: 1},
	{Name: "Bronzo", Precision: 2, Damage: 2, Hits: 1, Threshold: 5, CostMO: 1},
	{Name: "Acciaio", Precision: 5, Damage: 5, Hits: 2, Threshold: 9, CostMO: 100},
	{Name: "Xama", Precision: 4, Damage: 3, Hits: 3, Threshold: 5, CostMO: 150},
	{Name: "Settimo Metallo", Precision: 7, Damage: 5, Hits: 4, Threshold: 9, CostMO: 1000},
	{Name: "Cristallo Nero", Precision: 9, Damage: 7, Hits: 5, Threshold: 10, CostMO: 10000},
	{Name: "Portal", Precision: 9, Damage: 10, Hits: 8, Threshold: 11, CostMO: 150000000},
	{Name: "Mithril", Precision: 11, Damage: 8, Hits: 7, Threshold: 10, CostMO: 300000000},
	{Name: "Scaglie di Drago", Precision: 12, Damage: 12, Hits: 10, Threshold: 12, CostMO: 2000000000},
	{Name: "Legno di Quercia", Precision: 7, Damage: 3, Hits: 5, Threshold: 6, CostMO: 2000000000},
}

// nyrylDef is the special material; it carries both weapon and armor modifiers.
var nyrylDef = model.Material{
	Name:                    "Nyryl",
	Precision:               3,
	Damage:                  3,
	Hits:                    3,
	Threshold:               3,
	PhysicalDamageReduction: modifier(3),
	MagicalProtection:       modifier(3),
	CostMO:                  100000000,
}

var qualityDefs = []model.QualityTier{
	{Name: "Base", DistributablePoints: 0, CostMultiplier: 1.0},
	{Name: "Alta Qualità", DistributablePoints: 2, CostMultiplier: 1.5},
	{Name: "Qualità Estrema", DistributablePoints: 3, CostMultiplier: 2.0},
	{Name: "Qualità Leggendaria Grado 1", DistributablePoints: 4, CostMultiplier: 3.0},
	{Name: "Qualità Leggendaria Grado 2", DistributablePoints: 4, CostMultiplier: 5.0},
	{Name: "Qualità Divina Grado 1", DistributablePoints: 5, CostMultiplier: 5.0},
	{Name: "Qualità Divina Grado 2", DistributablePoints: 5, CostMultiplier: 5.0},
	{Name: "Qualità Divina Grado 3", DistributablePoints: 5, CostMultiplier: 5.0},
	{Name: "Qualità Divina Grado 4", DistributablePoints: 5, CostMultiplier: 5.0},
	{Name: "Qualità Divina Grado 5", DistributablePoints: 5, CostMultiplier: 5.0},
	{Name: "Enambre", DistributablePoints: 20, CostMultiplier: 20.0},
	{Name: "Enambre Grado 2", DistributablePoints: 20, CostMultiplier: 20.0},
	{Name: "Enambre Grado 3", DistributablePoints: 20, CostMultiplier: 20.0},
	{Name: "Enambre Grado 4", DistributablePoints: 20, CostMultiplier: 20.0},
	{Name: "Enambre Grado 5", DistributablePoints: 20, CostMultiplier: 20.0},
	{Name: "???", DistributablePoints: 50, CostMultiplier: 50.0},
}

func modifier(v int32) *int32 { return &v }
