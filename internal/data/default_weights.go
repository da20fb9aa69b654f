package data

import "github.com/udisondev/gdrcalc/internal/model"

// defaultWeights holds the weight multiplier suggested for a category when
// the user has not typed one. The calculator never reads it.
var defaultWeights = map[model.ItemKind]map[string]int64{
	model.ItemKindWeapon: {
		"Armi Leggere":               3,
		"Armi a Distanza Precise":    3,
		"Armi Bilanciate":            5,
		"Armi a Distanza Bilanciate": 5,
		"Armi Pesanti":               8,
		"Armi a Distanza Pesanti":    8,
	},
	model.ItemKindArmor: {
		"Armature Leggere": 3,
		"Armature Medie":   6,
		"Armature Pesanti": 8,
	},
}

// DefaultWeight returns the suggested weight multiplier for a category,
// or 1 when the category has no entry.
func DefaultWeight(kind model.ItemKind, category string) int64 {
	if w, ok := defaultWeights[kind][category]; ok {
		return w
	}
	return 1
}
