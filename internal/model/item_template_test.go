package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, ItemKindWeapon.Valid())
	assert.True(t, ItemKindArmor.Valid())
	assert.False(t, ItemKind(9).Valid())
	assert.Equal(t, "Unknown", ItemKind(9).String())
}

func TestParseItemKind(t *testing.T) {
	t.Parallel()

	tests := map[string]ItemKind{
		"weapon":   ItemKindWeapon,
		" Arma ":   ItemKindWeapon,
		"ARMOR":    ItemKindArmor,
		"armatura": ItemKindArmor,
		"armature": ItemKindArmor,
	}
	for in, want := range tests {
		got, err := ParseItemKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		assert.True(t, got.Valid())
	}

	_, err := ParseItemKind("scudo")
	assert.Error(t, err)
}

func TestParseWeaponSubtype(t *testing.T) {
	t.Parallel()

	s, err := ParseWeaponSubtype("Distanza")
	require.NoError(t, err)
	assert.Equal(t, WeaponRanged, s)

	s, err = ParseWeaponSubtype("melee")
	require.NoError(t, err)
	assert.Equal(t, WeaponMelee, s)

	_, err = ParseWeaponSubtype("volante")
	assert.Error(t, err)
}
