package data

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gdrcalc/internal/model"
	"github.com/udisondev/gdrcalc/internal/testutil"
)

func TestLoadCatalog_Builtin(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Len(t, c.WeaponCategories(), 6)
	assert.Len(t, c.ArmorCategories(), 3)
	assert.Len(t, c.Materials(), 12)
	assert.Len(t, c.Qualities(), 16)
	assert.Equal(t, "Nyryl", c.Nyryl().Name)

	// Порядок таблиц — порядок показа пользователю.
	assert.Equal(t, "Armi Leggere", c.CategoryNames(model.ItemKindWeapon)[0])
	assert.Equal(t, "Armature Leggere", c.CategoryNames(model.ItemKindArmor)[0])
	assert.Equal(t, "Legno", c.MaterialNames()[0])
	assert.Equal(t, "Base", c.QualityNames()[0])
	assert.Equal(t, "???", c.QualityNames()[15])
	assert.Nil(t, c.CategoryNames(model.ItemKind(42)))
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c := MustLoadCatalog()

	w, ok := c.WeaponCategory("Armi a Distanza Pesanti")
	require.True(t, ok)
	assert.Equal(t, model.WeaponRanged, w.Subtype)
	assert.Equal(t, int32(6), w.Damage)

	a, ok := c.ArmorCategory("Armature Pesanti")
	require.True(t, ok)
	assert.NotEmpty(t, a.Penalty)

	m, ok := c.Material("Acciaio")
	require.True(t, ok)
	assert.Equal(t, int64(100), m.CostMO)
	assert.Nil(t, m.PhysicalDamageReduction, "Acciaio has no armor modifiers")
	assert.Equal(t, int32(0), m.PDR())
	assert.Equal(t, int32(0), m.MP())

	idx, ok := c.QualityIndex("Alta Qualità")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	n := c.Nyryl()
	assert.Equal(t, int32(3), n.PDR())
	assert.Equal(t, int32(3), n.MP())
	assert.Equal(t, int64(100000000), n.CostMO)
}

func TestCatalog_LookupsAreExact(t *testing.T) {
	t.Parallel()

	c := MustLoadCatalog()

	for _, name := range []string{"ferro", "FERRO", " Ferro", "Ferro ", ""} {
		_, ok := c.Material(name)
		assert.False(t, ok, "Material(%q) must not match", name)
	}
	_, ok := c.WeaponCategory("Armature Leggere")
	assert.False(t, ok, "armor category is not a weapon category")
	_, ok = c.ArmorCategory("Armi Leggere")
	assert.False(t, ok, "weapon category is not an armor category")
	_, ok = c.QualityIndex("base")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	t.Parallel()

	c := MustLoadCatalog()

	n := c.Nyryl()
	*n.PhysicalDamageReduction = 100
	assert.Equal(t, int32(3), c.Nyryl().PDR(), "caller must not mutate the catalog")

	q := c.Qualities()
	q[1].DistributablePoints = 99
	assert.Equal(t, int32(2), c.Qualities()[1].DistributablePoints)
}

func TestNewCatalog_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Tables)
	}{
		{"empty weapons", func(tb *Tables) { tb.Weapons = nil }},
		{"empty qualities", func(tb *Tables) { tb.Qualities = nil }},
		{"duplicate material", func(tb *Tables) { tb.Materials = append(tb.Materials, tb.Materials[0]) }},
		{"unnamed armor", func(tb *Tables) { tb.Armors[0].Name = "" }},
		{"negative weapon stat", func(tb *Tables) { tb.Weapons[0].Hits = -1 }},
		{"negative armor stat", func(tb *Tables) { tb.Armors[0].BaseWeight = -1 }},
		{"zero material cost", func(tb *Tables) { tb.Materials[0].CostMO = 0 }},
		{"nyryl without cost", func(tb *Tables) { tb.Nyryl.CostMO = 0 }},
		{"nyryl without name", func(tb *Tables) { tb.Nyryl.Name = "" }},
		{"base tier with points", func(tb *Tables) { tb.Qualities[0].DistributablePoints = 1 }},
		{"base tier with multiplier", func(tb *Tables) { tb.Qualities[0].CostMultiplier = 1.5 }},
		{"negative points", func(tb *Tables) { tb.Qualities[3].DistributablePoints = -1 }},
		{"zero multiplier", func(tb *Tables) { tb.Qualities[3].CostMultiplier = 0 }},
		{"unknown subtype", func(tb *Tables) { tb.Weapons[0].Subtype = model.WeaponSubtype(7) }},
		{"weapon stat above max", func(tb *Tables) { tb.Weapons[0].Precision = MaxStat + 1 }},
		{"armor stat above max", func(tb *Tables) { tb.Armors[2].Hits = MaxStat + 1 }},
		{"material stat above max", func(tb *Tables) { tb.Materials[3].Damage = MaxStat + 1 }},
		{"material stat below min", func(tb *Tables) { tb.Materials[3].Threshold = -MaxStat - 1 }},
		{"material modifier above max", func(tb *Tables) { tb.Materials[1].MagicalProtection = Modifier(MaxStat + 1) }},
		{"nyryl modifier above max", func(tb *Tables) { tb.Nyryl.PhysicalDamageReduction = Modifier(MaxStat + 1) }},
		{"points above max", func(tb *Tables) { tb.Qualities[15].DistributablePoints = MaxStat + 1 }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tb := BuiltinTables()
			tt.mutate(&tb)
			_, err := NewCatalog(tb)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestCatalog_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	c := MustLoadCatalog()

	var buf bytes.Buffer
	require.NoError(t, c.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "type: Distanza")
	assert.Contains(t, buf.String(), "cost_mo: 2000000000")

	parsed, err := ParseCatalog(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, c.Fingerprint(), parsed.Fingerprint())

	m, ok := parsed.Material("Acciaio")
	require.True(t, ok)
	assert.Nil(t, m.PhysicalDamageReduction, "absent modifier must stay absent")
	assert.Equal(t, int32(3), parsed.Nyryl().MP())
}

func TestCatalog_Fingerprint(t *testing.T) {
	t.Parallel()

	base := MustLoadCatalog()
	assert.Len(t, base.Fingerprint(), 64)
	assert.Equal(t, base.Fingerprint(), base.Fingerprint())

	tb := BuiltinTables()
	tb.Materials[0].CostMO = 2
	changed, err := NewCatalog(tb)
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint(), changed.Fingerprint())
}

const smallCatalog = `
weapon_categories:
  - {name: Spada, type: Mischia, precision: 1, damage: 2, hits: 1, threshold: 1}
  - {name: Arco, type: ranged, precision: 2, damage: 1, hits: 1, threshold: 0}
armor_categories:
  - {name: Giaco, physical_damage_reduction: 1, magical_protection: 0, threshold: 2, hits: 1, base_weight: 2, penalty: Rumoroso}
materials:
  - {name: Ferro, precision: 1, damage: 3, hits: 1, threshold: 5, cost_mo: 1}
  - {name: Pelle, precision: 0, damage: 0, hits: 0, threshold: 0, physical_damage_reduction: 1, cost_mo: 2}
nyryl: {name: Nyryl, precision: 3, damage: 3, hits: 3, threshold: 3, physical_damage_reduction: 3, magical_protection: 3, cost_mo: 1000}
qualities:
  - {name: Base, distributable_points: 0, cost_multiplier: 1}
  - {name: Buona, distributable_points: 1, cost_multiplier: 1.25}
`

func TestLoadCatalogFile(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalogFile(testutil.WriteFile(t, "catalog.yaml", smallCatalog))
	require.NoError(t, err)

	arco, ok := c.WeaponCategory("Arco")
	require.True(t, ok)
	assert.True(t, arco.IsRanged())

	pelle, ok := c.Material("Pelle")
	require.True(t, ok)
	assert.Equal(t, int32(1), pelle.PDR())
	assert.Nil(t, pelle.MagicalProtection)

	giaco, ok := c.ArmorCategory("Giaco")
	require.True(t, ok)
	assert.Equal(t, "Rumoroso", giaco.Penalty)
}

func TestLoadCatalogFile_Errors(t *testing.T) {
	t.Parallel()

	write := func(name, body string) string { return testutil.WriteFile(t, name, body) }

	_, err := LoadCatalogFile(testutil.MissingPath(t, "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadCatalogFile(write("empty.yaml", ""))
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = LoadCatalogFile(write("typo.yaml", strings.Replace(smallCatalog, "cost_mo: 2", "costo_mo: 2", 1)))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = LoadCatalogFile(write("subtype.yaml", strings.Replace(smallCatalog, "type: ranged", "type: volante", 1)))
	assert.ErrorIs(t, err, ErrInvalidCatalog)

	_, err = LoadCatalogFile(write("huge.yaml", strings.Replace(smallCatalog, "{name: Spada, type: Mischia, precision: 1", "{name: Spada, type: Mischia, precision: 2147483647", 1)))
	assert.ErrorIs(t, err, ErrInvalidCatalog, "stats near int32 limit are rejected")

	_, err = LoadCatalogFile(write("base.yaml", strings.Replace(smallCatalog, "cost_multiplier: 1}", "cost_multiplier: 2}", 1)))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestDefaultWeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     model.ItemKind
		category string
		want     int64
	}{
		{model.ItemKindWeapon, "Armi Leggere", 3},
		{model.ItemKindWeapon, "Armi a Distanza Precise", 3},
		{model.ItemKindWeapon, "Armi Bilanciate", 5},
		{model.ItemKindWeapon, "Armi a Distanza Bilanciate", 5},
		{model.ItemKindWeapon, "Armi Pesanti", 8},
		{model.ItemKindWeapon, "Armi a Distanza Pesanti", 8},
		{model.ItemKindArmor, "Armature Leggere", 3},
		{model.ItemKindArmor, "Armature Medie", 6},
		{model.ItemKindArmor, "Armature Pesanti", 8},
		{model.ItemKindArmor, "Armi Pesanti", 1},
		{model.ItemKindWeapon, "Sconosciuta", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultWeight(tt.kind, tt.category), "%s/%s", tt.kind, tt.category)
	}
}
