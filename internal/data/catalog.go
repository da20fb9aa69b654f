package data

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/udisondev/gdrcalc/internal/model"
)

// ErrInvalidCatalog is returned when tables break a catalog invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// MaxStat bounds every stat and point value of a catalog. A stat is the sum of
// at most three table values, so it stays far from int32 overflow.
const MaxStat int32 = 1_000_000

// Catalog holds the read-only reference tables. Lookups are exact and
// case-sensitive. A Catalog is never modified after construction, so it is
// safe for concurrent use.
type Catalog struct {
	weapons   []model.WeaponCategory
	armors    []model.ArmorCategory
	materials []model.Material
	nyryl     model.Material
	qualities []model.QualityTier

	weaponByName   map[string]int
	armorByName    map[string]int
	materialByName map[string]int
	qualityByName  map[string]int
}

// Tables is the raw input of NewCatalog.
type Tables struct {
	Weapons   []model.WeaponCategory
	Armors    []model.ArmorCategory
	Materials []model.Material
	Nyryl     model.Material
	Qualities []model.QualityTier
}

// NewCatalog validates t and builds the name indexes. Slices are copied.
func NewCatalog(t Tables) (*Catalog, error) {
	c := &Catalog{
		weapons:   append([]model.WeaponCategory(nil), t.Weapons...),
		armors:    append([]model.ArmorCategory(nil), t.Armors...),
		materials: make([]model.Material, len(t.Materials)),
		nyryl:     cloneMaterial(t.Nyryl),
		qualities: append([]model.QualityTier(nil), t.Qualities...),
	}
	for i := range t.Materials {
		c.materials[i] = cloneMaterial(t.Materials[i])
	}

	var err error
	if c.weaponByName, err = indexNames("weapon category", len(c.weapons), func(i int) string { return c.weapons[i].Name }); err != nil {
		return nil, err
	}
	if c.armorByName, err = indexNames("armor category", len(c.armors), func(i int) string { return c.armors[i].Name }); err != nil {
		return nil, err
	}
	if c.materialByName, err = indexNames("material", len(c.materials), func(i int) string { return c.materials[i].Name }); err != nil {
		return nil, err
	}
	if c.qualityByName, err = indexNames("quality", len(c.qualities), func(i int) string { return c.qualities[i].Name }); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func indexNames(table string, n int, name func(int) string) (map[string]int, error) {
	if n == 0 {
		return nil, fmt.Errorf("%w: %s table is empty", ErrInvalidCatalog, table)
	}
	idx := make(map[string]int, n)
	for i := 0; i < n; i++ {
		nm := name(i)
		if nm == "" {
			return nil, fmt.Errorf("%w: %s #%d has no name", ErrInvalidCatalog, table, i)
		}
		if _, dup := idx[nm]; dup {
			return nil, fmt.Errorf("%w: duplicate %s %q", ErrInvalidCatalog, table, nm)
		}
		idx[nm] = i
	}
	return idx, nil
}

func (c *Catalog) validate() error {
	for _, w := range c.weapons {
		if w.Subtype != model.WeaponMelee && w.Subtype != model.WeaponRanged {
			return fmt.Errorf("%w: weapon category %q has unknown subtype", ErrInvalidCatalog, w.Name)
		}
		if !statsInRange(0, w.Precision, w.Damage, w.Hits, w.Threshold) {
			return fmt.Errorf("%w: weapon category %q stats must be in [0, %d]", ErrInvalidCatalog, w.Name, MaxStat)
		}
	}
	for _, a := range c.armors {
		if !statsInRange(0, a.PhysicalDamageReduction, a.MagicalProtection, a.Hits, a.Threshold, a.BaseWeight) {
			return fmt.Errorf("%w: armor category %q stats must be in [0, %d]", ErrInvalidCatalog, a.Name, MaxStat)
		}
	}
	for _, m := range c.materials {
		if m.CostMO <= 0 {
			return fmt.Errorf("%w: material %q must have a positive cost", ErrInvalidCatalog, m.Name)
		}
		if !materialInRange(m) {
			return fmt.Errorf("%w: material %q modifiers must be in [%d, %d]", ErrInvalidCatalog, m.Name, -MaxStat, MaxStat)
		}
	}
	if c.nyryl.Name == "" {
		return fmt.Errorf("%w: special material has no name", ErrInvalidCatalog)
	}
	if c.nyryl.CostMO <= 0 {
		return fmt.Errorf("%w: special material %q must have a positive cost", ErrInvalidCatalog, c.nyryl.Name)
	}
	if !materialInRange(c.nyryl) {
		return fmt.Errorf("%w: special material %q modifiers must be in [%d, %d]", ErrInvalidCatalog, c.nyryl.Name, -MaxStat, MaxStat)
	}

	base := c.qualities[0]
	if base.DistributablePoints != 0 || base.CostMultiplier != 1.0 {
		return fmt.Errorf("%w: base quality %q must give 0 points and multiplier 1", ErrInvalidCatalog, base.Name)
	}
	for _, q := range c.qualities[1:] {
		if !statsInRange(0, q.DistributablePoints) {
			return fmt.Errorf("%w: quality %q points must be in [0, %d]", ErrInvalidCatalog, q.Name, MaxStat)
		}
		if !(q.CostMultiplier > 0) || math.IsInf(q.CostMultiplier, 0) {
			return fmt.Errorf("%w: quality %q must have a positive finite multiplier", ErrInvalidCatalog, q.Name)
		}
	}
	return nil
}

func statsInRange(lo int32, vs ...int32) bool {
	for _, v := range vs {
		if v < lo || v > MaxStat {
			return false
		}
	}
	return true
}

func materialInRange(m model.Material) bool {
	return statsInRange(-MaxStat, m.Precision, m.Damage, m.Hits, m.Threshold, m.PDR(), m.MP())
}

var builtin = sync.OnceValues(func() (*Catalog, error) {
	return NewCatalog(Tables{
		Weapons:   weaponCategoryDefs,
		Armors:    armorCategoryDefs,
		Materials: materialDefs,
		Nyryl:     nyrylDef,
		Qualities: qualityDefs,
	})
})

// LoadCatalog returns the built-in catalog. It is built once per process.
func LoadCatalog() (*Catalog, error) {
	c, err := builtin()
	if err != nil {
		return nil, fmt.Errorf("building built-in catalog: %w", err)
	}
	slog.Info("loaded catalog",
		"source", "builtin",
		"weapon_categories", len(c.weapons),
		"armor_categories", len(c.armors),
		"materials", len(c.materials),
		"qualities", len(c.qualities))
	return c, nil
}

// MustLoadCatalog is LoadCatalog for tests and static initialisation.
func MustLoadCatalog() *Catalog {
	c, err := builtin()
	if err != nil {
		panic(err)
	}
	return c
}

// WeaponCategory looks up a weapon category by exact name.
func (c *Catalog) WeaponCategory(name string) (model.WeaponCategory, bool) {
	i, ok := c.weaponByName[name]
	if !ok {
		return model.WeaponCategory{}, false
	}
	return c.weapons[i], true
}

// ArmorCategory looks up an armor category by exact name.
func (c *Catalog) ArmorCategory(name string) (model.ArmorCategory, bool) {
	i, ok := c.armorByName[name]
	if !ok {
		return model.ArmorCategory{}, false
	}
	return c.armors[i], true
}

// Material looks up a material by exact name.
func (c *Catalog) Material(name string) (model.Material, bool) {
	i, ok := c.materialByName[name]
	if !ok {
		return model.Material{}, false
	}
	return cloneMaterial(c.materials[i]), true
}

// Nyryl returns the special material.
func (c *Catalog) Nyryl() model.Material { return cloneMaterial(c.nyryl) }

// QualityIndex returns the position of the named tier in accumulation order.
func (c *Catalog) QualityIndex(name string) (int, bool) {
	i, ok := c.qualityByName[name]
	return i, ok
}

// Qualities returns the ordered quality tiers.
func (c *Catalog) Qualities() []model.QualityTier {
	return append([]model.QualityTier(nil), c.qualities...)
}

// WeaponCategories returns the weapon categories in table order.
func (c *Catalog) WeaponCategories() []model.WeaponCategory {
	return append([]model.WeaponCategory(nil), c.weapons...)
}

// ArmorCategories returns the armor categories in table order.
func (c *Catalog) ArmorCategories() []model.ArmorCategory {
	return append([]model.ArmorCategory(nil), c.armors...)
}

// Materials returns the materials in table order.
func (c *Catalog) Materials() []model.Material {
	out := make([]model.Material, len(c.materials))
	for i := range c.materials {
		out[i] = cloneMaterial(c.materials[i])
	}
	return out
}

// CategoryNames returns the category names for kind, nil for an unknown kind.
func (c *Catalog) CategoryNames(kind model.ItemKind) []string {
	switch kind {
	case model.ItemKindWeapon:
		names := make([]string, len(c.weapons))
		for i, w := range c.weapons {
			names[i] = w.Name
		}
		return names
	case model.ItemKindArmor:
		names := make([]string, len(c.armors))
		for i, a := range c.armors {
			names[i] = a.Name
		}
		return names
	default:
		return nil
	}
}

// MaterialNames returns the material names in table order.
func (c *Catalog) MaterialNames() []string {
	names := make([]string, len(c.materials))
	for i, m := range c.materials {
		names[i] = m.Name
	}
	return names
}

// QualityNames returns the quality tier names in accumulation order.
func (c *Catalog) QualityNames() []string {
	names := make([]string, len(c.qualities))
	for i, q := range c.qualities {
		names[i] = q.Name
	}
	return names
}

func cloneMaterial(m model.Material) model.Material {
	if m.PhysicalDamageReduction != nil {
		m.PhysicalDamageReduction = modifier(*m.PhysicalDamageReduction)
	}
	if m.MagicalProtection != nil {
		m.MagicalProtection = modifier(*m.MagicalProtection)
	}
	return m
}
