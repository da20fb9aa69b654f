package data

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/gdrcalc/internal/model"
)

// catalogFile is the YAML shape of a catalog. The same shape is produced by
// WriteYAML, so a dump of the built-in tables is a valid starting point.
type catalogFile struct {
	WeaponCategories []weaponCategoryYAML `yaml:"weapon_categories"`
	ArmorCategories  []armorCategoryYAML  `yaml:"armor_categories"`
	Materials        []materialYAML       `yaml:"materials"`
	Nyryl            materialYAML         `yaml:"nyryl"`
	Qualities        []qualityYAML        `yaml:"qualities"`
}

type weaponCategoryYAML struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"` // Mischia | Distanza
	Precision int32  `yaml:"precision"`
	Damage    int32  `yaml:"damage"`
	Hits      int32  `yaml:"hits"`
	Threshold int32  `yaml:"threshold"`
}

type armorCategoryYAML struct {
	Name                    string `yaml:"name"`
	PhysicalDamageReduction int32  `yaml:"physical_damage_reduction"`
	MagicalProtection       int32  `yaml:"magical_protection"`
	Threshold               int32  `yaml:"threshold"`
	Hits                    int32  `yaml:"hits"`
	BaseWeight              int32  `yaml:"base_weight"`
	Penalty                 string `yaml:"penalty,omitempty"`
}

type materialYAML struct {
	Name                    string `yaml:"name"`
	Precision               int32  `yaml:"precision"`
	Damage                  int32  `yaml:"damage"`
	Hits                    int32  `yaml:"hits"`
	Threshold               int32  `yaml:"threshold"`
	PhysicalDamageReduction *int32 `yaml:"physical_damage_reduction,omitempty"`
	MagicalProtection       *int32 `yaml:"magical_protection,omitempty"`
	CostMO                  int64  `yaml:"cost_mo"`
}

type qualityYAML struct {
	Name                string  `yaml:"name"`
	DistributablePoints int32   `yaml:"distributable_points"`
	CostMultiplier      float64 `yaml:"cost_multiplier"`
}

// LoadCatalogFile reads a YAML catalog and validates it.
// Unknown keys are rejected so that typos do not silently drop modifiers.
func LoadCatalogFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	slog.Info("loaded catalog",
		"source", path,
		"weapon_categories", len(c.weapons),
		"armor_categories", len(c.armors),
		"materials", len(c.materials),
		"qualities", len(c.qualities))
	return c, nil
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, err
	}

	t := Tables{
		Armors:    make([]model.ArmorCategory, len(f.ArmorCategories)),
		Materials: make([]model.Material, len(f.Materials)),
		Nyryl:     f.Nyryl.toModel(),
		Qualities: make([]model.QualityTier, len(f.Qualities)),
	}
	for _, w := range f.WeaponCategories {
		sub, err := model.ParseWeaponSubtype(w.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: weapon category %q: %v", ErrInvalidCatalog, w.Name, err)
		}
		t.Weapons = append(t.Weapons, model.WeaponCategory{
			Name:      w.Name,
			Subtype:   sub,
			Precision: w.Precision,
			Damage:    w.Damage,
			Hits:      w.Hits,
			Threshold: w.Threshold,
		})
	}
	for i, a := range f.ArmorCategories {
		t.Armors[i] = model.ArmorCategory(a)
	}
	for i, m := range f.Materials {
		t.Materials[i] = m.toModel()
	}
	for i, q := range f.Qualities {
		t.Qualities[i] = model.QualityTier(q)
	}

	return NewCatalog(t)
}

func (m materialYAML) toModel() model.Material {
	return model.Material{
		Name:                    m.Name,
		Precision:               m.Precision,
		Damage:                  m.Damage,
		Hits:                    m.Hits,
		Threshold:               m.Threshold,
		PhysicalDamageReduction: m.PhysicalDamageReduction,
		MagicalProtection:       m.MagicalProtection,
		CostMO:                  m.CostMO,
	}
}

func materialToYAML(m model.Material) materialYAML {
	m = cloneMaterial(m)
	return materialYAML{
		Name:                    m.Name,
		Precision:               m.Precision,
		Damage:                  m.Damage,
		Hits:                    m.Hits,
		Threshold:               m.Threshold,
		PhysicalDamageReduction: m.PhysicalDamageReduction,
		MagicalProtection:       m.MagicalProtection,
		CostMO:                  m.CostMO,
	}
}

func (c *Catalog) toFile() catalogFile {
	f := catalogFile{
		WeaponCategories: make([]weaponCategoryYAML, len(c.weapons)),
		ArmorCategories:  make([]armorCategoryYAML, len(c.armors)),
		Materials:        make([]materialYAML, len(c.materials)),
		Nyryl:            materialToYAML(c.nyryl),
		Qualities:        make([]qualityYAML, len(c.qualities)),
	}
	for i, w := range c.weapons {
		f.WeaponCategories[i] = weaponCategoryYAML{
			Name:      w.Name,
			Type:      w.Subtype.String(),
			Precision: w.Precision,
			Damage:    w.Damage,
			Hits:      w.Hits,
			Threshold: w.Threshold,
		}
	}
	for i, a := range c.armors {
		f.ArmorCategories[i] = armorCategoryYAML(a)
	}
	for i, m := range c.materials {
		f.Materials[i] = materialToYAML(m)
	}
	for i, q := range c.qualities {
		f.Qualities[i] = qualityYAML(q)
	}
	return f
}

// WriteYAML encodes the catalog in the format accepted by LoadCatalogFile.
func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.toFile()); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return enc.Close()
}

// Fingerprint returns a hex BLAKE2b-256 digest of the catalog's canonical
// YAML encoding. Two catalogs with equal tables have equal fingerprints.
func (c *Catalog) Fingerprint() string {
	var buf bytes.Buffer
	if err := c.WriteYAML(&buf); err != nil {
		// encoding plain structs into memory does not fail
		panic(err)
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
