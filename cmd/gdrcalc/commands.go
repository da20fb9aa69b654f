package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/udisondev/gdrcalc/internal/data"
	"github.com/udisondev/gdrcalc/internal/game/cost"
	"github.com/udisondev/gdrcalc/internal/game/forge"
	"github.com/udisondev/gdrcalc/internal/game/quality"
	"github.com/udisondev/gdrcalc/internal/model"
	"github.com/udisondev/gdrcalc/internal/output"
)

func newFlagSet(e *env, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

func runCalc(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "calc")
	kindFlag := fs.String("kind", "weapon", "item kind: weapon | armor")
	category := fs.String("category", "", "category name (default: first of the kind)")
	material := fs.String("material", "", "material name (default: first material)")
	qualityName := fs.String("quality", "", "quality tier name (default: base tier)")
	nyryl := fs.Bool("nyryl", false, "item contains Nyryl")
	weight := fs.Int64("weight", 0, "weight/size multiplier (default: suggested for the category)")
	asJSON := fs.Bool("json", false, "print the result as JSON")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	kind, err := model.ParseItemKind(*kindFlag)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return errUsage
	}

	catalog := e.calc.Catalog()
	in := model.CalculationInput{
		Kind:         kind,
		CategoryName: firstIfEmpty(*category, catalog.CategoryNames(kind)),
		MaterialName: firstIfEmpty(*material, catalog.MaterialNames()),
		QualityName:  firstIfEmpty(*qualityName, catalog.QualityNames()),
		UseNyryl:     *nyryl,
		Weight:       *weight,
	}
	if !isFlagSet(fs, "weight") {
		in.Weight = data.DefaultWeight(kind, in.CategoryName)
	}

	res, err := e.calc.Calculate(in)
	if err != nil {
		if errors.Is(err, forge.ErrInvalidSelection) {
			fmt.Fprintln(e.stderr, output.GenericFailureMessage)
			fmt.Fprintln(e.stderr, err)
			return errUsage
		}
		return err
	}

	if *asJSON {
		return output.WriteResultJSON(e.stdout, res)
	}
	return output.WriteResult(e.stdout, res)
}

func runCost(_ context.Context, e *env, args []string) error {
	// No flag parsing here: "-1" is an amount, not a flag.
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) != 1 {
		fmt.Fprintln(e.stderr, "usage: gdrcalc cost <amount in MO>")
		return errUsage
	}

	amount, ok := new(big.Rat).SetString(args[0])
	if !ok {
		fmt.Fprintf(e.stderr, "not a number: %q\n", args[0])
		return errUsage
	}

	f := e.calc.Formatter()
	s, err := f.Format(amount)
	if err != nil {
		if errors.Is(err, cost.ErrInvalidCost) {
			fmt.Fprintln(e.stdout, f.InvalidText())
			return errUsage
		}
		return err
	}
	fmt.Fprintln(e.stdout, s)
	return nil
}

func runTables(_ context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "tables")
	kindFlag := fs.String("kind", "", "only categories of this kind: weapon | armor")
	asYAML := fs.Bool("yaml", false, "dump the catalog as YAML (loadable via catalog_path)")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	catalog := e.calc.Catalog()
	if *asYAML {
		return catalog.WriteYAML(e.stdout)
	}

	kinds := []model.ItemKind{model.ItemKindWeapon, model.ItemKindArmor}
	if *kindFlag != "" {
		k, err := model.ParseItemKind(*kindFlag)
		if err != nil {
			fmt.Fprintln(e.stderr, err)
			return errUsage
		}
		kinds = []model.ItemKind{k}
	}

	p := &tablePrinter{w: e.stdout}
	for _, k := range kinds {
		switch k {
		case model.ItemKindWeapon:
			p.header("Categoria Arma")
			for _, c := range catalog.WeaponCategories() {
				p.row("%-28s %-9s prec %d  danno %d  colpi %d  soglia %d  peso %d",
					c.Name, c.Subtype, c.Precision, c.Damage, c.Hits, c.Threshold, data.DefaultWeight(k, c.Name))
			}
		case model.ItemKindArmor:
			p.header("Categoria Armatura")
			for _, c := range catalog.ArmorCategories() {
				p.row("%-28s rdf %d  pm %d  colpi %d  soglia %d  peso base %d  peso %d",
					c.Name, c.PhysicalDamageReduction, c.MagicalProtection, c.Hits, c.Threshold, c.BaseWeight, data.DefaultWeight(k, c.Name))
			}
		}
	}

	p.header("Materiale Principale")
	for _, m := range append(catalog.Materials(), catalog.Nyryl()) {
		p.row("%-28s prec %d  danno %d  colpi %d  soglia %d  rdf %d  pm %d  costo %d MO/unità",
			m.Name, m.Precision, m.Damage, m.Hits, m.Threshold, m.PDR(), m.MP(), m.CostMO)
	}

	p.header("Qualità")
	tiers := catalog.Qualities()
	for i, q := range tiers {
		acc, err := quality.Accumulate(tiers, i)
		if err != nil {
			return err
		}
		p.row("%-28s punti %d  ×%g  (totale: punti %d  ×%g)",
			q.Name, q.DistributablePoints, q.CostMultiplier, acc.Points, acc.MultiplierFloat())
	}

	p.header("Catalogo")
	p.row("%s", catalog.Fingerprint())
	return p.err
}

func runPricelist(ctx context.Context, e *env, args []string) error {
	fs := newFlagSet(e, "pricelist")
	kindFlag := fs.String("kind", "weapon", "item kind: weapon | armor")
	category := fs.String("category", "", "category name (required)")
	nyryl := fs.Bool("nyryl", false, "item contains Nyryl")
	weight := fs.Int64("weight", 0, "weight/size multiplier (default: suggested for the category)")
	out := fs.String("out", "listino.xlsx", "output .xlsx path")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	kind, err := model.ParseItemKind(*kindFlag)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return errUsage
	}
	if *category == "" {
		fmt.Fprintln(e.stderr, "pricelist: -category is required")
		return errUsage
	}

	req := output.PriceSheetRequest{
		Kind:     kind,
		Category: *category,
		UseNyryl: *nyryl,
		Weight:   *weight,
	}
	if !isFlagSet(fs, "weight") {
		req.Weight = data.DefaultWeight(kind, *category)
	}

	sheet, err := output.BuildPriceSheet(ctx, e.calc, req, e.cfg.Export.Workers)
	if err != nil {
		if errors.Is(err, forge.ErrInvalidSelection) {
			fmt.Fprintln(e.stderr, output.GenericFailureMessage)
			fmt.Fprintln(e.stderr, err)
			return errUsage
		}
		return err
	}
	if err := output.ExportPriceSheetXLSX(sheet, e.cfg.Export, *out); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "price sheet written to %s\n", *out)
	return nil
}

func firstIfEmpty(v string, names []string) string {
	if v != "" || len(names) == 0 {
		return v
	}
	return names[0]
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

type tablePrinter struct {
	w   io.Writer
	err error
}

func (p *tablePrinter) header(title string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
}

func (p *tablePrinter) row(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
