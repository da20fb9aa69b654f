package output

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/gdrcalc/internal/game/forge"
	"github.com/udisondev/gdrcalc/internal/game/quality"
	"github.com/udisondev/gdrcalc/internal/model"
)

// PriceSheetRequest selects one category; the sheet spans every material
// and every quality tier.
type PriceSheetRequest struct {
	Kind     model.ItemKind
	Category string
	UseNyryl bool
	Weight   int64
}

// PriceSheet is a materials × qualities cost grid for one category.
type PriceSheet struct {
	Request     PriceSheetRequest
	Qualities   []string
	Points      []int32 // cumulative points per quality, same for every material
	Rows        []PriceRow
	Fingerprint string
}

// PriceRow is one material: its stats and its cost at each quality tier.
type PriceRow struct {
	Material string
	Stats    model.Stats
	Penalty  string
	Costs    []string
}

// BuildPriceSheet runs the calculator for every material/quality pair.
// Rows are computed concurrently, at most workers at a time
// (workers <= 0 means runtime.NumCPU()); row order follows the catalog.
func BuildPriceSheet(ctx context.Context, calc *forge.Calculator, req PriceSheetRequest, workers int) (*PriceSheet, error) {
	catalog := calc.Catalog()
	tiers := catalog.Qualities()
	materials := catalog.MaterialNames()

	sheet := &PriceSheet{
		Request:     req,
		Qualities:   catalog.QualityNames(),
		Points:      make([]int32, len(tiers)),
		Rows:        make([]PriceRow, len(materials)),
		Fingerprint: catalog.Fingerprint(),
	}
	for i := range tiers {
		acc, err := quality.Accumulate(tiers, i)
		if err != nil {
			return nil, err
		}
		sheet.Points[i] = acc.Points
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, material := range materials {
		i, material := i, material
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row, err := buildRow(calc, req, material, sheet.Qualities)
			if err != nil {
				return err
			}
			sheet.Rows[i] = row
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building price sheet for %q: %w", req.Category, err)
	}
	return sheet, nil
}

func buildRow(calc *forge.Calculator, req PriceSheetRequest, material string, qualities []string) (PriceRow, error) {
	row := PriceRow{Material: material, Costs: make([]string, len(qualities))}
	for j, q := range qualities {
		res, err := calc.Calculate(model.CalculationInput{
			Kind:         req.Kind,
			CategoryName: req.Category,
			MaterialName: material,
			QualityName:  q,
			UseNyryl:     req.UseNyryl,
			Weight:       req.Weight,
		})
		if err != nil {
			return PriceRow{}, err
		}
		// Stats do not depend on quality.
		if j == 0 {
			row.Stats = res.Stats
			row.Penalty = res.Penalty
		}
		row.Costs[j] = res.Cost
	}
	return row, nil
}
