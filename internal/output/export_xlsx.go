package output

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/udisondev/gdrcalc/internal/config"
	"github.com/udisondev/gdrcalc/internal/model"
)

// ExportPriceSheetXLSX writes the price grid and the per-material stats
// into an .xlsx workbook at path.
func ExportPriceSheetXLSX(sheet *PriceSheet, cfg config.Export, path string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	prices := cfg.SheetName
	stats := cfg.StatsName
	if err := f.SetSheetName("Sheet1", prices); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	if _, err := f.NewSheet(stats); err != nil {
		return fmt.Errorf("creating sheet %q: %w", stats, err)
	}

	headerStyleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	w := &cellWriter{f: f}

	// Listino: row 1 qualities, row 2 cumulative points, then one row per material.
	w.set(prices, 1, 1, "Materiale")
	for j, q := range sheet.Qualities {
		w.set(prices, j+2, 1, q)
		w.set(prices, j+2, 2, sheet.Points[j])
	}
	w.set(prices, 1, 2, "Punti")
	for i, row := range sheet.Rows {
		w.set(prices, 1, i+3, row.Material)
		for j, c := range row.Costs {
			w.set(prices, j+2, i+3, c)
		}
	}

	info := len(sheet.Rows) + 4
	req := sheet.Request
	w.set(prices, 1, info, "Categoria")
	w.set(prices, 2, info, req.Category)
	w.set(prices, 1, info+1, "Moltiplicatore Peso/Dimensione")
	w.set(prices, 2, info+1, req.Weight)
	w.set(prices, 1, info+2, "Contiene Nyryl?")
	w.set(prices, 2, info+2, yesNo(req.UseNyryl))
	w.set(prices, 1, info+3, "Catalogo")
	w.set(prices, 2, info+3, sheet.Fingerprint)

	// Statistiche: one row per material.
	headers := statHeaders(req.Kind)
	w.set(stats, 1, 1, "Materiale")
	for j, h := range headers {
		w.set(stats, j+2, 1, h)
	}
	for i, row := range sheet.Rows {
		w.set(stats, 1, i+2, row.Material)
		for j, v := range statValues(row.Stats) {
			w.set(stats, j+2, i+2, v)
		}
	}
	if len(sheet.Rows) > 0 && sheet.Rows[0].Penalty != "" {
		w.set(stats, 1, len(sheet.Rows)+3, "Note Speciali / Penalità")
		w.set(stats, 2, len(sheet.Rows)+3, sheet.Rows[0].Penalty)
	}
	if w.err != nil {
		return w.err
	}

	lastPrice, err := excelize.CoordinatesToCellName(len(sheet.Qualities)+1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(prices, "A1", lastPrice, headerStyleID); err != nil {
		return fmt.Errorf("styling %q header: %w", prices, err)
	}
	lastStat, err := excelize.CoordinatesToCellName(len(headers)+1, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(stats, "A1", lastStat, headerStyleID); err != nil {
		return fmt.Errorf("styling %q header: %w", stats, err)
	}
	if err := f.SetColWidth(prices, "A", "A", 30); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(prices); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	slog.Info("price sheet exported", "path", path, "category", req.Category, "materials", len(sheet.Rows))
	return nil
}

type cellWriter struct {
	f   *excelize.File
	err error
}

func (w *cellWriter) set(sheet string, col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(sheet, cell, v); err != nil {
		w.err = fmt.Errorf("writing %s!%s: %w", sheet, cell, err)
	}
}

func statHeaders(kind model.ItemKind) []string {
	if kind == model.ItemKindArmor {
		return []string{"Rid. Danno Fisico", "Prot. Magica", "Colpi", "Soglia", "Peso"}
	}
	return []string{"Precisione", "Danno", "Colpi", "Soglia"}
}

func statValues(s model.Stats) []int32 {
	switch v := s.(type) {
	case model.WeaponStats:
		return []int32{v.Precision, v.Damage, v.Hits, v.Threshold}
	case model.ArmorStats:
		return []int32{v.PhysicalDamageReduction, v.MagicalProtection, v.Hits, v.Threshold, v.BaseWeight}
	default:
		return nil
	}
}

func yesNo(b bool) string {
	if b {
		return "Sì"
	}
	return "No"
}
