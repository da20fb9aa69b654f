package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/udisondev/gdrcalc/internal/model"
)

// GenericFailureMessage is what users see for any rejected selection.
const GenericFailureMessage = "Per favore, compila tutti i campi correttamente."

// WriteResult renders a result the way the calculator's results panel does.
func WriteResult(w io.Writer, res *model.Result) error {
	p := &printer{w: w}

	p.line("Risultati del Calcolo")
	p.line("Statistiche Finali")
	switch s := res.Stats.(type) {
	case model.WeaponStats:
		p.stat("Precisione", s.Precision)
		p.stat("Danno", s.Damage)
		p.stat("Colpi", s.Hits)
		p.stat("Soglia", s.Threshold)
	case model.ArmorStats:
		p.stat("Rid. Danno Fisico", s.PhysicalDamageReduction)
		p.stat("Prot. Magica", s.MagicalProtection)
		p.stat("Colpi", s.Hits)
		p.stat("Soglia", s.Threshold)
		p.stat("Peso", s.BaseWeight)
	}
	if res.Penalty != "" {
		p.line("Note Speciali / Penalità: " + res.Penalty)
	}
	p.line(fmt.Sprintf("Punti Qualità da Distribuire: %d", res.DistributablePoints))
	p.line("Costo Totale: " + res.Cost)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) stat(label string, v int32) {
	p.line(fmt.Sprintf("  %-18s %d", label+":", v))
}

// resultJSON omits the fields that do not apply to the item kind.
type resultJSON struct {
	Kind                string    `json:"kind"`
	Stats               statsJSON `json:"stats"`
	DistributablePoints int32     `json:"distributable_points"`
	Cost                string    `json:"cost"`
	CostMO              string    `json:"cost_mo"`
	Penalty             string    `json:"penalty,omitempty"`
}

type statsJSON struct {
	Precision               *int32 `json:"precision,omitempty"`
	Damage                  *int32 `json:"damage,omitempty"`
	PhysicalDamageReduction *int32 `json:"physical_damage_reduction,omitempty"`
	MagicalProtection       *int32 `json:"magical_protection,omitempty"`
	Hits                    int32  `json:"hits"`
	Threshold               int32  `json:"threshold"`
	BaseWeight              *int32 `json:"base_weight,omitempty"`
}

// WriteResultJSON writes the result as one indented JSON object.
func WriteResultJSON(w io.Writer, res *model.Result) error {
	out := resultJSON{
		Kind:                res.Stats.Kind().String(),
		DistributablePoints: res.DistributablePoints,
		Cost:                res.Cost,
		CostMO:              res.CostMO().String(),
		Penalty:             res.Penalty,
	}
	switch s := res.Stats.(type) {
	case model.WeaponStats:
		out.Stats = statsJSON{
			Precision: &s.Precision,
			Damage:    &s.Damage,
			Hits:      s.Hits,
			Threshold: s.Threshold,
		}
	case model.ArmorStats:
		out.Stats = statsJSON{
			PhysicalDamageReduction: &s.PhysicalDamageReduction,
			MagicalProtection:       &s.MagicalProtection,
			Hits:                    s.Hits,
			Threshold:               s.Threshold,
			BaseWeight:              &s.BaseWeight,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
