package forge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Selection errors. Every one of them matches ErrInvalidSelection.
var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrLookup           = fmt.Errorf("%w: lookup failure", ErrInvalidSelection)
	ErrInvalidQuantity  = fmt.Errorf("%w: weight multiplier must be at least 1", ErrInvalidSelection)
	ErrInvalidItemKind  = fmt.Errorf("%w: unknown item kind", ErrLookup)
)

// Tables named in LookupError.
const (
	TableWeaponCategory = "weapon category"
	TableArmorCategory  = "armor category"
	TableMaterial       = "material"
	TableQuality        = "quality"
)

// LookupError reports a name missing from one of the tables.
// Suggestion is the closest known name, empty when nothing is close.
type LookupError struct {
	Table      string
	Name       string
	Suggestion string
}

func (e *LookupError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Table, e.Name)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *LookupError) Unwrap() error { return ErrLookup }

func newLookupError(table, name string, known []string) *LookupError {
	return &LookupError{Table: table, Name: name, Suggestion: suggest(name, known)}
}

// suggest returns the known name closest to name, compared case-insensitively.
// Lookups themselves stay case-sensitive; this only feeds the error message.
func suggest(name string, known []string) string {
	in := strings.ToLower(strings.TrimSpace(name))
	if in == "" {
		return ""
	}

	best := ""
	bestDist := -1
	for _, cand := range known {
		c := strings.ToLower(cand)
		dist := levenshtein.ComputeDistance(in, c)
		if dist > levenshteinLimit(len([]rune(c))) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	return best
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
