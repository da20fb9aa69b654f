// Package cost formats amounts of the two-tier currency: MO, the smallest
// unit, and MAx, worth 100 MO.
//
// Amounts are exact rationals: quality multipliers make the raw cost
// fractional and the top materials push it past int64, so rounding is done
// on big.Rat (half away from zero) before the amount is split.
package cost

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ErrInvalidCost is returned when the rounded amount is negative.
var ErrInvalidCost = errors.New("invalid cost")

// Config describes the currency labels and the locale used for digit grouping.
type Config struct {
	Locale        string `yaml:"locale"`
	MinorUnit     string `yaml:"minor_unit"`
	MajorUnit     string `yaml:"major_unit"`
	MinorPerMajor int64  `yaml:"minor_per_major"`
	Conjunction   string `yaml:"conjunction"`
	InvalidText   string `yaml:"invalid_text"`
}

// DefaultConfig returns the Italian MAx/MO setup.
func DefaultConfig() Config {
	return Config{
		Locale:        "it-IT",
		MinorUnit:     "MO",
		MajorUnit:     "MAx",
		MinorPerMajor: 100,
		Conjunction:   "e",
		InvalidText:   "Costo non valido",
	}
}

// Formatter renders amounts in MO as "<major> MAx e <minor> MO".
// Immutable after NewFormatter; safe for concurrent use.
type Formatter struct {
	minorUnit   string
	majorUnit   string
	conjunction string
	invalidText string
	perMajor    *big.Int
	groupSep    string
}

// NewFormatter validates cfg and resolves the locale's group separator.
func NewFormatter(cfg Config) (*Formatter, error) {
	if cfg.MinorPerMajor < 2 {
		return nil, fmt.Errorf("minor_per_major must be >= 2, got %d", cfg.MinorPerMajor)
	}
	if cfg.MinorUnit == "" || cfg.MajorUnit == "" {
		return nil, fmt.Errorf("currency unit names must not be empty")
	}
	if strings.TrimSpace(cfg.Conjunction) == "" {
		return nil, fmt.Errorf("currency conjunction must not be empty")
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", cfg.Locale, err)
	}

	return &Formatter{
		minorUnit:   cfg.MinorUnit,
		majorUnit:   cfg.MajorUnit,
		conjunction: cfg.Conjunction,
		invalidText: cfg.InvalidText,
		perMajor:    big.NewInt(cfg.MinorPerMajor),
		groupSep:    groupSeparator(tag),
	}, nil
}

var defaultFormatter = sync.OnceValue(func() *Formatter {
	f, err := NewFormatter(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return f
})

// Default returns the formatter for DefaultConfig.
func Default() *Formatter { return defaultFormatter() }

// FormatCost formats a whole amount of MO with the default formatter.
func FormatCost(mo int64) (string, error) {
	return Default().FormatMO(mo)
}

// groupSeparator asks x/text how the locale writes 1234567 and keeps what
// sits between the first and second digit groups.
func groupSeparator(tag language.Tag) string {
	s := message.NewPrinter(tag).Sprint(number.Decimal(1234567))
	rest, ok := strings.CutPrefix(s, "1")
	if !ok {
		return ""
	}
	sep, _, ok := strings.Cut(rest, "234")
	if !ok {
		return ""
	}
	return sep
}

// InvalidText is the message shown in place of an invalid cost.
func (f *Formatter) InvalidText() string { return f.invalidText }

// Round rounds to the nearest integer, ties away from zero.
func Round(amount *big.Rat) *big.Int {
	num := new(big.Int).Abs(amount.Num())
	den := amount.Denom()

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Lsh(r, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if amount.Sign() < 0 {
		q.Neg(q)
	}
	return q
}

// Format rounds amount (in MO) and renders it.
func (f *Formatter) Format(amount *big.Rat) (string, error) {
	s, _, err := f.FormatRounded(amount)
	return s, err
}

// FormatRounded is Format that also returns the rounded amount in MO.
func (f *Formatter) FormatRounded(amount *big.Rat) (string, *big.Int, error) {
	n := Round(amount)
	if n.Sign() < 0 {
		return "", nil, fmt.Errorf("%w: %s %s", ErrInvalidCost, n.String(), f.minorUnit)
	}
	return f.formatInt(n), n, nil
}

// FormatMO renders a whole amount of MO.
func (f *Formatter) FormatMO(mo int64) (string, error) {
	return f.Format(new(big.Rat).SetInt64(mo))
}

func (f *Formatter) formatInt(n *big.Int) string {
	major, minor := new(big.Int).QuoRem(n, f.perMajor, new(big.Int))

	var parts []string
	if major.Sign() > 0 {
		parts = append(parts, f.group(major)+" "+f.majorUnit)
	}
	if minor.Sign() > 0 {
		parts = append(parts, f.group(minor)+" "+f.minorUnit)
	}

	switch len(parts) {
	case 0:
		return "0 " + f.minorUnit
	case 1:
		return parts[0]
	default:
		return parts[0] + " " + f.conjunction + " " + parts[1]
	}
}

// group writes a non-negative integer with the locale's thousands separator.
func (f *Formatter) group(n *big.Int) string {
	digits := n.String()
	if len(digits) <= 3 || f.groupSep == "" {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(f.groupSep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
