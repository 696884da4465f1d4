package bond

import (
	"strings"
	"time"
)

// Class identifies which side of a break-even comparison a bond sits on.
type Class string

const (
	// Fixed is a bond whose nominal rate is set at issuance (Tesouro Prefixado).
	Fixed Class = "fixed"
	// Indexed is a bond paying a real rate plus realized IPCA inflation (Tesouro IPCA+).
	Indexed Class = "indexed"
)

// Tokens searched for in a bond name to decide its class.
const (
	FixedToken   = "Prefixado"
	IndexedToken = "IPCA+"
)

// LabelLayout is the display layout for maturity dates (dd/mm/yyyy).
const LabelLayout = "02/01/2006"

// Bond is a single treasury bond listing.
type Bond struct {
	Name          string
	MaturityLabel string
	Maturity      time.Time
	Rate          float64
	Class         Class
}

// Classify returns the class a bond name belongs to.
// The fixed token is checked first so a name never lands in both classes.
func Classify(name string) (Class, bool) {
	switch {
	case strings.Contains(name, FixedToken):
		return Fixed, true
	case strings.Contains(name, IndexedToken):
		return Indexed, true
	default:
		return "", false
	}
}

// New builds a Bond and classifies it by name. ok is false when the name
// carries neither class token, in which case the bond should be dropped.
func New(name, label string, maturity time.Time, rate float64) (b Bond, ok bool) {
	class, ok := Classify(name)
	if !ok {
		return Bond{}, false
	}
	return NewOfClass(class, name, label, maturity, rate), true
}

// NewOfClass builds a Bond whose class is already known from where it was
// found, regardless of what its name says.
func NewOfClass(class Class, name, label string, maturity time.Time, rate float64) Bond {
	return Bond{
		Name:          name,
		MaturityLabel: label,
		Maturity:      Date(maturity.Year(), maturity.Month(), maturity.Day()),
		Rate:          rate,
		Class:         class,
	}
}

// Date returns the calendar date at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the absolute number of whole days between two maturities.
func DaysBetween(a, b time.Time) int {
	d := int(a.Sub(b).Hours() / 24)
	if d < 0 {
		return -d
	}
	return d
}
