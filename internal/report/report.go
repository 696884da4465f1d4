// Package report renders break-even comparisons for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"breakeven/internal/bond"
)

// ErrNoResults is returned when there is nothing to render.
var ErrNoResults = errors.New("no comparison results to display")

var columns = []string{
	"Prefixado",
	"Maturity",
	"Rate (%)",
	"IPCA+",
	"Maturity",
	"Rate (%)",
	"Implicit Inflation (%)",
	"IPCA+ Rate + Implicit (%)",
}

const explanation = `
DETAILED EXPLANATION:

Implicit inflation is the average annual IPCA the market is pricing in until
the bonds mature.

INVESTMENT STRATEGY:
- If you expect average annual inflation ABOVE the implicit inflation,
  the IPCA+ (inflation-indexed) bond is the better deal.
- If you expect average annual inflation BELOW the implicit inflation,
  the Prefixado (fixed-rate) bond pays more.

The rule holds for any fixed-income pair with the same term and issuer,
which keeps the comparison between assets of similar risk.
`

// Round2 rounds a percentage to two decimal places for display.
func Round2(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// Render writes the comparison table followed by a per-pair interpretation.
func Render(w io.Writer, results []bond.Comparison) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	p := &printer{w: w}
	p.printf("\n=== IMPLICIT INFLATION ANALYSIS: TESOURO DIRETO ===\n\n")
	if p.err != nil {
		return p.err
	}

	if err := renderTable(w, results); err != nil {
		return err
	}

	p.printf("\n=== INTERPRETATION AND RECOMMENDATION ===\n\n")
	for i, r := range results {
		p.printf("Pair %d: %s vs %s\n", i+1, r.Fixed.Name, r.Indexed.Name)
		p.printf("Implicit inflation: %s%%\n", Round2(r.ImplicitInflation))
		p.printf("Meaning: the average annual IPCA until maturity that the market\n")
		p.printf("is implicitly forecasting.\n")
		p.printf("Recommendation: %s\n", r.Recommendation)
		p.printf("%s\n", strings.Repeat("-", 80))
	}

	p.printf("%s", explanation)
	return p.err
}

func renderTable(w io.Writer, results []bond.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.Debug)

	row := func(cells ...string) {
		fmt.Fprintf(tw, " %s\t\n", strings.Join(cells, " \t "))
	}

	row(columns...)
	rule := make([]string, len(columns))
	for i, c := range columns {
		rule[i] = strings.Repeat("-", len(c))
	}
	row(rule...)

	for _, r := range results {
		row(
			r.Fixed.Name,
			r.Fixed.MaturityLabel,
			Round2(r.Fixed.Rate),
			r.Indexed.Name,
			r.Indexed.MaturityLabel,
			Round2(r.Indexed.Rate),
			Round2(r.ImplicitInflation),
			Round2(r.InflationSum),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render comparison table: %w", err)
	}
	return nil
}

// printer remembers the first write error so the caller checks once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, err := fmt.Fprintf(p.w, format, args...); err != nil {
		p.err = fmt.Errorf("render report: %w", err)
	}
}
