package bond

import (
	"errors"
	"fmt"
)

// RecommendationThreshold is the implicit inflation (in percent) above which
// the recommendation is phrased in favour of the indexed bond.
const RecommendationThreshold = 5.0

// ErrClassMismatch is returned when a comparison is built from bonds that are
// not one fixed-rate and one inflation-indexed bond.
var ErrClassMismatch = errors.New("comparison requires one fixed and one indexed bond")

// Comparison is the break-even analysis of a fixed bond against the
// indexed bond with the closest maturity.
type Comparison struct {
	Fixed             Bond
	Indexed           Bond
	ImplicitInflation float64
	// InflationSum is the indexed rate plus the implicit inflation, shown for reference only.
	InflationSum   float64
	Recommendation string
}

// ImplicitInflation splits a nominal rate into real rate plus expected
// inflation: ((1+rf/100)/(1+ri/100) - 1) * 100.
func ImplicitInflation(fixedRate, indexedRate float64) float64 {
	return ((1+fixedRate/100)/(1+indexedRate/100) - 1) * 100
}

// Recommend phrases the choice between the two bonds for a given implicit
// inflation. Both branches describe the same decision rule.
func Recommend(implicit float64) string {
	if implicit > RecommendationThreshold {
		return fmt.Sprintf("If you expect inflation ABOVE %.2f%%, choose the IPCA+ bond. Otherwise, choose the Prefixado bond.", implicit)
	}
	return fmt.Sprintf("If you expect inflation BELOW %.2f%%, choose the Prefixado bond. Otherwise, choose the IPCA+ bond.", implicit)
}

// NewComparison derives the implicit inflation and recommendation for a pair.
func NewComparison(fixed, indexed Bond) (Comparison, error) {
	if fixed.Class != Fixed || indexed.Class != Indexed {
		return Comparison{}, fmt.Errorf("%w: got %q (%s) and %q (%s)",
			ErrClassMismatch, fixed.Name, fixed.Class, indexed.Name, indexed.Class)
	}

	implicit := ImplicitInflation(fixed.Rate, indexed.Rate)
	return Comparison{
		Fixed:             fixed,
		Indexed:           indexed,
		ImplicitInflation: implicit,
		InflationSum:      indexed.Rate + implicit,
		Recommendation:    Recommend(implicit),
	}, nil
}
