// Package comparator pairs fixed-rate bonds with the inflation-indexed bond
// of closest maturity and derives the break-even inflation for each pair.
package comparator

import (
	"log/slog"
	"slices"

	"breakeven/internal/bond"
)

// Compare returns one comparison per fixed bond, ordered by fixed maturity.
// Either side being empty is not an error: the result is simply empty.
// A bond in fixed whose Class is not bond.Fixed (or a match whose Class is
// not bond.Indexed) is logged and skipped, so such inputs yield fewer
// results. The input slices are not modified.
func Compare(fixed, indexed []bond.Bond) []bond.Comparison {
	slog.Info("comparing bonds", "fixed", len(fixed), "indexed", len(indexed))

	if len(fixed) == 0 || len(indexed) == 0 {
		slog.Warn("insufficient data for comparison", "fixed", len(fixed), "indexed", len(indexed))
		return nil
	}

	fixed = sortedByMaturity(fixed)
	indexed = sortedByMaturity(indexed)

	results := make([]bond.Comparison, 0, len(fixed))
	for _, f := range fixed {
		match, ok := Nearest(f, indexed)
		if !ok {
			continue
		}

		c, err := bond.NewComparison(f, match)
		if err != nil {
			slog.Warn("skipping pair", "fixed", f.Name, "indexed", match.Name, "error", err)
			continue
		}
		results = append(results, c)
	}

	return results
}

// Nearest returns the candidate whose maturity is closest to target's.
// On ties the earliest candidate in the slice wins.
func Nearest(target bond.Bond, candidates []bond.Bond) (bond.Bond, bool) {
	var (
		best    bond.Bond
		bestGap = -1
	)
	for _, c := range candidates {
		gap := bond.DaysBetween(target.Maturity, c.Maturity)
		if bestGap < 0 || gap < bestGap {
			best, bestGap = c, gap
		}
	}
	return best, bestGap >= 0
}

func sortedByMaturity(bonds []bond.Bond) []bond.Bond {
	sorted := slices.Clone(bonds)
	slices.SortStableFunc(sorted, func(a, b bond.Bond) int {
		return a.Maturity.Compare(b.Maturity)
	})
	return sorted
}
