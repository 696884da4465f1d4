package extractor

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"breakeven/internal/bond"
)

// Each pattern captures a bond name ending in its maturity year, then the
// first percentage after it.
var (
	fixedTextPattern   = regexp.MustCompile(`(Tesouro\s+Prefixado\s+.*?20\d{2})[^\d]+([\d,]+%)`)
	indexedTextPattern = regexp.MustCompile(`(Tesouro\s+IPCA\+\s+.*?20\d{2})[^\d]+([\d,]+%)`)

	yearPattern = regexp.MustCompile(`20\d{2}`)
)

// textPatterns ties each pattern to the class of the bonds it finds.
var textPatterns = []struct {
	class   bond.Class
	pattern *regexp.Regexp
}{
	{bond.Fixed, fixedTextPattern},
	{bond.Indexed, indexedTextPattern},
}

// FreeTextStrategy pattern-matches bond mentions in the page's visible text.
type FreeTextStrategy struct{}

// Name implements Strategy.
func (FreeTextStrategy) Name() string { return "free-text" }

// Attempt implements Strategy.
func (FreeTextStrategy) Attempt(_ context.Context, page *Page) Listing {
	var listing Listing

	text := page.Doc.Text()
	for _, tp := range textPatterns {
		for _, m := range tp.pattern.FindAllStringSubmatch(text, -1) {
			name, rateText := m[1], m[2]

			rate, err := parseRate(rateText)
			if err != nil {
				slog.Debug("skipping text match", "name", name, "error", err)
				continue
			}

			year := yearPattern.FindString(name)
			if year == "" {
				continue
			}
			y, _ := strconv.Atoi(year)

			listing.add(bond.NewOfClass(tp.class, name, year, bond.Date(y, time.January, 1), rate))
		}
	}

	return listing
}
