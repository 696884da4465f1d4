package extractor

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"breakeven/internal/bond"
)

// Class attribute fragments that mark a bond title or card.
var titleClassHints = []string{"card-title", "titulo", "tesouro"}

var (
	ratePattern          = regexp.MustCompile(`(\d+[,.]\d+)\s*%`)
	titleMaturityPattern = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4}|20\d{2})`)
)

// MarkupStrategy walks the rendered bond cards: a title element followed by
// (or containing) an element with the annual rate.
type MarkupStrategy struct{}

// Name implements Strategy.
func (MarkupStrategy) Name() string { return "markup" }

// Attempt implements Strategy.
func (MarkupStrategy) Attempt(_ context.Context, page *Page) Listing {
	var listing Listing

	page.Doc.Find("div").FilterFunction(isTitleElement).Each(func(_ int, title *goquery.Selection) {
		b, ok := scanTitle(title)
		if !ok {
			return
		}
		listing.add(b)
	})

	return listing
}

func isTitleElement(_ int, s *goquery.Selection) bool {
	class, ok := s.Attr("class")
	if !ok || class == "" {
		return false
	}
	for _, hint := range titleClassHints {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return false
}

// scanTitle looks for the first rate-bearing div next to or inside title.
// Any problem with this title only skips this title.
func scanTitle(title *goquery.Selection) (bond.Bond, bool) {
	name := strings.Join(strings.Fields(title.Text()), " ")

	candidates := title.NextAllFiltered("div")
	if candidates.Length() == 0 {
		candidates = title.Find("div")
	}

	var (
		found bond.Bond
		ok    bool
	)
	candidates.EachWithBreak(func(_ int, c *goquery.Selection) bool {
		m := ratePattern.FindStringSubmatch(strings.TrimSpace(c.Text()))
		if m == nil {
			return true
		}

		rate, err := parseRate(m[1])
		if err != nil {
			return true
		}

		label := titleMaturityPattern.FindString(name)
		if label == "" {
			return true
		}

		maturity, err := parseMaturity(label)
		if err != nil {
			slog.Debug("skipping bond card", "name", name, "error", err)
			return true
		}

		found, ok = bond.New(name, label, maturity, rate)
		if !ok {
			slog.Debug("dropping unclassified bond", "name", name)
		}
		return false
	})

	return found, ok
}
