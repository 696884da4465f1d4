package extractor

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// embeddedMarker identifies the script block that carries the listing.
const embeddedMarker = "window.TD"

var embeddedListPattern = regexp.MustCompile(`(?s)window\.TD\.titulos\s*=\s*(\[.*?\]);`)

// EmbeddedJSONStrategy reads the bond array the page assigns to
// window.TD.titulos in one of its scripts.
type EmbeddedJSONStrategy struct{}

// Name implements Strategy.
func (EmbeddedJSONStrategy) Name() string { return "embedded-json" }

// Attempt implements Strategy. Only the first script mentioning the marker
// is considered.
func (s EmbeddedJSONStrategy) Attempt(_ context.Context, page *Page) Listing {
	var listing Listing

	page.Doc.Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		content := script.Text()
		if content == "" || !strings.Contains(content, embeddedMarker) {
			return true
		}
		listing = parseEmbeddedScript(content)
		return false
	})

	return listing
}

// parseEmbeddedScript decodes the window.TD.titulos array in a script body.
func parseEmbeddedScript(content string) Listing {
	var listing Listing

	match := embeddedListPattern.FindStringSubmatch(content)
	if match == nil {
		slog.Debug("marker script has no titulos assignment")
		return listing
	}

	var records []json.RawMessage
	if err := json.Unmarshal([]byte(match[1]), &records); err != nil {
		slog.Error("could not decode embedded bond list", "error", err)
		return listing
	}

	for i, raw := range records {
		var rec map[string]any
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Debug("skipping embedded record", "index", i, "error", err)
			continue
		}

		name := stringField(rec, "nome")
		label := stringField(rec, "vencimento")

		maturity, err := parseMaturity(label)
		if err != nil {
			slog.Debug("skipping embedded record", "name", name, "error", err)
			continue
		}

		rate := rateOrZero(rec["rentabilidade"])
		listing.addNamed(name, label, maturity, rate)
	}

	return listing
}

func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}
