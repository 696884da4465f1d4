// Package extractor pulls Tesouro Direto bond listings out of an unstable
// public page. Several strategies are tried in order, from the most
// structured (embedded JSON) to the least (free text), with the bond API as
// a last resort.
package extractor

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"breakeven/internal/bond"
	"breakeven/internal/fetcher"
)

// Listing is the outcome of one extraction attempt.
type Listing struct {
	Fixed   []bond.Bond
	Indexed []bond.Bond
}

// Empty reports whether the listing holds no bonds of either class.
func (l Listing) Empty() bool {
	return len(l.Fixed) == 0 && len(l.Indexed) == 0
}

// add files b under its class.
func (l *Listing) add(b bond.Bond) {
	switch b.Class {
	case bond.Fixed:
		l.Fixed = append(l.Fixed, b)
	case bond.Indexed:
		l.Indexed = append(l.Indexed, b)
	}
}

// addNamed builds a bond and files it, dropping names that match neither class.
func (l *Listing) addNamed(name, label string, maturity time.Time, rate float64) bool {
	b, ok := bond.New(name, label, maturity, rate)
	if !ok {
		slog.Debug("dropping unclassified bond", "name", name)
		return false
	}
	l.add(b)
	return true
}

// Page is the successfully fetched listing page.
type Page struct {
	URL string
	Doc *goquery.Document
}

// Strategy is one way of turning the listing page (or something reachable
// from it) into bonds. Attempt must not fail: unusable input yields an empty
// Listing.
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, page *Page) Listing
}

// Extractor runs the strategy chain against the Tesouro Direto page.
type Extractor struct {
	fetcher    fetcher.Fetcher
	pageURL    string
	strategies []Strategy
	useSample  bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrategies replaces the default strategy chain.
func WithStrategies(strategies ...Strategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// WithSampleData makes Extract return SampleBonds without touching the network.
func WithSampleData(enabled bool) Option {
	return func(e *Extractor) {
		e.useSample = enabled
	}
}

// New creates an Extractor reading the listing page at pageURL and, as a last
// resort, the bond API at apiURL.
func New(f fetcher.Fetcher, pageURL, apiURL string, opts ...Option) *Extractor {
	e := &Extractor{
		fetcher: f,
		pageURL: pageURL,
		strategies: []Strategy{
			EmbeddedJSONStrategy{},
			MarkupStrategy{},
			FreeTextStrategy{},
			NewAPIStrategy(f, apiURL),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the fixed-rate and inflation-indexed bonds currently listed.
// It never fails: when the page cannot be fetched or every strategy comes up
// empty, both slices are empty and the caller decides what to do.
func (e *Extractor) Extract(ctx context.Context) (fixed, indexed []bond.Bond) {
	if e.useSample {
		slog.Info("using sample bond data")
		return SampleBonds()
	}

	slog.Info("starting bond extraction", "url", e.pageURL)

	// A failed page fetch ends the session; the API is only a fallback for
	// pages that load but carry nothing usable.
	resp, err := e.fetcher.Fetch(ctx, e.pageURL)
	if err != nil {
		slog.Error("could not fetch listing page", "url", e.pageURL, "error", err)
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		slog.Error("could not parse listing page", "url", e.pageURL, "error",
			fetcher.NewValidationError(e.pageURL, "unparseable markup", err))
		return nil, nil
	}

	page := &Page{URL: e.pageURL, Doc: doc}

	var result Listing
	for _, s := range e.strategies {
		slog.Info("trying extraction strategy", "strategy", s.Name())
		result = s.Attempt(ctx, page)
		if !result.Empty() {
			break
		}
	}

	if result.Empty() {
		slog.Warn("all extraction strategies came up empty", "url", e.pageURL)
	}

	slog.Info("extraction finished",
		"fixed", len(result.Fixed),
		"indexed", len(result.Indexed))

	return result.Fixed, result.Indexed
}
