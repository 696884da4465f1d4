package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"breakeven/internal/bond"
	"breakeven/internal/fetcher"
)

// apiISODate is the date part of mtrtyDt ("2029-05-15T00:00:00").
const apiISODate = "2006-01-02"

// TreasuryBondsResponse represents the treasurybondsinfo.json payload
type TreasuryBondsResponse struct {
	Response *struct {
		// Entries are decoded one at a time so a malformed record only
		// skips itself.
		TradingList []json.RawMessage `json:"TrsrBdTradgList"`
	} `json:"response"`
}

// TradingEntry wraps each bond in the trading list
type TradingEntry struct {
	Bond TreasuryBond `json:"TrsrBd"`
}

// TreasuryBond is a single bond entry of the API payload
type TreasuryBond struct {
	Name           string  `json:"nm"`
	MaturityDate   string  `json:"mtrtyDt"`
	InvestmentRate apiRate `json:"anulInvstmtRate"`
	RedemptionRate apiRate `json:"anulRedRate"`
}

// apiRate tolerates numbers, numeric strings and nulls so one odd record
// cannot spoil decoding of the whole list.
type apiRate struct {
	Value float64
	Set   bool
}

// UnmarshalJSON implements json.Unmarshaler
func (r *apiRate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = apiRate{}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = apiRate{Value: n, Set: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*r = apiRate{}
		return nil
	}
	v, err := parseRate(s)
	if err != nil {
		*r = apiRate{}
		return nil
	}
	*r = apiRate{Value: v, Set: true}
	return nil
}

// rate picks the investment rate, falling back to the redemption rate when
// the former is absent or not positive. A listed bond with a genuine zero
// investment rate is indistinguishable from a missing one here.
func (b TreasuryBond) rate() float64 {
	if b.InvestmentRate.Set && b.InvestmentRate.Value > 0 {
		return b.InvestmentRate.Value
	}
	return b.RedemptionRate.Value
}

// APIStrategy queries the Tesouro Direto bond API directly.
type APIStrategy struct {
	fetcher fetcher.Fetcher
	url     string
}

// NewAPIStrategy creates the API strategy
func NewAPIStrategy(f fetcher.Fetcher, url string) *APIStrategy {
	return &APIStrategy{fetcher: f, url: url}
}

// Name implements Strategy.
func (s *APIStrategy) Name() string { return "api" }

// Attempt implements Strategy. The listing page is not used.
func (s *APIStrategy) Attempt(ctx context.Context, _ *Page) Listing {
	var listing Listing

	resp, err := s.fetcher.Fetch(ctx, s.url)
	if err != nil {
		slog.Error("could not fetch bond API", "url", s.url, "error", err)
		return listing
	}

	var payload TreasuryBondsResponse
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		slog.Error("could not decode bond API payload", "url", s.url,
			"error", fetcher.NewValidationError(s.url, "malformed JSON", err))
		return listing
	}

	if payload.Response == nil {
		slog.Warn("bond API payload has no response section", "url", s.url)
		return listing
	}

	for i, raw := range payload.Response.TradingList {
		var entry TradingEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			slog.Warn("skipping API record", "index", i, "error", err)
			continue
		}

		b := entry.Bond
		rate := b.rate()
		if b.Name == "" || b.MaturityDate == "" || rate <= 0 {
			continue
		}

		datePart, _, _ := strings.Cut(b.MaturityDate, "T")
		maturity, err := time.Parse(apiISODate, datePart)
		if err != nil {
			slog.Warn("skipping API record", "name", b.Name, "error", err)
			continue
		}

		listing.addNamed(b.Name, maturity.Format(bond.LabelLayout), maturity, rate)
	}

	return listing
}
