package extractor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"breakeven/internal/bond"
)

// maturityLayout reads dd/mm/yyyy with or without zero padding.
const maturityLayout = "2/1/2006"

var (
	yearOnlyPattern = regexp.MustCompile(`^\d{4}$`)

	errEmptyMaturity = errors.New("empty maturity")
)

// parseRate reads a percentage written either way the site does it:
// "13,45%", "13.45 %", "7,1".
func parseRate(s string) (float64, error) {
	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.TrimSpace(s)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// rateOrZero is parseRate for sources where a bad rate keeps the record.
func rateOrZero(v any) float64 {
	switch r := v.(type) {
	case string:
		rate, err := parseRate(r)
		if err != nil {
			return 0
		}
		return rate
	case float64:
		return r
	default:
		return 0
	}
}

// parseMaturity accepts d/m/yyyy (padded or not) and, failing that, a bare year which is
// read as January 1 of that year.
func parseMaturity(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyMaturity
	}

	if t, err := time.Parse(maturityLayout, s); err == nil {
		return t, nil
	}

	if yearOnlyPattern.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return bond.Date(year, time.January, 1), nil
	}

	return time.Time{}, fmt.Errorf("parse maturity %q: not dd/mm/yyyy or yyyy", s)
}
