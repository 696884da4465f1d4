package bond

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		wantClass Class
		wantOK    bool
	}{
		{"Tesouro Prefixado 2027", Fixed, true},
		{"Tesouro Prefixado com Juros Semestrais 2035", Fixed, true},
		{"Tesouro IPCA+ 2029", Indexed, true},
		{"Tesouro IPCA+ com Juros Semestrais 2040", Indexed, true},
		{"Tesouro Selic 2029", "", false},
		{"Tesouro Renda+ Aposentadoria Extra 2065", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, ok := Classify(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if class != tt.wantClass {
				t.Errorf("Classify(%q) = %q, want %q", tt.name, class, tt.wantClass)
			}
		})
	}
}

func TestClassify_FixedTokenWins(t *testing.T) {
	class, ok := Classify("Tesouro Prefixado vs IPCA+ 2030")
	if !ok || class != Fixed {
		t.Errorf("Classify() = %q, %v, want %q, true", class, ok, Fixed)
	}
}

func TestNew(t *testing.T) {
	maturity := time.Date(2027, time.January, 1, 15, 30, 0, 0, time.Local)

	b, ok := New("Tesouro Prefixado 2027", "01/01/2027", maturity, 13.45)
	if !ok {
		t.Fatal("New() ok = false, want true")
	}
	if b.Class != Fixed {
		t.Errorf("Class = %q, want %q", b.Class, Fixed)
	}
	if !b.Maturity.Equal(Date(2027, time.January, 1)) {
		t.Errorf("Maturity = %v, want 2027-01-01 UTC", b.Maturity)
	}
	if b.MaturityLabel != "01/01/2027" {
		t.Errorf("MaturityLabel = %q, want %q", b.MaturityLabel, "01/01/2027")
	}

	if _, ok := New("Tesouro Selic 2029", "2029", maturity, 0.1); ok {
		t.Error("New() with unclassifiable name ok = true, want false")
	}
}

func TestNewOfClass_IgnoresName(t *testing.T) {
	b := NewOfClass(Indexed, "Tesouro IPCA+ acima do Prefixado 2035", "2035",
		time.Date(2035, time.January, 1, 15, 30, 0, 0, time.UTC), 7.1)

	if b.Class != Indexed {
		t.Errorf("Class = %q, want %q", b.Class, Indexed)
	}
	if !b.Maturity.Equal(Date(2035, time.January, 1)) {
		t.Errorf("Maturity = %v, want midnight of 2035-01-01", b.Maturity)
	}
}

func TestDaysBetween(t *testing.T) {
	a := Date(2029, time.May, 15)
	b := Date(2029, time.January, 1)

	if got := DaysBetween(a, b); got != 134 {
		t.Errorf("DaysBetween(a, b) = %d, want 134", got)
	}
	if got := DaysBetween(b, a); got != 134 {
		t.Errorf("DaysBetween(b, a) = %d, want 134", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween(a, a) = %d, want 0", got)
	}
}

func TestImplicitInflation(t *testing.T) {
	got := ImplicitInflation(10.0, 5.0)
	want := (1.10/1.05 - 1) * 100
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ImplicitInflation(10, 5) = %.6f, want %.6f", got, want)
	}
	if math.Abs(got-4.7619) > 1e-4 {
		t.Errorf("ImplicitInflation(10, 5) = %.6f, want ~4.7619", got)
	}
}

func TestRecommend_Threshold(t *testing.T) {
	tests := []struct {
		implicit float64
		want     string
	}{
		{5.0, "BELOW 5.00%"},
		{4.2, "BELOW 4.20%"},
		{5.0001, "ABOVE 5.00%"},
		{7.5, "ABOVE 7.50%"},
	}

	for _, tt := range tests {
		got := Recommend(tt.implicit)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Recommend(%v) = %q, want it to contain %q", tt.implicit, got, tt.want)
		}
	}
}

func TestNewComparison(t *testing.T) {
	fixed, _ := New("Tesouro Prefixado 2029", "01/01/2029", Date(2029, 1, 1), 10.0)
	indexed, _ := New("Tesouro IPCA+ 2029", "15/05/2029", Date(2029, 5, 15), 5.0)

	c, err := NewComparison(fixed, indexed)
	if err != nil {
		t.Fatalf("NewComparison() returned unexpected error: %v", err)
	}
	if math.Abs(c.ImplicitInflation-4.7619) > 1e-4 {
		t.Errorf("ImplicitInflation = %.6f, want ~4.7619", c.ImplicitInflation)
	}
	if math.Abs(c.InflationSum-9.7619) > 1e-4 {
		t.Errorf("InflationSum = %.6f, want ~9.7619", c.InflationSum)
	}
	if !strings.Contains(c.Recommendation, "BELOW") {
		t.Errorf("Recommendation = %q, want BELOW wording", c.Recommendation)
	}
}

func TestNewComparison_ClassMismatch(t *testing.T) {
	fixed, _ := New("Tesouro Prefixado 2029", "2029", Date(2029, 1, 1), 10.0)
	other, _ := New("Tesouro Prefixado 2031", "2031", Date(2031, 1, 1), 11.0)

	if _, err := NewComparison(fixed, other); !errors.Is(err, ErrClassMismatch) {
		t.Errorf("NewComparison(fixed, fixed) error = %v, want ErrClassMismatch", err)
	}
	if _, err := NewComparison(Bond{}, Bond{}); !errors.Is(err, ErrClassMismatch) {
		t.Errorf("NewComparison(zero, zero) error = %v, want ErrClassMismatch", err)
	}
}
