package extractor

import (
	"time"

	"breakeven/internal/bond"
)

// sampleListing is a snapshot of typical Tesouro Direto rates, used when the
// live site cannot be read.
var sampleListing = []struct {
	name  string
	label string
	rate  float64
}{
	{"Tesouro Prefixado 2027", "01/01/2027", 13.45},
	{"Tesouro Prefixado 2031", "01/01/2031", 13.62},
	{"Tesouro Prefixado com Juros Semestrais 2035", "01/01/2035", 13.70},
	{"Tesouro IPCA+ 2029", "15/05/2029", 7.38},
	{"Tesouro IPCA+ 2035", "15/05/2035", 7.10},
	{"Tesouro IPCA+ 2045", "15/05/2045", 6.95},
	{"Tesouro IPCA+ com Juros Semestrais 2033", "15/05/2033", 7.25},
}

// SampleBonds returns a fixed set of realistic bonds. Each call returns fresh
// slices.
func SampleBonds() (fixed, indexed []bond.Bond) {
	var listing Listing
	for _, s := range sampleListing {
		maturity, err := time.Parse(bond.LabelLayout, s.label)
		if err != nil {
			continue
		}
		listing.addNamed(s.name, s.label, maturity, s.rate)
	}
	return listing.Fixed, listing.Indexed
}
