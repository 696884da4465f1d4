package coordinator

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"breakeven/internal/bond"
	"breakeven/internal/comparator"
	"breakeven/internal/extractor"
	"breakeven/internal/report"
)

// Extractor is the bond source the coordinator drives
type Extractor interface {
	Extract(ctx context.Context) (fixed, indexed []bond.Bond)
}

// Coordinator runs one extract, compare and render pass
type Coordinator struct {
	extractor        Extractor
	out              io.Writer
	fallbackToSample bool
	sample           func() (fixed, indexed []bond.Bond)
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithSampleFallback substitutes sample bonds when extraction leaves either
// class empty
func WithSampleFallback(enabled bool) Option {
	return func(c *Coordinator) {
		c.fallbackToSample = enabled
	}
}

// New creates a Coordinator writing its report to out
func New(ext Extractor, out io.Writer, opts ...Option) *Coordinator {
	c := &Coordinator{
		extractor: ext,
		out:       out,
		sample:    extractor.SampleBonds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run extracts the current listings, compares them and renders the report.
// Missing data is a soft failure: it is logged and Run returns nil. Only
// errors writing the report are returned.
func (c *Coordinator) Run(ctx context.Context) error {
	fixed, indexed := c.extractor.Extract(ctx)

	if len(fixed) == 0 || len(indexed) == 0 {
		if c.fallbackToSample {
			slog.Warn("could not obtain live data, using sample data",
				"fixed", len(fixed),
				"indexed", len(indexed))
			fixed, indexed = c.sample()
		} else {
			slog.Warn("could not obtain live data",
				"fixed", len(fixed),
				"indexed", len(indexed))
		}
	}

	results := comparator.Compare(fixed, indexed)

	err := report.Render(c.out, results)
	if errors.Is(err, report.ErrNoResults) {
		slog.Warn("could not compute results due to missing data")
		return nil
	}
	return err
}
