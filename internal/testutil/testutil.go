package testutil

import (
	"context"
	"sync"

	"breakeven/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing.
// It records every URL it was asked for.
type MockFetcher struct {
	FetchFunc func(ctx context.Context, url string) (*fetcher.Response, error)

	mu    sync.Mutex
	calls []string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context, url string) (*fetcher.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	return nil, fetcher.ClassifyHTTPError(url, 404)
}

// Calls returns the URLs fetched so far, in order
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Called reports whether url was fetched at least once
func (m *MockFetcher) Called(url string) bool {
	for _, c := range m.Calls() {
		if c == url {
			return true
		}
	}
	return false
}

// NewMockFetcher serves the given bodies keyed by URL. Unknown URLs and URLs
// mapped to an error fail the fetch.
func NewMockFetcher(pages map[string]string, failures map[string]error) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, url string) (*fetcher.Response, error) {
			if err, ok := failures[url]; ok {
				return nil, err
			}
			body, ok := pages[url]
			if !ok {
				return nil, fetcher.ClassifyHTTPError(url, 404)
			}
			return &fetcher.Response{URL: url, StatusCode: 200, Body: []byte(body)}, nil
		},
	}
}
