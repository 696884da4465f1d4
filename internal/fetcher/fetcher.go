package fetcher

import "context"

// Fetcher retrieves a remote document. It is the only component that touches
// the network, so extraction logic can be exercised against canned documents.
type Fetcher interface {
	// Fetch performs a GET on url. A non-2xx status is reported as a
	// *FetchError rather than a Response.
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Response is a successfully fetched document.
type Response struct {
	// URL is the address that was requested
	URL string

	StatusCode  int
	ContentType string

	// Body is the full response payload (HTML for the listing page, JSON for the API)
	Body []byte
}
