package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"resty.dev/v3"

	"breakeven/internal/ratelimit"
)

const (
	// DefaultUserAgent mimics a desktop browser; the listing page rejects obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// Default retry configuration
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 10 * time.Second
	defaultTimeout          = 30 * time.Second
)

// Options tunes the HTTP fetcher.
type Options struct {
	UserAgent        string
	Timeout          time.Duration
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Limiter          *ratelimit.Limiter
}

// HTTPFetcher is the resty-backed Fetcher used in production.
type HTTPFetcher struct {
	client  *resty.Client
	limiter *ratelimit.Limiter
}

// NewHTTPFetcher creates a fetcher with browser-like headers, retry logic and
// exponential backoff. Unset durations fall back to defaults and a negative
// RetryCount selects the default retry count.
func NewHTTPFetcher(opts Options) *HTTPFetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryCount < 0 {
		opts.RetryCount = defaultRetryCount
	}
	if opts.RetryWaitTime <= 0 {
		opts.RetryWaitTime = defaultRetryWaitTime
	}
	if opts.RetryMaxWaitTime <= 0 {
		opts.RetryMaxWaitTime = defaultRetryMaxWaitTime
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.Unlimited()
	}

	return &HTTPFetcher{
		client:  NewHTTPClient(opts),
		limiter: opts.Limiter,
	}
}

// NewHTTPClient creates the underlying resty client
func NewHTTPClient(opts Options) *resty.Client {
	return resty.New().
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "pt-BR,pt;q=0.9,en;q=0.8").
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetRetryMaxWaitTime(opts.RetryMaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)
}

// Fetch retrieves url, waiting on the host rate limit first
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Response, error) {
	if err := f.limiter.Wait(ctx, url); err != nil {
		return nil, ClassifyTransportError(url, err)
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, ClassifyTransportError(url, err)
	}

	if !resp.IsSuccess() {
		return nil, ClassifyHTTPError(url, resp.StatusCode())
	}

	slog.Debug("fetched document",
		"url", url,
		"status_code", resp.StatusCode(),
		"bytes", len(resp.Bytes()))

	return &Response{
		URL:         url,
		StatusCode:  resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Bytes(),
	}, nil
}

// Close releases the underlying client's resources
func (f *HTTPFetcher) Close() error {
	return f.client.Close()
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	switch code := r.StatusCode(); {
	case code >= 500:
		return true
	case code == http.StatusTooManyRequests, code == http.StatusRequestTimeout:
		return true
	default:
		// 403 from bot protection will not change on retry
		return false
	}
}

// retryHook logs retry attempts for observability
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying request due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying request due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
