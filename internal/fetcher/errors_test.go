package fetcher

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status        int
		wantType      ErrorType
		wantRetryable bool
	}{
		{429, ErrorTypeRateLimit, true},
		{500, ErrorTypeServer, true},
		{503, ErrorTypeServer, true},
		{403, ErrorTypeClient, false},
		{404, ErrorTypeClient, false},
		{302, ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := ClassifyHTTPError("https://example.com", tt.status)
			if err.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", err.Type, tt.wantType)
			}
			if err.Retryable != tt.wantRetryable {
				t.Errorf("Retryable = %v, want %v", err.Retryable, tt.wantRetryable)
			}
		})
	}
}

func TestFetchError_Error(t *testing.T) {
	err := ClassifyHTTPError("https://example.com/page", 403)
	want := "client error (status 403) fetching https://example.com/page: client error: HTTP 403"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	netErr := NewNetworkError("https://example.com/page", errors.New("dial tcp: refused"))
	want = "network error fetching https://example.com/page: network request failed"
	if netErr.Error() != want {
		t.Errorf("Error() = %q, want %q", netErr.Error(), want)
	}
}

func TestClassifyTransportError(t *testing.T) {
	timeout := ClassifyTransportError("u", fmt.Errorf("get: %w", context.DeadlineExceeded))
	if timeout.Type != ErrorTypeTimeout {
		t.Errorf("Type = %q, want %q", timeout.Type, ErrorTypeTimeout)
	}
	if !errors.Is(timeout, context.DeadlineExceeded) {
		t.Error("errors.Is(timeout, context.DeadlineExceeded) = false, want true")
	}

	network := ClassifyTransportError("u", errors.New("connection reset"))
	if network.Type != ErrorTypeNetwork {
		t.Errorf("Type = %q, want %q", network.Type, ErrorTypeNetwork)
	}
}
