package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"showroom/internal"
	"showroom/internal/errors"
)

// HTTPStatusError reports a non-2xx response from the inventory host.
type HTTPStatusError struct {
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.StatusCode, e.URL)
}

// HTTPSource fetches the spreadsheet from a URL
type HTTPSource struct {
	url        string
	httpClient *http.Client
	logger     *internal.Logger
}

// NewHTTPSource creates an HTTP source. A zero timeout leaves the request unbounded
// apart from the caller's context.
func NewHTTPSource(url string, timeout time.Duration, logger *internal.Logger) *HTTPSource {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Location implements ports.Source
func (s *HTTPSource) Location() string {
	return s.url
}

// Fetch implements ports.Source
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	startTime := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.LoadFailure("failed to build inventory request", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.LoadFailure("inventory request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errors.LoadFailure("inventory fetch returned non-success status",
			&HTTPStatusError{URL: s.url, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.LoadFailure("failed to read inventory response", err)
	}

	s.logger.Debug("[HTTPSource] fetched %s (%d bytes) in %s", s.url, len(body), time.Since(startTime))
	return body, nil
}

// IsURL reports whether location should be fetched over HTTP.
func IsURL(location string) bool {
	lower := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
