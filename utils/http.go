package utils

import (
	"crypto/tls"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

const userAgent = "JobFit/1.0 (+https://jobfit.dev)"

// Backoff bounds for retried requests
var (
	retryBaseDelay = 250 * time.Millisecond
	retryMaxDelay  = 5 * time.Second
)

// NewHTTPClient creates the client used for job search and page fetches.
// Idempotent requests answered with 429 or a 5xx gateway status are retried
// up to maxRetries times.
func NewHTTPClient(timeout time.Duration, maxRetries int) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &retryTransport{
			next:       transport,
			maxRetries: maxRetries,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

type retryTransport struct {
	next       http.RoundTripper
	maxRetries int
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := t.next.RoundTrip(req)
	if !canRetry(req) {
		return resp, err
	}

	for attempt := 1; attempt <= t.maxRetries; attempt++ {
		if err != nil || !retryableStatus(resp.StatusCode) {
			return resp, err
		}

		delay := retryDelay(resp, attempt)
		// drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		resp.Body.Close()

		log.Printf("[HTTP] %s %s returned %d, retry %d/%d in %s", req.Method, req.URL.Host, resp.StatusCode, attempt, t.maxRetries, delay)

		timer := time.NewTimer(delay)
		select {
		case <-req.Context().Done():
			timer.Stop()
			return nil, req.Context().Err()
		case <-timer.C:
		}

		resp, err = t.next.RoundTrip(req)
	}
	return resp, err
}

// canRetry reports whether req can be replayed as-is
func canRetry(req *http.Request) bool {
	return (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// retryDelay honors a Retry-After in seconds, otherwise backs off exponentially
func retryDelay(resp *http.Response, attempt int) time.Duration {
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil && secs >= 0 {
		return min(time.Duration(secs)*time.Second, retryMaxDelay)
	}
	return min(retryBaseDelay<<(attempt-1), retryMaxDelay)
}
