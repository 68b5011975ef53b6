// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the request-rate ceiling applied when the
// caller does not configure one. Ten requests per second works out to the
// roughly 100 ms inter-page pause the upstream API asks for.
const DefaultRequestsPerSecond = 10.0

// PacedTransport is an http.RoundTripper that waits on a rate limiter
// before forwarding each request. It replaces ad-hoc sleeps between
// paginated requests with a single request-rate ceiling shared by every
// request going through the client.
type PacedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewPacedTransport wraps base with a limiter allowing requestsPerSecond
// sustained requests and no burst beyond one. A non-positive rate falls
// back to DefaultRequestsPerSecond; a nil base falls back to
// http.DefaultTransport.
func NewPacedTransport(base http.RoundTripper, requestsPerSecond float64) *PacedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}
	return &PacedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// RoundTrip waits for the limiter, honoring the request context, then
// forwards the request to the base transport.
func (t *PacedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// NewClient returns an http.Client with the given timeout whose transport
// is paced at requestsPerSecond.
func NewClient(timeout time.Duration, requestsPerSecond float64) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewPacedTransport(nil, requestsPerSecond),
	}
}
