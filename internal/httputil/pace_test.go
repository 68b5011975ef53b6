// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacedTransportSpacesRequests(t *testing.T) {
	var stamps []time.Time
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stamps = append(stamps, time.Now())
	}))
	defer ts.Close()

	// 20 req/s → at least 50 ms between the second and third request.
	client := NewClient(5*time.Second, 20)
	for i := 0; i < 3; i++ {
		resp, err := client.Get(ts.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	require.Len(t, stamps, 3)
	// The first request may pass immediately; the following ones must be
	// spaced by roughly the limiter interval.
	gap := stamps[2].Sub(stamps[1])
	assert.GreaterOrEqual(t, gap, 40*time.Millisecond)
}

func TestPacedTransportHonorsContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer ts.Close()

	// One request per 10 s: the second request would block on the limiter,
	// so a cancelled context must surface as an error.
	client := NewClient(5*time.Second, 0.1)

	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.Error(t, err)
}

func TestNewPacedTransportDefaults(t *testing.T) {
	tr := NewPacedTransport(nil, 0)
	assert.NotNil(t, tr.base)
	assert.InDelta(t, DefaultRequestsPerSecond, float64(tr.limiter.Limit()), 0.001)
}
