package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"debt-portal/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProber(t *testing.T, endpoint string) (UpstreamProberInterface, *PrometheusMetrics) {
	t.Helper()
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)
	cfg := &config.UpstreamConfig{RESTEndpoint: endpoint, Username: "_SYSTEM", Password: "SYS"}
	return NewUpstreamProber(cfg, metrics, slog.New(slog.NewTextHandler(io.Discard, nil))), metrics
}

func TestUpstreamProber_NotConfigured(t *testing.T) {
	prober, metrics := newTestProber(t, "")

	result := prober.Probe(context.Background())

	assert.False(t, result.Reachable)
	assert.Equal(t, "CACHE_REST_ENDPOINT not configured", result.Reason)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamProbes.WithLabelValues("not_configured")))
}

func TestUpstreamProber_AnyStatusIsReachable(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	prober, metrics := newTestProber(t, server.URL)
	result := prober.Probe(context.Background())

	assert.True(t, result.Reachable)
	assert.Equal(t, http.StatusUnauthorized, result.StatusCode)
	assert.Equal(t, "401", result.Detail())
	assert.Empty(t, gotAuth, "probe must not send credentials")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamProbes.WithLabelValues("reachable")))
}

func TestUpstreamProber_TransportFailureIsSwallowed(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	endpoint := server.URL
	server.Close()

	prober, metrics := newTestProber(t, endpoint)
	result := prober.Probe(context.Background())

	require.False(t, result.Reachable)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, result.Error, result.Detail())
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.upstreamProbes.WithLabelValues("unreachable")))
}

func TestUpstreamProber_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prober, _ := newTestProber(t, server.URL)
	result := prober.Probe(ctx)

	assert.False(t, result.Reachable)
	assert.Contains(t, result.Error, "context canceled")
}

func TestUpstreamProber_RequestsConfiguredURLExactly(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	prober, _ := newTestProber(t, server.URL+"/csp/user/")
	result := prober.Probe(context.Background())

	assert.True(t, result.Reachable)
	assert.Equal(t, "/csp/user/", gotPath)
}
