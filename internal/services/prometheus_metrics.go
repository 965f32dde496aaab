package services

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	upstreamProbes          *prometheus.CounterVec
	gatewayResponses        *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec
	fallbackAccounts        prometheus.Gauge
}

// NewPrometheusMetrics registers the collectors on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		upstreamProbes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_probe_total",
				Help: "Total number of upstream connectivity probes by result",
			},
			[]string{"result"},
		),
		gatewayResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_responses_total",
				Help: "Total number of gateway responses by operation and data source",
			},
			[]string{"operation", "source"},
		),
		upstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Upstream request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		fallbackAccounts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fallback_accounts",
				Help: "Number of accounts seeded into the fallback store",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "upstream_probe":
		if result := tags["result"]; result != "" {
			m.upstreamProbes.WithLabelValues(result).Inc()
		}
	case "gateway_response":
		m.gatewayResponses.WithLabelValues(tags["operation"], tags["source"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	if operation, ok := strings.CutPrefix(name, "upstream."); ok {
		m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "fallback_accounts":
		m.fallbackAccounts.Set(value)
	}
}
