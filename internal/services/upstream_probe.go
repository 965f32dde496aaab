package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"debt-portal/internal/config"
	"debt-portal/internal/models"
)

const notConfiguredReason = "CACHE_REST_ENDPOINT not configured"

// UpstreamProber issues a bare GET against the upstream base URL. It sends no
// credentials and does not look at the response body.
type UpstreamProber struct {
	config  *config.UpstreamConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewUpstreamProber(
	cfg *config.UpstreamConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UpstreamProberInterface {
	return &UpstreamProber{
		config:  cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		metrics: metrics,
		logger:  logger,
	}
}

func (p *UpstreamProber) Probe(ctx context.Context) models.ConnectivityResult {
	if !p.config.IsConfigured() {
		p.record("not_configured")
		return models.ConnectivityResult{Reachable: false, Reason: notConfiguredReason}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.RESTEndpoint, nil)
	if err != nil {
		p.record("unreachable")
		return models.ConnectivityResult{Reachable: false, Error: err.Error()}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to connect to upstream",
			"url", p.config.RESTEndpoint,
			"error", err,
		)
		p.record("unreachable")
		return models.ConnectivityResult{Reachable: false, Error: err.Error()}
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	p.record("reachable")
	return models.ConnectivityResult{Reachable: true, StatusCode: resp.StatusCode}
}

func (p *UpstreamProber) record(result string) {
	if p.metrics == nil {
		return
	}
	p.metrics.IncrementCounter("upstream_probe", map[string]string{"result": result})
}
