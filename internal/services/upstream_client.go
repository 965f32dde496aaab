package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"debt-portal/internal/config"
	"debt-portal/internal/models"
)

// BasicAuthTransport adds the upstream credentials to every request.
type BasicAuthTransport struct {
	username string
	password string
	base     http.RoundTripper
}

func (t *BasicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.SetBasicAuth(t.username, t.password)
	req.Header.Set("Accept", "application/json")
	if req.Body != nil && req.Body != http.NoBody {
		req.Header.Set("Content-Type", "application/json")
	}

	return t.base.RoundTrip(req)
}

// UpstreamClient talks to the case-management REST service. Every method
// makes exactly one attempt and never returns a Go error; failures come back
// as a fallthrough UpstreamResult.
type UpstreamClient struct {
	config  *config.UpstreamConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewUpstreamClient(
	cfg *config.UpstreamConfig,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UpstreamClientInterface {

	transport := &BasicAuthTransport{
		username: cfg.Username,
		password: cfg.Password,
		base:     http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &UpstreamClient{
		config:  cfg,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *UpstreamClient) buildRequest(
	ctx context.Context,
	method, path string,
	body any,
) (*http.Request, error) {

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		strings.TrimRight(c.config.RESTEndpoint, "/")+path,
		buf,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *UpstreamClient) do(operation string, req *http.Request) (*http.Response, []byte, error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.RecordProcessingTime("upstream."+operation, time.Since(start))
		}
	}()

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorContext(req.Context(),
			"upstream request failed",
			"operation", operation,
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (c *UpstreamClient) get(ctx context.Context, operation, path string) (rawRecord, UpstreamResult) {
	req, err := c.buildRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fallthroughOn(0, err)
	}

	resp, body, err := c.do(operation, req)
	if err != nil {
		return nil, fallthroughOn(0, err)
	}

	switch {
	case isSuccess(resp.StatusCode):
		raw, err := decodeRawRecord(body)
		if err != nil {
			return nil, fallthroughOn(resp.StatusCode, err)
		}
		return raw, found(resp.StatusCode)

	case resp.StatusCode == http.StatusNotFound:
		return nil, missing()

	default:
		c.logger.WarnContext(ctx,
			"unexpected upstream response",
			"operation", operation,
			"status", resp.StatusCode,
		)
		return nil, fallthroughOn(resp.StatusCode, nil)
	}
}

func (c *UpstreamClient) FetchAccount(ctx context.Context, accountID string) (*models.AccountRecord, UpstreamResult) {
	raw, result := c.get(ctx, "fetch_account", "/account/"+url.PathEscape(accountID))
	if result.Outcome != UpstreamFound {
		return nil, result
	}

	account, issues := mapAccount(raw, accountID)
	c.warnIssues(ctx, "fetch_account", accountID, issues)
	return account, result
}

func (c *UpstreamClient) FetchDebts(ctx context.Context, accountID string) (*models.DebtSummary, UpstreamResult) {
	raw, result := c.get(ctx, "fetch_debts", "/debts/"+url.PathEscape(accountID))
	if result.Outcome != UpstreamFound {
		return nil, result
	}

	summary, issues := mapDebtSummary(raw, accountID)
	c.warnIssues(ctx, "fetch_debts", accountID, issues)
	return summary, result
}

// PushAccountUpdate writes the filtered update through to the upstream. The
// response body is ignored; only the status is reported.
func (c *UpstreamClient) PushAccountUpdate(ctx context.Context, accountID string, update models.AccountUpdate) UpstreamResult {
	req, err := c.buildRequest(ctx, http.MethodPut, "/account/"+url.PathEscape(accountID), map[string]string(update))
	if err != nil {
		return fallthroughOn(0, err)
	}

	resp, _, err := c.do("push_account_update", req)
	if err != nil {
		return fallthroughOn(0, err)
	}

	switch {
	case isSuccess(resp.StatusCode):
		return found(resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return missing()
	default:
		return fallthroughOn(resp.StatusCode, nil)
	}
}

// warnIssues reports fields of an accepted upstream answer that were replaced
// by defaults.
func (c *UpstreamClient) warnIssues(ctx context.Context, operation, accountID string, issues mappingIssues) {
	for _, issue := range issues {
		c.logger.WarnContext(ctx,
			"upstream field replaced by default",
			"operation", operation,
			"account_id", accountID,
			"issue", issue,
		)
	}
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
