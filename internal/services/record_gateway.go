package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"debt-portal/internal/models"
	"debt-portal/internal/repositories"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDebtNotFound       = errors.New("debt not found")
	ErrServiceUnavailable = errors.New("upstream unavailable and no fallback record")
)

const (
	SourceUpstream = "upstream"
	SourceFallback = "fallback"
	SourceNone     = "none"
)

// RecordGateway re-probes the upstream on every call and holds no state
// between calls. The fallback store is the only shared mutable resource;
// concurrent merges into the same account are last-write-wins per field.
type RecordGateway struct {
	prober  UpstreamProberInterface
	client  UpstreamClientInterface
	store   repositories.FallbackStoreInterface
	metrics MetricsRecorderInterface
	audit   AuditLoggerInterface
	logger  *slog.Logger
}

func NewRecordGateway(
	prober UpstreamProberInterface,
	client UpstreamClientInterface,
	store repositories.FallbackStoreInterface,
	metrics MetricsRecorderInterface,
	audit AuditLoggerInterface,
	logger *slog.Logger,
) RecordGatewayInterface {
	return &RecordGateway{
		prober:  prober,
		client:  client,
		store:   store,
		metrics: metrics,
		audit:   audit,
		logger:  logger,
	}
}

func (g *RecordGateway) GetAccount(ctx context.Context, accountID string) (*models.AccountRecord, error) {
	const operation = "get_account"

	if g.prober.Probe(ctx).Reachable {
		account, result := g.client.FetchAccount(ctx, accountID)
		switch result.Outcome {
		case UpstreamFound:
			g.served(ctx, operation, accountID, SourceUpstream)
			return account, nil
		case UpstreamMissing:
			g.served(ctx, operation, accountID, SourceNone)
			return nil, ErrAccountNotFound
		default:
			g.audit.LogUpstreamDegraded(ctx, operation, accountID, result)
		}
	}

	account, err := g.store.GetAccount(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			g.served(ctx, operation, accountID, SourceNone)
			return nil, ErrServiceUnavailable
		}
		return nil, fmt.Errorf("read fallback account %s: %w", accountID, err)
	}

	g.served(ctx, operation, accountID, SourceFallback)
	return account, nil
}

// GetDebts never reports a missing account; no debts is an empty summary.
func (g *RecordGateway) GetDebts(ctx context.Context, accountID string) (*models.DebtSummary, error) {
	const operation = "get_debts"

	if g.prober.Probe(ctx).Reachable {
		summary, result := g.client.FetchDebts(ctx, accountID)
		switch result.Outcome {
		case UpstreamFound:
			g.served(ctx, operation, accountID, SourceUpstream)
			return summary, nil
		case UpstreamMissing:
			g.served(ctx, operation, accountID, SourceNone)
			return models.EmptyDebtSummary(), nil
		default:
			g.audit.LogUpstreamDegraded(ctx, operation, accountID, result)
		}
	}

	summary, err := g.store.GetDebtSummary(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrDebtsNotFound) {
			g.served(ctx, operation, accountID, SourceNone)
			return models.EmptyDebtSummary(), nil
		}
		return nil, fmt.Errorf("read fallback debts %s: %w", accountID, err)
	}

	g.served(ctx, operation, accountID, SourceFallback)
	return summary, nil
}

// UpdateAccount writes through to the upstream when it is reachable, ignoring
// the answer, and always returns the merged fallback record.
func (g *RecordGateway) UpdateAccount(ctx context.Context, accountID string, update models.AccountUpdate) (*models.AccountRecord, error) {
	const operation = "update_account"

	update = allowListed(update)

	upstreamAttempted := false
	if g.prober.Probe(ctx).Reachable {
		upstreamAttempted = true
		if result := g.client.PushAccountUpdate(ctx, accountID, update); result.Outcome != UpstreamFound {
			g.audit.LogUpstreamDegraded(ctx, operation, accountID, result)
		}
	}

	account, err := g.store.MergeAccount(accountID, update)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			g.served(ctx, operation, accountID, SourceNone)
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("merge fallback account %s: %w", accountID, err)
	}

	g.audit.LogAccountUpdated(ctx, accountID, update.Fields(), upstreamAttempted)
	g.served(ctx, operation, accountID, SourceFallback)
	return account, nil
}

// GetDebtDetail only consults the fallback store.
func (g *RecordGateway) GetDebtDetail(ctx context.Context, debtID string) (*models.DebtRecord, error) {
	const operation = "get_debt_detail"

	debt, err := g.store.FindDebt(debtID)
	if err != nil {
		if errors.Is(err, repositories.ErrDebtNotFound) {
			g.served(ctx, operation, debtID, SourceNone)
			return nil, ErrDebtNotFound
		}
		return nil, fmt.Errorf("find fallback debt %s: %w", debtID, err)
	}

	g.served(ctx, operation, debtID, SourceFallback)
	return debt, nil
}

func (g *RecordGateway) served(ctx context.Context, operation, recordID, source string) {
	if g.metrics != nil {
		g.metrics.IncrementCounter("gateway_response", map[string]string{
			"operation": operation,
			"source":    source,
		})
	}
	g.audit.LogRecordServed(ctx, operation, recordID, source)
}

func allowListed(update models.AccountUpdate) models.AccountUpdate {
	filtered := make(models.AccountUpdate, len(update))
	for field, value := range update {
		if models.IsUpdatableAccountField(field) {
			filtered[field] = value
		}
	}
	return filtered
}
