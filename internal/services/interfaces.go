package services

import (
	"context"
	"time"

	"debt-portal/internal/models"
)

// RecordGatewayInterface serves account and debt records, preferring the
// upstream case-management service and degrading to the fallback store.
type RecordGatewayInterface interface {
	GetAccount(ctx context.Context, accountID string) (*models.AccountRecord, error)
	GetDebts(ctx context.Context, accountID string) (*models.DebtSummary, error)
	UpdateAccount(ctx context.Context, accountID string, update models.AccountUpdate) (*models.AccountRecord, error)
	GetDebtDetail(ctx context.Context, debtID string) (*models.DebtRecord, error)
}

// UpstreamProberInterface checks whether the upstream answers at all
type UpstreamProberInterface interface {
	Probe(ctx context.Context) models.ConnectivityResult
}

// UpstreamClientInterface performs the scoped upstream calls. Each call is
// attempted exactly once and reports its outcome as an UpstreamResult.
type UpstreamClientInterface interface {
	FetchAccount(ctx context.Context, accountID string) (*models.AccountRecord, UpstreamResult)
	FetchDebts(ctx context.Context, accountID string) (*models.DebtSummary, UpstreamResult)
	PushAccountUpdate(ctx context.Context, accountID string, update models.AccountUpdate) UpstreamResult
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogRecordServed(ctx context.Context, operation, recordID, source string)
	LogUpstreamDegraded(ctx context.Context, operation, recordID string, result UpstreamResult)
	LogAccountUpdated(ctx context.Context, accountID string, fields []string, upstreamAttempted bool)
}
