package services

import (
	"context"
	"log/slog"
)

type correlationIDKey struct{}

// WithCorrelationID attaches the inbound trace id so audit events can be
// joined with access logs.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// AuditLogger emits one structured event per gateway decision.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{logger: logger.With(slog.String("component", "audit"))}
}

func (al *AuditLogger) LogRecordServed(ctx context.Context, operation, recordID, source string) {
	al.log(ctx, slog.LevelInfo, "record served", "record_served",
		slog.String("operation", operation),
		slog.String("record_id", recordID),
		slog.String("source", source),
	)
}

func (al *AuditLogger) LogUpstreamDegraded(ctx context.Context, operation, recordID string, result UpstreamResult) {
	al.log(ctx, slog.LevelWarn, "upstream degraded, using fallback store", "upstream_degraded",
		slog.String("operation", operation),
		slog.String("record_id", recordID),
		slog.Int("status", result.StatusCode),
		slog.String("reason", result.Reason()),
	)
}

// LogAccountUpdated records field names only; values may be sensitive.
func (al *AuditLogger) LogAccountUpdated(ctx context.Context, accountID string, fields []string, upstreamAttempted bool) {
	al.log(ctx, slog.LevelInfo, "account updated", "account_updated",
		slog.String("account_id", accountID),
		slog.Any("fields", fields),
		slog.Bool("upstream_attempted", upstreamAttempted),
	)
}

func (al *AuditLogger) log(ctx context.Context, level slog.Level, msg, eventType string, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("event_type", eventType),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
	al.logger.LogAttrs(ctx, level, msg, attrs...)
}
