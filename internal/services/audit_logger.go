package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogTransactionCreated(ctx context.Context, transactionID uuid.UUID, source, transactionType, category string) {
	al.logger.InfoContext(ctx, "transaction created",
		slog.String("event_type", "transaction_created"),
		slog.String("transaction_id", transactionID.String()),
		slog.String("source", source),
		slog.String("type", transactionType),
		slog.String("category", category),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionDeleted(ctx context.Context, transactionID uuid.UUID, deleted bool) {
	al.logger.InfoContext(ctx, "transaction delete requested",
		slog.String("event_type", "transaction_deleted"),
		slog.String("transaction_id", transactionID.String()),
		slog.Bool("deleted", deleted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSMSParseFailed(ctx context.Context, reason, sender string) {
	al.logger.WarnContext(ctx, "sms parse failed",
		slog.String("event_type", "sms_parse_failed"),
		slog.String("reason", reason),
		slog.String("sender", sender),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSummaryGenerated(ctx context.Context, categoryCount int, balance string) {
	al.logger.InfoContext(ctx, "summary generated",
		slog.String("event_type", "summary_generated"),
		slog.Int("category_count", categoryCount),
		slog.String("balance", balance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
