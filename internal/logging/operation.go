package logging

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"go.uber.org/zap"
)

// OperationLogger writes engagement operation callbacks to zap.
type OperationLogger struct {
	logger *zap.Logger
}

// NewOperationLogger adapts logger to engagement.OperationLogger.
func NewOperationLogger(logger *zap.Logger) *OperationLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OperationLogger{logger: logger.Named("engagement")}
}

// LogOperation implements engagement.OperationLogger.
func (operationLogger *OperationLogger) LogOperation(_ context.Context, entry engagement.OperationLog) {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("user_id", entry.UserID.String()),
		zap.String("status", entry.Status),
	}
	if kind := entry.ActionKind.String(); kind != "" {
		fields = append(fields, zap.String("action_kind", kind))
	}
	if entry.TargetID != nil {
		fields = append(fields, zap.String("target_id", entry.TargetID.String()))
	}
	if discountID := entry.DiscountID.String(); discountID != "" {
		fields = append(fields, zap.String("discount_id", discountID))
	}
	if entry.Delta != 0 {
		fields = append(fields, zap.Int64("delta", entry.Delta.Int64()))
	}
	if entry.Reason != engagement.ReasonNone {
		fields = append(fields, zap.String("reason", entry.Reason.String()))
	}

	switch {
	case entry.Error != nil:
		fields = append(fields, zap.Error(entry.Error))
		if errors.Is(entry.Error, engagement.ErrInvariantViolation) {
			fields = append(fields, zap.Bool("invariant", true))
		}
		operationLogger.logger.Error("engagement operation failed", fields...)
	case entry.Rejected():
		operationLogger.logger.Info("engagement operation rejected", fields...)
	default:
		operationLogger.logger.Info("engagement operation", fields...)
	}
}
