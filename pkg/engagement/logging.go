package engagement

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing engagement operation.
type OperationLog struct {
	Operation  string
	UserID     UserID
	ActionKind ActionKind
	TargetID   *TargetID
	DiscountID DiscountID
	Delta      Points
	Reason     RejectionReason
	Status     string
	Error      error
}

// Rejected reports whether the operation ended in a policy rejection.
func (entry OperationLog) Rejected() bool {
	return entry.Status == operationStatusRejected
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		service.logger = logger
	}
}

// WithLocation sets the time zone that defines calendar days. Defaults to UTC.
func WithLocation(location *time.Location) ServiceOption {
	return func(service *Service) {
		if location != nil {
			service.location = location
		}
	}
}

// WithTracer wires a tracer for operation spans.
func WithTracer(tracer trace.Tracer) ServiceOption {
	return func(service *Service) {
		if tracer != nil {
			service.tracer = tracer
		}
	}
}

// WithAggregateCache wires a read-through cache for GetStats.
func WithAggregateCache(cache AggregateCache) ServiceOption {
	return func(service *Service) {
		service.cache = cache
	}
}
