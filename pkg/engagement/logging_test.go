package engagement

import (
	"context"
	"sync"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recorderLogger struct {
	mutex   sync.Mutex
	entries []OperationLog
}

func (logger *recorderLogger) LogOperation(_ context.Context, entry OperationLog) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	logger.entries = append(logger.entries, entry)
}

func TestServiceLogsAwardOperation(test *testing.T) {
	test.Parallel()
	logger := &recorderLogger{}
	service := mustNewService(test, newStubStore(), newTestClock(test, dayOne), WithOperationLogger(logger))
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "view_post")
	target := mustTargetID(test, "post-1")

	if _, err := service.Award(context.Background(), userID, kind, &target); err != nil {
		test.Fatalf("award: %v", err)
	}
	if _, err := service.Award(context.Background(), userID, kind, &target); err != nil {
		test.Fatalf("duplicate award: %v", err)
	}
	if len(logger.entries) != 2 {
		test.Fatalf("expected two log entries, got %d", len(logger.entries))
	}
	first := logger.entries[0]
	if first.Operation != operationAward || first.UserID != userID || first.ActionKind != kind || first.Delta != 1 {
		test.Fatalf("unexpected log entry: %+v", first)
	}
	if first.TargetID == nil || *first.TargetID != target {
		test.Fatalf("expected target in log entry, got %+v", first.TargetID)
	}
	if first.Status != operationStatusOK || first.Error != nil {
		test.Fatalf("expected ok status, got %+v", first)
	}
	second := logger.entries[1]
	if !second.Rejected() || second.Reason != ReasonDuplicate {
		test.Fatalf("expected rejected duplicate log entry, got %+v", second)
	}
}

func TestServiceLogsCheckinAndRedeem(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	logger := &recorderLogger{}
	service := mustNewService(test, store, newTestClock(test, dayOne), WithOperationLogger(logger))
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) { record.TotalEarned = 700 })

	mustCheckin(test, service, userID)
	if _, err := service.Redeem(context.Background(), userID, mustDiscountID(test, "discount-500")); err != nil {
		test.Fatalf("redeem: %v", err)
	}
	if _, err := service.Redeem(context.Background(), userID, mustDiscountID(test, "discount-500")); err != nil {
		test.Fatalf("second redeem: %v", err)
	}
	operations := []string{operationCheckin, operationRedeem, operationRedeem}
	statuses := []string{operationStatusOK, operationStatusOK, operationStatusRejected}
	if len(logger.entries) != len(operations) {
		test.Fatalf("expected %d entries, got %d", len(operations), len(logger.entries))
	}
	for index, entry := range logger.entries {
		if entry.Operation != operations[index] || entry.Status != statuses[index] {
			test.Fatalf("entry %d: unexpected %+v", index, entry)
		}
	}
}

func TestServiceLogsErrorStatus(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	store.getErr = errStoreFailure
	logger := &recorderLogger{}
	service := mustNewService(test, store, newTestClock(test, dayOne), WithOperationLogger(logger))

	if _, err := service.Checkin(context.Background(), mustUserID(test, userName)); err == nil {
		test.Fatalf("expected error")
	}
	if len(logger.entries) != 1 {
		test.Fatalf("expected one log entry, got %d", len(logger.entries))
	}
	if logger.entries[0].Status != operationStatusError || logger.entries[0].Error == nil {
		test.Fatalf("expected error log entry, got %+v", logger.entries[0])
	}
}

func TestServiceRecordsSpans(test *testing.T) {
	test.Parallel()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	service := mustNewService(test, newStubStore(), newTestClock(test, dayOne), WithTracer(provider.Tracer(tracerName)))
	userID := mustUserID(test, userName)

	mustCheckin(test, service, userID)
	mustCheckin(test, service, userID)

	spans := recorder.Ended()
	if len(spans) != 2 {
		test.Fatalf("expected two spans, got %d", len(spans))
	}
	if spans[0].Name() != "engagement."+operationCheckin {
		test.Fatalf("unexpected span name %q", spans[0].Name())
	}
	var reason string
	for _, attribute := range spans[1].Attributes() {
		if attribute.Key == "engagement.reason" {
			reason = attribute.Value.AsString()
		}
	}
	if reason != ReasonAlreadyCheckedIn.String() {
		test.Fatalf("expected rejection reason attribute, got %q", reason)
	}
}
