package engagement

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service contains the engagement domain logic over a Store.
type Service struct {
	store    Store
	rules    RuleTable
	nowFn    func() int64
	location *time.Location
	logger   OperationLogger
	cache    AggregateCache
	tracer   trace.Tracer
	locks    userLocks
}

// NewService wires a Service.
func NewService(store Store, rules RuleTable, now func() int64, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if rules.IsZero() {
		return nil, fmt.Errorf("%w: rule table is empty", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:    store,
		rules:    rules,
		nowFn:    now,
		location: time.UTC,
		tracer:   otel.Tracer(tracerName),
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// Rules returns the rule table the service was built with.
func (service *Service) Rules() RuleTable {
	return service.rules
}

// Today returns the current calendar date in the service location.
func (service *Service) Today() CalendarDate {
	return CalendarDateAt(service.nowFn(), service.location)
}

// GetStats returns a read-only projection of the user's aggregate record with the
// frozen flag derived for today.
func (service *Service) GetStats(ctx context.Context, userID UserID) (AggregateRecord, error) {
	if userID.IsZero() {
		return AggregateRecord{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	record, err := service.loadRecord(ctx, userID)
	if err != nil {
		return AggregateRecord{}, err
	}
	record.IsFrozen = service.isFrozenOn(record, service.Today())
	return record, nil
}

// currentRecord reads the aggregate from the store, skipping the cache. Gate
// decisions use it.
func (service *Service) currentRecord(ctx context.Context, userID UserID) (AggregateRecord, error) {
	if userID.IsZero() {
		return AggregateRecord{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	today := service.Today()
	record, err := service.store.GetOrCreateAggregate(ctx, userID, today)
	if err != nil {
		return AggregateRecord{}, err
	}
	record.IsFrozen = service.isFrozenOn(record, today)
	return record, nil
}

// CanPost reports whether the user currently holds enough available points to post.
func (service *Service) CanPost(ctx context.Context, userID UserID) (PostEligibility, error) {
	record, err := service.currentRecord(ctx, userID)
	if err != nil {
		return PostEligibility{}, err
	}
	eligibility := PostEligibility{
		Current: record.AvailablePoints,
		Needed:  service.rules.PostUnlockThreshold(),
	}
	switch {
	case record.IsFrozen:
		eligibility.Reason = PostReasonFrozen
	case record.AvailablePoints < eligibility.Needed:
		eligibility.Reason = PostReasonInsufficientPoints
	default:
		eligibility.Allowed = true
	}
	return eligibility, nil
}

// History lists up to limit ledger entries, most recent first.
func (service *Service) History(ctx context.Context, userID UserID, limit int) ([]LedgerEntry, error) {
	if userID.IsZero() {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return service.store.ListLedgerEntries(ctx, userID, limit)
}

func (service *Service) loadRecord(ctx context.Context, userID UserID) (AggregateRecord, error) {
	if service.cache != nil {
		if cached, ok := service.cache.Get(ctx, userID); ok {
			return cached.Clone(), nil
		}
		// Writers invalidate under the same lock, so a fill cannot overwrite a
		// newer invalidation.
		unlock := service.locks.lock(userID)
		defer unlock()
	}
	record, err := service.store.GetOrCreateAggregate(ctx, userID, service.Today())
	if err != nil {
		return AggregateRecord{}, err
	}
	if service.cache != nil {
		service.cache.Set(ctx, record.Clone())
	}
	return record, nil
}

func (service *Service) invalidate(ctx context.Context, userID UserID) {
	if service.cache != nil {
		service.cache.Invalidate(ctx, userID)
	}
}

// isFrozenOn re-derives the frozen state instead of trusting the stored flag alone.
func (service *Service) isFrozenOn(record AggregateRecord, today CalendarDate) bool {
	if record.IsFrozen {
		return true
	}
	return record.LastActiveDate.DaysUntil(today) >= service.rules.FreezeAfterDays()
}

func (service *Service) startSpan(ctx context.Context, operation string, userID UserID, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	attributes = append(attributes, attribute.String("engagement.user_id", userID.String()))
	return service.tracer.Start(ctx, "engagement."+operation, trace.WithAttributes(attributes...))
}

func endSpan(span trace.Span, reason RejectionReason, err error) {
	if reason != ReasonNone {
		span.SetAttributes(attribute.String("engagement.reason", reason.String()))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		switch {
		case entry.Error != nil:
			entry.Status = operationStatusError
		case entry.Reason != ReasonNone:
			entry.Status = operationStatusRejected
		default:
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

// userLocks serializes mutations per user inside one process. The store row lock
// covers multiple processes.
type userLocks struct {
	shards [userLockShards]sync.Mutex
}

func (locks *userLocks) lock(userID UserID) func() {
	hasher := fnv.New32a()
	_, _ = hasher.Write([]byte(userID.value))
	shard := &locks.shards[hasher.Sum32()%userLockShards]
	shard.Lock()
	return shard.Unlock
}
