package engagement

import (
	"context"
	"errors"
	"testing"
)

func TestRefreshFreezeStatePersistsFrozenFlag(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	clock := newTestClock(test, dayOne)
	cache := newRecordingCache()
	service := mustNewService(test, store, clock, WithAggregateCache(cache))
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) {})

	clock.addDays(6)
	frozen, err := service.RefreshFreezeState(context.Background(), userID)
	if err != nil {
		test.Fatalf("refresh: %v", err)
	}
	if frozen {
		test.Fatalf("six idle days must not freeze")
	}

	clock.addDays(1)
	frozen, err = service.RefreshFreezeState(context.Background(), userID)
	if err != nil {
		test.Fatalf("refresh: %v", err)
	}
	if !frozen || !store.mustAggregate(test, userID).IsFrozen {
		test.Fatalf("expected frozen flag persisted")
	}
	if cache.invalidations != 1 {
		test.Fatalf("expected one cache invalidation, got %d", cache.invalidations)
	}

	frozen, err = service.RefreshFreezeState(context.Background(), userID)
	if err != nil || !frozen {
		test.Fatalf("expected idempotent refresh, got %v %v", frozen, err)
	}
	if cache.invalidations != 1 {
		test.Fatalf("unchanged state must not invalidate, got %d", cache.invalidations)
	}
}

func TestRefreshFreezeStateNeverClearsFlag(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) { record.IsFrozen = true })

	frozen, err := service.RefreshFreezeState(context.Background(), userID)
	if err != nil {
		test.Fatalf("refresh: %v", err)
	}
	if !frozen || !store.mustAggregate(test, userID).IsFrozen {
		test.Fatalf("refresh must not unfreeze a recently active account")
	}
}

func TestSweepFrozenFreezesOnlyInactiveUsers(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	clock := newTestClock(test, dayOne)
	service := mustNewService(test, store, clock)
	today := mustDate(test, dayOne)
	idle := mustUserID(test, "idle")
	active := mustUserID(test, "active")
	alreadyFrozen := mustUserID(test, "already-frozen")
	store.seed(test, idle, func(record *AggregateRecord) { record.LastActiveDate = today.AddDays(-10) })
	store.seed(test, active, func(record *AggregateRecord) { record.LastActiveDate = today.AddDays(-2) })
	store.seed(test, alreadyFrozen, func(record *AggregateRecord) {
		record.LastActiveDate = today.AddDays(-30)
		record.IsFrozen = true
	})

	count, err := service.SweepFrozen(context.Background(), 100)
	if err != nil {
		test.Fatalf("sweep: %v", err)
	}
	if count != 1 {
		test.Fatalf("expected one account frozen, got %d", count)
	}
	if !store.mustAggregate(test, idle).IsFrozen || store.mustAggregate(test, active).IsFrozen {
		test.Fatalf("unexpected freeze state after sweep")
	}
	if _, err := service.SweepFrozen(context.Background(), 0); !errors.Is(err, ErrInvalidLimit) {
		test.Fatalf("expected invalid limit, got %v", err)
	}
}

func TestSweepFrozenReportsStoreErrors(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	store.seed(test, mustUserID(test, "idle"), func(record *AggregateRecord) {
		record.LastActiveDate = mustDate(test, dayOne).AddDays(-8)
	})
	store.saveErr = errStoreFailure

	count, err := service.SweepFrozen(context.Background(), 10)
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf("expected store failure, got %v", err)
	}
	if count != 0 {
		test.Fatalf("expected no frozen accounts, got %d", count)
	}
}
