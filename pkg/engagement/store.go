package engagement

import "context"

// Store is the persistence contract used by Service.
// Implementations must make every call on the txStore handed to WithTx part of
// one transaction, and GetOrCreateAggregate must lock the row inside it.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	GetOrCreateAggregate(ctx context.Context, userID UserID, createdOn CalendarDate) (AggregateRecord, error)
	SaveAggregate(ctx context.Context, record AggregateRecord) error
	HasLedgerEntry(ctx context.Context, userID UserID, idempotencyKey string) (bool, error)
	InsertLedgerEntry(ctx context.Context, entry LedgerEntry) error
	ListLedgerEntries(ctx context.Context, userID UserID, limit int) ([]LedgerEntry, error)
	InsertRedemption(ctx context.Context, userID UserID, discountID DiscountID, redeemedUnixUTC int64) error
	ListInactiveUsers(ctx context.Context, lastActiveOnOrBefore CalendarDate, limit int) ([]UserID, error)
}

// AggregateCache caches read projections of aggregate records.
type AggregateCache interface {
	Get(ctx context.Context, userID UserID) (AggregateRecord, bool)
	Set(ctx context.Context, record AggregateRecord)
	Invalidate(ctx context.Context, userID UserID)
}
