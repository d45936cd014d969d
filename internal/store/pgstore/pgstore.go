package pgstore

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolationCode    = "23505"
	errorOperationStore      = "store"
	errorSubjectAggregate    = "aggregate"
	errorSubjectEntry        = "entry"
	errorSubjectRedemption   = "redemption"
	errorSubjectSchema       = "schema"
	errorSubjectTransaction  = "transaction"
	errorCodeBegin           = "begin"
	errorCodeCommit          = "commit"
	errorCodeCreate          = "create"
	errorCodeDuplicate       = "duplicate"
	errorCodeEnsure          = "ensure"
	errorCodeGet             = "get"
	errorCodeInsert          = "insert"
	errorCodeInvalid         = "invalid"
	errorCodeList            = "list"
	errorCodeListRedemptions = "list_redemptions"
	errorCodeLookup          = "lookup"
	errorCodeSave            = "save"

	sqlSchema = `
		create table if not exists engagement_aggregates (
			user_id text primary key,
			total_earned bigint not null default 0,
			available_points bigint not null default 0,
			can_post boolean not null default false,
			streak_days bigint not null default 0,
			last_checkin_date text not null default '',
			last_active_date text not null,
			is_frozen boolean not null default false,
			daily_usage jsonb not null default '{"date":"","points":{}}',
			created_at timestamptz not null default now(),
			updated_at timestamptz not null default now()
		);
		create index if not exists idx_engagement_aggregates_inactive
			on engagement_aggregates(is_frozen, last_active_date);
		create table if not exists engagement_ledger_entries (
			entry_id uuid primary key default gen_random_uuid(),
			entry_seq bigint generated always as identity,
			user_id text not null,
			action_kind text not null,
			delta bigint not null,
			target_id text,
			idempotency_key text,
			created_at timestamptz not null
		);
		alter table engagement_ledger_entries
			add column if not exists entry_seq bigint generated always as identity;
		create index if not exists idx_engagement_ledger_user_created
			on engagement_ledger_entries(user_id, created_at, entry_seq);
		create unique index if not exists uniq_engagement_ledger_user_key
			on engagement_ledger_entries(user_id, idempotency_key);
		create table if not exists engagement_discount_redemptions (
			user_id text not null,
			discount_id text not null,
			redeemed_at timestamptz not null,
			primary key (user_id, discount_id)
		);
	`

	sqlInsertAggregate = `
		insert into engagement_aggregates(user_id, last_active_date) values($1, $2)
		on conflict (user_id) do nothing
	`

	sqlSelectAggregateForUpdate = `
		select user_id, total_earned, available_points, can_post, streak_days,
			last_checkin_date, last_active_date, is_frozen, daily_usage
		from engagement_aggregates
		where user_id = $1
		for update
	`

	sqlSelectRedemptions = `
		select discount_id from engagement_discount_redemptions
		where user_id = $1
		order by discount_id
	`

	sqlUpdateAggregate = `
		update engagement_aggregates
		set total_earned = $2, available_points = $3, can_post = $4, streak_days = $5,
			last_checkin_date = $6, last_active_date = $7, is_frozen = $8, daily_usage = $9,
			updated_at = now()
		where user_id = $1
	`

	sqlLedgerEntryExists = `
		select exists(
			select 1 from engagement_ledger_entries
			where user_id = $1 and idempotency_key = $2
		)
	`

	sqlInsertLedgerEntry = `
		insert into engagement_ledger_entries(user_id, action_kind, delta, target_id, idempotency_key, created_at)
		values($1, $2, $3, nullif($4,''), nullif($5,''), to_timestamp($6))
	`

	sqlListLedgerEntries = `
		select entry_id::text, user_id, action_kind, delta,
			coalesce(target_id,''), coalesce(idempotency_key,''),
			extract(epoch from created_at)::bigint
		from engagement_ledger_entries
		where user_id = $1
		order by created_at desc, entry_seq desc
		limit $2
	`

	sqlInsertRedemption = `
		insert into engagement_discount_redemptions(user_id, discount_id, redeemed_at)
		values($1, $2, to_timestamp($3))
	`

	sqlListInactiveUsers = `
		select user_id from engagement_aggregates
		where is_frozen = false and last_active_date <= $1
		order by user_id
		limit $2
	`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// Store implements engagement.Store using a pgx connection pool. Outside WithTx
// every statement autocommits.
type Store struct {
	pool *pgxpool.Pool
	db   querier
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

// EnsureSchema creates the engagement tables when they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, sqlSchema); err != nil {
		return wrapStoreError(errorSubjectSchema, errorCodeEnsure, err)
	}
	return nil
}

// WithTx runs fn inside a transaction. Calls on a transaction-bound store join
// the open transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore engagement.Store) error) error {
	if store.pool == nil {
		return fn(ctx, store)
	}
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	if err := fn(ctx, &Store{db: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) GetOrCreateAggregate(ctx context.Context, userID engagement.UserID, createdOn engagement.CalendarDate) (engagement.AggregateRecord, error) {
	if _, err := store.db.Exec(ctx, sqlInsertAggregate, userID.String(), createdOn.String()); err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeCreate, err)
	}
	var row aggregateRow
	err := store.db.QueryRow(ctx, sqlSelectAggregateForUpdate, userID.String()).Scan(
		&row.userID,
		&row.totalEarned,
		&row.availablePoints,
		&row.canPost,
		&row.streakDays,
		&row.lastCheckinDate,
		&row.lastActiveDate,
		&row.isFrozen,
		&row.dailyUsage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeGet, engagement.ErrUnknownUser)
		}
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeGet, err)
	}
	rows, err := store.db.Query(ctx, sqlSelectRedemptions, userID.String())
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectRedemption, errorCodeListRedemptions, err)
	}
	discountIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectRedemption, errorCodeListRedemptions, err)
	}
	record, err := row.toRecord(discountIDs)
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeInvalid, err)
	}
	return record, nil
}

func (store *Store) SaveAggregate(ctx context.Context, record engagement.AggregateRecord) error {
	usage := usageDocument{Date: record.DailyUsage.Date.String(), Points: make(map[string]int64, len(record.DailyUsage.Points))}
	for kind, points := range record.DailyUsage.Points {
		usage.Points[kind.String()] = points.Int64()
	}
	tag, err := store.db.Exec(ctx, sqlUpdateAggregate,
		record.UserID.String(),
		record.TotalEarned.Int64(),
		record.AvailablePoints.Int64(),
		record.CanPost,
		record.StreakDays,
		record.LastCheckinDate.String(),
		record.LastActiveDate.String(),
		record.IsFrozen,
		usage,
	)
	if err != nil {
		return wrapStoreError(errorSubjectAggregate, errorCodeSave, err)
	}
	if tag.RowsAffected() == 0 {
		return wrapStoreError(errorSubjectAggregate, errorCodeSave, engagement.ErrUnknownUser)
	}
	return nil
}

func (store *Store) HasLedgerEntry(ctx context.Context, userID engagement.UserID, idempotencyKey string) (bool, error) {
	var exists bool
	if err := store.db.QueryRow(ctx, sqlLedgerEntryExists, userID.String(), idempotencyKey).Scan(&exists); err != nil {
		return false, wrapStoreError(errorSubjectEntry, errorCodeLookup, err)
	}
	return exists, nil
}

func (store *Store) InsertLedgerEntry(ctx context.Context, entry engagement.LedgerEntry) error {
	var targetID string
	if target, ok := entry.TargetID(); ok {
		targetID = target.String()
	}
	idempotencyKey, _ := entry.IdempotencyKey()
	_, err := store.db.Exec(ctx, sqlInsertLedgerEntry,
		entry.UserID().String(),
		entry.ActionKind().String(),
		entry.Delta().Int64(),
		targetID,
		idempotencyKey,
		entry.CreatedUnixUTC(),
	)
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectEntry, errorCodeDuplicate, engagement.ErrDuplicateAward)
	}
	if err != nil {
		return wrapStoreError(errorSubjectEntry, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListLedgerEntries(ctx context.Context, userID engagement.UserID, limit int) ([]engagement.LedgerEntry, error) {
	rows, err := store.db.Query(ctx, sqlListLedgerEntries, userID.String(), limit)
	if err != nil {
		return nil, wrapStoreError(errorSubjectEntry, errorCodeList, err)
	}
	defer rows.Close()
	var entries []engagement.LedgerEntry
	for rows.Next() {
		var (
			entryID        string
			rawUserID      string
			rawKind        string
			delta          int64
			rawTargetID    string
			idempotencyKey string
			createdUnixUTC int64
		)
		if err := rows.Scan(&entryID, &rawUserID, &rawKind, &delta, &rawTargetID, &idempotencyKey, &createdUnixUTC); err != nil {
			return nil, wrapStoreError(errorSubjectEntry, errorCodeList, err)
		}
		entry, err := mapLedgerEntry(entryID, rawUserID, rawKind, delta, rawTargetID, idempotencyKey, createdUnixUTC)
		if err != nil {
			return nil, wrapStoreError(errorSubjectEntry, errorCodeInvalid, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectEntry, errorCodeList, err)
	}
	return entries, nil
}

func (store *Store) InsertRedemption(ctx context.Context, userID engagement.UserID, discountID engagement.DiscountID, redeemedUnixUTC int64) error {
	_, err := store.db.Exec(ctx, sqlInsertRedemption, userID.String(), discountID.String(), redeemedUnixUTC)
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectRedemption, errorCodeDuplicate, engagement.ErrAlreadyRedeemed)
	}
	if err != nil {
		return wrapStoreError(errorSubjectRedemption, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListInactiveUsers(ctx context.Context, lastActiveOnOrBefore engagement.CalendarDate, limit int) ([]engagement.UserID, error) {
	rows, err := store.db.Query(ctx, sqlListInactiveUsers, lastActiveOnOrBefore.String(), limit)
	if err != nil {
		return nil, wrapStoreError(errorSubjectAggregate, errorCodeList, err)
	}
	rawUserIDs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, wrapStoreError(errorSubjectAggregate, errorCodeList, err)
	}
	userIDs := make([]engagement.UserID, 0, len(rawUserIDs))
	for _, raw := range rawUserIDs {
		userID, err := engagement.NewUserID(raw)
		if err != nil {
			return nil, wrapStoreError(errorSubjectAggregate, errorCodeInvalid, err)
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}

func wrapStoreError(subject string, code string, err error) error {
	return engagement.WrapError(errorOperationStore, subject, code, err)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	return false
}
