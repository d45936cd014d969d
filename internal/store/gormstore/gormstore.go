package gormstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pgUniqueViolationCode    = "23505"
	sqliteConstraintCode     = 19
	mysqlDuplicateEntryCode  = 1062
	errorOperationStore      = "store"
	errorSubjectAggregate    = "aggregate"
	errorSubjectEntry        = "entry"
	errorSubjectRedemption   = "redemption"
	errorCodeCreate          = "create"
	errorCodeDuplicate       = "duplicate"
	errorCodeGet             = "get"
	errorCodeInsert          = "insert"
	errorCodeInvalid         = "invalid"
	errorCodeList            = "list"
	errorCodeLookup          = "lookup"
	errorCodeSave            = "save"
	errorCodeListRedemptions = "list_redemptions"
)

// Store implements engagement.Store using GORM.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// AutoMigrate creates or updates the engagement tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return wrapStoreError("schema", "migrate", err)
	}
	return nil
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore engagement.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction, now: store.now})
	})
}

// GetOrCreateAggregate inserts the first-use record if needed and returns the row
// locked for update.
func (store *Store) GetOrCreateAggregate(ctx context.Context, userID engagement.UserID, createdOn engagement.CalendarDate) (engagement.AggregateRecord, error) {
	initial := Aggregate{
		UserID:         userID.String(),
		LastActiveDate: createdOn.String(),
		DailyUsage:     datatypes.NewJSONType(usageDocument{Points: map[string]int64{}}),
	}
	err := store.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&initial).Error
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeCreate, err)
	}

	var row Aggregate
	err = store.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID.String()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeGet, engagement.ErrUnknownUser)
		}
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeGet, err)
	}

	var discountIDs []string
	err = store.db.WithContext(ctx).
		Model(&DiscountRedemption{}).
		Where("user_id = ?", userID.String()).
		Order("discount_id").
		Pluck("discount_id", &discountIDs).Error
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectRedemption, errorCodeListRedemptions, err)
	}

	record, err := mapAggregate(row, discountIDs)
	if err != nil {
		return engagement.AggregateRecord{}, wrapStoreError(errorSubjectAggregate, errorCodeInvalid, err)
	}
	return record, nil
}

// SaveAggregate writes every mutable column of record.
func (store *Store) SaveAggregate(ctx context.Context, record engagement.AggregateRecord) error {
	usage := usageDocument{Date: record.DailyUsage.Date.String(), Points: make(map[string]int64, len(record.DailyUsage.Points))}
	for kind, points := range record.DailyUsage.Points {
		usage.Points[kind.String()] = points.Int64()
	}
	err := store.db.WithContext(ctx).
		Model(&Aggregate{}).
		Where("user_id = ?", record.UserID.String()).
		Updates(map[string]any{
			"total_earned":      record.TotalEarned.Int64(),
			"available_points":  record.AvailablePoints.Int64(),
			"can_post":          record.CanPost,
			"streak_days":       record.StreakDays,
			"last_checkin_date": record.LastCheckinDate.String(),
			"last_active_date":  record.LastActiveDate.String(),
			"is_frozen":         record.IsFrozen,
			"daily_usage":       datatypes.NewJSONType(usage),
			"updated_at":        store.now(),
		}).Error
	if err != nil {
		return wrapStoreError(errorSubjectAggregate, errorCodeSave, err)
	}
	return nil
}

func (store *Store) HasLedgerEntry(ctx context.Context, userID engagement.UserID, idempotencyKey string) (bool, error) {
	var count int64
	err := store.db.WithContext(ctx).
		Model(&LedgerEntry{}).
		Where("user_id = ? AND idempotency_key = ?", userID.String(), idempotencyKey).
		Count(&count).Error
	if err != nil {
		return false, wrapStoreError(errorSubjectEntry, errorCodeLookup, err)
	}
	return count > 0, nil
}

func (store *Store) InsertLedgerEntry(ctx context.Context, entry engagement.LedgerEntry) error {
	row := LedgerEntry{
		EntryID:    entry.EntryID(),
		UserID:     entry.UserID().String(),
		ActionKind: entry.ActionKind().String(),
		Delta:      entry.Delta().Int64(),
		CreatedAt:  time.Unix(entry.CreatedUnixUTC(), 0).UTC(),
	}
	if targetID, ok := entry.TargetID(); ok {
		value := targetID.String()
		row.TargetID = &value
	}
	if idempotencyKey, ok := entry.IdempotencyKey(); ok {
		row.IdempotencyKey = &idempotencyKey
	}
	if entry.CreatedUnixUTC() == 0 {
		row.CreatedAt = store.now()
	}
	err := store.db.WithContext(ctx).Create(&row).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectEntry, errorCodeDuplicate, engagement.ErrDuplicateAward)
	}
	if err != nil {
		return wrapStoreError(errorSubjectEntry, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListLedgerEntries(ctx context.Context, userID engagement.UserID, limit int) ([]engagement.LedgerEntry, error) {
	var rows []LedgerEntry
	err := store.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at DESC").
		Order("entry_seq DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectEntry, errorCodeList, err)
	}
	entries := make([]engagement.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := mapLedgerEntry(row)
		if err != nil {
			return nil, wrapStoreError(errorSubjectEntry, errorCodeInvalid, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (store *Store) InsertRedemption(ctx context.Context, userID engagement.UserID, discountID engagement.DiscountID, redeemedUnixUTC int64) error {
	row := DiscountRedemption{
		UserID:     userID.String(),
		DiscountID: discountID.String(),
		RedeemedAt: time.Unix(redeemedUnixUTC, 0).UTC(),
	}
	err := store.db.WithContext(ctx).Create(&row).Error
	if isUniqueViolation(err) {
		return wrapStoreError(errorSubjectRedemption, errorCodeDuplicate, engagement.ErrAlreadyRedeemed)
	}
	if err != nil {
		return wrapStoreError(errorSubjectRedemption, errorCodeInsert, err)
	}
	return nil
}

func (store *Store) ListInactiveUsers(ctx context.Context, lastActiveOnOrBefore engagement.CalendarDate, limit int) ([]engagement.UserID, error) {
	var rawUserIDs []string
	err := store.db.WithContext(ctx).
		Model(&Aggregate{}).
		Where("is_frozen = ? AND last_active_date <= ?", false, lastActiveOnOrBefore.String()).
		Order("user_id").
		Limit(limit).
		Pluck("user_id", &rawUserIDs).Error
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

func mapAggregate(row Aggregate, discountIDs []string) (engagement.AggregateRecord, error) {
	userID, err := engagement.NewUserID(row.UserID)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	lastCheckin, err := parseOptionalDate(row.LastCheckinDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	lastActive, err := parseOptionalDate(row.LastActiveDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	usage, err := mapUsage(row.DailyUsage.Data())
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	redeemed := make([]engagement.DiscountID, 0, len(discountIDs))
	for _, raw := range discountIDs {
		discountID, err := engagement.NewDiscountID(raw)
		if err != nil {
			return engagement.AggregateRecord{}, err
		}
		redeemed = append(redeemed, discountID)
	}
	if row.TotalEarned < 0 || row.AvailablePoints < 0 {
		return engagement.AggregateRecord{}, engagement.ErrInvalidAggregateState
	}
	return engagement.AggregateRecord{
		UserID:            userID,
		TotalEarned:       engagement.Points(row.TotalEarned),
		AvailablePoints:   engagement.Points(row.AvailablePoints),
		CanPost:           row.CanPost,
		StreakDays:        row.StreakDays,
		LastCheckinDate:   lastCheckin,
		LastActiveDate:    lastActive,
		IsFrozen:          row.IsFrozen,
		DailyUsage:        usage,
		RedeemedDiscounts: engagement.NewDiscountSet(redeemed...),
	}, nil
}

func mapUsage(document usageDocument) (engagement.DailyUsage, error) {
	date, err := parseOptionalDate(document.Date)
	if err != nil {
		return engagement.DailyUsage{}, err
	}
	usage := engagement.DailyUsage{Date: date, Points: make(map[engagement.ActionKind]engagement.Points, len(document.Points))}
	for rawKind, points := range document.Points {
		kind, err := engagement.NewActionKind(rawKind)
		if err != nil {
			return engagement.DailyUsage{}, err
		}
		usage.Points[kind] = engagement.Points(points)
	}
	return usage, nil
}

func mapLedgerEntry(row LedgerEntry) (engagement.LedgerEntry, error) {
	userID, err := engagement.NewUserID(row.UserID)
	if err != nil {
		return engagement.LedgerEntry{}, err
	}
	kind, err := engagement.NewActionKind(row.ActionKind)
	if err != nil {
		return engagement.LedgerEntry{}, err
	}
	var targetID *engagement.TargetID
	if row.TargetID != nil {
		parsedTargetID, err := engagement.NewTargetID(*row.TargetID)
		if err != nil {
			return engagement.LedgerEntry{}, err
		}
		targetID = &parsedTargetID
	}
	var idempotencyKey string
	if row.IdempotencyKey != nil {
		idempotencyKey = *row.IdempotencyKey
	}
	return engagement.NewLedgerEntry(row.EntryID, userID, kind, engagement.Points(row.Delta), targetID, idempotencyKey, row.CreatedAt.Unix())
}

func parseOptionalDate(raw string) (engagement.CalendarDate, error) {
	if raw == "" {
		return engagement.CalendarDate{}, nil
	}
	return engagement.NewCalendarDate(raw)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntryCode
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xFF == sqliteConstraintCode
	}
	return false
}
