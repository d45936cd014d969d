package gormstore

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Aggregate represents the engagement_aggregates table.
type Aggregate struct {
	UserID          string                            `gorm:"size:191;primaryKey"`
	TotalEarned     int64                             `gorm:"not null;default:0"`
	AvailablePoints int64                             `gorm:"not null;default:0"`
	CanPost         bool                              `gorm:"not null;default:false"`
	StreakDays      int64                             `gorm:"not null;default:0"`
	LastCheckinDate string                            `gorm:"size:10;not null;default:''"`
	LastActiveDate  string                            `gorm:"size:10;not null;index:idx_engagement_aggregates_inactive,priority:2"`
	IsFrozen        bool                              `gorm:"not null;default:false;index:idx_engagement_aggregates_inactive,priority:1"`
	DailyUsage      datatypes.JSONType[usageDocument] `gorm:"not null"`
	CreatedAt       time.Time                         `gorm:"not null"`
	UpdatedAt       time.Time                         `gorm:"not null"`
}

func (Aggregate) TableName() string { return "engagement_aggregates" }

// usageDocument is the JSON form of engagement.DailyUsage.
type usageDocument struct {
	Date   string           `json:"date"`
	Points map[string]int64 `json:"points"`
}

// LedgerEntry mirrors the engagement_ledger_entries table.
// EntrySeq orders entries that share a created_at second.
type LedgerEntry struct {
	EntrySeq       uint64    `gorm:"primaryKey;autoIncrement"`
	EntryID        string    `gorm:"size:36;not null;uniqueIndex:uniq_engagement_ledger_entry_id"`
	UserID         string    `gorm:"size:191;not null;index:idx_engagement_ledger_user_created,priority:1;index:uniq_engagement_ledger_user_key,unique,priority:1"`
	ActionKind     string    `gorm:"size:64;not null"`
	Delta          int64     `gorm:"not null"`
	TargetID       *string   `gorm:"size:191"`
	IdempotencyKey *string   `gorm:"size:255;index:uniq_engagement_ledger_user_key,unique,priority:2"`
	CreatedAt      time.Time `gorm:"not null;index:idx_engagement_ledger_user_created,priority:2"`
}

func (LedgerEntry) TableName() string { return "engagement_ledger_entries" }

func (entry *LedgerEntry) BeforeCreate(tx *gorm.DB) error {
	if entry.EntryID == "" {
		entry.EntryID = uuid.NewString()
	}
	return nil
}

// DiscountRedemption mirrors the engagement_discount_redemptions table.
type DiscountRedemption struct {
	UserID     string    `gorm:"size:191;primaryKey"`
	DiscountID string    `gorm:"size:191;primaryKey"`
	RedeemedAt time.Time `gorm:"not null"`
}

func (DiscountRedemption) TableName() string { return "engagement_discount_redemptions" }

// Models lists every table managed by the store, in migration order.
func Models() []any {
	return []any{&Aggregate{}, &LedgerEntry{}, &DiscountRedemption{}}
}
