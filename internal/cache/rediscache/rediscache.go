package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix        = "engagement:stats:"
	defaultTTL       = time.Minute
	operationTimeout = 2 * time.Second
	dialTimeout      = 3 * time.Second
	readWriteTimeout = 2 * time.Second
)

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache implements engagement.AggregateCache on redis. Redis failures degrade to cache
// misses and are logged, never returned.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient opens a redis client for options.
func NewClient(options Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         options.Addr,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readWriteTimeout,
		WriteTimeout: readWriteTimeout,
	})
}

// New wraps client. A non-positive ttl selects one minute.
func New(client redis.Cmdable, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{client: client, ttl: ttl, logger: logger.Named("stats_cache")}
}

// Ping verifies connectivity.
func (cache *Cache) Ping(ctx context.Context) error {
	return cache.client.Ping(ctx).Err()
}

// Get implements engagement.AggregateCache.
func (cache *Cache) Get(ctx context.Context, userID engagement.UserID) (engagement.AggregateRecord, bool) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	raw, err := cache.client.Get(ctx, keyFor(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.Warn("cache get failed", zap.String("user_id", userID.String()), zap.Error(err))
		}
		return engagement.AggregateRecord{}, false
	}
	record, err := decodeRecord(raw)
	if err != nil {
		cache.logger.Warn("cache entry unreadable", zap.String("user_id", userID.String()), zap.Error(err))
		return engagement.AggregateRecord{}, false
	}
	return record, true
}

// Set implements engagement.AggregateCache.
func (cache *Cache) Set(ctx context.Context, record engagement.AggregateRecord) {
	raw, err := encodeRecord(record)
	if err != nil {
		cache.logger.Warn("cache encode failed", zap.String("user_id", record.UserID.String()), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	if err := cache.client.Set(ctx, keyFor(record.UserID), raw, cache.ttl).Err(); err != nil {
		cache.logger.Warn("cache set failed", zap.String("user_id", record.UserID.String()), zap.Error(err))
	}
}

// Invalidate implements engagement.AggregateCache.
func (cache *Cache) Invalidate(ctx context.Context, userID engagement.UserID) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()
	if err := cache.client.Del(ctx, keyFor(userID)).Err(); err != nil {
		cache.logger.Warn("cache invalidate failed", zap.String("user_id", userID.String()), zap.Error(err))
	}
}

func keyFor(userID engagement.UserID) string {
	return keyPrefix + userID.String()
}

type cachedRecord struct {
	UserID            string           `json:"user_id"`
	TotalEarned       int64            `json:"total_earned"`
	AvailablePoints   int64            `json:"available_points"`
	CanPost           bool             `json:"can_post"`
	StreakDays        int64            `json:"streak_days"`
	LastCheckinDate   string           `json:"last_checkin_date,omitempty"`
	LastActiveDate    string           `json:"last_active_date,omitempty"`
	IsFrozen          bool             `json:"is_frozen"`
	UsageDate         string           `json:"usage_date,omitempty"`
	UsagePoints       map[string]int64 `json:"usage_points,omitempty"`
	RedeemedDiscounts []string         `json:"redeemed_discounts,omitempty"`
}

func encodeRecord(record engagement.AggregateRecord) ([]byte, error) {
	document := cachedRecord{
		UserID:          record.UserID.String(),
		TotalEarned:     record.TotalEarned.Int64(),
		AvailablePoints: record.AvailablePoints.Int64(),
		CanPost:         record.CanPost,
		StreakDays:      record.StreakDays,
		LastCheckinDate: record.LastCheckinDate.String(),
		LastActiveDate:  record.LastActiveDate.String(),
		IsFrozen:        record.IsFrozen,
		UsageDate:       record.DailyUsage.Date.String(),
		UsagePoints:     make(map[string]int64, len(record.DailyUsage.Points)),
	}
	for kind, points := range record.DailyUsage.Points {
		document.UsagePoints[kind.String()] = points.Int64()
	}
	for _, discountID := range record.RedeemedDiscounts.Sorted() {
		document.RedeemedDiscounts = append(document.RedeemedDiscounts, discountID.String())
	}
	return json.Marshal(document)
}

func decodeRecord(raw []byte) (engagement.AggregateRecord, error) {
	var document cachedRecord
	if err := json.Unmarshal(raw, &document); err != nil {
		return engagement.AggregateRecord{}, err
	}
	userID, err := engagement.NewUserID(document.UserID)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	lastCheckin, err := optionalDate(document.LastCheckinDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	lastActive, err := optionalDate(document.LastActiveDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	usageDate, err := optionalDate(document.UsageDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	usage := engagement.DailyUsage{Date: usageDate, Points: make(map[engagement.ActionKind]engagement.Points, len(document.UsagePoints))}
	for rawKind, points := range document.UsagePoints {
		kind, err := engagement.NewActionKind(rawKind)
		if err != nil {
			return engagement.AggregateRecord{}, err
		}
		usage.Points[kind] = engagement.Points(points)
	}
	redeemed := make([]engagement.DiscountID, 0, len(document.RedeemedDiscounts))
	for _, rawID := range document.RedeemedDiscounts {
		discountID, err := engagement.NewDiscountID(rawID)
		if err != nil {
			return engagement.AggregateRecord{}, err
		}
		redeemed = append(redeemed, discountID)
	}
	return engagement.AggregateRecord{
		UserID:            userID,
		TotalEarned:       engagement.Points(document.TotalEarned),
		AvailablePoints:   engagement.Points(document.AvailablePoints),
		CanPost:           document.CanPost,
		StreakDays:        document.StreakDays,
		LastCheckinDate:   lastCheckin,
		LastActiveDate:    lastActive,
		IsFrozen:          document.IsFrozen,
		DailyUsage:        usage,
		RedeemedDiscounts: engagement.NewDiscountSet(redeemed...),
	}, nil
}

func optionalDate(raw string) (engagement.CalendarDate, error) {
	if raw == "" {
		return engagement.CalendarDate{}, nil
	}
	return engagement.NewCalendarDate(raw)
}
