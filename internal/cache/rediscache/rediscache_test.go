package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordCodecPreservesState(test *testing.T) {
	test.Parallel()
	userID, _ := engagement.NewUserID("user-1")
	day, _ := engagement.NewCalendarDate("2026-03-01")
	kind, _ := engagement.NewActionKind("read_article")
	discountID, _ := engagement.NewDiscountID("discount-500")
	record := engagement.NewAggregateRecord(userID, day)
	record.TotalEarned, record.AvailablePoints, record.StreakDays = 520, 480, 4
	record.CanPost = true
	record.LastCheckinDate = day
	record.DailyUsage = record.DailyUsage.WithCredit(day, kind, 6)
	record.RedeemedDiscounts = engagement.NewDiscountSet(discountID)

	raw, err := encodeRecord(record)
	if err != nil {
		test.Fatalf("encode: %v", err)
	}
	decoded, err := decodeRecord(raw)
	if err != nil {
		test.Fatalf("decode: %v", err)
	}
	if decoded.UserID != userID || decoded.TotalEarned != 520 || decoded.AvailablePoints != 480 || decoded.StreakDays != 4 || !decoded.CanPost {
		test.Fatalf("unexpected decoded record %+v", decoded)
	}
	if decoded.LastCheckinDate != day || decoded.LastActiveDate != day || decoded.DailyUsage.UsedOn(day, kind) != 6 {
		test.Fatalf("unexpected dates or usage %+v", decoded)
	}
	if !decoded.RedeemedDiscounts.Contains(discountID) {
		test.Fatalf("expected redeemed discount to survive")
	}
}

func TestDecodeRejectsCorruptEntries(test *testing.T) {
	test.Parallel()
	for _, raw := range []string{`not json`, `{"user_id":""}`, `{"user_id":"u","last_active_date":"yesterday"}`} {
		if _, err := decodeRecord([]byte(raw)); err == nil {
			test.Fatalf("%s: expected decode error", raw)
		}
	}
}

func TestKeyFor(test *testing.T) {
	test.Parallel()
	userID, _ := engagement.NewUserID("user-1")
	if keyFor(userID) != "engagement:stats:user-1" {
		test.Fatalf("unexpected key %q", keyFor(userID))
	}
}

func TestUnreachableRedisDegradesToMiss(test *testing.T) {
	test.Parallel()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	test.Cleanup(func() { _ = client.Close() })
	core, recorded := observer.New(zapcore.WarnLevel)
	cache := New(client, 0, zap.New(core))
	if cache.ttl != defaultTTL {
		test.Fatalf("expected default ttl, got %v", cache.ttl)
	}
	userID, _ := engagement.NewUserID("user-1")
	day, _ := engagement.NewCalendarDate("2026-03-01")

	if _, ok := cache.Get(context.Background(), userID); ok {
		test.Fatalf("expected miss from unreachable redis")
	}
	cache.Set(context.Background(), engagement.NewAggregateRecord(userID, day))
	cache.Invalidate(context.Background(), userID)
	if recorded.Len() != 3 {
		test.Fatalf("expected three warnings, got %d", recorded.Len())
	}
}
