package gormstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const testDay = "2026-03-01"

func TestGetOrCreateAggregateRoundTrip(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	ctx := context.Background()
	userID := mustUserID(test, "user-1")
	day := mustDate(test, testDay)

	created, err := store.GetOrCreateAggregate(ctx, userID, day)
	if err != nil {
		test.Fatalf("create aggregate: %v", err)
	}
	if created.LastActiveDate != day || !created.LastCheckinDate.IsZero() || created.TotalEarned != 0 {
		test.Fatalf("unexpected first-use record %+v", created)
	}

	kind := mustActionKind(test, "view_post")
	updated := created.Clone()
	updated.TotalEarned, updated.AvailablePoints, updated.StreakDays = 12, 7, 3
	updated.CanPost = true
	updated.IsFrozen = true
	updated.LastCheckinDate = day
	updated.DailyUsage = updated.DailyUsage.WithCredit(day, kind, 4)
	if err := store.SaveAggregate(ctx, updated); err != nil {
		test.Fatalf("save aggregate: %v", err)
	}

	loaded, err := store.GetOrCreateAggregate(ctx, userID, day.AddDays(5))
	if err != nil {
		test.Fatalf("reload aggregate: %v", err)
	}
	if loaded.TotalEarned != 12 || loaded.AvailablePoints != 7 || loaded.StreakDays != 3 || !loaded.CanPost || !loaded.IsFrozen {
		test.Fatalf("unexpected reloaded record %+v", loaded)
	}
	if loaded.LastActiveDate != day {
		test.Fatalf("reload must not reset last active date, got %s", loaded.LastActiveDate)
	}
	if loaded.DailyUsage.UsedOn(day, kind) != 4 {
		test.Fatalf("expected usage 4, got %d", loaded.DailyUsage.UsedOn(day, kind))
	}
}

func TestInsertLedgerEntryDetectsDuplicates(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	ctx := context.Background()
	userID := mustUserID(test, "user-1")
	kind := mustActionKind(test, "view_post")
	target := mustTargetID(test, "post-1")
	key := engagement.IdempotencyKeyFor(kind, target)

	entry, err := engagement.NewLedgerEntry("", userID, kind, 1, &target, key, 100)
	if err != nil {
		test.Fatalf("ledger entry: %v", err)
	}
	if err := store.InsertLedgerEntry(ctx, entry); err != nil {
		test.Fatalf("insert: %v", err)
	}
	exists, err := store.HasLedgerEntry(ctx, userID, key)
	if err != nil || !exists {
		test.Fatalf("expected entry lookup to succeed, got %v %v", exists, err)
	}
	if err := store.InsertLedgerEntry(ctx, entry); !errors.Is(err, engagement.ErrDuplicateAward) {
		test.Fatalf("expected duplicate award, got %v", err)
	}

	checkin, err := engagement.NewLedgerEntry("", userID, mustActionKind(test, engagement.ActionCheckin), 2, nil, "", 200)
	if err != nil {
		test.Fatalf("check-in entry: %v", err)
	}
	for attempt := 0; attempt < 2; attempt++ {
		if err := store.InsertLedgerEntry(ctx, checkin); err != nil {
			test.Fatalf("untargeted entries must not conflict: %v", err)
		}
	}
}

func TestListLedgerEntriesMostRecentFirst(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	ctx := context.Background()
	userID := mustUserID(test, "user-1")
	kind := mustActionKind(test, "create_post")
	for index := int64(1); index <= 3; index++ {
		entry, err := engagement.NewLedgerEntry("", userID, kind, engagement.Points(index), nil, "", 1000+index)
		if err != nil {
			test.Fatalf("ledger entry: %v", err)
		}
		if err := store.InsertLedgerEntry(ctx, entry); err != nil {
			test.Fatalf("insert %d: %v", index, err)
		}
	}

	entries, err := store.ListLedgerEntries(ctx, userID, 2)
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].Delta() != 3 || entries[1].Delta() != 2 {
		test.Fatalf("unexpected entries %+v", entries)
	}
	if entries[0].EntryID() == "" || entries[0].CreatedUnixUTC() != 1003 {
		test.Fatalf("expected stored id and timestamp, got %+v", entries[0])
	}
}

func TestListLedgerEntriesBreaksSameSecondTiesByInsertOrder(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	service, err := engagement.NewService(store, engagement.DefaultRuleTable(), fixedClock(test, testDay))
	if err != nil {
		test.Fatalf("service: %v", err)
	}
	ctx := context.Background()
	userID := mustUserID(test, "user-1")
	kind := mustActionKind(test, "view_post")
	targets := []string{"post-1", "post-2", "post-3", "post-4", "post-5"}
	for _, raw := range targets {
		target := mustTargetID(test, raw)
		if result, err := service.Award(ctx, userID, kind, &target); err != nil || !result.Credited {
			test.Fatalf("award %s: %+v %v", raw, result, err)
		}
	}

	entries, err := store.ListLedgerEntries(ctx, userID, len(targets))
	if err != nil {
		test.Fatalf("list: %v", err)
	}
	if len(entries) != len(targets) {
		test.Fatalf("expected %d entries, got %d", len(targets), len(entries))
	}
	for index, entry := range entries {
		target, _ := entry.TargetID()
		want := targets[len(targets)-1-index]
		if target.String() != want {
			test.Fatalf("entry %d: expected target %s, got %s", index, want, target.String())
		}
	}
}

func TestInsertRedemptionIsOneShot(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	ctx := context.Background()
	userID := mustUserID(test, "user-1")
	discountID := mustDiscountID(test, "discount-500")

	if err := store.InsertRedemption(ctx, userID, discountID, 100); err != nil {
		test.Fatalf("redeem: %v", err)
	}
	if err := store.InsertRedemption(ctx, userID, discountID, 200); !errors.Is(err, engagement.ErrAlreadyRedeemed) {
		test.Fatalf("expected already redeemed, got %v", err)
	}
	record, err := store.GetOrCreateAggregate(ctx, userID, mustDate(test, testDay))
	if err != nil {
		test.Fatalf("aggregate: %v", err)
	}
	if !record.RedeemedDiscounts.Contains(discountID) {
		test.Fatalf("expected redemption loaded with the aggregate")
	}
}

func TestListInactiveUsers(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	ctx := context.Background()
	day := mustDate(test, testDay)
	for _, seed := range []struct {
		user   string
		active engagement.CalendarDate
		frozen bool
	}{
		{user: "idle", active: day.AddDays(-9)},
		{user: "recent", active: day.AddDays(-1)},
		{user: "frozen", active: day.AddDays(-20), frozen: true},
	} {
		record, err := store.GetOrCreateAggregate(ctx, mustUserID(test, seed.user), seed.active)
		if err != nil {
			test.Fatalf("seed %s: %v", seed.user, err)
		}
		record.IsFrozen = seed.frozen
		if err := store.SaveAggregate(ctx, record); err != nil {
			test.Fatalf("save %s: %v", seed.user, err)
		}
	}

	userIDs, err := store.ListInactiveUsers(ctx, day.AddDays(-7), 10)
	if err != nil {
		test.Fatalf("list inactive: %v", err)
	}
	if len(userIDs) != 1 || userIDs[0].String() != "idle" {
		test.Fatalf("unexpected inactive users %v", userIDs)
	}
}

func TestServiceOverSQLiteKeepsCapUnderConcurrency(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	clock := fixedClock(test, testDay)
	service, err := engagement.NewService(store, engagement.DefaultRuleTable(), clock)
	if err != nil {
		test.Fatalf("service: %v", err)
	}
	userID := mustUserID(test, "user-1")
	kind := mustActionKind(test, "create_comment")

	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		credited  engagement.Points
		failures  []error
	)
	for worker := 0; worker < 16; worker++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			result, err := service.Award(context.Background(), userID, kind, nil)
			mutex.Lock()
			defer mutex.Unlock()
			if err != nil {
				failures = append(failures, err)
				return
			}
			credited += result.Delta
		}()
	}
	waitGroup.Wait()
	if len(failures) != 0 {
		test.Fatalf("unexpected errors: %v", failures)
	}
	if credited != 20 {
		test.Fatalf("expected cap of 20 credited, got %d", credited)
	}
	stats, err := service.GetStats(context.Background(), userID)
	if err != nil {
		test.Fatalf("stats: %v", err)
	}
	if stats.TotalEarned != 20 {
		test.Fatalf("expected total 20, got %d", stats.TotalEarned)
	}
	entries, err := service.History(context.Background(), userID, 100)
	if err != nil {
		test.Fatalf("history: %v", err)
	}
	if len(entries) != 10 {
		test.Fatalf("expected 10 ledger entries, got %d", len(entries))
	}
}

func TestServiceOverSQLiteIsIdempotent(test *testing.T) {
	test.Parallel()
	store := newSQLiteStore(test)
	service, err := engagement.NewService(store, engagement.DefaultRuleTable(), fixedClock(test, testDay))
	if err != nil {
		test.Fatalf("service: %v", err)
	}
	userID := mustUserID(test, "user-1")
	kind := mustActionKind(test, "like_post")
	target := mustTargetID(test, "post-42")

	first, err := service.Award(context.Background(), userID, kind, &target)
	if err != nil || !first.Credited {
		test.Fatalf("expected first like credited, got %+v %v", first, err)
	}
	second, err := service.Award(context.Background(), userID, kind, &target)
	if err != nil || second.Reason != engagement.ReasonDuplicate {
		test.Fatalf("expected duplicate, got %+v %v", second, err)
	}
	redeemed, err := service.Redeem(context.Background(), userID, mustDiscountID(test, "discount-500"))
	if !errors.Is(err, engagement.ErrDiscountNotEligible) || redeemed {
		test.Fatalf("expected not eligible, got %v %v", redeemed, err)
	}
}

func newSQLiteStore(test *testing.T) *Store {
	test.Helper()
	db, err := gorm.Open(sqlite.Open(test.TempDir()+"/engagement.db?_pragma=busy_timeout(5000)"), &gorm.Config{})
	if err != nil {
		test.Fatalf("sqlite open failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		test.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	test.Cleanup(func() { _ = sqlDB.Close() })
	if err := AutoMigrate(db); err != nil {
		test.Fatalf("migrate: %v", err)
	}
	return New(db)
}

func fixedClock(test *testing.T, day string) func() int64 {
	test.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", day, time.UTC)
	if err != nil {
		test.Fatalf("parse day: %v", err)
	}
	unixUTC := parsed.Add(12 * time.Hour).Unix()
	return func() int64 { return unixUTC }
}

func mustUserID(test *testing.T, raw string) engagement.UserID {
	test.Helper()
	value, err := engagement.NewUserID(raw)
	if err != nil {
		test.Fatalf("user id: %v", err)
	}
	return value
}

func mustActionKind(test *testing.T, raw string) engagement.ActionKind {
	test.Helper()
	value, err := engagement.NewActionKind(raw)
	if err != nil {
		test.Fatalf("action kind: %v", err)
	}
	return value
}

func mustTargetID(test *testing.T, raw string) engagement.TargetID {
	test.Helper()
	value, err := engagement.NewTargetID(raw)
	if err != nil {
		test.Fatalf("target id: %v", err)
	}
	return value
}

func mustDiscountID(test *testing.T, raw string) engagement.DiscountID {
	test.Helper()
	value, err := engagement.NewDiscountID(raw)
	if err != nil {
		test.Fatalf("discount id: %v", err)
	}
	return value
}

func mustDate(test *testing.T, raw string) engagement.CalendarDate {
	test.Helper()
	value, err := engagement.NewCalendarDate(raw)
	if err != nil {
		test.Fatalf("calendar date: %v", err)
	}
	return value
}
