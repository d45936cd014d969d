package engagement

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestAwardTargetScopedIsIdempotent(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "read_article")
	target := mustTargetID(test, "article-9")

	first, err := service.Award(context.Background(), userID, kind, &target)
	if err != nil {
		test.Fatalf("first award: %v", err)
	}
	if !first.Credited || first.Delta != 2 {
		test.Fatalf("expected credited delta 2, got %+v", first)
	}
	second, err := service.Award(context.Background(), userID, kind, &target)
	if err != nil {
		test.Fatalf("second award: %v", err)
	}
	if second.Credited || second.Delta != 0 || second.Reason != ReasonDuplicate {
		test.Fatalf("expected duplicate rejection, got %+v", second)
	}
	record := store.mustAggregate(test, userID)
	if record.TotalEarned != 2 || record.AvailablePoints != 2 {
		test.Fatalf("expected a single credit, got %+v", record)
	}
	if store.entryCount() != 1 {
		test.Fatalf("expected one ledger entry, got %d", store.entryCount())
	}
}

func TestAwardDuplicateDetectedByStoreConstraint(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "like_post")
	target := mustTargetID(test, "post-1")
	if _, err := service.Award(context.Background(), userID, kind, &target); err != nil {
		test.Fatalf("first award: %v", err)
	}
	store.hideLedgerLookups = true

	result, err := service.Award(context.Background(), userID, kind, &target)
	if err != nil {
		test.Fatalf("second award: %v", err)
	}
	if result.Credited || result.Reason != ReasonDuplicate {
		test.Fatalf("expected duplicate rejection, got %+v", result)
	}
	if record := store.mustAggregate(test, userID); record.TotalEarned != 1 {
		test.Fatalf("expected rollback to keep total 1, got %d", record.TotalEarned)
	}
}

func TestAwardDailyCapGrantsPartialCredit(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	rules := mustRuleTable(test, func(config *RuleTableConfig) {
		config.Actions = append(config.Actions, ActionRule{Kind: ActionKind{value: "answer"}, Delta: 4, DailyCap: 10, Interaction: true})
	})
	clock := newTestClock(test, dayOne)
	service, err := NewService(store, rules, clock.now)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "answer")

	var deltas []Points
	for attempt := 0; attempt < 4; attempt++ {
		result, err := service.Award(context.Background(), userID, kind, nil)
		if err != nil {
			test.Fatalf("award %d: %v", attempt, err)
		}
		deltas = append(deltas, result.Delta)
		if attempt == 3 && result.Reason != ReasonDailyLimit {
			test.Fatalf("expected daily limit on attempt %d, got %+v", attempt, result)
		}
	}
	expected := []Points{4, 4, 2, 0}
	for index := range expected {
		if deltas[index] != expected[index] {
			test.Fatalf("expected deltas %v, got %v", expected, deltas)
		}
	}
	if record := store.mustAggregate(test, userID); record.TotalEarned != 10 {
		test.Fatalf("expected total 10, got %d", record.TotalEarned)
	}

	clock.addDays(1)
	result, err := service.Award(context.Background(), userID, kind, nil)
	if err != nil {
		test.Fatalf("next day award: %v", err)
	}
	if !result.Credited || result.Delta != 4 {
		test.Fatalf("expected usage reset on the next day, got %+v", result)
	}
}

func TestAwardConcurrentCallsRespectDailyCap(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "create_post")

	const workers = 32
	var (
		waitGroup sync.WaitGroup
		mutex     sync.Mutex
		credited  Points
		failures  []error
	)
	for worker := 0; worker < workers; worker++ {
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
	if credited != 25 {
		test.Fatalf("expected exactly the cap of 25 credited, got %d", credited)
	}
	if record := store.mustAggregate(test, userID); record.TotalEarned != 25 || record.DailyUsage.UsedOn(mustDate(test, dayOne), kind) != 25 {
		test.Fatalf("unexpected record after concurrent awards: %+v", record)
	}
}

func TestAwardRejectsFrozenUserUntilInteraction(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	clock := newTestClock(test, dayOne)
	service := mustNewService(test, store, clock)
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) {
		record.TotalEarned, record.AvailablePoints = 30, 30
		record.IsFrozen = true
	})
	clock.addDays(7)

	checkin, err := service.Award(context.Background(), userID, mustActionKind(test, ActionCheckin), nil)
	if err != nil {
		test.Fatalf("check-in award: %v", err)
	}
	if checkin.Credited || checkin.Reason != ReasonFrozen {
		test.Fatalf("expected frozen rejection, got %+v", checkin)
	}

	target := mustTargetID(test, "post-7")
	thaw, err := service.Award(context.Background(), userID, mustActionKind(test, "view_post"), &target)
	if err != nil {
		test.Fatalf("interaction award: %v", err)
	}
	if !thaw.Credited || thaw.Delta != 1 {
		test.Fatalf("expected interaction credit, got %+v", thaw)
	}
	record := store.mustAggregate(test, userID)
	if record.IsFrozen {
		test.Fatalf("expected account thawed in the same call")
	}
	if record.LastActiveDate != mustDate(test, dayOne).AddDays(7) {
		test.Fatalf("expected last active refreshed, got %s", record.LastActiveDate)
	}
}

func TestAwardStoredFrozenFlagBlocksNonInteraction(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) { record.IsFrozen = true })

	result, err := service.Checkin(context.Background(), userID)
	if err != nil {
		test.Fatalf("check-in: %v", err)
	}
	if result.Success || result.Reason != ReasonFrozen {
		test.Fatalf("expected frozen check-in, got %+v", result)
	}
}

func TestAwardNegativeDeltaReducesAvailableOnly(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	rules := mustRuleTable(test, func(config *RuleTableConfig) {
		config.Actions = append(config.Actions, ActionRule{Kind: ActionKind{value: "spam_flag"}, Delta: -15})
	})
	service, err := NewService(store, rules, newTestClock(test, dayOne).now)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) {
		record.TotalEarned, record.AvailablePoints, record.CanPost = 30, 25, true
		record.IsFrozen = true
	})

	result, err := service.Award(context.Background(), userID, mustActionKind(test, "spam_flag"), nil)
	if err != nil {
		test.Fatalf("penalty: %v", err)
	}
	if !result.Credited || result.Delta != -15 {
		test.Fatalf("expected penalty applied, got %+v", result)
	}
	record := store.mustAggregate(test, userID)
	if record.TotalEarned != 30 || record.AvailablePoints != 10 || record.CanPost {
		test.Fatalf("unexpected record after penalty: %+v", record)
	}
	if !record.IsFrozen {
		test.Fatalf("penalty must not thaw the account")
	}

	if _, err := service.Award(context.Background(), userID, mustActionKind(test, "spam_flag"), nil); err != nil {
		test.Fatalf("second penalty: %v", err)
	}
	if record := store.mustAggregate(test, userID); record.AvailablePoints != 0 {
		test.Fatalf("expected available clamped at 0, got %d", record.AvailablePoints)
	}
}

func TestAwardRecomputesCanPost(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	kind := mustActionKind(test, "create_post")
	for attempt := 0; attempt < 4; attempt++ {
		if _, err := service.Award(context.Background(), userID, kind, nil); err != nil {
			test.Fatalf("award %d: %v", attempt, err)
		}
	}
	if record := store.mustAggregate(test, userID); !record.CanPost || record.AvailablePoints != 20 {
		test.Fatalf("expected posting unlocked at 20 points, got %+v", record)
	}
}

func TestAwardValidatesInput(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	service := mustNewService(test, store, newTestClock(test, dayOne))
	userID := mustUserID(test, userName)
	testCases := []struct {
		name    string
		userID  UserID
		kind    ActionKind
		target  *TargetID
		wantErr error
	}{
		{name: "missing user", kind: ActionKind{value: "create_post"}, wantErr: ErrInvalidUserID},
		{name: "missing kind", userID: userID, wantErr: ErrInvalidActionKind},
		{name: "unknown kind", userID: userID, kind: ActionKind{value: "teleport"}, wantErr: ErrUnknownActionKind},
		{name: "missing target", userID: userID, kind: ActionKind{value: "view_post"}, wantErr: ErrMissingTargetID},
		{name: "empty target", userID: userID, kind: ActionKind{value: "view_post"}, target: &TargetID{}, wantErr: ErrInvalidTargetID},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			_, err := service.Award(context.Background(), testCase.userID, testCase.kind, testCase.target)
			if !errors.Is(err, testCase.wantErr) {
				test.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
	if store.entryCount() != 0 {
		test.Fatalf("invalid awards must not write ledger entries")
	}
}

func TestAwardAbortsOnInvariantViolation(test *testing.T) {
	test.Parallel()
	store := newStubStore()
	logger := &recorderLogger{}
	service := mustNewService(test, store, newTestClock(test, dayOne), WithOperationLogger(logger))
	userID := mustUserID(test, userName)
	store.seed(test, userID, func(record *AggregateRecord) {
		record.TotalEarned, record.AvailablePoints = 5, 50
	})

	_, err := service.Award(context.Background(), userID, mustActionKind(test, "create_post"), nil)
	if !errors.Is(err, ErrInvariantViolation) {
		test.Fatalf("expected invariant violation, got %v", err)
	}
	var operationError OperationError
	if !errors.As(err, &operationError) || operationError.Code() != errorCodeExceedsTotal {
		test.Fatalf("expected %s code, got %v", errorCodeExceedsTotal, err)
	}
	if store.entryCount() != 0 {
		test.Fatalf("expected ledger insert rolled back")
	}
	if record := store.mustAggregate(test, userID); record.TotalEarned != 5 {
		test.Fatalf("expected aggregate untouched, got %+v", record)
	}
	if len(logger.entries) != 1 || logger.entries[0].Status != operationStatusError {
		test.Fatalf("expected error log entry, got %+v", logger.entries)
	}
}

func TestCheckInvariants(test *testing.T) {
	test.Parallel()
	today := mustDate(test, dayOne)
	kind := ActionKind{value: "create_post"}
	rule := ActionRule{Kind: kind, Delta: 5, DailyCap: 10}
	before := AggregateRecord{TotalEarned: 10, AvailablePoints: 10}
	testCases := []struct {
		name     string
		after    AggregateRecord
		wantCode string
	}{
		{name: "valid", after: AggregateRecord{TotalEarned: 15, AvailablePoints: 15, DailyUsage: DailyUsage{}.WithCredit(today, kind, 5)}},
		{name: "negative", after: AggregateRecord{TotalEarned: 10, AvailablePoints: -1}, wantCode: errorCodeNegative},
		{name: "exceeds total", after: AggregateRecord{TotalEarned: 10, AvailablePoints: 11}, wantCode: errorCodeExceedsTotal},
		{name: "total decreased", after: AggregateRecord{TotalEarned: 9, AvailablePoints: 9}, wantCode: errorCodeTotalDecreased},
		{name: "cap exceeded", after: AggregateRecord{TotalEarned: 21, AvailablePoints: 21, DailyUsage: DailyUsage{}.WithCredit(today, kind, 11)}, wantCode: errorCodeCapExceeded},
	}
	for _, testCase := range testCases {
		err := checkInvariants(before, testCase.after, rule, today)
		if testCase.wantCode == "" {
			if err != nil {
				test.Fatalf("%s: unexpected error %v", testCase.name, err)
			}
			continue
		}
		var operationError OperationError
		if !errors.As(err, &operationError) || operationError.Code() != testCase.wantCode {
			test.Fatalf("%s: expected code %s, got %v", testCase.name, testCase.wantCode, err)
		}
	}
}

func mustRuleTable(test *testing.T, configure func(config *RuleTableConfig)) RuleTable {
	test.Helper()
	config := DefaultRuleTableConfig()
	configure(&config)
	table, err := NewRuleTable(config)
	if err != nil {
		test.Fatalf("rule table: %v", err)
	}
	return table
}
