package engagement

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

// Award credits userID for one action of kind, optionally scoped to target.
// Policy rejections are reported in the result; the error is reserved for invalid
// input and store failures.
func (service *Service) Award(ctx context.Context, userID UserID, kind ActionKind, target *TargetID) (AwardResult, error) {
	result, _, err := service.execute(ctx, operationAward, userID, kind, target)
	return result, err
}

func (service *Service) execute(ctx context.Context, operation string, userID UserID, kind ActionKind, target *TargetID) (AwardResult, AggregateRecord, error) {
	ctx, span := service.startSpan(ctx, operation, userID, attribute.String("engagement.action_kind", kind.String()))
	result, record, err := service.applyAward(ctx, userID, kind, target)
	span.SetAttributes(attribute.Int64("engagement.delta", result.Delta.Int64()))
	endSpan(span, result.Reason, err)
	service.logOperation(ctx, OperationLog{
		Operation:  operation,
		UserID:     userID,
		ActionKind: kind,
		TargetID:   target,
		Delta:      result.Delta,
		Reason:     result.Reason,
		Error:      err,
	})
	return result, record, err
}

func (service *Service) applyAward(ctx context.Context, userID UserID, kind ActionKind, target *TargetID) (AwardResult, AggregateRecord, error) {
	if userID.IsZero() {
		return AwardResult{}, AggregateRecord{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	if kind.value == "" {
		return AwardResult{}, AggregateRecord{}, fmt.Errorf("%w: empty value", ErrInvalidActionKind)
	}
	rule, ok := service.rules.Rule(kind)
	if !ok {
		return AwardResult{}, AggregateRecord{}, fmt.Errorf("%w: %q", ErrUnknownActionKind, kind.value)
	}
	if rule.TargetScoped && target == nil {
		return AwardResult{}, AggregateRecord{}, fmt.Errorf("%w: %q is target scoped", ErrMissingTargetID, kind.value)
	}
	if target != nil && target.value == "" {
		return AwardResult{}, AggregateRecord{}, fmt.Errorf("%w: empty value", ErrInvalidTargetID)
	}

	unlock := service.locks.lock(userID)
	defer unlock()

	var (
		result AwardResult
		record AggregateRecord
	)
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		nowUnixUTC := service.nowFn()
		today := CalendarDateAt(nowUnixUTC, service.location)
		current, err := transactionStore.GetOrCreateAggregate(ctx, userID, today)
		if err != nil {
			return err
		}
		record = current
		decision, err := service.decide(ctx, transactionStore, current, rule, target, nowUnixUTC)
		if err != nil {
			return err
		}
		result = decision.result
		if !decision.commit {
			return nil
		}
		if decision.entry != nil {
			if err := transactionStore.InsertLedgerEntry(ctx, *decision.entry); err != nil {
				return err
			}
		}
		if err := checkInvariants(current, decision.updated, rule, today); err != nil {
			return err
		}
		if err := transactionStore.SaveAggregate(ctx, decision.updated); err != nil {
			return err
		}
		record = decision.updated
		return nil
	})
	if errors.Is(operationError, ErrDuplicateAward) {
		return AwardResult{Reason: ReasonDuplicate}, record, nil
	}
	if operationError != nil {
		return AwardResult{}, AggregateRecord{}, operationError
	}
	if result.Credited || result.Reason == ReasonZombie {
		service.invalidate(ctx, userID)
	}
	return result, record, nil
}

type awardDecision struct {
	result  AwardResult
	updated AggregateRecord
	entry   *LedgerEntry
	commit  bool
}

func rejected(reason RejectionReason) awardDecision {
	return awardDecision{result: AwardResult{Reason: reason}}
}

// decide applies freeze, idempotency, check-in and cap policy in that order.
func (service *Service) decide(ctx context.Context, transactionStore Store, current AggregateRecord, rule ActionRule, target *TargetID, nowUnixUTC int64) (awardDecision, error) {
	today := CalendarDateAt(nowUnixUTC, service.location)
	if rule.Delta > 0 && !rule.Interaction && service.isFrozenOn(current, today) {
		return rejected(ReasonFrozen), nil
	}

	var idempotencyKey string
	if rule.TargetScoped {
		idempotencyKey = IdempotencyKeyFor(rule.Kind, *target)
		exists, err := transactionStore.HasLedgerEntry(ctx, current.UserID, idempotencyKey)
		if err != nil {
			return awardDecision{}, err
		}
		if exists {
			return rejected(ReasonDuplicate), nil
		}
	}

	updated := current.Clone()
	if rule.Kind.value == ActionCheckin {
		if current.LastCheckinDate == today {
			return rejected(ReasonAlreadyCheckedIn), nil
		}
		updated.LastCheckinDate = today
		if current.LastActiveDate.DaysUntil(today) >= service.rules.ZombieCheckinWindowDays() {
			return awardDecision{
				result:  AwardResult{Reason: ReasonZombie},
				updated: updated,
				commit:  true,
			}, nil
		}
		if !current.LastCheckinDate.IsZero() && current.LastCheckinDate.AddDays(1) == today {
			updated.StreakDays = current.StreakDays + 1
		} else {
			updated.StreakDays = 1
		}
	}

	delta := rule.Delta
	if delta > 0 && rule.HasDailyCap() {
		remaining := rule.DailyCap - current.DailyUsage.UsedOn(today, rule.Kind)
		if remaining <= 0 {
			return rejected(ReasonDailyLimit), nil
		}
		if delta > remaining {
			delta = remaining
		}
	}

	decision := awardDecision{
		result:  AwardResult{Credited: true, Delta: delta},
		updated: updated,
		commit:  true,
	}
	if delta != 0 {
		entry, err := NewLedgerEntry("", current.UserID, rule.Kind, delta, target, idempotencyKey, nowUnixUTC)
		if err != nil {
			return awardDecision{}, err
		}
		decision.entry = &entry
	}
	if delta > 0 {
		updated.TotalEarned += delta
		updated.DailyUsage = updated.DailyUsage.WithCredit(today, rule.Kind, delta)
		updated.IsFrozen = false
	}
	updated.AvailablePoints += delta
	if updated.AvailablePoints < 0 {
		updated.AvailablePoints = 0
	}
	updated.CanPost = updated.AvailablePoints >= service.rules.PostUnlockThreshold()
	if rule.Interaction {
		updated.LastActiveDate = today
	}
	decision.updated = updated
	return decision, nil
}

func checkInvariants(before AggregateRecord, after AggregateRecord, rule ActionRule, today CalendarDate) error {
	if after.AvailablePoints < 0 {
		return WrapError(errorOperationService, errorSubjectAggregate, errorCodeNegative, ErrInvariantViolation)
	}
	if after.AvailablePoints > after.TotalEarned {
		return WrapError(errorOperationService, errorSubjectAggregate, errorCodeExceedsTotal, ErrInvariantViolation)
	}
	if after.TotalEarned < before.TotalEarned {
		return WrapError(errorOperationService, errorSubjectAggregate, errorCodeTotalDecreased, ErrInvariantViolation)
	}
	if rule.HasDailyCap() && after.DailyUsage.UsedOn(today, rule.Kind) > rule.DailyCap {
		return WrapError(errorOperationService, errorSubjectAggregate, errorCodeCapExceeded, ErrInvariantViolation)
	}
	return nil
}
