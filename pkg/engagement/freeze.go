package engagement

import (
	"context"
	"errors"
	"fmt"
)

// RefreshFreezeState derives whether the user is frozen today and persists a newly
// frozen flag. It never clears the flag; only a credited award does.
func (service *Service) RefreshFreezeState(ctx context.Context, userID UserID) (bool, error) {
	if userID.IsZero() {
		return false, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	ctx, span := service.startSpan(ctx, operationFreeze, userID)

	unlock := service.locks.lock(userID)
	var (
		frozen  bool
		changed bool
	)
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		today := service.Today()
		record, err := transactionStore.GetOrCreateAggregate(ctx, userID, today)
		if err != nil {
			return err
		}
		frozen = service.isFrozenOn(record, today)
		if !frozen || record.IsFrozen {
			return nil
		}
		updated := record.Clone()
		updated.IsFrozen = true
		if err := transactionStore.SaveAggregate(ctx, updated); err != nil {
			return err
		}
		changed = true
		return nil
	})
	if changed {
		service.invalidate(ctx, userID)
	}
	unlock()

	endSpan(span, ReasonNone, operationError)
	if operationError != nil {
		service.logOperation(ctx, OperationLog{Operation: operationFreeze, UserID: userID, Error: operationError})
		return false, operationError
	}
	if changed {
		service.logOperation(ctx, OperationLog{Operation: operationFreeze, UserID: userID})
	}
	return frozen, nil
}

// SweepFrozen persists the frozen flag for up to limit inactive accounts and
// returns how many were frozen. Failures on single users do not stop the sweep.
func (service *Service) SweepFrozen(ctx context.Context, limit int) (int, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	cutoff := service.Today().AddDays(-service.rules.FreezeAfterDays())
	userIDs, err := service.store.ListInactiveUsers(ctx, cutoff, limit)
	if err != nil {
		return 0, err
	}
	frozenCount := 0
	var sweepErrors []error
	for _, userID := range userIDs {
		if err := ctx.Err(); err != nil {
			sweepErrors = append(sweepErrors, err)
			break
		}
		frozen, err := service.RefreshFreezeState(ctx, userID)
		if err != nil {
			sweepErrors = append(sweepErrors, err)
			continue
		}
		if frozen {
			frozenCount++
		}
	}
	return frozenCount, errors.Join(sweepErrors...)
}
