package engagement

import (
	"context"
	"errors"
	"fmt"
)

// Eligibility reports, per configured discount, whether the user may redeem it now.
func (service *Service) Eligibility(ctx context.Context, userID UserID) (map[DiscountID]bool, error) {
	record, err := service.currentRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	discounts := service.rules.Discounts()
	eligibility := make(map[DiscountID]bool, len(discounts))
	for _, discount := range discounts {
		eligibility[discount.ID] = record.TotalEarned >= discount.Threshold && !record.RedeemedDiscounts.Contains(discount.ID)
	}
	return eligibility, nil
}

// Redeem consumes a one-shot discount. It returns false without error when the
// discount was already redeemed.
func (service *Service) Redeem(ctx context.Context, userID UserID, discountID DiscountID) (bool, error) {
	ctx, span := service.startSpan(ctx, operationRedeem, userID)
	redeemed, err := service.redeem(ctx, userID, discountID)
	reason := ReasonNone
	if err == nil && !redeemed {
		reason = ReasonAlreadyRedeemed
	}
	endSpan(span, reason, err)
	service.logOperation(ctx, OperationLog{
		Operation:  operationRedeem,
		UserID:     userID,
		DiscountID: discountID,
		Reason:     reason,
		Error:      err,
	})
	return redeemed, err
}

func (service *Service) redeem(ctx context.Context, userID UserID, discountID DiscountID) (bool, error) {
	if userID.IsZero() {
		return false, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	if discountID.value == "" {
		return false, fmt.Errorf("%w: empty value", ErrInvalidDiscountID)
	}
	discount, ok := service.rules.Discount(discountID)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownDiscount, discountID.value)
	}

	unlock := service.locks.lock(userID)
	defer unlock()

	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		nowUnixUTC := service.nowFn()
		record, err := transactionStore.GetOrCreateAggregate(ctx, userID, CalendarDateAt(nowUnixUTC, service.location))
		if err != nil {
			return err
		}
		if record.RedeemedDiscounts.Contains(discount.ID) {
			return ErrAlreadyRedeemed
		}
		if record.TotalEarned < discount.Threshold {
			return fmt.Errorf("%w: %q needs %d points", ErrDiscountNotEligible, discount.ID.value, discount.Threshold)
		}
		return transactionStore.InsertRedemption(ctx, userID, discount.ID, nowUnixUTC)
	})
	if errors.Is(operationError, ErrAlreadyRedeemed) {
		return false, nil
	}
	if operationError != nil {
		return false, operationError
	}
	service.invalidate(ctx, userID)
	return true, nil
}
