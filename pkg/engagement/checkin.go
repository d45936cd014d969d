package engagement

import "context"

// Checkin awards the daily check-in and surfaces the streak and zombie outcome.
func (service *Service) Checkin(ctx context.Context, userID UserID) (CheckinResult, error) {
	result, record, err := service.execute(ctx, operationCheckin, userID, ActionKind{value: ActionCheckin}, nil)
	if err != nil {
		return CheckinResult{}, err
	}
	wasZombie := result.Reason == ReasonZombie
	return CheckinResult{
		Success:      result.Credited || wasZombie,
		PointsEarned: result.Delta,
		StreakDays:   record.StreakDays,
		WasZombie:    wasZombie,
		Reason:       result.Reason,
	}, nil
}
