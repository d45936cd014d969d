package httpapi

import "github.com/MarkoPoloResearchLab/engagement/pkg/engagement"

type awardRequest struct {
	UserID     string `json:"user_id"`
	ActionKind string `json:"action_kind"`
	TargetID   string `json:"target_id"`
}

type awardPayload struct {
	Credited bool   `json:"credited"`
	Delta    int64  `json:"delta"`
	Reason   string `json:"reason,omitempty"`
}

type checkinPayload struct {
	Success      bool   `json:"success"`
	PointsEarned int64  `json:"points_earned"`
	StreakDays   int64  `json:"streak_days"`
	WasZombie    bool   `json:"was_zombie"`
	Reason       string `json:"reason,omitempty"`
}

type canPostPayload struct {
	Allowed bool   `json:"allowed"`
	Current int64  `json:"current"`
	Needed  int64  `json:"needed"`
	Reason  string `json:"reason,omitempty"`
}

type statsPayload struct {
	UserID            string   `json:"user_id"`
	TotalEarned       int64    `json:"total_earned"`
	AvailablePoints   int64    `json:"available_points"`
	CanPost           bool     `json:"can_post"`
	StreakDays        int64    `json:"streak_days"`
	LastCheckinDate   string   `json:"last_checkin_date"`
	LastActiveDate    string   `json:"last_active_date"`
	IsFrozen          bool     `json:"is_frozen"`
	RedeemedDiscounts []string `json:"redeemed_discounts"`
}

type entryPayload struct {
	EntryID        string `json:"entry_id"`
	ActionKind     string `json:"action_kind"`
	Delta          int64  `json:"delta"`
	TargetID       string `json:"target_id,omitempty"`
	CreatedUnixUTC int64  `json:"created_unix_utc"`
}

type discountPayload struct {
	DiscountID string `json:"discount_id"`
	Threshold  int64  `json:"threshold"`
	Eligible   bool   `json:"eligible"`
}

func newStatsPayload(record engagement.AggregateRecord) statsPayload {
	redeemed := make([]string, 0, len(record.RedeemedDiscounts))
	for _, discountID := range record.RedeemedDiscounts.Sorted() {
		redeemed = append(redeemed, discountID.String())
	}
	return statsPayload{
		UserID:            record.UserID.String(),
		TotalEarned:       record.TotalEarned.Int64(),
		AvailablePoints:   record.AvailablePoints.Int64(),
		CanPost:           record.CanPost,
		StreakDays:        record.StreakDays,
		LastCheckinDate:   record.LastCheckinDate.String(),
		LastActiveDate:    record.LastActiveDate.String(),
		IsFrozen:          record.IsFrozen,
		RedeemedDiscounts: redeemed,
	}
}

func newEntryPayload(entry engagement.LedgerEntry) entryPayload {
	payload := entryPayload{
		EntryID:        entry.EntryID(),
		ActionKind:     entry.ActionKind().String(),
		Delta:          entry.Delta().Int64(),
		CreatedUnixUTC: entry.CreatedUnixUTC(),
	}
	if target, ok := entry.TargetID(); ok {
		payload.TargetID = target.String()
	}
	return payload
}

// newDiscountPayloads lists discounts in threshold order.
func newDiscountPayloads(rules engagement.RuleTable, eligibility map[engagement.DiscountID]bool) []discountPayload {
	discounts := rules.Discounts()
	payload := make([]discountPayload, 0, len(discounts))
	for _, discount := range discounts {
		payload = append(payload, discountPayload{
			DiscountID: discount.ID.String(),
			Threshold:  discount.Threshold.Int64(),
			Eligible:   eligibility[discount.ID],
		})
	}
	return payload
}
