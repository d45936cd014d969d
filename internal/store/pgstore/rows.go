package pgstore

import "github.com/MarkoPoloResearchLab/engagement/pkg/engagement"

// usageDocument is the jsonb form of engagement.DailyUsage.
type usageDocument struct {
	Date   string           `json:"date"`
	Points map[string]int64 `json:"points"`
}

type aggregateRow struct {
	userID          string
	totalEarned     int64
	availablePoints int64
	canPost         bool
	streakDays      int64
	lastCheckinDate string
	lastActiveDate  string
	isFrozen        bool
	dailyUsage      usageDocument
}

func (row aggregateRow) toRecord(discountIDs []string) (engagement.AggregateRecord, error) {
	userID, err := engagement.NewUserID(row.userID)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	if row.totalEarned < 0 || row.availablePoints < 0 {
		return engagement.AggregateRecord{}, engagement.ErrInvalidAggregateState
	}
	lastCheckin, err := parseOptionalDate(row.lastCheckinDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	lastActive, err := parseOptionalDate(row.lastActiveDate)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	usageDate, err := parseOptionalDate(row.dailyUsage.Date)
	if err != nil {
		return engagement.AggregateRecord{}, err
	}
	usage := engagement.DailyUsage{Date: usageDate, Points: make(map[engagement.ActionKind]engagement.Points, len(row.dailyUsage.Points))}
	for rawKind, points := range row.dailyUsage.Points {
		kind, err := engagement.NewActionKind(rawKind)
		if err != nil {
			return engagement.AggregateRecord{}, err
		}
		usage.Points[kind] = engagement.Points(points)
	}
	redeemed := make([]engagement.DiscountID, 0, len(discountIDs))
	for _, raw := range discountIDs {
		discountID, err := engagement.NewDiscountID(raw)
		if err != nil {
			return engagement.AggregateRecord{}, err
		}
		redeemed = append(redeemed, discountID)
	}
	return engagement.AggregateRecord{
		UserID:            userID,
		TotalEarned:       engagement.Points(row.totalEarned),
		AvailablePoints:   engagement.Points(row.availablePoints),
		CanPost:           row.canPost,
		StreakDays:        row.streakDays,
		LastCheckinDate:   lastCheckin,
		LastActiveDate:    lastActive,
		IsFrozen:          row.isFrozen,
		DailyUsage:        usage,
		RedeemedDiscounts: engagement.NewDiscountSet(redeemed...),
	}, nil
}

func mapLedgerEntry(entryID string, rawUserID string, rawKind string, delta int64, rawTargetID string, idempotencyKey string, createdUnixUTC int64) (engagement.LedgerEntry, error) {
	userID, err := engagement.NewUserID(rawUserID)
	if err != nil {
		return engagement.LedgerEntry{}, err
	}
	kind, err := engagement.NewActionKind(rawKind)
	if err != nil {
		return engagement.LedgerEntry{}, err
	}
	var targetID *engagement.TargetID
	if rawTargetID != "" {
		parsed, err := engagement.NewTargetID(rawTargetID)
		if err != nil {
			return engagement.LedgerEntry{}, err
		}
		targetID = &parsed
	}
	return engagement.NewLedgerEntry(entryID, userID, kind, engagement.Points(delta), targetID, idempotencyKey, createdUnixUTC)
}

func parseOptionalDate(raw string) (engagement.CalendarDate, error) {
	if raw == "" {
		return engagement.CalendarDate{}, nil
	}
	return engagement.NewCalendarDate(raw)
}
