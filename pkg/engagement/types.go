package engagement

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Points is an integer amount of engagement points.
type Points int64

// Int64 returns the raw integer value.
func (points Points) Int64() int64 {
	return int64(points)
}

// UserID identifies the owner of an aggregate record.
type UserID struct {
	value string
}

// ActionKind names a rewarded action, e.g. "checkin" or "view_post".
type ActionKind struct {
	value string
}

// TargetID identifies the item an action was performed on.
type TargetID struct {
	value string
}

// DiscountID identifies a one-shot discount.
type DiscountID struct {
	value string
}

// NewUserID validates and normalizes a user id.
func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return UserID{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	return UserID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id UserID) String() string {
	return id.value
}

// IsZero reports whether the id was never set.
func (id UserID) IsZero() bool {
	return id.value == ""
}

// NewActionKind validates and normalizes an action kind.
func NewActionKind(raw string) (ActionKind, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ActionKind{}, fmt.Errorf("%w: empty value", ErrInvalidActionKind)
	}
	if strings.Contains(trimmed, idempotencyKeyDelimiter) {
		return ActionKind{}, fmt.Errorf("%w: must not contain %q", ErrInvalidActionKind, idempotencyKeyDelimiter)
	}
	return ActionKind{value: trimmed}, nil
}

// String returns the normalized kind.
func (kind ActionKind) String() string {
	return kind.value
}

// NewTargetID validates and normalizes a target id.
func NewTargetID(raw string) (TargetID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TargetID{}, fmt.Errorf("%w: empty value", ErrInvalidTargetID)
	}
	return TargetID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id TargetID) String() string {
	return id.value
}

// NewDiscountID validates a discount id. Rule tables normalize ids further.
func NewDiscountID(raw string) (DiscountID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DiscountID{}, fmt.Errorf("%w: empty value", ErrInvalidDiscountID)
	}
	return DiscountID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id DiscountID) String() string {
	return id.value
}

// CalendarDate is a day without time of day, formatted as 2006-01-02.
type CalendarDate struct {
	value string
}

// NewCalendarDate parses a 2006-01-02 date string.
func NewCalendarDate(raw string) (CalendarDate, error) {
	trimmed := strings.TrimSpace(raw)
	if _, err := time.ParseInLocation(calendarDateLayout, trimmed, time.UTC); err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidCalendarDate, raw)
	}
	return CalendarDate{value: trimmed}, nil
}

// CalendarDateAt returns the calendar day of a unix timestamp in location.
func CalendarDateAt(unixUTC int64, location *time.Location) CalendarDate {
	if location == nil {
		location = time.UTC
	}
	return CalendarDate{value: time.Unix(unixUTC, 0).In(location).Format(calendarDateLayout)}
}

// String returns the 2006-01-02 form, or "" for the zero date.
func (date CalendarDate) String() string {
	return date.value
}

// IsZero reports whether the date was never set.
func (date CalendarDate) IsZero() bool {
	return date.value == ""
}

// AddDays returns the date shifted by days.
func (date CalendarDate) AddDays(days int) CalendarDate {
	if date.IsZero() {
		return date
	}
	return CalendarDate{value: date.midnight().AddDate(0, 0, days).Format(calendarDateLayout)}
}

// DaysUntil returns the number of whole days from date to later. Zero dates yield 0.
func (date CalendarDate) DaysUntil(later CalendarDate) int {
	if date.IsZero() || later.IsZero() {
		return 0
	}
	return int(later.midnight().Sub(date.midnight()) / (24 * time.Hour))
}

func (date CalendarDate) midnight() time.Time {
	parsed, _ := time.ParseInLocation(calendarDateLayout, date.value, time.UTC)
	return parsed
}

// DailyUsage holds points credited per kind on a single day. Any date other than
// the stored one reads as zero usage, so no cleanup job is needed.
type DailyUsage struct {
	Date   CalendarDate
	Points map[ActionKind]Points
}

// UsedOn returns the points already credited for kind on date.
func (usage DailyUsage) UsedOn(date CalendarDate, kind ActionKind) Points {
	if usage.Date != date || usage.Points == nil {
		return 0
	}
	return usage.Points[kind]
}

// WithCredit returns a copy of usage with delta added to kind for date.
func (usage DailyUsage) WithCredit(date CalendarDate, kind ActionKind, delta Points) DailyUsage {
	updated := DailyUsage{Date: date, Points: make(map[ActionKind]Points)}
	if usage.Date == date {
		for existingKind, value := range usage.Points {
			updated.Points[existingKind] = value
		}
	}
	updated.Points[kind] += delta
	return updated
}

func (usage DailyUsage) clone() DailyUsage {
	copied := DailyUsage{Date: usage.Date}
	if usage.Points != nil {
		copied.Points = make(map[ActionKind]Points, len(usage.Points))
		for kind, value := range usage.Points {
			copied.Points[kind] = value
		}
	}
	return copied
}

// DiscountSet is the set of discounts a user has already redeemed.
type DiscountSet map[DiscountID]struct{}

// NewDiscountSet builds a set from ids.
func NewDiscountSet(ids ...DiscountID) DiscountSet {
	set := make(DiscountSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set.
func (set DiscountSet) Contains(id DiscountID) bool {
	_, ok := set[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (set DiscountSet) Sorted() []DiscountID {
	ids := make([]DiscountID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(left, right int) bool { return ids[left].value < ids[right].value })
	return ids
}

func (set DiscountSet) clone() DiscountSet {
	copied := make(DiscountSet, len(set))
	for id := range set {
		copied[id] = struct{}{}
	}
	return copied
}

// AggregateRecord is the mutable per-user summary. Only Service mutates it.
type AggregateRecord struct {
	UserID            UserID
	TotalEarned       Points
	AvailablePoints   Points
	CanPost           bool
	StreakDays        int64
	LastCheckinDate   CalendarDate
	LastActiveDate    CalendarDate
	IsFrozen          bool
	DailyUsage        DailyUsage
	RedeemedDiscounts DiscountSet
}

// NewAggregateRecord returns the first-use record for userID created on day.
func NewAggregateRecord(userID UserID, day CalendarDate) AggregateRecord {
	return AggregateRecord{
		UserID:            userID,
		LastActiveDate:    day,
		DailyUsage:        DailyUsage{Points: map[ActionKind]Points{}},
		RedeemedDiscounts: DiscountSet{},
	}
}

// Clone returns a deep copy so callers cannot mutate shared maps.
func (record AggregateRecord) Clone() AggregateRecord {
	copied := record
	copied.DailyUsage = record.DailyUsage.clone()
	copied.RedeemedDiscounts = record.RedeemedDiscounts.clone()
	return copied
}

// LedgerEntry is a single immutable award line.
type LedgerEntry struct {
	entryID        string
	userID         UserID
	kind           ActionKind
	delta          Points
	targetID       *TargetID
	idempotencyKey string
	createdUnixUTC int64
}

// NewLedgerEntry validates a ledger line. entryID may be empty for entries not yet stored.
func NewLedgerEntry(entryID string, userID UserID, kind ActionKind, delta Points, targetID *TargetID, idempotencyKey string, createdUnixUTC int64) (LedgerEntry, error) {
	if userID.IsZero() {
		return LedgerEntry{}, fmt.Errorf("%w: empty value", ErrInvalidUserID)
	}
	if kind.value == "" {
		return LedgerEntry{}, fmt.Errorf("%w: empty value", ErrInvalidActionKind)
	}
	if delta == 0 {
		return LedgerEntry{}, fmt.Errorf("%w: ledger delta must not be zero", ErrInvalidPoints)
	}
	var target *TargetID
	if targetID != nil {
		if targetID.value == "" {
			return LedgerEntry{}, fmt.Errorf("%w: empty value", ErrInvalidTargetID)
		}
		copied := *targetID
		target = &copied
	}
	return LedgerEntry{
		entryID:        strings.TrimSpace(entryID),
		userID:         userID,
		kind:           kind,
		delta:          delta,
		targetID:       target,
		idempotencyKey: strings.TrimSpace(idempotencyKey),
		createdUnixUTC: createdUnixUTC,
	}, nil
}

// EntryID returns the stored id, empty before insertion.
func (entry LedgerEntry) EntryID() string {
	return entry.entryID
}

// UserID returns the owner.
func (entry LedgerEntry) UserID() UserID {
	return entry.userID
}

// ActionKind returns the rewarded kind.
func (entry LedgerEntry) ActionKind() ActionKind {
	return entry.kind
}

// Delta returns the points actually applied.
func (entry LedgerEntry) Delta() Points {
	return entry.delta
}

// TargetID returns the target when the award had one.
func (entry LedgerEntry) TargetID() (TargetID, bool) {
	if entry.targetID == nil {
		return TargetID{}, false
	}
	return *entry.targetID, true
}

// IdempotencyKey returns the duplicate-detection key of target-scoped entries.
func (entry LedgerEntry) IdempotencyKey() (string, bool) {
	if entry.idempotencyKey == "" {
		return "", false
	}
	return entry.idempotencyKey, true
}

// CreatedUnixUTC returns the creation time.
func (entry LedgerEntry) CreatedUnixUTC() int64 {
	return entry.createdUnixUTC
}

// IdempotencyKeyFor derives the duplicate-detection key for a target-scoped award.
func IdempotencyKeyFor(kind ActionKind, target TargetID) string {
	return kind.value + idempotencyKeyDelimiter + target.value
}

// RejectionReason explains why an award credited nothing.
type RejectionReason string

const (
	ReasonNone             RejectionReason = ""
	ReasonFrozen           RejectionReason = "frozen"
	ReasonDuplicate        RejectionReason = "duplicate"
	ReasonAlreadyCheckedIn RejectionReason = "already checked in today"
	ReasonZombie           RejectionReason = "zombie"
	ReasonDailyLimit       RejectionReason = "daily limit reached"
	ReasonAlreadyRedeemed  RejectionReason = "already redeemed"
)

// String returns the reason text.
func (reason RejectionReason) String() string {
	return string(reason)
}

// AwardResult is the outcome of a single Award call.
type AwardResult struct {
	Credited bool
	Delta    Points
	Reason   RejectionReason
}

// CheckinResult surfaces the streak and zombie outcome of a check-in.
type CheckinResult struct {
	Success      bool
	PointsEarned Points
	StreakDays   int64
	WasZombie    bool
	Reason       RejectionReason
}

// Posting-eligibility reasons.
const (
	PostReasonFrozen             = "frozen"
	PostReasonInsufficientPoints = "insufficient points"
)

// PostEligibility answers whether a user may create posts.
type PostEligibility struct {
	Allowed bool
	Current Points
	Needed  Points
	Reason  string
}
