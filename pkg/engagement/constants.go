package engagement

const (
	operationAward   = "award"
	operationCheckin = "checkin"
	operationRedeem  = "redeem"
	operationFreeze  = "freeze"

	operationStatusOK       = "ok"
	operationStatusRejected = "rejected"
	operationStatusError    = "error"

	errorOperationService   = "service"
	errorSubjectAggregate   = "aggregate"
	errorSubjectRules       = "rules"
	errorCodeNegative       = "negative_available"
	errorCodeExceedsTotal   = "available_exceeds_total"
	errorCodeTotalDecreased = "total_decreased"
	errorCodeCapExceeded    = "daily_cap_exceeded"

	idempotencyKeyDelimiter = ":"
	calendarDateLayout      = "2006-01-02"
	secondsPerDay           = 24 * 60 * 60
	userLockShards          = 64

	tracerName = "github.com/MarkoPoloResearchLab/engagement/pkg/engagement"
)
