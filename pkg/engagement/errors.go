package engagement

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the engagement service.
var (
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidActionKind     = errors.New("invalid action kind")
	ErrUnknownActionKind     = errors.New("unknown action kind")
	ErrInvalidTargetID       = errors.New("invalid target id")
	ErrMissingTargetID       = errors.New("missing target id")
	ErrInvalidDiscountID     = errors.New("invalid discount id")
	ErrUnknownDiscount       = errors.New("unknown discount")
	ErrDiscountNotEligible   = errors.New("discount not eligible")
	ErrAlreadyRedeemed       = errors.New("discount already redeemed")
	ErrDuplicateAward        = errors.New("duplicate award")
	ErrInvalidCalendarDate   = errors.New("invalid calendar date")
	ErrInvalidPoints         = errors.New("invalid points")
	ErrInvalidLimit          = errors.New("invalid limit")
	ErrInvalidRuleTable      = errors.New("invalid rule table")
	ErrInvalidServiceConfig  = errors.New("invalid service config")
	ErrInvariantViolation    = errors.New("invariant violation")
	ErrUnknownUser           = errors.New("unknown user")
	ErrInvalidAggregateState = errors.New("invalid aggregate state")
)

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
