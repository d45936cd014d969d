package engagement

import (
	"errors"
	"testing"
)

func TestOperationErrorFormatting(test *testing.T) {
	test.Parallel()
	wrapped := WrapError("store", "ledger", "insert", ErrDuplicateAward)
	if wrapped.Error() != "store.ledger.insert: duplicate award" {
		test.Fatalf("unexpected message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, ErrDuplicateAward) {
		test.Fatalf("expected wrapped sentinel")
	}
	var operationError OperationError
	if !errors.As(wrapped, &operationError) {
		test.Fatalf("expected OperationError")
	}
	if operationError.Operation() != "store" || operationError.Subject() != "ledger" || operationError.Code() != "insert" {
		test.Fatalf("unexpected segments %+v", operationError)
	}
}

func TestWrapErrorNil(test *testing.T) {
	test.Parallel()
	if WrapError("a", "b", "c", nil) != nil {
		test.Fatalf("expected nil for nil error")
	}
}
