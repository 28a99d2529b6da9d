package rollcall

import (
	"fmt"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/ledger"
)

// ValidationKind identifies which input rule a submission broke.
type ValidationKind string

const (
	KindEmptyInput   ValidationKind = "empty-input"
	KindNonNumeric   ValidationKind = "non-numeric"
	KindDuplicate    ValidationKind = "duplicate"
	KindOverlap      ValidationKind = "overlap"
	KindInvalidTotal ValidationKind = "invalid-total"
)

// ValidationError represents rejected absent/OD input. No ledger change is made.
type ValidationError struct {
	Kind ValidationKind
	// Detail is the offending token, list name or comma-joined rolls.
	Detail string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "Please enter at least one absent or OD roll number"
	case KindNonNumeric:
		return fmt.Sprintf("Roll number %q must be numeric", e.Detail)
	case KindDuplicate:
		return fmt.Sprintf("Duplicate roll numbers in %s list", e.Detail)
	case KindOverlap:
		return fmt.Sprintf("Roll number(s) %s cannot be both Absent and OD", e.Detail)
	case KindInvalidTotal:
		return fmt.Sprintf("Total students must be a positive number, got %s", e.Detail)
	}
	return fmt.Sprintf("invalid input (%s): %s", e.Kind, e.Detail)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(kind ValidationKind, detail string) *ValidationError {
	return &ValidationError{Kind: kind, Detail: detail}
}

// DateFormatError reports a submission date that is not DD.MM.YYYY.
type DateFormatError = ledger.DateFormatError

// LedgerIOError represents a failure reading or writing the ledger file.
type LedgerIOError = ledger.IOError
