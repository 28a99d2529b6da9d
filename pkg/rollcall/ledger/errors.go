package ledger

import (
	"errors"
	"fmt"
)

// ErrLedgerNotFound indicates the ledger file does not exist.
var ErrLedgerNotFound = errors.New("ledger file not found")

// ErrMalformedLedger indicates the ledger header lacks the NAME or TOTAL column.
var ErrMalformedLedger = errors.New("malformed ledger")

// DateFormatError reports a submission date that is not DD.MM.YYYY.
type DateFormatError struct {
	Input string
	Err   error
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected DD.MM.YYYY", e.Input)
}

func (e *DateFormatError) Unwrap() error {
	return e.Err
}

// IOError represents a failure reading or writing the ledger file.
type IOError struct {
	Path string
	Op   string // "read", "write"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(path, op string, err error) *IOError {
	return &IOError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}
