package frame

import (
	"fmt"
)

// FrameError carries the failed operation and the column it failed on so
// callers can report reconciliation problems precisely.
type FrameError struct {
	Op      string
	Column  string
	Message string
	Cause   error
}

func (e *FrameError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
}

func (e *FrameError) Unwrap() error {
	return e.Cause
}

func (e *FrameError) Is(target error) bool {
	if fe, ok := target.(*FrameError); ok {
		return e.Op == fe.Op && e.Column == fe.Column && e.Message == fe.Message
	}
	return false
}

// NewColumnNotFoundError creates an error for operations on non-existent columns.
func NewColumnNotFoundError(op, column string) *FrameError {
	return &FrameError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
	}
}

// NewLengthMismatchError creates an error for columns whose length does not
// match the frame's row count.
func NewLengthMismatchError(op, column string, want, got int) *FrameError {
	return &FrameError{
		Op:      op,
		Column:  column,
		Message: fmt.Sprintf("expected %d values, got %d", want, got),
	}
}

// NewUnsupportedTypeError creates an error for values no column codec handles.
func NewUnsupportedTypeError(op, typeName string) *FrameError {
	return &FrameError{
		Op:      op,
		Message: fmt.Sprintf("unsupported type: %s", typeName),
	}
}
