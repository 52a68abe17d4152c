package sorts

import (
	"fmt"
)

// RangeError reports a subrange that does not fit inside the sequence it was
// given. It is returned by the range-based entry points instead of reading or
// writing out of bounds.
type RangeError struct {
	// Low and High are the inclusive bounds that were requested
	Low, High int
	// Length is the length of the sequence the bounds were applied to
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d] out of bounds for sequence of length %d", e.Low, e.High, e.Length)
}

// NewRangeError creates a RangeError
func NewRangeError(low, high, length int) error {
	return &RangeError{Low: low, High: high, Length: length}
}

// ComparisonError represents a panic recovered from a caller-provided
// comparison function during a sort.
type ComparisonError struct {
	// Cause is the original panic value raised by the comparator
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// NewNilInputError creates an error for a required argument that was nil
func NewNilInputError(name string) error {
	return fmt.Errorf("required argument %s is nil", name)
}
