package column

import "fmt"

// TypeMismatchError reports a failed conversion between a type-erased
// column or value and a concrete type. It is returned, never panicked, so
// callers can inspect both tags with errors.As.
type TypeMismatchError struct {
	Expected PhysicalType
	Actual   PhysicalType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}
