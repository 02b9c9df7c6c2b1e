package harness

import "fmt"

// MismatchError reports the first operation whose result differs from the oracle.
type MismatchError struct {
	Seed     int64
	Phase    string
	Index    int
	Key      int
	Expected bool
	Actual   bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s mismatch at index %d: key=%d expected=%t actual=%t (seed=%d)",
		e.Phase, e.Index, e.Key, e.Expected, e.Actual, e.Seed)
}

// SizeMismatchError reports diverging cardinalities at the end of a phase.
type SizeMismatchError struct {
	Seed     int64
	Phase    string
	Expected int
	Actual   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("%s size mismatch: expected=%d actual=%d (seed=%d)",
		e.Phase, e.Expected, e.Actual, e.Seed)
}
