package core

import "fmt"

// CheckCount validates a prefix length n for a slice of the given length.
// Returns ErrCountOutOfRange (wrapped with the offending values) when
// n < 0 or n > length.
func CheckCount(n, length int) error {
	if n < 0 || n > length {
		return fmt.Errorf("%w: n=%d, len=%d", ErrCountOutOfRange, n, length)
	}
	return nil
}

// CheckRange validates the inclusive range [first, last] against a slice of
// the given length.
//
//   - first > last           → empty=true, err=nil (no-op success).
//   - first < 0 or last >= length → *RangeError (unwraps to ErrIndexOutOfRange).
//   - otherwise              → empty=false, err=nil.
func CheckRange(first, last, length int) (empty bool, err error) {
	if first > last {
		return true, nil
	}
	if first < 0 || last >= length {
		return false, &RangeError{First: first, Last: last, Len: length}
	}
	return false, nil
}

// CheckCompare returns ErrNilCompare when cmp is nil.
func CheckCompare[T any](cmp func(a, b T) int) error {
	if cmp == nil {
		return ErrNilCompare
	}
	return nil
}
