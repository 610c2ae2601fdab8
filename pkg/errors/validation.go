package errors

import "math"

// ValidateLength checks that v is a finite, non-negative length.
// The code is attached to the returned error so callers can tell a bad size
// from a bad ceiling.
func ValidateLength(code Code, name string, v float64) error {
	if math.IsNaN(v) {
		return New(code, "%s is NaN", name)
	}
	if math.IsInf(v, 0) {
		return New(code, "%s must be finite, got %v", name, v)
	}
	if v < 0 {
		return New(code, "%s must not be negative, got %v", name, v)
	}
	return nil
}

// ValidateRange checks that [top, bottom) is a well-formed, finite range on
// the block axis.
func ValidateRange(top, bottom float64) error {
	if err := ValidateLength(ErrCodeInvalidInput, "range top", top); err != nil {
		return err
	}
	if err := ValidateLength(ErrCodeInvalidInput, "range bottom", bottom); err != nil {
		return err
	}
	if top > bottom {
		return New(ErrCodeInvalidInput, "range top %v is below its bottom %v", top, bottom)
	}
	return nil
}

// ValidateFit checks that a float of the given inline size can fit in a
// containing block of the given inline size at all.
func ValidateFit(inline, containing float64) error {
	if inline > containing {
		return New(ErrCodeFloatTooWide, "float inline size %v exceeds containing block inline size %v", inline, containing)
	}
	return nil
}
