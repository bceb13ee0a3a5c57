package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a record or phone targeted by a mutation
	// does not exist. Lookups never return it; absence there is reported
	// through a boolean instead.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation indicates that input failed a field invariant.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a name is empty after trimming whitespace.
	ErrEmptyName = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	// ErrPhoneDigits is returned when a phone does not normalize to exactly
	// ten decimal digits.
	ErrPhoneDigits = fmt.Errorf("%w: phone must contain exactly 10 digits", ErrValidation)
)
