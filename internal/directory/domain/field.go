package domain

import (
	"fmt"
	"strings"
)

// Field is the common read/display shape shared by a record's textual
// fields. Each implementation validates its own input at construction;
// a Field that exists always holds a valid value.
type Field interface {
	fmt.Stringer
	// Value returns the stored, validated value.
	Value() string
}

// Name is a contact's mandatory identifier. It is immutable once created.
type Name struct {
	value string
}

// NewName creates a Name from raw input. Leading and trailing whitespace
// is trimmed; the result must be non-empty.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: trimmed}, nil
}

// Value returns the trimmed name.
func (n Name) Value() string { return n.value }

func (n Name) String() string { return n.value }
