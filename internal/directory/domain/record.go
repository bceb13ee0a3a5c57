package domain

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name plus its phone numbers. Phones keep
// insertion order and are unique by normalized value. The name is fixed at
// construction; phones can be added, edited and removed afterwards.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord validates name and creates a Record with no phones.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name field.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates raw and appends it to the record. Adding a number the
// record already holds (same normalized value) is a silent no-op, so the
// operation is idempotent.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	if _, ok := r.indexOf(phone.Value()); ok {
		return nil
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the phone matching raw's normalized value,
// preserving the relative order of the remaining phones.
func (r *Record) RemovePhone(raw string) error {
	i, ok := r.indexOf(NormalizePhone(raw))
	if !ok {
		return fmt.Errorf("%w: phone %q", ErrNotFound, raw)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the phone matching oldRaw with newRaw, keeping its
// position in the list. The replacement is validated before the list is
// touched; an invalid newRaw leaves the record unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	i, ok := r.indexOf(NormalizePhone(oldRaw))
	if !ok {
		return fmt.Errorf("%w: phone %q", ErrNotFound, oldRaw)
	}
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = phone
	return nil
}

// FindPhone looks a phone up by raw's normalized value. Absence is a
// normal outcome, reported through the second return value.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	if i, ok := r.indexOf(NormalizePhone(raw)); ok {
		return r.phones[i], true
	}
	return Phone{}, false
}

func (r *Record) indexOf(normalized string) (int, bool) {
	for i, p := range r.phones {
		if p.Value() == normalized {
			return i, true
		}
	}
	return 0, false
}

// String renders the contact for display, e.g.
// "Contact name: John, phones: 1112223333; 5555555555".
func (r *Record) String() string {
	phones := "(no phones)"
	if len(r.phones) > 0 {
		values := make([]string, len(r.phones))
		for i, p := range r.phones {
			values[i] = p.Value()
		}
		phones = strings.Join(values, "; ")
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name.Value(), phones)
}
