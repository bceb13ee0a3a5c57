package domain

import "fmt"

// AddressBook is the keyed collection of contact records. Keys are the
// records' name values; the underlying map is never exposed, so a key
// cannot drift from its record's name. Not safe for concurrent use:
// callers embedding the book in a concurrent program serialize access to
// it themselves.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

var _ RecordStore = (*AddressBook)(nil)

// NewAddressBook creates an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores rec keyed by its name, replacing any record already
// kept under that key. Replacement keeps the key's position in iteration
// order.
func (b *AddressBook) AddRecord(rec *Record) {
	key := rec.Name().Value()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find looks a record up by the literal name string. Phone lookups
// normalize their input; name lookups deliberately do not.
func (b *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := b.records[name]
	return rec, ok
}

// Delete removes the record stored under name.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("%w: record %q", ErrNotFound, name)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Range calls fn for each (name, record) pair in key insertion order,
// stopping early if fn returns false. Every call starts a fresh traversal.
// fn must not mutate the book.
func (b *AddressBook) Range(fn func(name string, rec *Record) bool) {
	for _, key := range b.order {
		if !fn(key, b.records[key]) {
			return
		}
	}
}

// Len reports the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }
