package domain

// RecordStore defines the interface the application layer uses to manage
// contact records. *AddressBook is the canonical in-memory implementation.
// Operations are synchronous and never block, so no context is threaded
// through.
type RecordStore interface {
	AddRecord(rec *Record)
	Find(name string) (*Record, bool)
	Delete(name string) error
	Range(fn func(name string, rec *Record) bool)
	Len() int
}
