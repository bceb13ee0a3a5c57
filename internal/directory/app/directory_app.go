package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goaddr/addressbook/internal/directory/domain"
)

// Application provides an interface for contact directory operations. It
// owns no semantics of its own: validation and lookup rules live in the
// domain package, the Application adds store access and logging.
type Application struct {
	store  domain.RecordStore
	logger *slog.Logger
}

// NewApplication creates a new Application instance.
func NewApplication(store domain.RecordStore, logger *slog.Logger) *Application {
	return &Application{
		store:  store,
		logger: logger,
	}
}

// AddRecord builds a record for name with the given phones and stores it,
// replacing any record already kept under that name. Nothing is stored if
// the name or any phone fails validation.
func (a *Application) AddRecord(ctx context.Context, name string, phones ...string) (*domain.Record, error) {
	rec, err := domain.NewRecord(name)
	if err != nil {
		a.logger.WarnContext(ctx, "Rejected record name", "name", name, "error", err)
		return nil, err
	}
	for _, raw := range phones {
		if err := rec.AddPhone(raw); err != nil {
			a.logger.WarnContext(ctx, "Rejected phone for new record", "name", rec.Name().Value(), "phone", raw, "error", err)
			return nil, err
		}
	}
	a.store.AddRecord(rec)
	a.logger.InfoContext(ctx, "Record stored", "name", rec.Name().Value(), "phone_count", len(rec.Phones()))
	return rec, nil
}

// GetRecord looks a record up by its exact name. Absence is a normal
// outcome, not an error.
func (a *Application) GetRecord(ctx context.Context, name string) (*domain.Record, bool) {
	return a.store.Find(name)
}

// ListRecords returns every record in insertion order.
func (a *Application) ListRecords(ctx context.Context) []*domain.Record {
	records := make([]*domain.Record, 0, a.store.Len())
	a.store.Range(func(_ string, rec *domain.Record) bool {
		records = append(records, rec)
		return true
	})
	return records
}

// DeleteRecord removes the record stored under name.
func (a *Application) DeleteRecord(ctx context.Context, name string) error {
	if err := a.store.Delete(name); err != nil {
		a.logger.WarnContext(ctx, "Failed to delete record", "name", name, "error", err)
		return err
	}
	a.logger.InfoContext(ctx, "Record deleted", "name", name)
	return nil
}

// AddPhone adds a phone number to an existing record.
func (a *Application) AddPhone(ctx context.Context, name, phone string) error {
	rec, ok := a.store.Find(name)
	if !ok {
		return fmt.Errorf("%w: record %q", domain.ErrNotFound, name)
	}
	if err := rec.AddPhone(phone); err != nil {
		a.logger.WarnContext(ctx, "Rejected phone", "name", name, "phone", phone, "error", err)
		return err
	}
	a.logger.InfoContext(ctx, "Phone added", "name", name)
	return nil
}

// RemovePhone removes a phone number from an existing record.
func (a *Application) RemovePhone(ctx context.Context, name, phone string) error {
	rec, ok := a.store.Find(name)
	if !ok {
		return fmt.Errorf("%w: record %q", domain.ErrNotFound, name)
	}
	if err := rec.RemovePhone(phone); err != nil {
		a.logger.WarnContext(ctx, "Failed to remove phone", "name", name, "phone", phone, "error", err)
		return err
	}
	a.logger.InfoContext(ctx, "Phone removed", "name", name)
	return nil
}

// EditPhone replaces oldPhone with newPhone on an existing record.
func (a *Application) EditPhone(ctx context.Context, name, oldPhone, newPhone string) error {
	rec, ok := a.store.Find(name)
	if !ok {
		return fmt.Errorf("%w: record %q", domain.ErrNotFound, name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		a.logger.WarnContext(ctx, "Failed to edit phone", "name", name, "old_phone", oldPhone, "error", err)
		return err
	}
	a.logger.InfoContext(ctx, "Phone edited", "name", name)
	return nil
}

// FindPhone looks a phone up on an existing record. The record must exist;
// absence of the phone itself is reported through the boolean, not an
// error.
func (a *Application) FindPhone(ctx context.Context, name, phone string) (domain.Phone, bool, error) {
	rec, ok := a.store.Find(name)
	if !ok {
		return domain.Phone{}, false, fmt.Errorf("%w: record %q", domain.ErrNotFound, name)
	}
	found, ok := rec.FindPhone(phone)
	return found, ok, nil
}
