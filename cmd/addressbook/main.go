package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	// Platform packages
	"github.com/goaddr/addressbook/internal/platform/config"
	"github.com/goaddr/addressbook/internal/platform/logger"

	// Directory packages
	"github.com/goaddr/addressbook/internal/directory/app"
	"github.com/goaddr/addressbook/internal/directory/domain"
)

const serviceName = "addressbook"

func main() {
	ctx := context.Background()

	// Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "service", serviceName, "error", err)
		os.Exit(1)
	}

	// Initialize Logger
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	appLogger = appLogger.With("service", serviceName)
	appLogger.Info("Configuration loaded", "log_level", cfg.LogLevel, "log_format", cfg.LogFormat)

	// Wire the directory application over an in-memory book.
	directory := app.NewApplication(domain.NewAddressBook(), appLogger)

	if err := run(ctx, directory); err != nil {
		appLogger.Error("Demo flow failed", "error", err)
		os.Exit(1)
	}
}

// run walks the directory through a small demo flow: two contacts, a phone
// edit, a phone lookup and a record deletion.
func run(ctx context.Context, directory *app.Application) error {
	if _, err := directory.AddRecord(ctx, "John", "123-456-7890", "(555) 555-5555"); err != nil {
		return err
	}
	if _, err := directory.AddRecord(ctx, "Jane", "9876543210"); err != nil {
		return err
	}

	for _, rec := range directory.ListRecords(ctx) {
		fmt.Println(rec)
	}

	if err := directory.EditPhone(ctx, "John", "1234567890", "111-222-3333"); err != nil {
		return err
	}
	john, ok := directory.GetRecord(ctx, "John")
	if !ok {
		return fmt.Errorf("%w: record %q", domain.ErrNotFound, "John")
	}
	fmt.Println(john) // Contact name: John, phones: 1112223333; 5555555555

	phone, found, err := directory.FindPhone(ctx, "John", "555-555-5555")
	if err != nil {
		return err
	}
	if found {
		fmt.Printf("%s: %s\n", john.Name(), phone)
	}

	return directory.DeleteRecord(ctx, "Jane")
}
