package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/common"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/config"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/seed"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/storage"
)

// openApp opens the snapshot store, builds the store graph and rehydrates
// every collection. The returned cleanup closes the database.
func openApp(ctx context.Context) (*ledger.App, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDataPath()
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, nil, common.NewUserError(fmt.Sprintf("could not open database at %s", dbPath), err)
	}

	app := ledger.NewApp(kv, ledger.SystemClock{}, ledger.UUIDGenerator{})
	if err := app.Load(ctx); err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	seed.EnsureDefaults(ctx, app)

	cleanup := func() { _ = kv.Close() }
	return app, cleanup, nil
}

// parseDate accepts YYYY-MM-DD dates from flags; an empty string means now.
func parseDate(value string, clock ledger.SystemClock) (time.Time, error) {
	if value == "" {
		return clock.Now(), nil
	}
	date, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}

// parseMonthYear accepts a YYYY-MM period from flags; empty means the
// current month.
func parseMonthYear(value string) (time.Month, int, error) {
	if value == "" {
		now := time.Now()
		return now.Month(), now.Year(), nil
	}
	period, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid period %q (want YYYY-MM): %w", value, err)
	}
	return period.Month(), period.Year(), nil
}

// parseAmount converts a positional amount argument.
func parseAmount(value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", value, err)
	}
	return amount, nil
}

// optionalString returns a pointer for non-empty flag values.
func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// optionalFloat returns a pointer when the flag was actually set.
func optionalFloat(value float64, changed bool) *float64 {
	if !changed {
		return nil
	}
	return &value
}
