package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func TestRecurringProcessCatchesUp(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "BCA", Currency: "IDR", Type: model.WalletTypeBank, Balance: 0})

	// Monthly salary that started three months ago.
	def := app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 5000000, Currency: "IDR", Type: model.TransactionTypeIncome,
		WalletID: wallet.ID, Description: "Salary",
		Frequency: model.FrequencyMonthly, Interval: 1,
		StartDate: date(2025, time.January, 1),
	})

	result := app.Recurring.Process(ctx)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 3, result.Created) // Jan 1, Feb 1, Mar 1
	require.Len(t, result.Details, 1)
	assert.Equal(t, def.ID, result.Details[0].ID)

	txs := app.Transactions.All()
	require.Len(t, txs, 3)
	assert.InDelta(t, 15000000, balanceOf(t, app, wallet.ID), 1e-9)

	got, ok := app.Recurring.Get(def.ID)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.April, 1), got.NextRunDate)
	require.NotNil(t, got.LastRunDate)

	t.Run("second run creates nothing new", func(t *testing.T) {
		again := app.Recurring.Process(ctx)
		assert.Equal(t, 0, again.Created)
		assert.Len(t, app.Transactions.All(), 3)
	})
}

func TestRecurringProcessSameDayStartRunsOnce(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})
	app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 100, Currency: "IDR", Type: model.TransactionTypeIncome,
		WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
		StartDate: date(2025, time.March, 10), // midnight today, after the clock reading
	})

	result := app.Recurring.Process(ctx)
	assert.Equal(t, 1, result.Created)
}

func TestRecurringProcessCapsPerRun(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})

	// A daily definition 150 days overdue cannot catch up in one call.
	app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
		StartDate: clock.now.AddDate(0, 0, -150),
	})

	first := app.Recurring.Process(ctx)
	assert.Equal(t, 100, first.Created)

	second := app.Recurring.Process(ctx)
	assert.Equal(t, 51, second.Created) // days -50..0 inclusive

	third := app.Recurring.Process(ctx)
	assert.Equal(t, 0, third.Created)
	assert.Len(t, app.Transactions.All(), 151)
}

func TestRecurringProcessHonorsEndDate(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})

	t.Run("ended definitions are skipped entirely", func(t *testing.T) {
		app.Recurring.Add(ctx, AddRecurringInput{
			Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
			WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
			StartDate: date(2025, time.January, 1),
			EndDate:   ptr(date(2025, time.February, 1)),
		})
		result := app.Recurring.Process(ctx)
		assert.Equal(t, 0, result.Created)
	})

	t.Run("no occurrence beyond the end date", func(t *testing.T) {
		def := app.Recurring.Add(ctx, AddRecurringInput{
			Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
			WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
			StartDate: date(2025, time.March, 8),
			EndDate:   ptr(date(2025, time.March, 12)),
		})
		result := app.Recurring.Process(ctx)
		assert.Equal(t, 3, result.Created) // Mar 8, 9, 10

		got, ok := app.Recurring.Get(def.ID)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.March, 11), got.NextRunDate)
	})
}

func TestRecurringInactiveSkipped(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})
	def := app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
		StartDate: date(2025, time.March, 8),
	})

	app.Recurring.ToggleActive(ctx, def.ID)
	result := app.Recurring.Process(ctx)
	assert.Equal(t, 0, result.Created)

	// Pausing never moves the scheduler position; resuming catches up.
	got, _ := app.Recurring.Get(def.ID)
	assert.Equal(t, date(2025, time.March, 8), got.NextRunDate)

	app.Recurring.ToggleActive(ctx, def.ID)
	result = app.Recurring.Process(ctx)
	assert.Equal(t, 3, result.Created)
}

func TestRecurringUpdateStartDateResetsSchedule(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})
	def := app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: wallet.ID, Frequency: model.FrequencyMonthly, Interval: 1,
		StartDate: date(2025, time.January, 1),
	})
	app.Recurring.Process(ctx)

	t.Run("editing the amount keeps the position", func(t *testing.T) {
		app.Recurring.Update(ctx, def.ID, UpdateRecurringInput{Amount: ptr(20.0)})
		got, _ := app.Recurring.Get(def.ID)
		assert.Equal(t, date(2025, time.April, 1), got.NextRunDate)
		assert.InDelta(t, 20, got.Amount, 1e-9)
	})

	t.Run("editing the start date resets the position", func(t *testing.T) {
		app.Recurring.Update(ctx, def.ID, UpdateRecurringInput{StartDate: ptr(date(2025, time.June, 15))})
		got, _ := app.Recurring.Get(def.ID)
		assert.Equal(t, date(2025, time.June, 15), got.NextRunDate)
	})

	t.Run("same start date is not a reset", func(t *testing.T) {
		app.Recurring.Update(ctx, def.ID, UpdateRecurringInput{
			StartDate:   ptr(date(2025, time.June, 15)),
			Description: ptr("rent"),
		})
		got, _ := app.Recurring.Get(def.ID)
		assert.Equal(t, date(2025, time.June, 15), got.NextRunDate)
		assert.Equal(t, "rent", got.Description)
	})
}

func TestRecurringIntervalClamped(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})
	def := app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 0,
		StartDate: date(2025, time.March, 10),
	})
	assert.Equal(t, 1, def.Interval)

	app.Recurring.Update(ctx, def.ID, UpdateRecurringInput{Interval: ptr(0)})
	got, _ := app.Recurring.Get(def.ID)
	assert.Equal(t, 1, got.Interval)
}

func TestRecurringDeleteKeepsMaterializedTransactions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 10)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 0})
	def := app.Recurring.Add(ctx, AddRecurringInput{
		Amount: 10, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: wallet.ID, Frequency: model.FrequencyDaily, Interval: 1,
		StartDate: date(2025, time.March, 9),
	})
	app.Recurring.Process(ctx)
	require.Len(t, app.Transactions.All(), 2)

	app.Recurring.Delete(ctx, def.ID)
	assert.Empty(t, app.Recurring.List())
	assert.Len(t, app.Transactions.All(), 2)
}
