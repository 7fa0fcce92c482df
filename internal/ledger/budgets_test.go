package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func TestBudgetsAddComputesSpentImmediately(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)

	// Spending recorded before the budget exists.
	app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 120000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 2),
		WalletID: wallet.ID, CategoryID: food.ID,
	})

	budget := app.Budgets.Add(ctx, AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR", Month: time.March, Year: 2025, Amount: 500000,
	})
	assert.InDelta(t, 120000, budget.Spent, 1e-9)
}

func TestBudgetsSpentTracksLedgerMutations(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)
	transport := app.Categories.Add(ctx, "Transport", model.CategoryTypeExpense, false)

	budget := app.Budgets.Add(ctx, AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR", Month: time.March, Year: 2025, Amount: 500000,
	})

	spent := func() float64 {
		got, ok := app.Budgets.Get(budget.ID)
		require.True(t, ok)
		return got.Spent
	}

	tx := app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 100000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 3),
		WalletID: wallet.ID, CategoryID: food.ID,
	})
	assert.InDelta(t, 100000, spent(), 1e-9)

	t.Run("amount edit refreshes spent", func(t *testing.T) {
		app.Transactions.Update(ctx, tx.ID, UpdateTransactionInput{Amount: ptr(80000.0)})
		assert.InDelta(t, 80000, spent(), 1e-9)
	})

	t.Run("recategorizing refreshes the old category", func(t *testing.T) {
		app.Transactions.Update(ctx, tx.ID, UpdateTransactionInput{CategoryID: &transport.ID})
		assert.InDelta(t, 0, spent(), 1e-9)
		app.Transactions.Update(ctx, tx.ID, UpdateTransactionInput{CategoryID: &food.ID})
		assert.InDelta(t, 80000, spent(), 1e-9)
	})

	t.Run("delete refreshes spent", func(t *testing.T) {
		app.Transactions.Delete(ctx, tx.ID)
		assert.InDelta(t, 0, spent(), 1e-9)
	})
}

func TestBudgetsSpentIsOrderIndependent(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)
	budget := app.Budgets.Add(ctx, AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR", Month: time.March, Year: 2025, Amount: 500000,
	})

	// Interleave adds, edits and deletes; the final spent must equal a full
	// recompute over the surviving transactions, whatever the order was.
	a := app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 10000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 1),
		WalletID: wallet.ID, CategoryID: food.ID,
	})
	b := app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 20000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 2),
		WalletID: wallet.ID, CategoryID: food.ID,
	})
	app.Transactions.Update(ctx, a.ID, UpdateTransactionInput{Amount: ptr(15000.0)})
	app.Transactions.Delete(ctx, b.ID)
	app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 40000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 20),
		WalletID: wallet.ID, CategoryID: food.ID,
	})

	got, ok := app.Budgets.Get(budget.ID)
	require.True(t, ok)
	want := app.Transactions.SumExpenses(food.ID, "IDR", time.March, 2025)
	assert.InDelta(t, want, got.Spent, 1e-9)
	assert.InDelta(t, 55000, got.Spent, 1e-9)
}

func TestBudgetsRecalculateOnlySelectedPeriod(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)

	february := app.Budgets.Add(ctx, AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR", Month: time.February, Year: 2025, Amount: 300000,
	})

	// Selected period is March (the clock's month); a February-dated expense
	// leaves the February budget's cached spent stale.
	app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 50000, Type: model.TransactionTypeExpense, Date: date(2025, time.February, 10),
		WalletID: wallet.ID, CategoryID: food.ID,
	})
	got, ok := app.Budgets.Get(february.ID)
	require.True(t, ok)
	assert.InDelta(t, 0, got.Spent, 1e-9)

	// Selecting February and touching the category catches it up.
	app.Budgets.SelectPeriod(time.February, 2025)
	app.Budgets.RecalculateSpent(ctx, food.ID)
	got, ok = app.Budgets.Get(february.ID)
	require.True(t, ok)
	assert.InDelta(t, 50000, got.Spent, 1e-9)
}

func TestBudgetsUpdateChangesOnlyTheCap(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)
	app.Transactions.Add(ctx, AddTransactionInput{
		Amount: 100000, Type: model.TransactionTypeExpense, Date: date(2025, time.March, 1),
		WalletID: wallet.ID, CategoryID: food.ID,
	})

	budget := app.Budgets.Add(ctx, AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR", Month: time.March, Year: 2025, Amount: 500000,
	})
	app.Budgets.Update(ctx, budget.ID, 900000)

	got, ok := app.Budgets.Get(budget.ID)
	require.True(t, ok)
	assert.InDelta(t, 900000, got.Amount, 1e-9)
	assert.InDelta(t, 100000, got.Spent, 1e-9)
}

func TestBudgetsForPeriod(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	food := app.Categories.Add(ctx, "Food", model.CategoryTypeExpense, false)
	app.Budgets.Add(ctx, AddBudgetInput{CategoryID: food.ID, Currency: "IDR", Month: time.March, Year: 2025, Amount: 1})
	app.Budgets.Add(ctx, AddBudgetInput{CategoryID: food.ID, Currency: "IDR", Month: time.April, Year: 2025, Amount: 2})

	assert.Len(t, app.Budgets.ForPeriod(time.March, 2025), 1)
	assert.Len(t, app.Budgets.ForPeriod(time.April, 2025), 1)
	assert.Empty(t, app.Budgets.ForPeriod(time.May, 2025))

	app.Budgets.SelectPeriod(time.April, 2025)
	month, year := app.Budgets.SelectedPeriod()
	assert.Equal(t, time.April, month)
	assert.Equal(t, 2025, year)
}
