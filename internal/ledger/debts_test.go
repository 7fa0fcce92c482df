package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func TestDebtsAddWithInitialTransaction(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 100000})

	t.Run("borrowed money is income", func(t *testing.T) {
		debt := app.Debts.Add(ctx, AddDebtInput{
			Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 500000,
			Currency: "IDR", WalletID: wallet.ID, CreateInitialTransaction: true,
		})
		require.Len(t, debt.LinkedTransactionIDs, 1)

		tx, ok := app.Transactions.Get(debt.LinkedTransactionIDs[0])
		require.True(t, ok)
		assert.Equal(t, model.TransactionTypeIncome, tx.Type)
		assert.Equal(t, "Debt Received: Andi", tx.Description)
		assert.InDelta(t, 600000, balanceOf(t, app, wallet.ID), 1e-9)

		category, ok := app.Categories.Get(tx.CategoryID)
		require.True(t, ok)
		assert.Equal(t, "Debt Received", category.Name)
	})

	t.Run("money lent out is an expense", func(t *testing.T) {
		debt := app.Debts.Add(ctx, AddDebtInput{
			Type: model.DebtTypeReceivable, PersonName: "Budi", Amount: 200000,
			Currency: "IDR", WalletID: wallet.ID, CreateInitialTransaction: true,
		})
		require.Len(t, debt.LinkedTransactionIDs, 1)

		tx, ok := app.Transactions.Get(debt.LinkedTransactionIDs[0])
		require.True(t, ok)
		assert.Equal(t, model.TransactionTypeExpense, tx.Type)
		assert.InDelta(t, 400000, balanceOf(t, app, wallet.ID), 1e-9)
	})

	t.Run("without the flag no ledger entry is created", func(t *testing.T) {
		before := len(app.Transactions.All())
		debt := app.Debts.Add(ctx, AddDebtInput{
			Type: model.DebtTypeDebt, PersonName: "Citra", Amount: 100000,
			Currency: "IDR", WalletID: wallet.ID,
		})
		assert.Empty(t, debt.LinkedTransactionIDs)
		assert.Len(t, app.Transactions.All(), before)
	})
}

func TestDebtsMakePayment(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	debt := app.Debts.Add(ctx, AddDebtInput{
		Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 500000,
		Currency: "IDR", WalletID: wallet.ID,
	})

	app.Debts.MakePayment(ctx, debt.ID, PaymentInput{Amount: 200000, Date: clock.now})

	got, ok := app.Debts.Get(debt.ID)
	require.True(t, ok)
	assert.InDelta(t, 200000, got.PaidAmount, 1e-9)
	assert.Equal(t, model.DebtStatusPartiallyPaid, got.Status)
	require.Len(t, got.LinkedTransactionIDs, 1)

	tx, ok := app.Transactions.Get(got.LinkedTransactionIDs[0])
	require.True(t, ok)
	assert.Equal(t, model.TransactionTypeExpense, tx.Type)
	assert.Equal(t, "Debt Payment: Andi", tx.Description)
	assert.InDelta(t, 800000, balanceOf(t, app, wallet.ID), 1e-9)

	t.Run("full payment settles", func(t *testing.T) {
		app.Debts.MakePayment(ctx, debt.ID, PaymentInput{Amount: 300000, Date: clock.now})
		got, _ := app.Debts.Get(debt.ID)
		assert.Equal(t, model.DebtStatusSettled, got.Status)
		assert.InDelta(t, 0, got.RemainingAmount(), 1e-9)
		assert.Len(t, got.LinkedTransactionIDs, 2)
	})
}

func TestDebtsReceivablePaymentIsIncome(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 100000})
	debt := app.Debts.Add(ctx, AddDebtInput{
		Type: model.DebtTypeReceivable, PersonName: "Budi", Amount: 300000,
		Currency: "IDR", WalletID: wallet.ID,
	})

	app.Debts.MakePayment(ctx, debt.ID, PaymentInput{Amount: 100000, Date: clock.now, Description: "first installment"})

	got, _ := app.Debts.Get(debt.ID)
	require.Len(t, got.LinkedTransactionIDs, 1)
	tx, ok := app.Transactions.Get(got.LinkedTransactionIDs[0])
	require.True(t, ok)
	assert.Equal(t, model.TransactionTypeIncome, tx.Type)
	assert.Equal(t, "first installment", tx.Description)
	assert.InDelta(t, 200000, balanceOf(t, app, wallet.ID), 1e-9)
}

func TestDebtsMarkSettled(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 100000})
	debt := app.Debts.Add(ctx, AddDebtInput{
		Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 500000,
		Currency: "IDR", WalletID: wallet.ID,
	})
	app.Debts.MakePayment(ctx, debt.ID, PaymentInput{Amount: 100000, Date: clock.now})
	before := len(app.Transactions.All())

	app.Debts.MarkSettled(ctx, debt.ID)

	got, _ := app.Debts.Get(debt.ID)
	assert.Equal(t, model.DebtStatusSettled, got.Status)
	assert.InDelta(t, got.Amount, got.PaidAmount, 1e-9)
	// Writing off the remainder creates no reconciling ledger entry.
	assert.Len(t, app.Transactions.All(), before)
}

func TestDebtsUpdateRederivesStatus(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 100000})
	debt := app.Debts.Add(ctx, AddDebtInput{
		Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 500000,
		Currency: "IDR", WalletID: wallet.ID,
	})
	assert.Equal(t, model.DebtStatusActive, debt.Status)

	app.Debts.Update(ctx, debt.ID, UpdateDebtInput{DueDate: ptr(date(2025, time.February, 1))})
	got, _ := app.Debts.Get(debt.ID)
	assert.Equal(t, model.DebtStatusOverdue, got.Status)
}

func TestDebtsDeleteKeepsLinkedTransactions(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 1000000})
	debt := app.Debts.Add(ctx, AddDebtInput{
		Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 500000,
		Currency: "IDR", WalletID: wallet.ID, CreateInitialTransaction: true,
	})
	app.Debts.MakePayment(ctx, debt.ID, PaymentInput{Amount: 100000, Date: clock.now})
	balanceBefore := balanceOf(t, app, wallet.ID)

	app.Debts.Delete(ctx, debt.ID)

	_, ok := app.Debts.Get(debt.ID)
	assert.False(t, ok)
	assert.Len(t, app.Transactions.All(), 2)
	assert.InDelta(t, balanceBefore, balanceOf(t, app, wallet.ID), 1e-9)
}

func TestDebtsList(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash})
	app.Debts.Add(ctx, AddDebtInput{Type: model.DebtTypeDebt, PersonName: "Andi", Amount: 1, Currency: "IDR", WalletID: wallet.ID})
	app.Debts.Add(ctx, AddDebtInput{Type: model.DebtTypeReceivable, PersonName: "Budi", Amount: 2, Currency: "IDR", WalletID: wallet.ID})

	assert.Len(t, app.Debts.List(""), 2)
	assert.Len(t, app.Debts.List(model.DebtTypeDebt), 1)
	assert.Len(t, app.Debts.List(model.DebtTypeReceivable), 1)
}
