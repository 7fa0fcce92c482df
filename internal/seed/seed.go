// Package seed loads the demo fixture set used by the "try demo" entry
// point. It is not part of the core's runtime behavior.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/ledger"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

// DefaultCategories are seeded into every demo data set and whenever a fresh
// database is initialized.
var DefaultCategories = []struct {
	Name string
	Type model.CategoryType
}{
	{"Salary", model.CategoryTypeIncome},
	{"Bonus", model.CategoryTypeIncome},
	{"Other Income", model.CategoryTypeIncome},
	{"Food & Drinks", model.CategoryTypeExpense},
	{"Groceries", model.CategoryTypeExpense},
	{"Transportation", model.CategoryTypeExpense},
	{"Bills & Utilities", model.CategoryTypeExpense},
	{"Shopping", model.CategoryTypeExpense},
	{"Health", model.CategoryTypeExpense},
	{"Entertainment", model.CategoryTypeExpense},
}

// EnsureDefaults creates any missing default category. It is idempotent.
func EnsureDefaults(ctx context.Context, app *ledger.App) {
	for _, c := range DefaultCategories {
		app.Categories.GetOrCreate(ctx, c.Name, c.Type)
	}
}

// Demo wipes all collections and replaces them with the demo fixture set.
// Entities are created through the stores so wallet balances and budget
// totals come out consistent by construction.
func Demo(ctx context.Context, app *ledger.App) error {
	if err := app.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset before seeding: %w", err)
	}
	EnsureDefaults(ctx, app)

	cash := app.Wallets.Add(ctx, ledger.AddWalletInput{
		Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 500000,
	})
	bank := app.Wallets.Add(ctx, ledger.AddWalletInput{
		Name: "BCA Checking", Currency: "IDR", Type: model.WalletTypeBank, Balance: 12500000,
	})
	gopay := app.Wallets.Add(ctx, ledger.AddWalletInput{
		Name: "GoPay", Currency: "IDR", Type: model.WalletTypeEWallet, Balance: 150000,
	})
	usd := app.Wallets.Add(ctx, ledger.AddWalletInput{
		Name: "USD Savings", Currency: "USD", Type: model.WalletTypeBank, Balance: 1200,
	})

	salary := app.Categories.GetOrCreate(ctx, "Salary", model.CategoryTypeIncome)
	food := app.Categories.GetOrCreate(ctx, "Food & Drinks", model.CategoryTypeExpense)
	groceries := app.Categories.GetOrCreate(ctx, "Groceries", model.CategoryTypeExpense)
	transport := app.Categories.GetOrCreate(ctx, "Transportation", model.CategoryTypeExpense)
	bills := app.Categories.GetOrCreate(ctx, "Bills & Utilities", model.CategoryTypeExpense)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 15000000, Type: model.TransactionTypeIncome,
		Date: monthStart, Description: "Monthly salary",
		WalletID: bank.ID, CategoryID: salary.ID,
	})
	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 85000, Type: model.TransactionTypeExpense,
		Date: monthStart.AddDate(0, 0, 2), Description: "Lunch with team",
		WalletID: gopay.ID, CategoryID: food.ID,
	})
	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 450000, Type: model.TransactionTypeExpense,
		Date: monthStart.AddDate(0, 0, 3), Description: "Weekly groceries",
		WalletID: bank.ID, CategoryID: groceries.ID,
	})
	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 50000, Type: model.TransactionTypeExpense,
		Date: monthStart.AddDate(0, 0, 4), Description: "Fuel",
		WalletID: cash.ID, CategoryID: transport.ID,
	})
	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 1000000, Type: model.TransactionTypeTransfer,
		Date: monthStart.AddDate(0, 0, 5), Description: "Top up GoPay",
		WalletID: bank.ID, ToWalletID: gopay.ID,
	})
	toIDR := 1050000.0
	app.Transactions.Add(ctx, ledger.AddTransactionInput{
		Amount: 65, Type: model.TransactionTypeTransfer,
		Date: monthStart.AddDate(0, 0, 6), Description: "Move savings home",
		WalletID: usd.ID, ToWalletID: bank.ID, ToAmount: &toIDR,
	})

	app.Budgets.Add(ctx, ledger.AddBudgetInput{
		CategoryID: food.ID, Currency: "IDR",
		Month: now.Month(), Year: now.Year(), Amount: 2000000,
	})
	app.Budgets.Add(ctx, ledger.AddBudgetInput{
		CategoryID: groceries.ID, Currency: "IDR",
		Month: now.Month(), Year: now.Year(), Amount: 2500000,
	})

	app.Recurring.Add(ctx, ledger.AddRecurringInput{
		Amount: 350000, Currency: "IDR", Type: model.TransactionTypeExpense,
		WalletID: bank.ID, CategoryID: bills.ID,
		Frequency: model.FrequencyMonthly, Interval: 1,
		StartDate:   monthStart.AddDate(0, 1, 9),
		Description: "Internet subscription",
	})

	due := now.AddDate(0, 2, 0)
	app.Debts.Add(ctx, ledger.AddDebtInput{
		Type: model.DebtTypeReceivable, PersonName: "Andi",
		Amount: 750000, Currency: "IDR", DueDate: &due,
		WalletID: cash.ID, Description: "Lent for concert tickets",
	})

	list := app.Shopping.AddList(ctx, "Weekend market run", cash.ID)
	app.Shopping.AddItem(ctx, list.ID, ledger.AddItemInput{
		Name: "Rice 5kg", CategoryID: groceries.ID, Quantity: 1, EstimatedPrice: 70000,
	})
	app.Shopping.AddItem(ctx, list.ID, ledger.AddItemInput{
		Name: "Eggs", CategoryID: groceries.ID, Quantity: 2, EstimatedPrice: 30000,
	})

	slog.Info("seeded demo data",
		"wallets", 4,
		"transactions", len(app.Transactions.All()),
		"budgets", 2)
	return nil
}
