package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// Ledger-generated helper categories. They are looked up by (name, type) and
// created on first use.
const (
	categoryDebtReceived        = "Debt Received"
	categoryReceivableGiven     = "Receivable Given"
	categoryDebtPayment         = "Debt Payment"
	categoryReceivableCollected = "Receivable Collected"
)

// categoryResolver is the slice of the category registry the debt ledger
// needs for its helper categories.
type categoryResolver interface {
	GetOrCreate(ctx context.Context, name string, categoryType model.CategoryType) model.Category
}

// Debts owns debts and receivables. Money movements are mirrored into the
// transaction ledger; the debt record itself only accumulates the paid
// amount and derives its status from it.
type Debts struct {
	kv           service.KV
	clock        service.Clock
	ids          service.IDGenerator
	transactions transactionCreator
	categories   categoryResolver
	debts        []model.Debt
}

// NewDebts creates an empty debt ledger.
func NewDebts(kv service.KV, clock service.Clock, ids service.IDGenerator, transactions transactionCreator, categories categoryResolver) *Debts {
	return &Debts{kv: kv, clock: clock, ids: ids, transactions: transactions, categories: categories}
}

// Load rehydrates the debt collection from storage.
func (d *Debts) Load(ctx context.Context) error {
	return loadCollection(ctx, d.kv, service.KeyDebts, &d.debts)
}

func (d *Debts) reset() {
	d.debts = nil
}

func (d *Debts) persist(ctx context.Context) {
	persistCollection(ctx, d.kv, service.KeyDebts, d.debts)
}

// AddDebtInput holds the fields for creating a debt or receivable.
type AddDebtInput struct {
	DueDate                  *time.Time
	PersonName               string
	Description              string
	Currency                 string
	WalletID                 string
	Type                     model.DebtType
	Amount                   float64
	CreateInitialTransaction bool
}

// Add creates a debt. When CreateInitialTransaction is set, the money that
// changed hands at creation is mirrored into the ledger: received debt money
// is income, a receivable given out is an expense. The entry's id is linked
// so the debt's transaction history stays traceable.
func (d *Debts) Add(ctx context.Context, input AddDebtInput) model.Debt {
	now := d.clock.Now()
	debt := model.Debt{
		ID:                   d.ids.NewID(),
		Type:                 input.Type,
		PersonName:           input.PersonName,
		Description:          input.Description,
		Amount:               input.Amount,
		Currency:             input.Currency,
		DueDate:              input.DueDate,
		WalletID:             input.WalletID,
		LinkedTransactionIDs: []string{},
		Status:               model.DeriveDebtStatus(0, input.Amount, input.DueDate, now),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if input.CreateInitialTransaction {
		txType := model.TransactionTypeIncome
		categoryName := categoryDebtReceived
		categoryType := model.CategoryTypeIncome
		if input.Type == model.DebtTypeReceivable {
			txType = model.TransactionTypeExpense
			categoryName = categoryReceivableGiven
			categoryType = model.CategoryTypeExpense
		}
		category := d.categories.GetOrCreate(ctx, categoryName, categoryType)

		tx := d.transactions.Add(ctx, AddTransactionInput{
			Amount:      input.Amount,
			Type:        txType,
			Date:        now,
			Description: categoryName + ": " + input.PersonName,
			WalletID:    input.WalletID,
			CategoryID:  category.ID,
		})
		debt.LinkedTransactionIDs = append(debt.LinkedTransactionIDs, tx.ID)
	}

	d.debts = append(d.debts, debt)
	d.persist(ctx)

	slog.Info("created debt",
		"id", debt.ID,
		"type", debt.Type,
		"person", debt.PersonName,
		"amount", debt.Amount)
	return debt
}

// PaymentInput holds the fields for recording a payment against a debt.
type PaymentInput struct {
	Date        time.Time
	Description string
	Amount      float64
}

// MakePayment records a payment: paying down a debt is an expense, money
// collected on a receivable is income. The ledger entry's id is appended to
// the debt and the status re-derived. Unknown ids are a silent no-op. The
// payment amount is not capped against the remaining balance here; that
// constraint belongs to the input layer.
func (d *Debts) MakePayment(ctx context.Context, debtID string, input PaymentInput) {
	debt := d.find(debtID)
	if debt == nil {
		return
	}

	txType := model.TransactionTypeExpense
	categoryName := categoryDebtPayment
	categoryType := model.CategoryTypeExpense
	if debt.Type == model.DebtTypeReceivable {
		txType = model.TransactionTypeIncome
		categoryName = categoryReceivableCollected
		categoryType = model.CategoryTypeIncome
	}
	category := d.categories.GetOrCreate(ctx, categoryName, categoryType)

	description := input.Description
	if description == "" {
		description = categoryName + ": " + debt.PersonName
	}
	tx := d.transactions.Add(ctx, AddTransactionInput{
		Amount:      input.Amount,
		Type:        txType,
		Date:        input.Date,
		Description: description,
		WalletID:    debt.WalletID,
		CategoryID:  category.ID,
	})

	now := d.clock.Now()
	debt.LinkedTransactionIDs = append(debt.LinkedTransactionIDs, tx.ID)
	debt.PaidAmount += input.Amount
	debt.Status = model.DeriveDebtStatus(debt.PaidAmount, debt.Amount, debt.DueDate, now)
	debt.UpdatedAt = now
	d.persist(ctx)

	slog.Info("recorded debt payment",
		"debt", debtID,
		"amount", input.Amount,
		"paid_total", debt.PaidAmount,
		"status", debt.Status)
}

// MarkSettled writes a debt off: the paid amount is forced to the full
// amount and the status to settled. No reconciling ledger entry is created
// for the forgiven remainder. Unknown ids are a silent no-op.
func (d *Debts) MarkSettled(ctx context.Context, debtID string) {
	debt := d.find(debtID)
	if debt == nil {
		return
	}
	debt.PaidAmount = debt.Amount
	debt.Status = model.DebtStatusSettled
	debt.UpdatedAt = d.clock.Now()
	d.persist(ctx)

	slog.Info("settled debt", "id", debtID, "person", debt.PersonName)
}

// UpdateDebtInput holds the optional fields for a partial update.
type UpdateDebtInput struct {
	DueDate     *time.Time
	PersonName  *string
	Description *string
	Amount      *float64
}

// Update applies a partial update and re-derives the status. Unknown ids
// are a silent no-op.
func (d *Debts) Update(ctx context.Context, debtID string, input UpdateDebtInput) {
	debt := d.find(debtID)
	if debt == nil {
		return
	}
	if input.DueDate != nil {
		debt.DueDate = input.DueDate
	}
	if input.PersonName != nil {
		debt.PersonName = *input.PersonName
	}
	if input.Description != nil {
		debt.Description = *input.Description
	}
	if input.Amount != nil {
		debt.Amount = *input.Amount
	}
	now := d.clock.Now()
	debt.Status = model.DeriveDebtStatus(debt.PaidAmount, debt.Amount, debt.DueDate, now)
	debt.UpdatedAt = now
	d.persist(ctx)
}

// Delete removes the debt record only. Linked transactions stay in the
// ledger: their wallet effects are real money movements independent of the
// debt's bookkeeping, and reversing them here would double-undo balances.
func (d *Debts) Delete(ctx context.Context, debtID string) {
	for i := range d.debts {
		if d.debts[i].ID == debtID {
			d.debts = append(d.debts[:i], d.debts[i+1:]...)
			d.persist(ctx)
			return
		}
	}
}

// Get returns the debt with the given id.
func (d *Debts) Get(id string) (model.Debt, bool) {
	if debt := d.find(id); debt != nil {
		return *debt, true
	}
	return model.Debt{}, false
}

// List returns every debt, optionally restricted to one type.
func (d *Debts) List(debtType model.DebtType) []model.Debt {
	out := make([]model.Debt, 0, len(d.debts))
	for _, debt := range d.debts {
		if debtType != "" && debt.Type != debtType {
			continue
		}
		out = append(out, debt)
	}
	return out
}

func (d *Debts) find(id string) *model.Debt {
	for i := range d.debts {
		if d.debts[i].ID == id {
			return &d.debts[i]
		}
	}
	return nil
}
