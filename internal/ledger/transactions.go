package ledger

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// budgetRecalculator is the slice of the budget tracker the ledger drives
// after expense mutations.
type budgetRecalculator interface {
	RecalculateSpent(ctx context.Context, categoryID string)
}

// Transactions owns the ledger and is the single serialization point for
// every balance-affecting mutation: recurring materialization, debt
// payments and shopping purchases all funnel through Add/Update/Delete so
// that each applied wallet effect is paired with exactly one reversal.
type Transactions struct {
	kv           service.KV
	clock        service.Clock
	ids          service.IDGenerator
	wallets      *Wallets
	budgets      budgetRecalculator
	transactions []model.Transaction
	filter       service.TransactionFilter
}

// NewTransactions creates an empty transaction ledger. The budget tracker
// reference is bound later by the App container.
func NewTransactions(kv service.KV, clock service.Clock, ids service.IDGenerator, wallets *Wallets) *Transactions {
	return &Transactions{kv: kv, clock: clock, ids: ids, wallets: wallets}
}

func (t *Transactions) bindBudgets(budgets budgetRecalculator) {
	t.budgets = budgets
}

// Load rehydrates the transaction collection from storage.
func (t *Transactions) Load(ctx context.Context) error {
	return loadCollection(ctx, t.kv, service.KeyTransactions, &t.transactions)
}

func (t *Transactions) reset() {
	t.transactions = nil
	t.filter = service.TransactionFilter{}
}

func (t *Transactions) persist(ctx context.Context) {
	persistCollection(ctx, t.kv, service.KeyTransactions, t.transactions)
}

// AddTransactionInput holds the fields for creating a ledger entry. For
// transfers, CategoryID must be empty and ToWalletID set; ToAmount is only
// meaningful when the two wallets differ in currency.
type AddTransactionInput struct {
	Date        time.Time
	ToAmount    *float64
	Description string
	WalletID    string
	CategoryID  string
	ToWalletID  string
	Type        model.TransactionType
	Amount      float64
}

// Add appends a transaction to the ledger: it resolves the source currency
// and transfer fields from the wallet registry, applies the balance effect,
// persists, and triggers a budget recalculation for categorized expenses.
// The persisted transaction is returned so callers can link to its id.
func (t *Transactions) Add(ctx context.Context, input AddTransactionInput) model.Transaction {
	now := t.clock.Now()
	fields := resolveTransferFields(t.wallets, input.Type, input.WalletID, input.ToWalletID, input.ToAmount)

	tx := model.Transaction{
		ID:          t.ids.NewID(),
		Amount:      input.Amount,
		Currency:    t.wallets.Currency(input.WalletID),
		Type:        input.Type,
		Date:        input.Date,
		Description: input.Description,
		WalletID:    input.WalletID,
		CategoryID:  input.CategoryID,
		ToWalletID:  input.ToWalletID,
		ToAmount:    fields.toAmount,
		ToCurrency:  fields.toCurrency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if tx.Type == model.TransactionTypeTransfer {
		tx.CategoryID = ""
	}

	applyTransactionEffect(t.wallets, &tx)
	t.transactions = append(t.transactions, tx)
	t.persist(ctx)
	t.wallets.persist(ctx)
	t.recalculateFor(ctx, tx.Type, tx.CategoryID)

	slog.Debug("added transaction",
		"id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
		"wallet", tx.WalletID)
	return tx
}

// UpdateTransactionInput holds the optional fields for a partial update.
// Nil fields keep the old value. ToAmount, when nil on a cross-currency
// transfer, carries the old frozen destination amount forward.
type UpdateTransactionInput struct {
	Date        *time.Time
	ToAmount    *float64
	Description *string
	WalletID    *string
	CategoryID  *string
	ToWalletID  *string
	Type        *model.TransactionType
	Amount      *float64
}

// Update rewrites a transaction. The old entry's effect is reversed using
// its own frozen fields, the new transfer fields are resolved from current
// wallet state, the new effect is applied, and budgets are recalculated for
// both the old and the new category (amounts may have changed even when the
// category did not). Unknown ids are a silent no-op.
func (t *Transactions) Update(ctx context.Context, id string, input UpdateTransactionInput) {
	idx := t.indexOf(id)
	if idx < 0 {
		return
	}
	old := t.transactions[idx]

	merged := AddTransactionInput{
		Amount:      old.Amount,
		Type:        old.Type,
		Date:        old.Date,
		Description: old.Description,
		WalletID:    old.WalletID,
		CategoryID:  old.CategoryID,
		ToWalletID:  old.ToWalletID,
		ToAmount:    old.ToAmount,
	}
	if input.Amount != nil {
		merged.Amount = *input.Amount
	}
	if input.Type != nil {
		merged.Type = *input.Type
	}
	if input.Date != nil {
		merged.Date = *input.Date
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.WalletID != nil {
		merged.WalletID = *input.WalletID
	}
	if input.CategoryID != nil {
		merged.CategoryID = *input.CategoryID
	}
	if input.ToWalletID != nil {
		merged.ToWalletID = *input.ToWalletID
	}
	if input.ToAmount != nil {
		merged.ToAmount = input.ToAmount
	}

	reverseTransactionEffect(t.wallets, &old)

	fields := resolveTransferFields(t.wallets, merged.Type, merged.WalletID, merged.ToWalletID, merged.ToAmount)
	updated := model.Transaction{
		ID:          old.ID,
		Amount:      merged.Amount,
		Currency:    t.wallets.Currency(merged.WalletID),
		Type:        merged.Type,
		Date:        merged.Date,
		Description: merged.Description,
		WalletID:    merged.WalletID,
		CategoryID:  merged.CategoryID,
		ToWalletID:  merged.ToWalletID,
		ToAmount:    fields.toAmount,
		ToCurrency:  fields.toCurrency,
		CreatedAt:   old.CreatedAt,
		UpdatedAt:   t.clock.Now(),
	}
	if updated.Type == model.TransactionTypeTransfer {
		updated.CategoryID = ""
	}

	applyTransactionEffect(t.wallets, &updated)
	t.transactions[idx] = updated
	t.persist(ctx)
	t.wallets.persist(ctx)

	// Both periods may be affected even when the category is unchanged.
	t.recalculateFor(ctx, old.Type, old.CategoryID)
	t.recalculateFor(ctx, updated.Type, updated.CategoryID)

	slog.Debug("updated transaction", "id", id, "type", updated.Type, "amount", updated.Amount)
}

// Delete removes a transaction, reversing its balance effect with its own
// frozen fields. Unknown ids are a silent no-op.
func (t *Transactions) Delete(ctx context.Context, id string) {
	idx := t.indexOf(id)
	if idx < 0 {
		return
	}
	old := t.transactions[idx]

	reverseTransactionEffect(t.wallets, &old)
	t.transactions = append(t.transactions[:idx], t.transactions[idx+1:]...)
	t.persist(ctx)
	t.wallets.persist(ctx)
	t.recalculateFor(ctx, old.Type, old.CategoryID)

	slog.Debug("deleted transaction", "id", id, "type", old.Type, "amount", old.Amount)
}

func (t *Transactions) recalculateFor(ctx context.Context, txType model.TransactionType, categoryID string) {
	if t.budgets == nil {
		return
	}
	if txType == model.TransactionTypeExpense && categoryID != "" {
		t.budgets.RecalculateSpent(ctx, categoryID)
	}
}

// Get returns the transaction with the given id.
func (t *Transactions) Get(id string) (model.Transaction, bool) {
	if idx := t.indexOf(id); idx >= 0 {
		return t.transactions[idx], true
	}
	return model.Transaction{}, false
}

// All returns a copy of every transaction, unordered.
func (t *Transactions) All() []model.Transaction {
	out := make([]model.Transaction, len(t.transactions))
	copy(out, t.transactions)
	return out
}

// SetFilter replaces the filter state used by Filtered.
func (t *Transactions) SetFilter(filter service.TransactionFilter) {
	t.filter = filter
}

// ResetFilter clears the filter state.
func (t *Transactions) ResetFilter() {
	t.filter = service.TransactionFilter{}
}

// Filter returns the current filter state.
func (t *Transactions) Filter() service.TransactionFilter {
	return t.filter
}

// Filtered returns the transactions matching the current filter state,
// newest date first. Filtering and ordering are derived reads; nothing is
// stored sorted.
func (t *Transactions) Filtered() []model.Transaction {
	out := make([]model.Transaction, 0, len(t.transactions))
	for _, tx := range t.transactions {
		if t.matches(&tx) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func (t *Transactions) matches(tx *model.Transaction) bool {
	f := t.filter
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.WalletID != "" && tx.WalletID != f.WalletID && tx.ToWalletID != f.WalletID {
		return false
	}
	if f.CategoryID != "" && tx.CategoryID != f.CategoryID {
		return false
	}
	if f.StartDate != nil && tx.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && tx.Date.After(*f.EndDate) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// ReferencesCategory reports whether any transaction uses the category.
// The category registry consults this before allowing deletion.
func (t *Transactions) ReferencesCategory(categoryID string) bool {
	for i := range t.transactions {
		if t.transactions[i].CategoryID == categoryID {
			return true
		}
	}
	return false
}

// SumExpenses totals the expense transactions for a category in the given
// period and currency. The scan is always a full re-scan of the ledger, so
// out-of-order apply/reverse sequences converge to the same totals.
func (t *Transactions) SumExpenses(categoryID, currency string, month time.Month, year int) float64 {
	var total float64
	for i := range t.transactions {
		tx := &t.transactions[i]
		if tx.Type != model.TransactionTypeExpense {
			continue
		}
		if tx.CategoryID != categoryID || tx.Currency != currency {
			continue
		}
		if !tx.InPeriod(month, year) {
			continue
		}
		total += tx.Amount
	}
	return total
}

func (t *Transactions) indexOf(id string) int {
	for i := range t.transactions {
		if t.transactions[i].ID == id {
			return i
		}
	}
	return -1
}
