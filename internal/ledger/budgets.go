package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// expenseSummer is the slice of the transaction ledger the budget tracker
// reads when recomputing spent totals.
type expenseSummer interface {
	SumExpenses(categoryID, currency string, month time.Month, year int) float64
}

// Budgets owns per-category monthly spending caps and their derived spent
// totals.
//
// Spent is only guaranteed fresh for the currently selected period:
// RecalculateSpent deliberately skips budgets for other months, which are
// recomputed lazily once the selection moves and a mutation touches their
// category. This staleness is an intentional trade against rescanning every
// period on every mutation.
type Budgets struct {
	kv            service.KV
	clock         service.Clock
	ids           service.IDGenerator
	transactions  expenseSummer
	budgets       []model.Budget
	selectedMonth time.Month
	selectedYear  int
}

// NewBudgets creates an empty budget tracker with the selected period
// initialized to the current month.
func NewBudgets(kv service.KV, clock service.Clock, ids service.IDGenerator, transactions expenseSummer) *Budgets {
	now := clock.Now()
	return &Budgets{
		kv:            kv,
		clock:         clock,
		ids:           ids,
		transactions:  transactions,
		selectedMonth: now.Month(),
		selectedYear:  now.Year(),
	}
}

// Load rehydrates the budget collection from storage.
func (b *Budgets) Load(ctx context.Context) error {
	return loadCollection(ctx, b.kv, service.KeyBudgets, &b.budgets)
}

func (b *Budgets) reset() {
	b.budgets = nil
	now := b.clock.Now()
	b.selectedMonth = now.Month()
	b.selectedYear = now.Year()
}

func (b *Budgets) persist(ctx context.Context) {
	persistCollection(ctx, b.kv, service.KeyBudgets, b.budgets)
}

// SelectPeriod changes the currently viewed month and year.
func (b *Budgets) SelectPeriod(month time.Month, year int) {
	b.selectedMonth = month
	b.selectedYear = year
}

// SelectedPeriod returns the currently viewed month and year.
func (b *Budgets) SelectedPeriod() (time.Month, int) {
	return b.selectedMonth, b.selectedYear
}

// AddBudgetInput holds the fields for creating a budget.
type AddBudgetInput struct {
	CategoryID string
	Currency   string
	Month      time.Month
	Year       int
	Amount     float64 // the cap
}

// Add creates a budget and immediately recomputes its spent total so that
// transactions recorded before the budget existed are reflected right away.
func (b *Budgets) Add(ctx context.Context, input AddBudgetInput) model.Budget {
	now := b.clock.Now()
	budget := model.Budget{
		ID:         b.ids.NewID(),
		CategoryID: input.CategoryID,
		Currency:   input.Currency,
		Month:      input.Month,
		Year:       input.Year,
		Amount:     input.Amount,
		Spent:      b.transactions.SumExpenses(input.CategoryID, input.Currency, input.Month, input.Year),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	b.budgets = append(b.budgets, budget)
	b.persist(ctx)

	slog.Info("created budget",
		"id", budget.ID,
		"category", budget.CategoryID,
		"month", budget.Month,
		"year", budget.Year,
		"amount", budget.Amount)
	return budget
}

// Update changes only the cap; the spent total is untouched.
func (b *Budgets) Update(ctx context.Context, id string, amount float64) {
	for i := range b.budgets {
		if b.budgets[i].ID == id {
			b.budgets[i].Amount = amount
			b.budgets[i].UpdatedAt = b.clock.Now()
			b.persist(ctx)
			return
		}
	}
}

// Delete removes a budget. Unknown ids are a silent no-op.
func (b *Budgets) Delete(ctx context.Context, id string) {
	for i := range b.budgets {
		if b.budgets[i].ID == id {
			b.budgets = append(b.budgets[:i], b.budgets[i+1:]...)
			b.persist(ctx)
			return
		}
	}
}

// RecalculateSpent recomputes the spent total of every budget for the given
// category in the currently selected period, by summing the matching
// expense transactions. Budgets for other periods are left alone.
func (b *Budgets) RecalculateSpent(ctx context.Context, categoryID string) {
	changed := false
	for i := range b.budgets {
		budget := &b.budgets[i]
		if budget.CategoryID != categoryID {
			continue
		}
		if budget.Month != b.selectedMonth || budget.Year != b.selectedYear {
			continue
		}
		spent := b.transactions.SumExpenses(budget.CategoryID, budget.Currency, budget.Month, budget.Year)
		if spent != budget.Spent {
			budget.Spent = spent
			budget.UpdatedAt = b.clock.Now()
			changed = true
		}
	}
	if changed {
		b.persist(ctx)
	}
}

// Get returns the budget with the given id.
func (b *Budgets) Get(id string) (model.Budget, bool) {
	for _, budget := range b.budgets {
		if budget.ID == id {
			return budget, true
		}
	}
	return model.Budget{}, false
}

// List returns every budget.
func (b *Budgets) List() []model.Budget {
	out := make([]model.Budget, len(b.budgets))
	copy(out, b.budgets)
	return out
}

// ForPeriod returns the budgets for one month.
func (b *Budgets) ForPeriod(month time.Month, year int) []model.Budget {
	var out []model.Budget
	for _, budget := range b.budgets {
		if budget.Month == month && budget.Year == year {
			out = append(out, budget)
		}
	}
	return out
}
