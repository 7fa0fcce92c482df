package model

import "time"

// BudgetHealth classifies how close a budget is to its cap.
type BudgetHealth string

const (
	// BudgetHealthSafe means spending is comfortably under the cap.
	BudgetHealthSafe BudgetHealth = "safe"
	// BudgetHealthWarning means spending reached 70% of the cap.
	BudgetHealthWarning BudgetHealth = "warning"
	// BudgetHealthDanger means spending reached 90% of the cap.
	BudgetHealthDanger BudgetHealth = "danger"
)

// Budget caps expense spending for one category in one calendar month.
//
// Spent is a cached derived value, never a source of truth: it is recomputed
// by summing matching expense transactions and is only guaranteed fresh for
// the currently selected period (see ledger.Budgets).
type Budget struct {
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	ID         string     `json:"id"`
	CategoryID string     `json:"categoryId"`
	Currency   string     `json:"currency"`
	Month      time.Month `json:"month"`
	Year       int        `json:"year"`
	Amount     float64    `json:"amount"` // the cap
	Spent      float64    `json:"spent"`  // derived
}

// Health returns the budget's spending classification. A non-positive cap
// has no meaningful ratio and is treated as safe.
func (b *Budget) Health() BudgetHealth {
	if b.Amount <= 0 {
		return BudgetHealthSafe
	}
	ratio := b.Spent / b.Amount
	switch {
	case ratio >= 0.9:
		return BudgetHealthDanger
	case ratio >= 0.7:
		return BudgetHealthWarning
	default:
		return BudgetHealthSafe
	}
}
