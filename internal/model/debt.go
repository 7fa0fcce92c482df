package model

import "time"

// DebtType distinguishes money owed from money lent.
type DebtType string

const (
	// DebtTypeDebt means the user owes someone.
	DebtTypeDebt DebtType = "DEBT"
	// DebtTypeReceivable means someone owes the user.
	DebtTypeReceivable DebtType = "RECEIVABLE"
)

// DebtStatus is derived from the paid amount, total amount and due date.
type DebtStatus string

const (
	// DebtStatusActive means nothing has been paid and the debt is not due.
	DebtStatusActive DebtStatus = "ACTIVE"
	// DebtStatusPartiallyPaid means some but not all has been paid.
	DebtStatusPartiallyPaid DebtStatus = "PARTIALLY_PAID"
	// DebtStatusOverdue means the due date passed before full payment.
	DebtStatusOverdue DebtStatus = "OVERDUE"
	// DebtStatusSettled means the debt is fully paid or written off.
	DebtStatusSettled DebtStatus = "SETTLED"
)

// Debt tracks money owed to or by a person, reconciled against the
// transaction ledger.
//
// Status is never stored independently except through the explicit settle
// override, which forces PaidAmount = Amount. LinkedTransactionIDs grows
// monotonically: payments append, settling never removes.
type Debt struct {
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
	DueDate              *time.Time `json:"dueDate,omitempty"`
	ID                   string     `json:"id"`
	PersonName           string     `json:"personName"`
	Description          string     `json:"description"`
	Currency             string     `json:"currency"`
	WalletID             string     `json:"walletId"`
	LinkedTransactionIDs []string   `json:"linkedTransactionIds"`
	Type                 DebtType   `json:"type"`
	Status               DebtStatus `json:"status"`
	Amount               float64    `json:"amount"`     // total owed
	PaidAmount           float64    `json:"paidAmount"` // cumulative payments
}

// DeriveDebtStatus computes a debt's status. Settlement takes precedence
// over everything, and an overdue date takes precedence over partial
// payment.
func DeriveDebtStatus(paidAmount, amount float64, dueDate *time.Time, now time.Time) DebtStatus {
	switch {
	case paidAmount >= amount:
		return DebtStatusSettled
	case dueDate != nil && dueDate.Before(now):
		return DebtStatusOverdue
	case paidAmount > 0:
		return DebtStatusPartiallyPaid
	default:
		return DebtStatusActive
	}
}

// RemainingAmount returns how much is still unpaid, never below zero.
func (d *Debt) RemainingAmount() float64 {
	remaining := d.Amount - d.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}
