package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionType identifies how a transaction affects wallet balances.
type TransactionType string

const (
	// TransactionTypeIncome adds the amount to the wallet.
	TransactionTypeIncome TransactionType = "INCOME"
	// TransactionTypeExpense subtracts the amount from the wallet.
	TransactionTypeExpense TransactionType = "EXPENSE"
	// TransactionTypeTransfer moves funds between two wallets.
	TransactionTypeTransfer TransactionType = "TRANSFER"
)

// Transaction represents a single ledger entry.
//
// A transaction's effect on wallet balances must be reconstructable from its
// own fields alone (Type, Amount, WalletID, ToWalletID, ToAmount). That is
// what makes exact reversal possible on update and delete without an
// external log, so ToAmount and ToCurrency are frozen at creation time and
// never recomputed from live wallet state.
type Transaction struct {
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	ToAmount    *float64        `json:"toAmount,omitempty"` // destination-side amount, cross-currency transfers only
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
	ToCurrency  string          `json:"toCurrency,omitempty"` // empty unless cross-currency transfer
	WalletID    string          `json:"walletId"`
	CategoryID  string          `json:"categoryId,omitempty"` // empty for transfers
	ToWalletID  string          `json:"toWalletId,omitempty"` // empty unless transfer
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
}

// DestinationAmount returns the amount credited to the destination wallet of
// a transfer: the explicit ToAmount for cross-currency transfers, otherwise
// the source amount unchanged.
func (t *Transaction) DestinationAmount() float64 {
	if t.ToAmount != nil {
		return *t.ToAmount
	}
	return t.Amount
}

// InPeriod reports whether the transaction date falls in the given month and
// year.
func (t *Transaction) InPeriod(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}

// GenerateHash creates a stable fingerprint for duplicate detection during
// statement imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Type,
		t.Description,
		t.WalletID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
