package model

import "time"

// WalletType identifies the kind of account a wallet represents.
type WalletType string

const (
	// WalletTypeEWallet represents electronic wallets (GoPay, OVO, PayPal...).
	WalletTypeEWallet WalletType = "EWALLET"
	// WalletTypeBank represents bank accounts.
	WalletTypeBank WalletType = "BANK"
	// WalletTypeCash represents physical cash.
	WalletTypeCash WalletType = "CASH"
)

// Wallet represents a source of funds with a running balance.
//
// Wallets are soft-deleted (IsActive=false) rather than removed so that
// historical transactions always resolve to a wallet. The balance is a
// running total mutated only through the ledger's paired apply/reverse
// effects, never assigned directly by callers.
type Wallet struct {
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Currency  string     `json:"currency"` // ISO 4217 code, fixed for the wallet's lifetime
	Type      WalletType `json:"type"`
	Balance   float64    `json:"balance"`
	IsActive  bool       `json:"isActive"`
}
