package ledger

import (
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

// transferFields holds the destination-side fields resolved for a transfer.
type transferFields struct {
	toAmount   *float64
	toCurrency string
}

// resolveTransferFields computes the destination currency and amount for a
// transaction. Non-transfers carry no destination fields. For transfers
// between wallets of the same currency the amount carries over unchanged and
// toAmount stays nil; when the currencies differ, the caller-supplied
// destination amount is trusted as-is. No exchange-rate math happens here:
// the rate is implicit in the pair (amount, toAmount) the user entered.
func resolveTransferFields(wallets *Wallets, txType model.TransactionType, walletID, toWalletID string, toAmount *float64) transferFields {
	if txType != model.TransactionTypeTransfer {
		return transferFields{}
	}

	sourceCurrency := wallets.Currency(walletID)
	destCurrency := wallets.Currency(toWalletID)
	if destCurrency == "" {
		return transferFields{}
	}
	if sourceCurrency == destCurrency {
		return transferFields{toCurrency: destCurrency}
	}
	return transferFields{toCurrency: destCurrency, toAmount: toAmount}
}

// applyTransactionEffect applies a transaction's balance effect to the
// wallet registry: income credits the wallet, expense debits it, transfer
// debits the source and credits the destination with the frozen
// destination-side amount.
func applyTransactionEffect(wallets *Wallets, tx *model.Transaction) {
	switch tx.Type {
	case model.TransactionTypeIncome:
		wallets.applyDelta(tx.WalletID, tx.Amount)
	case model.TransactionTypeExpense:
		wallets.applyDelta(tx.WalletID, -tx.Amount)
	case model.TransactionTypeTransfer:
		wallets.applyDelta(tx.WalletID, -tx.Amount)
		wallets.applyDelta(tx.ToWalletID, tx.DestinationAmount())
	}
}

// reverseTransactionEffect undoes applyTransactionEffect exactly. It must be
// called with the same frozen transaction fields that were used at apply
// time, never values recomputed from live wallet state, so that
// reverse(apply(S)) == S for the balances regardless of what happened in
// between.
func reverseTransactionEffect(wallets *Wallets, tx *model.Transaction) {
	switch tx.Type {
	case model.TransactionTypeIncome:
		wallets.applyDelta(tx.WalletID, -tx.Amount)
	case model.TransactionTypeExpense:
		wallets.applyDelta(tx.WalletID, tx.Amount)
	case model.TransactionTypeTransfer:
		wallets.applyDelta(tx.WalletID, tx.Amount)
		wallets.applyDelta(tx.ToWalletID, -tx.DestinationAmount())
	}
}
