// Package service defines the boundary contracts the ledger core consumes.
package service

import (
	"context"
	"time"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

// Collection keys used by the snapshot store. Each top-level entity
// collection is persisted under its own key as a full-collection snapshot.
const (
	KeyWallets       = "wallets"
	KeyCategories    = "categories"
	KeyTransactions  = "transactions"
	KeyBudgets       = "budgets"
	KeyRecurring     = "recurring_transactions"
	KeyDebts         = "debts"
	KeyShoppingLists = "shopping_lists"
)

// CollectionKeys lists every collection key, in load order.
var CollectionKeys = []string{
	KeyWallets,
	KeyCategories,
	KeyTransactions,
	KeyBudgets,
	KeyRecurring,
	KeyDebts,
	KeyShoppingLists,
}

// KV is the persisted key-value store backing all collections. Values are
// opaque snapshots: callers read, modify and write a whole collection at a
// time, never individual rows.
type KV interface {
	// Get returns the stored value for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the value under key. Removing an absent key is not an
	// error.
	Remove(ctx context.Context, key string) error
	// ClearAll removes every stored key.
	ClearAll(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}

// Clock supplies the current time for timestamps, due-date comparisons and
// recurring catch-up.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces globally unique opaque ids, one per created entity.
type IDGenerator interface {
	NewID() string
}

// TransactionFilter defines the filter state for derived transaction reads.
// Zero values mean "no constraint" for their field.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       model.TransactionType
	WalletID   string
	CategoryID string
	Search     string // case-insensitive match on description
}

// IsZero reports whether the filter constrains nothing.
func (f TransactionFilter) IsZero() bool {
	return f.StartDate == nil && f.EndDate == nil &&
		f.Type == "" && f.WalletID == "" && f.CategoryID == "" && f.Search == ""
}
