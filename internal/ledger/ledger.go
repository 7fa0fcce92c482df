// Package ledger implements the transaction/balance/budget/recurring
// consistency core: domain stores that keep wallet balances, budget spent
// aggregates, scheduled recurring transactions, debts and shopping lists
// synchronized as transactions are created, edited, deleted or generated.
//
// All stores are assembled once by App with explicit dependency injection;
// there is no package-level mutable state. Every balance-affecting mutation
// funnels through the Transactions store, which pairs each applied effect
// with an exact reversal on update and delete. Collections live in memory
// after Load and are written back to the key-value store as whole snapshots
// after each mutation; persistence failures are logged and swallowed, the
// in-memory state stays authoritative for the session.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/common"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// SystemClock implements service.Clock with the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// UUIDGenerator implements service.IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new globally unique id.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// App wires the domain stores together. Construct it once at startup, call
// Load to rehydrate every collection, then use the stores directly.
type App struct {
	Wallets      *Wallets
	Categories   *Categories
	Transactions *Transactions
	Budgets      *Budgets
	Recurring    *Recurring
	Debts        *Debts
	Shopping     *Shopping

	kv service.KV
}

// NewApp constructs the store graph on top of the given boundary
// collaborators and binds every cross-store reference.
func NewApp(kv service.KV, clock service.Clock, ids service.IDGenerator) *App {
	wallets := NewWallets(kv, clock, ids)
	categories := NewCategories(kv, clock, ids)
	transactions := NewTransactions(kv, clock, ids, wallets)
	budgets := NewBudgets(kv, clock, ids, transactions)
	recurring := NewRecurring(kv, clock, ids, transactions)
	debts := NewDebts(kv, clock, ids, transactions, categories)
	shopping := NewShopping(kv, clock, ids, transactions, wallets)

	// The ledger drives budget recalculation, and the category registry
	// checks the ledger before allowing deletion. Both references are bound
	// here rather than at construction to keep the dependency graph acyclic.
	transactions.bindBudgets(budgets)
	categories.bindTransactions(transactions)

	return &App{
		Wallets:      wallets,
		Categories:   categories,
		Transactions: transactions,
		Budgets:      budgets,
		Recurring:    recurring,
		Debts:        debts,
		Shopping:     shopping,
		kv:           kv,
	}
}

// Load rehydrates every collection from the key-value store. It is the one
// read against persistence; all later mutations are in-memory with
// best-effort write-back.
func (a *App) Load(ctx context.Context) error {
	if err := a.Wallets.Load(ctx); err != nil {
		return fmt.Errorf("failed to load wallets: %w", err)
	}
	if err := a.Categories.Load(ctx); err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if err := a.Transactions.Load(ctx); err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	if err := a.Budgets.Load(ctx); err != nil {
		return fmt.Errorf("failed to load budgets: %w", err)
	}
	if err := a.Recurring.Load(ctx); err != nil {
		return fmt.Errorf("failed to load recurring transactions: %w", err)
	}
	if err := a.Debts.Load(ctx); err != nil {
		return fmt.Errorf("failed to load debts: %w", err)
	}
	if err := a.Shopping.Load(ctx); err != nil {
		return fmt.Errorf("failed to load shopping lists: %w", err)
	}
	return nil
}

// Reset wipes every persisted collection and the in-memory state.
func (a *App) Reset(ctx context.Context) error {
	if err := a.kv.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	a.Wallets.reset()
	a.Categories.reset()
	a.Transactions.reset()
	a.Budgets.reset()
	a.Recurring.reset()
	a.Debts.reset()
	a.Shopping.reset()
	slog.Info("cleared all collections")
	return nil
}

// loadCollection reads and decodes one collection snapshot. An absent key
// leaves dst untouched.
func loadCollection(ctx context.Context, kv service.KV, key string, dst any) error {
	data, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w: %w", key, common.ErrStorageCorrupted, err)
	}
	return nil
}

// persistCollection writes one collection snapshot back to storage.
// Failures are logged and swallowed: persistence is best effort and the
// in-memory state remains authoritative.
func persistCollection(ctx context.Context, kv service.KV, key string, src any) {
	data, err := json.Marshal(src)
	if err != nil {
		slog.Warn("failed to encode collection", "key", key, "error", err)
		return
	}
	if err := kv.Set(ctx, key, data); err != nil {
		slog.Warn("failed to persist collection", "key", key, "error", err)
	}
}
