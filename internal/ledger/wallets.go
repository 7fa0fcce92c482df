package ledger

import (
	"context"
	"log/slog"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// Wallets owns the wallet collection and is the only place balances change.
type Wallets struct {
	kv      service.KV
	clock   service.Clock
	ids     service.IDGenerator
	wallets []model.Wallet
}

// NewWallets creates an empty wallet registry.
func NewWallets(kv service.KV, clock service.Clock, ids service.IDGenerator) *Wallets {
	return &Wallets{kv: kv, clock: clock, ids: ids}
}

// Load rehydrates the wallet collection from storage.
func (w *Wallets) Load(ctx context.Context) error {
	return loadCollection(ctx, w.kv, service.KeyWallets, &w.wallets)
}

func (w *Wallets) reset() {
	w.wallets = nil
}

func (w *Wallets) persist(ctx context.Context) {
	persistCollection(ctx, w.kv, service.KeyWallets, w.wallets)
}

// AddWalletInput holds the fields for creating a wallet.
type AddWalletInput struct {
	Name     string
	Currency string
	Type     model.WalletType
	Balance  float64 // opening balance
}

// Add creates a new active wallet.
func (w *Wallets) Add(ctx context.Context, input AddWalletInput) model.Wallet {
	now := w.clock.Now()
	wallet := model.Wallet{
		ID:        w.ids.NewID(),
		Name:      input.Name,
		Currency:  input.Currency,
		Type:      input.Type,
		Balance:   input.Balance,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	w.wallets = append(w.wallets, wallet)
	w.persist(ctx)

	slog.Info("created wallet",
		"id", wallet.ID,
		"name", wallet.Name,
		"currency", wallet.Currency,
		"type", wallet.Type)
	return wallet
}

// UpdateWalletInput holds the optional fields for a partial wallet update.
// Nil fields are left unchanged. The currency is fixed for the wallet's
// lifetime and cannot be updated.
type UpdateWalletInput struct {
	Name *string
	Type *model.WalletType
}

// Update applies a partial update. Unknown ids are a silent no-op.
func (w *Wallets) Update(ctx context.Context, id string, input UpdateWalletInput) {
	wallet := w.find(id)
	if wallet == nil {
		return
	}
	if input.Name != nil {
		wallet.Name = *input.Name
	}
	if input.Type != nil {
		wallet.Type = *input.Type
	}
	wallet.UpdatedAt = w.clock.Now()
	w.persist(ctx)
}

// Deactivate soft-deletes a wallet so historical transactions keep
// resolving. Unknown ids are a silent no-op.
func (w *Wallets) Deactivate(ctx context.Context, id string) {
	wallet := w.find(id)
	if wallet == nil {
		return
	}
	wallet.IsActive = false
	wallet.UpdatedAt = w.clock.Now()
	w.persist(ctx)

	slog.Info("deactivated wallet", "id", id, "name", wallet.Name)
}

// Get returns the wallet with the given id.
func (w *Wallets) Get(id string) (model.Wallet, bool) {
	if wallet := w.find(id); wallet != nil {
		return *wallet, true
	}
	return model.Wallet{}, false
}

// Currency returns the wallet's currency, or "" for unknown wallets.
func (w *Wallets) Currency(id string) string {
	if wallet := w.find(id); wallet != nil {
		return wallet.Currency
	}
	return ""
}

// List returns the wallets, optionally including deactivated ones.
func (w *Wallets) List(includeInactive bool) []model.Wallet {
	out := make([]model.Wallet, 0, len(w.wallets))
	for _, wallet := range w.wallets {
		if !includeInactive && !wallet.IsActive {
			continue
		}
		out = append(out, wallet)
	}
	return out
}

// applyDelta adjusts a wallet's balance in memory. It is the single balance
// mutation primitive; the transaction ledger pairs every call with an exact
// inverse on reversal. Callers are responsible for persisting afterwards.
func (w *Wallets) applyDelta(id string, delta float64) {
	wallet := w.find(id)
	if wallet == nil {
		return
	}
	wallet.Balance += delta
	wallet.UpdatedAt = w.clock.Now()
}

func (w *Wallets) find(id string) *model.Wallet {
	for i := range w.wallets {
		if w.wallets[i].ID == id {
			return &w.wallets[i]
		}
	}
	return nil
}
