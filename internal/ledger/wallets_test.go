package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
)

func TestWalletsLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	wallet := app.Wallets.Add(ctx, AddWalletInput{Name: "Cash", Currency: "IDR", Type: model.WalletTypeCash, Balance: 50000})
	assert.True(t, wallet.IsActive)
	assert.InDelta(t, 50000, wallet.Balance, 1e-9)

	t.Run("update changes name and type only", func(t *testing.T) {
		app.Wallets.Update(ctx, wallet.ID, UpdateWalletInput{
			Name: ptr("Wallet"),
			Type: ptr(model.WalletTypeEWallet),
		})
		got, ok := app.Wallets.Get(wallet.ID)
		require.True(t, ok)
		assert.Equal(t, "Wallet", got.Name)
		assert.Equal(t, model.WalletTypeEWallet, got.Type)
		assert.Equal(t, "IDR", got.Currency)
		assert.InDelta(t, 50000, got.Balance, 1e-9)
	})

	t.Run("deactivation hides but keeps the wallet", func(t *testing.T) {
		app.Wallets.Deactivate(ctx, wallet.ID)
		assert.Empty(t, app.Wallets.List(false))
		assert.Len(t, app.Wallets.List(true), 1)

		// Historical transactions still resolve.
		got, ok := app.Wallets.Get(wallet.ID)
		require.True(t, ok)
		assert.False(t, got.IsActive)
		assert.Equal(t, "IDR", app.Wallets.Currency(wallet.ID))
	})
}

func TestWalletsCurrencyUnknown(t *testing.T) {
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)
	assert.Empty(t, app.Wallets.Currency("missing"))
}

func TestWalletsUnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: date(2025, time.March, 5)}
	app := newTestApp(t, clock)

	app.Wallets.Update(ctx, "missing", UpdateWalletInput{Name: ptr("x")})
	app.Wallets.Deactivate(ctx, "missing")
	_, ok := app.Wallets.Get("missing")
	assert.False(t, ok)
}
