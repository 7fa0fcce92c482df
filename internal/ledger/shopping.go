package ledger

import (
	"context"
	"log/slog"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// transactionLedger is the slice of the transaction ledger the shopping
// engine uses: purchases materialize entries, reverting a purchase deletes
// the linked entry (which reverses its balance effect).
type transactionLedger interface {
	Add(ctx context.Context, input AddTransactionInput) model.Transaction
	Delete(ctx context.Context, id string)
}

// walletResolver resolves a wallet's currency when a list is created.
type walletResolver interface {
	Currency(id string) string
}

// Shopping owns shopping lists and their embedded items.
type Shopping struct {
	kv           service.KV
	clock        service.Clock
	ids          service.IDGenerator
	transactions transactionLedger
	wallets      walletResolver
	lists        []model.ShoppingList
}

// NewShopping creates an empty shopping list engine.
func NewShopping(kv service.KV, clock service.Clock, ids service.IDGenerator, transactions transactionLedger, wallets walletResolver) *Shopping {
	return &Shopping{kv: kv, clock: clock, ids: ids, transactions: transactions, wallets: wallets}
}

// Load rehydrates the shopping list collection from storage.
func (s *Shopping) Load(ctx context.Context) error {
	return loadCollection(ctx, s.kv, service.KeyShoppingLists, &s.lists)
}

func (s *Shopping) reset() {
	s.lists = nil
}

func (s *Shopping) persist(ctx context.Context) {
	persistCollection(ctx, s.kv, service.KeyShoppingLists, s.lists)
}

// AddList creates an active, empty shopping list bound to a wallet. The
// list's currency is the wallet's.
func (s *Shopping) AddList(ctx context.Context, name, walletID string) model.ShoppingList {
	now := s.clock.Now()
	list := model.ShoppingList{
		ID:        s.ids.NewID(),
		Name:      name,
		WalletID:  walletID,
		Currency:  s.wallets.Currency(walletID),
		Status:    model.ShoppingListStatusActive,
		Items:     []model.ShoppingItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.lists = append(s.lists, list)
	s.persist(ctx)

	slog.Info("created shopping list", "id", list.ID, "name", name, "wallet", walletID)
	return list
}

// AddItemInput holds the fields for adding an item to a list.
type AddItemInput struct {
	Name           string
	CategoryID     string
	Quantity       float64
	EstimatedPrice float64
}

// AddItem appends a pending item to a list. Unknown list ids are a silent
// no-op and return the zero item.
func (s *Shopping) AddItem(ctx context.Context, listID string, input AddItemInput) model.ShoppingItem {
	list := s.find(listID)
	if list == nil {
		return model.ShoppingItem{}
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	now := s.clock.Now()
	item := model.ShoppingItem{
		ID:             s.ids.NewID(),
		Name:           input.Name,
		CategoryID:     input.CategoryID,
		Quantity:       quantity,
		EstimatedPrice: input.EstimatedPrice,
		Status:         model.ShoppingItemStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	list.Items = append(list.Items, item)
	list.UpdatedAt = now
	s.persist(ctx)
	return item
}

// UpdateItemInput holds the optional fields for a partial item update.
type UpdateItemInput struct {
	Name           *string
	CategoryID     *string
	Quantity       *float64
	EstimatedPrice *float64
}

// UpdateItem applies a partial update to an item. Unknown ids are a silent
// no-op.
func (s *Shopping) UpdateItem(ctx context.Context, listID, itemID string, input UpdateItemInput) {
	list := s.find(listID)
	if list == nil {
		return
	}
	item := list.Item(itemID)
	if item == nil {
		return
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.CategoryID != nil {
		item.CategoryID = *input.CategoryID
	}
	if input.Quantity != nil && *input.Quantity > 0 {
		item.Quantity = *input.Quantity
	}
	if input.EstimatedPrice != nil {
		item.EstimatedPrice = *input.EstimatedPrice
	}
	now := s.clock.Now()
	item.UpdatedAt = now
	list.UpdatedAt = now
	s.persist(ctx)
}

// RemoveItem deletes an item from a list. Linked transactions are not
// touched: only pending items are removable through the input layer, so no
// transaction exists yet.
func (s *Shopping) RemoveItem(ctx context.Context, listID, itemID string) {
	list := s.find(listID)
	if list == nil {
		return
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			list.UpdatedAt = s.clock.Now()
			s.persist(ctx)
			return
		}
	}
}

// PurchaseItem buys one item: an expense entry is materialized against the
// list's wallet for the actual price (or the estimated price times quantity
// when no actual price is given), the item is marked purchased and linked
// to the entry, and list completion is re-evaluated.
func (s *Shopping) PurchaseItem(ctx context.Context, listID, itemID string, actualPrice *float64) {
	list := s.find(listID)
	if list == nil {
		return
	}
	item := list.Item(itemID)
	if item == nil || item.Status == model.ShoppingItemStatusPurchased {
		return
	}
	s.purchase(ctx, list, item, actualPrice)
	s.autoComplete(list)
	s.persist(ctx)
}

// PurchaseAllRemaining buys every pending item on the list and returns how
// many were purchased. Each item gets its own independent ledger entry, so
// a single item can later be reverted without splitting a shared entry.
func (s *Shopping) PurchaseAllRemaining(ctx context.Context, listID string) int {
	list := s.find(listID)
	if list == nil {
		return 0
	}
	count := 0
	for i := range list.Items {
		item := &list.Items[i]
		if item.Status != model.ShoppingItemStatusPending {
			continue
		}
		s.purchase(ctx, list, item, nil)
		count++
	}
	if count > 0 {
		s.autoComplete(list)
		s.persist(ctx)
	}

	slog.Info("purchased remaining items", "list", listID, "count", count)
	return count
}

func (s *Shopping) purchase(ctx context.Context, list *model.ShoppingList, item *model.ShoppingItem, actualPrice *float64) {
	amount := item.EstimatedTotal()
	if actualPrice != nil {
		amount = *actualPrice
	}

	tx := s.transactions.Add(ctx, AddTransactionInput{
		Amount:      amount,
		Type:        model.TransactionTypeExpense,
		Date:        s.clock.Now(),
		Description: item.Name,
		WalletID:    list.WalletID,
		CategoryID:  item.CategoryID,
	})

	now := s.clock.Now()
	item.Status = model.ShoppingItemStatusPurchased
	item.ActualPrice = &amount
	item.LinkedTransactionID = tx.ID
	item.UpdatedAt = now
	list.UpdatedAt = now
}

// SkipItem drops an item without buying it. No ledger entry is created or
// removed; list completion is re-evaluated.
func (s *Shopping) SkipItem(ctx context.Context, listID, itemID string) {
	list := s.find(listID)
	if list == nil {
		return
	}
	item := list.Item(itemID)
	if item == nil {
		return
	}
	now := s.clock.Now()
	item.Status = model.ShoppingItemStatusSkipped
	item.UpdatedAt = now
	list.UpdatedAt = now
	s.autoComplete(list)
	s.persist(ctx)
}

// MarkItemPending reverts an item to pending. A purchased item's linked
// ledger entry is deleted, reversing its wallet effect and budget impact.
// Reopening any one item reopens the list: the status is forced back to
// active even if every other item is resolved.
func (s *Shopping) MarkItemPending(ctx context.Context, listID, itemID string) {
	list := s.find(listID)
	if list == nil {
		return
	}
	item := list.Item(itemID)
	if item == nil {
		return
	}

	if item.Status == model.ShoppingItemStatusPurchased && item.LinkedTransactionID != "" {
		s.transactions.Delete(ctx, item.LinkedTransactionID)
	}

	now := s.clock.Now()
	item.Status = model.ShoppingItemStatusPending
	item.ActualPrice = nil
	item.LinkedTransactionID = ""
	item.UpdatedAt = now
	list.Status = model.ShoppingListStatusActive
	list.UpdatedAt = now
	s.persist(ctx)
}

// Archive puts a list away regardless of its completion state. Items are
// untouched, and archived lists never auto-complete.
func (s *Shopping) Archive(ctx context.Context, listID string) {
	list := s.find(listID)
	if list == nil {
		return
	}
	list.Status = model.ShoppingListStatusArchived
	list.UpdatedAt = s.clock.Now()
	s.persist(ctx)
}

// DeleteList removes a list and its items. Linked transactions stay in the
// ledger. Unknown ids are a silent no-op.
func (s *Shopping) DeleteList(ctx context.Context, listID string) {
	for i := range s.lists {
		if s.lists[i].ID == listID {
			s.lists = append(s.lists[:i], s.lists[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Get returns the list with the given id.
func (s *Shopping) Get(id string) (model.ShoppingList, bool) {
	if list := s.find(id); list != nil {
		return *list, true
	}
	return model.ShoppingList{}, false
}

// List returns every shopping list.
func (s *Shopping) List() []model.ShoppingList {
	out := make([]model.ShoppingList, len(s.lists))
	copy(out, s.lists)
	return out
}

// autoComplete sets a list to completed once every item is purchased or
// skipped and at least one item exists. It never completes an empty list
// and never reverts an archived one.
func (s *Shopping) autoComplete(list *model.ShoppingList) {
	if list.Status == model.ShoppingListStatusArchived {
		return
	}
	if list.AllItemsResolved() {
		list.Status = model.ShoppingListStatusCompleted
		list.UpdatedAt = s.clock.Now()
	}
}

func (s *Shopping) find(id string) *model.ShoppingList {
	for i := range s.lists {
		if s.lists[i].ID == id {
			return &s.lists[i]
		}
	}
	return nil
}
