package model

import "time"

// ShoppingListStatus is the lifecycle state of a shopping list.
type ShoppingListStatus string

const (
	// ShoppingListStatusActive means the list still has pending items.
	ShoppingListStatusActive ShoppingListStatus = "ACTIVE"
	// ShoppingListStatusCompleted means every item is purchased or skipped.
	ShoppingListStatusCompleted ShoppingListStatus = "COMPLETED"
	// ShoppingListStatusArchived means the list was put away by the user.
	ShoppingListStatusArchived ShoppingListStatus = "ARCHIVED"
)

// ShoppingItemStatus is the state of a single list item.
type ShoppingItemStatus string

const (
	// ShoppingItemStatusPending means the item has not been bought yet.
	ShoppingItemStatusPending ShoppingItemStatus = "PENDING"
	// ShoppingItemStatusPurchased means the item was bought and a ledger
	// entry exists for it.
	ShoppingItemStatusPurchased ShoppingItemStatus = "PURCHASED"
	// ShoppingItemStatusSkipped means the item was dropped without buying.
	ShoppingItemStatusSkipped ShoppingItemStatus = "SKIPPED"
)

// ShoppingItem is one line on a shopping list. A purchased item carries the
// id of the expense transaction it materialized, so reverting the purchase
// can delete exactly that entry.
type ShoppingItem struct {
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
	ActualPrice         *float64           `json:"actualPrice,omitempty"`
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	CategoryID          string             `json:"categoryId,omitempty"`
	LinkedTransactionID string             `json:"linkedTransactionId,omitempty"`
	Status              ShoppingItemStatus `json:"status"`
	Quantity            float64            `json:"quantity"`
	EstimatedPrice      float64            `json:"estimatedPrice"`
}

// EstimatedTotal is the price the item is expected to cost.
func (i *ShoppingItem) EstimatedTotal() float64 {
	return i.EstimatedPrice * i.Quantity
}

// ShoppingList groups items to buy from one wallet.
type ShoppingList struct {
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	WalletID  string             `json:"walletId"`
	Currency  string             `json:"currency"`
	Status    ShoppingListStatus `json:"status"`
	Items     []ShoppingItem     `json:"items"`
}

// AllItemsResolved reports whether the list qualifies for auto-completion:
// at least one item, and no item still pending.
func (l *ShoppingList) AllItemsResolved() bool {
	if len(l.Items) == 0 {
		return false
	}
	for i := range l.Items {
		if l.Items[i].Status == ShoppingItemStatusPending {
			return false
		}
	}
	return true
}

// Item returns a pointer to the item with the given id, or nil.
func (l *ShoppingList) Item(itemID string) *ShoppingItem {
	for i := range l.Items {
		if l.Items[i].ID == itemID {
			return &l.Items[i]
		}
	}
	return nil
}
