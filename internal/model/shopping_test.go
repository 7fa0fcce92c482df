package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllItemsResolved(t *testing.T) {
	empty := ShoppingList{}
	assert.False(t, empty.AllItemsResolved())

	pending := ShoppingList{Items: []ShoppingItem{
		{Status: ShoppingItemStatusPurchased},
		{Status: ShoppingItemStatusPending},
	}}
	assert.False(t, pending.AllItemsResolved())

	resolved := ShoppingList{Items: []ShoppingItem{
		{Status: ShoppingItemStatusPurchased},
		{Status: ShoppingItemStatusSkipped},
	}}
	assert.True(t, resolved.AllItemsResolved())
}

func TestEstimatedTotal(t *testing.T) {
	item := ShoppingItem{Quantity: 3, EstimatedPrice: 2500}
	assert.InDelta(t, 7500, item.EstimatedTotal(), 1e-9)
}
