package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudgetHealth(t *testing.T) {
	tests := []struct {
		name   string
		want   BudgetHealth
		amount float64
		spent  float64
	}{
		{name: "untouched", amount: 100, spent: 0, want: BudgetHealthSafe},
		{name: "under warning threshold", amount: 100, spent: 69.99, want: BudgetHealthSafe},
		{name: "at warning threshold", amount: 100, spent: 70, want: BudgetHealthWarning},
		{name: "under danger threshold", amount: 100, spent: 89.99, want: BudgetHealthWarning},
		{name: "at danger threshold", amount: 100, spent: 90, want: BudgetHealthDanger},
		{name: "over the cap", amount: 100, spent: 150, want: BudgetHealthDanger},
		{name: "zero cap is safe", amount: 0, spent: 50, want: BudgetHealthSafe},
		{name: "negative cap is safe", amount: -10, spent: 50, want: BudgetHealthSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := Budget{Amount: tt.amount, Spent: tt.spent}
			assert.Equal(t, tt.want, budget.Health())
		})
	}
}
