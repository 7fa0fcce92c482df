package ledger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/model"
	"github.com/FinSnap-Studio/FinSnap-App-sub000/internal/service"
)

// categoryReferencer is the slice of the transaction ledger the category
// registry needs for its deletion guard.
type categoryReferencer interface {
	ReferencesCategory(categoryID string) bool
}

// Categories owns category definitions, including the protected defaults.
type Categories struct {
	kv           service.KV
	clock        service.Clock
	ids          service.IDGenerator
	transactions categoryReferencer
	categories   []model.Category
}

// NewCategories creates an empty category registry. The transaction ledger
// reference is bound later by the App container.
func NewCategories(kv service.KV, clock service.Clock, ids service.IDGenerator) *Categories {
	return &Categories{kv: kv, clock: clock, ids: ids}
}

func (c *Categories) bindTransactions(transactions categoryReferencer) {
	c.transactions = transactions
}

// Load rehydrates the category collection from storage.
func (c *Categories) Load(ctx context.Context) error {
	return loadCollection(ctx, c.kv, service.KeyCategories, &c.categories)
}

func (c *Categories) reset() {
	c.categories = nil
}

func (c *Categories) persist(ctx context.Context) {
	persistCollection(ctx, c.kv, service.KeyCategories, c.categories)
}

// Add creates a new category.
func (c *Categories) Add(ctx context.Context, name string, categoryType model.CategoryType, isDefault bool) model.Category {
	now := c.clock.Now()
	category := model.Category{
		ID:        c.ids.NewID(),
		Name:      name,
		Type:      categoryType,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.categories = append(c.categories, category)
	c.persist(ctx)

	slog.Info("created category", "id", category.ID, "name", name, "type", categoryType)
	return category
}

// Rename changes a category's name. Unknown ids are a silent no-op.
func (c *Categories) Rename(ctx context.Context, id, name string) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			c.categories[i].Name = name
			c.categories[i].UpdatedAt = c.clock.Now()
			c.persist(ctx)
			return
		}
	}
}

// Delete removes a category. It refuses to delete default categories and
// categories referenced by any transaction; the caller must check the
// boolean to know whether the refusal happened.
func (c *Categories) Delete(ctx context.Context, id string) bool {
	for i := range c.categories {
		if c.categories[i].ID != id {
			continue
		}
		if c.categories[i].IsDefault {
			slog.Warn("refused to delete default category", "id", id, "name", c.categories[i].Name)
			return false
		}
		if c.transactions != nil && c.transactions.ReferencesCategory(id) {
			slog.Warn("refused to delete category in use", "id", id, "name", c.categories[i].Name)
			return false
		}
		c.categories = append(c.categories[:i], c.categories[i+1:]...)
		c.persist(ctx)
		return true
	}
	return false
}

// GetOrCreate returns the category with the given name and type, creating a
// default one on first use. The lookup is case-insensitive, which makes the
// helper idempotent for the ledger-generated categories (debt payments,
// receivable collections).
func (c *Categories) GetOrCreate(ctx context.Context, name string, categoryType model.CategoryType) model.Category {
	for _, category := range c.categories {
		if strings.EqualFold(category.Name, name) && category.Type == categoryType {
			return category
		}
	}
	return c.Add(ctx, name, categoryType, true)
}

// Get returns the category with the given id.
func (c *Categories) Get(id string) (model.Category, bool) {
	for _, category := range c.categories {
		if category.ID == id {
			return category, true
		}
	}
	return model.Category{}, false
}

// List returns all categories, optionally restricted to one type.
func (c *Categories) List(categoryType model.CategoryType) []model.Category {
	out := make([]model.Category, 0, len(c.categories))
	for _, category := range c.categories {
		if categoryType != "" && category.Type != categoryType {
			continue
		}
		out = append(out, category)
	}
	return out
}
