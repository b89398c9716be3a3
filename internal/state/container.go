package state

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go-stock-finance/internal/model"
	"go-stock-finance/internal/store"
	"go-stock-finance/internal/ws"

	"github.com/google/uuid"
)

// Business-rule refusals. Lookup misses are deliberately silent no-ops, so
// these are the only errors mutations return.
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
	ErrProductReferenced = errors.New("product has recorded sales and cannot be removed")
)

// Container owns the three collections and is the single writer for all of
// them. Every successful mutation re-serializes the affected collection to
// the store and notifies the hub.
type Container struct {
	mu       sync.Mutex
	products []model.Product
	sales    []model.Sale
	expenses []model.Expense

	store store.Store
	hub   *ws.Hub
}

// NewContainer loads the persisted collections. A missing or corrupt blob
// degrades to an empty collection with a warning, never an error.
func NewContainer(st store.Store, hub *ws.Hub) *Container {
	return &Container{
		products: load[model.Product](st, store.KeyProducts),
		sales:    load[model.Sale](st, store.KeySales),
		expenses: load[model.Expense](st, store.KeyExpenses),
		store:    st,
		hub:      hub,
	}
}

func load[T any](st store.Store, key string) []T {
	raw, ok, err := st.Get(key)
	if err != nil {
		slog.Warn("state: blob unreadable, starting empty", "key", key, "error", err)
		return []T{}
	}
	if !ok {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Warn("state: blob corrupt, starting empty", "key", key, "error", err)
		return []T{}
	}
	if out == nil {
		out = []T{}
	}
	return out
}

// commit is the on-commit hook: called after each successful mutation with
// the collection that changed. A persist failure is logged and not
// propagated, the in-memory state is already authoritative.
func (c *Container) commit(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Error("state: serialize failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(key, string(raw)); err != nil {
		slog.Error("state: persist failed", "key", key, "error", err)
	}
}

func (c *Container) publish(action string, payload map[string]any) {
	payload["type"] = "state_update"
	payload["action"] = action
	go c.hub.Publish(payload)
}

// AddProduct creates a product with a fresh identifier and timestamp and
// appends it. Field validation happens at the handler boundary.
func (c *Container) AddProduct(name string, quantity int, purchasePrice, sellingPrice float64) model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := model.NewProduct(name, quantity, purchasePrice, sellingPrice)
	c.products = append(c.products, p)
	c.commit(store.KeyProducts, c.products)
	c.publish("product_created", map[string]any{"product": p})
	return p
}

// AddStock increments a product's quantity. Unknown id is a silent no-op.
func (c *Container) AddStock(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == productID {
			c.products[i].Quantity += quantity
			c.commit(store.KeyProducts, c.products)
			c.publish("stock_added", map[string]any{"product": c.products[i]})
			return
		}
	}
}

// RemoveProduct deletes a product unless any sale references it. Unknown id
// is a silent no-op.
func (c *Container) RemoveProduct(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range c.sales {
		if s.ProductID == productID {
			return ErrProductReferenced
		}
	}
	for i, p := range c.products {
		if p.ID == productID {
			c.products = append(c.products[:i], c.products[i+1:]...)
			c.commit(store.KeyProducts, c.products)
			c.publish("product_removed", map[string]any{"productId": productID})
			return nil
		}
	}
	return nil
}

// RecordSale snapshots the product's name and purchase price into a new
// sale and decrements stock. Refused if the product is missing or the
// quantity exceeds current stock; a refusal changes nothing.
func (c *Container) RecordSale(productID string, quantitySold int, unitPrice, totalAmount float64) (model.Sale, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i := range c.products {
		if c.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.Sale{}, ErrProductNotFound
	}
	p := &c.products[idx]
	if quantitySold > p.Quantity {
		return model.Sale{}, ErrInsufficientStock
	}

	sale := model.Sale{
		ID:                  uuid.NewString(),
		ProductID:           p.ID,
		ProductName:         p.Name,
		QuantitySold:        quantitySold,
		UnitPrice:           unitPrice,
		TotalAmount:         totalAmount,
		PurchasePriceAtSale: p.PurchasePrice,
		Date:                time.Now().UTC(),
	}
	p.Quantity -= quantitySold
	c.sales = append(c.sales, sale)

	c.commit(store.KeyProducts, c.products)
	c.commit(store.KeySales, c.sales)
	c.publish("sale_recorded", map[string]any{"sale": sale, "product": *p})
	return sale, nil
}

// AddExpense creates an expense with a fresh identifier and timestamp.
func (c *Container) AddExpense(description string, amount float64) model.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := model.NewExpense(description, amount)
	c.expenses = append(c.expenses, e)
	c.commit(store.KeyExpenses, c.expenses)
	c.publish("expense_added", map[string]any{"expense": e})
	return e
}

// RemoveExpense deletes an expense. Unknown id is a silent no-op.
func (c *Container) RemoveExpense(expenseID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, e := range c.expenses {
		if e.ID == expenseID {
			c.expenses = append(c.expenses[:i], c.expenses[i+1:]...)
			c.commit(store.KeyExpenses, c.expenses)
			c.publish("expense_removed", map[string]any{"expenseId": expenseID})
			return
		}
	}
}

// Products returns a copy of the product collection in insertion order.
func (c *Container) Products() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Sales returns a copy of the sale collection in insertion order.
func (c *Container) Sales() []model.Sale {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Sale, len(c.sales))
	copy(out, c.sales)
	return out
}

// Expenses returns a copy of the expense collection in insertion order.
func (c *Container) Expenses() []model.Expense {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Expense, len(c.expenses))
	copy(out, c.expenses)
	return out
}
