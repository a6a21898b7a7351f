package catalog

import (
	"context"
	"fmt"
	"log"

	"github.com/preranaaa0711/snackshack/internal/domain"
)

// Catalog is the ordered in-memory product inventory. Products keep
// their insertion order so listing and persistence are deterministic.
// Catalog itself does no locking; the engine serializes access.
type Catalog struct {
	store    Store
	order    []string
	products map[string]*domain.Product
}

func New(store Store) *Catalog {
	return &Catalog{
		store:    store,
		products: make(map[string]*domain.Product),
	}
}

// Load fills the catalog from the store. Any load failure, or an empty
// store, discards whatever was read and replaces the catalog with the
// default seed, which is persisted right away.
func (c *Catalog) Load(ctx context.Context) error {
	products, err := c.store.Load(ctx)
	if err != nil {
		log.Printf("catalog load failed, seeding defaults: %v", err)
		c.replace(defaultSeed())
		if errSave := c.Save(ctx); errSave != nil {
			return fmt.Errorf("failed to persist default catalog: %w", errSave)
		}
		return nil
	}
	c.replace(products)
	return nil
}

// Save rewrites the backing store from the in-memory state. A store
// failure is returned to the caller and leaves memory untouched.
func (c *Catalog) Save(ctx context.Context) error {
	if err := c.store.Save(ctx, c.List()); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// Get returns the live product for id. The pointer stays owned by the
// catalog; callers must not hold it across a Load.
func (c *Catalog) Get(id string) (*domain.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// List returns value snapshots of every product in catalog order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.products[id])
	}
	return out
}

// Put inserts or overwrites a product. New ids go to the end of the
// catalog order.
func (c *Catalog) Put(p domain.Product) {
	if _, exists := c.products[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.products[p.ID] = &p
}

func (c *Catalog) Len() int {
	return len(c.order)
}

func (c *Catalog) replace(products []domain.Product) {
	c.order = c.order[:0]
	c.products = make(map[string]*domain.Product, len(products))
	for _, p := range products {
		c.Put(p)
	}
}

// defaultSeed is the factory catalog a terminal starts from when the
// store is missing, empty, or unreadable.
func defaultSeed() []domain.Product {
	seed := []struct {
		id, name, price string
	}{
		{"A1", "Maxafi Water (500ml)", "1.00"},
		{"A2", "Pepsi Max (Can)", "3.50"},
		{"B1", "Laban Up (Small)", "4.00"},
		{"B2", "Areej Juice (Orange)", "3.00"},
		{"C1", "Galaxy Chocolate", "5.50"},
		{"C2", "Oman Chips", "1.50"},
		{"D1", "Hot Coffee (Cappuccino)", "8.00"},
		{"D2", "Red Bull (Can)", "10.00"},
		{"E1", "Almarai Milk (200ml)", "2.50"},
		{"E2", "Snickers Bar", "4.50"},
		{"F1", "Pringles (Small)", "6.00"},
		{"F2", "KitKat (4 Finger)", "4.00"},
	}

	products := make([]domain.Product, 0, len(seed))
	for _, s := range seed {
		products = append(products, domain.Product{
			ID:    s.id,
			Name:  s.name,
			Price: domain.MustMoney(s.price),
			Stock: 20,
		})
	}
	return products
}
