package engine

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/preranaaa0711/snackshack/internal/catalog"
	"github.com/preranaaa0711/snackshack/internal/domain"
)

// Engine drives one customer session against the catalog: cart
// selection, balance, checkout, and the admin refill/save operations.
// Each method is atomic on its own; a multi-step flow still assumes a
// single caller per session.
//
// The cart is a stack of product ids. A product selected n times
// appears n times; RemoveFromCart undoes the most recent selection.
type Engine struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	cart    []string
	balance domain.Money
}

func New(c *catalog.Catalog) *Engine {
	return &Engine{
		catalog: c,
		balance: domain.Zero(),
	}
}

// AddToCart reserves one unit of id in the cart. The unit count a cart
// may hold for a product is capped at that product's current stock.
func (e *Engine) AddToCart(id string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, ok := e.catalog.Get(id)
	if !ok {
		return "", ErrInvalidProductID
	}
	if !p.InStock() {
		return "", fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
	}
	if e.cartCount(id) >= p.Stock {
		return "", fmt.Errorf("%w: %s", ErrStockExceeded, p.Name)
	}

	e.cart = append(e.cart, id)
	return p.Name + " added to cart.", nil
}

// RemoveFromCart pops the most recently added entry, whatever product
// it references.
func (e *Engine) RemoveFromCart() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) == 0 {
		return "", ErrEmptyCart
	}

	id := e.cart[len(e.cart)-1]
	e.cart = e.cart[:len(e.cart)-1]

	name := id
	if p, ok := e.catalog.Get(id); ok {
		name = p.Name
	}
	return name + " removed from cart.", nil
}

// ClearCart empties the cart unconditionally.
func (e *Engine) ClearCart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cart = e.cart[:0]
}

// InsertMoney adds a strictly positive amount to the session balance.
func (e *Engine) InsertMoney(amount domain.Money) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w, got %s", ErrNonPositiveAmount, amount)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.balance = e.balance.Add(amount)
	return nil
}

// Checkout settles the session in a single transition: it validates
// the cart and balance, dispenses every unit, returns change, resets
// the session, and persists the catalog. Failures leave balance, cart,
// and catalog untouched.
func (e *Engine) Checkout(ctx context.Context) domain.CheckoutResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.cart) == 0 {
		return domain.CheckoutResult{
			Message: "Cart is empty. Please select products.",
			Change:  domain.Zero(),
		}
	}

	total := e.cartTotal()
	if e.balance.Cmp(total) < 0 {
		needed := total.Sub(e.balance)
		return domain.CheckoutResult{
			Message: fmt.Sprintf("Insufficient funds. Need AED %s more.", needed),
			Change:  domain.Zero(),
		}
	}

	quantities := make(map[string]int)
	for _, id := range e.cart {
		quantities[id]++
	}

	// Re-validate every line before touching stock: a downward refill
	// between selection and checkout must not drive stock negative.
	// Either the whole cart dispenses or nothing does.
	for id, qty := range quantities {
		p, ok := e.catalog.Get(id)
		if !ok || p.Stock < qty {
			return domain.CheckoutResult{
				Message: "Stock changed since selection. Checkout cancelled.",
				Change:  domain.Zero(),
			}
		}
	}

	for id, qty := range quantities {
		p, _ := e.catalog.Get(id)
		for i := 0; i < qty; i++ {
			p.Dispense()
		}
	}

	change := e.balance.Sub(total)
	e.balance = domain.Zero()
	e.cart = e.cart[:0]
	receipt := uuid.New().String()

	if err := e.catalog.Save(ctx); err != nil {
		// The sale already happened; report the persistence failure
		// without rolling anything back.
		log.Printf("catalog save after checkout failed: %v", err)
		return domain.CheckoutResult{
			Success:   true,
			Message:   fmt.Sprintf("Purchase successful, but saving inventory failed: %v", err),
			Change:    change,
			ReceiptID: receipt,
		}
	}

	if change.IsPositive() {
		return domain.CheckoutResult{
			Success:   true,
			Message:   fmt.Sprintf("Purchase successful. Dispensing items and change: AED %s", change),
			Change:    change,
			ReceiptID: receipt,
		}
	}
	return domain.CheckoutResult{
		Success:   true,
		Message:   "Purchase successful. Dispensing items. Exact change.",
		Change:    change,
		ReceiptID: receipt,
	}
}

// RefillProduct restocks id to the fixed restock quantity. Unknown ids
// are ignored. Refill never persists on its own; the admin triggers
// Save explicitly. Checkout auto-persisting while refill does not is
// part of the terminal's contract.
func (e *Engine) RefillProduct(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if p, ok := e.catalog.Get(id); ok {
		p.Refill()
	}
}

// Save persists the catalog on explicit admin request.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.Save(ctx)
}

// List returns ordered snapshots of the catalog.
func (e *Engine) List() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.catalog.List()
}

// CartSummary groups the cart by product name in catalog order, one
// line per distinct product with its unit count and extended cost.
func (e *Engine) CartSummary() []domain.CartLine {
	e.mu.Lock()
	defer e.mu.Unlock()

	quantities := make(map[string]int)
	for _, id := range e.cart {
		quantities[id]++
	}

	var lines []domain.CartLine
	for _, p := range e.catalog.List() {
		qty := quantities[p.ID]
		if qty == 0 {
			continue
		}
		lines = append(lines, domain.CartLine{
			Name:     p.Name,
			Quantity: qty,
			Cost:     p.Price.MulInt(qty),
		})
	}
	return lines
}

// CartTotal returns the summed price of every cart entry.
func (e *Engine) CartTotal() domain.Money {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cartTotal()
}

// Balance returns the current session balance.
func (e *Engine) Balance() domain.Money {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balance
}

// CartSize returns the number of units currently selected.
func (e *Engine) CartSize() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.cart)
}

func (e *Engine) cartTotal() domain.Money {
	total := domain.Zero()
	for _, id := range e.cart {
		if p, ok := e.catalog.Get(id); ok {
			total = total.Add(p.Price)
		}
	}
	return total
}

func (e *Engine) cartCount(id string) int {
	n := 0
	for _, entry := range e.cart {
		if entry == id {
			n++
		}
	}
	return n
}
