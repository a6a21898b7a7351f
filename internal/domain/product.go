package domain

const (
	// RestockQuantity is the stock level a refill resets a product to.
	RestockQuantity = 50

	// LowStockThreshold is the level at or below which a product is
	// flagged as nearly sold out.
	LowStockThreshold = 5
)

// Product is one dispensable catalog entry. Sales counts units ever
// dispensed and only grows.
type Product struct {
	ID    string
	Name  string
	Price Money
	Stock int
	Sales int
}

// Dispense hands out one unit: stock down, sales up, as a pair.
// A product with no stock left is not mutated.
func (p *Product) Dispense() {
	if p.Stock > 0 {
		p.Stock--
		p.Sales++
	}
}

// Refill resets stock to RestockQuantity. Sales are untouched.
func (p *Product) Refill() {
	p.Stock = RestockQuantity
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

func (p *Product) LowStock() bool {
	return p.Stock > 0 && p.Stock <= LowStockThreshold
}
