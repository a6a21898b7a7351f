package catalog

import (
	"context"
	"errors"

	"github.com/preranaaa0711/snackshack/internal/domain"
)

// ErrEmptyStore is returned by Load when the backing store holds no
// products at all.
var ErrEmptyStore = errors.New("store holds no products")

// Store persists the full product catalog. Load returns every product
// in catalog order; Save rewrites the store from scratch.
type Store interface {
	Load(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, products []domain.Product) error
	Close() error
}
