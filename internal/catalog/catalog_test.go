package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preranaaa0711/snackshack/internal/domain"
)

type stubStore struct {
	products  []domain.Product
	loadErr   error
	saveErr   error
	saved     []domain.Product
	saveCalls int
}

func (s *stubStore) Load(context.Context) ([]domain.Product, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.products, nil
}

func (s *stubStore) Save(_ context.Context, products []domain.Product) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = products
	return nil
}

func (s *stubStore) Close() error { return nil }

func TestCatalog_Load_KeepsStoreOrder(t *testing.T) {
	store := &stubStore{products: testProducts()}
	cat := New(store)

	require.NoError(t, cat.Load(context.Background()))

	assert.Equal(t, testProducts(), cat.List())
}

func TestCatalog_Load_SeedsDefaultsOnStoreError(t *testing.T) {
	store := &stubStore{loadErr: errors.New("disk on fire")}
	cat := New(store)

	require.NoError(t, cat.Load(context.Background()))

	assert.Equal(t, 12, cat.Len())
	a1, ok := cat.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "Maxafi Water (500ml)", a1.Name)
	assert.Equal(t, "1.00", a1.Price.String())
	assert.Equal(t, 20, a1.Stock)
	assert.Equal(t, 0, a1.Sales)

	// The seed is persisted right away, verbatim.
	assert.Equal(t, 1, store.saveCalls)
	assert.Equal(t, cat.List(), store.saved)
}

func TestCatalog_Load_SeedsDefaultsOnEmptyStore(t *testing.T) {
	store := &stubStore{loadErr: ErrEmptyStore}
	cat := New(store)

	require.NoError(t, cat.Load(context.Background()))

	assert.Equal(t, 12, cat.Len())
	assert.Equal(t, 1, store.saveCalls)
}

func TestCatalog_Load_SeedPersistFailure_ReturnsError(t *testing.T) {
	store := &stubStore{loadErr: ErrEmptyStore, saveErr: errors.New("disk full")}
	cat := New(store)

	err := cat.Load(context.Background())
	assert.Error(t, err)
}

func TestCatalog_Save_Failure_KeepsMemoryIntact(t *testing.T) {
	store := &stubStore{products: testProducts()}
	cat := New(store)
	require.NoError(t, cat.Load(context.Background()))

	store.saveErr = errors.New("disk full")
	err := cat.Save(context.Background())

	assert.Error(t, err)
	assert.Equal(t, testProducts(), cat.List())
}

func TestCatalog_Put_NewIDGoesToEnd(t *testing.T) {
	cat := New(&stubStore{})
	cat.Put(domain.Product{ID: "A1", Name: "Water"})
	cat.Put(domain.Product{ID: "B1", Name: "Laban"})
	cat.Put(domain.Product{ID: "A1", Name: "Water (new label)"})

	list := cat.List()
	require.Len(t, list, 2)
	assert.Equal(t, "A1", list[0].ID)
	assert.Equal(t, "Water (new label)", list[0].Name)
	assert.Equal(t, "B1", list[1].ID)
}

func TestCatalog_List_ReturnsSnapshots(t *testing.T) {
	cat := New(&stubStore{})
	cat.Put(domain.Product{ID: "A1", Stock: 5})

	list := cat.List()
	list[0].Stock = 0

	p, ok := cat.Get("A1")
	require.True(t, ok)
	assert.Equal(t, 5, p.Stock)
}
