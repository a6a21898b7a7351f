package catalog

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/preranaaa0711/snackshack/internal/domain"
)

const csvHeader = "ID,Name,Price,Stock,Sales"

// CSVStore keeps the catalog in a flat comma-separated text file: a
// fixed header line followed by one unquoted record per product. A
// data line with the wrong field count is dropped on load; any other
// parse failure fails the load as a whole.
type CSVStore struct {
	path string
}

func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

func (s *CSVStore) Load(ctx context.Context) ([]domain.Product, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	var products []domain.Product
	scanner := bufio.NewScanner(f)
	header := true
	for scanner.Scan() {
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 5 {
			// Malformed record, drop it and keep the rest.
			continue
		}
		p, err := parseRecord(fields)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrEmptyStore
	}
	return products, nil
}

func parseRecord(fields []string) (domain.Product, error) {
	id := strings.TrimSpace(fields[0])

	price, err := domain.MoneyFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.Product{}, fmt.Errorf("bad price in record %s: %w", id, err)
	}
	stock, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return domain.Product{}, fmt.Errorf("bad stock in record %s: %w", id, err)
	}
	sales, err := strconv.Atoi(strings.TrimSpace(fields[4]))
	if err != nil {
		return domain.Product{}, fmt.Errorf("bad sales in record %s: %w", id, err)
	}

	return domain.Product{
		ID:    id,
		Name:  strings.TrimSpace(fields[1]),
		Price: price,
		Stock: stock,
		Sales: sales,
	}, nil
}

// Save rewrites the whole file. The records are written to a temp file
// in the same directory which is then renamed over the target, so an
// interrupted save never leaves a truncated catalog behind.
func (s *CSVStore) Save(ctx context.Context, products []domain.Product) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "catalog-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	fmt.Fprintln(w, csvHeader)
	for _, p := range products {
		fmt.Fprintf(w, "%s,%s,%s,%d,%d\n", p.ID, p.Name, p.Price, p.Stock, p.Sales)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace catalog file: %w", err)
	}
	return nil
}

func (s *CSVStore) Close() error {
	return nil
}
