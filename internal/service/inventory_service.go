package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-console/internal/metrics"
	"github.com/iyhunko/inventory-console/internal/model"
	"github.com/iyhunko/inventory-console/internal/stats"
	"github.com/iyhunko/inventory-console/internal/store"
)

// Importer parses a CSV file into product construction inputs, reporting
// how many rows were skipped as malformed.
type Importer interface {
	ImportFile(path string) ([]model.Product, int, error)
}

// Exporter serializes products to a CSV file.
type Exporter interface {
	ExportFile(path string, products []model.Product) error
}

// InventoryService orchestrates the product store, the CSV importer/exporter
// and the statistics engine.
type InventoryService struct {
	store    store.ProductStore
	importer Importer
	exporter Exporter
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productStore store.ProductStore, importer Importer, exporter Exporter) *InventoryService {
	return &InventoryService{
		store:    productStore,
		importer: importer,
		exporter: exporter,
	}
}

// AddProduct validates and persists a single product, returning it with its
// assigned identifier.
func (s *InventoryService) AddProduct(ctx context.Context, name, brand string, quantity int, price float64) (*model.Product, error) {
	product := &model.Product{
		Name:     strings.TrimSpace(name),
		Brand:    strings.TrimSpace(brand),
		Quantity: quantity,
		Price:    price,
	}

	id, err := s.store.Add(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreated.Inc()
	slog.Info("product added", slog.String("id", id.String()), slog.String("name", product.Name))
	return product, nil
}

// ImportCSV bulk-loads products from the CSV file at path. Rows that fail
// parsing or validation are skipped with a warning, as are rows whose
// product name already exists in the store; the import continues.
// It returns the number of products persisted and the number of rows skipped.
func (s *InventoryService) ImportCSV(ctx context.Context, path string) (imported, skipped int, err error) {
	products, skipped, err := s.importer.ImportFile(path)
	if err != nil {
		return 0, 0, err
	}

	for _, p := range products {
		exists, err := s.store.ExistsByName(ctx, p.Name)
		if err != nil {
			return imported, skipped, fmt.Errorf("failed to check for duplicate of %q: %w", p.Name, err)
		}
		if exists {
			slog.Warn("skipping duplicate CSV product", slog.String("name", p.Name))
			skipped++
			continue
		}

		product := p
		if _, err := s.store.Add(ctx, &product); err != nil {
			if errors.Is(err, model.ErrValidation) {
				slog.Warn("skipping invalid CSV product", slog.String("name", p.Name), slog.Any("err", err))
				skipped++
				continue
			}
			return imported, skipped, fmt.Errorf("failed to persist imported product %q: %w", p.Name, err)
		}
		imported++
	}

	metrics.ProductsImported.Add(float64(imported))
	metrics.ImportRowsSkipped.Add(float64(skipped))
	slog.Info("CSV import finished", slog.String("path", path), slog.Int("imported", imported), slog.Int("skipped", skipped))
	return imported, skipped, nil
}

// ListProducts returns a snapshot of every product in insertion order.
func (s *InventoryService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.ListAll(ctx)
}

// GetProduct returns the product with the given identifier.
func (s *InventoryService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.store.FindByID(ctx, id)
}

// ListBrands returns every brand with its product count, in the order the
// brands first entered the store.
func (s *InventoryService) ListBrands(ctx context.Context) ([]stats.BrandCount, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return stats.BrandCounts(products), nil
}

// CountProducts returns the number of products in the store.
func (s *InventoryService) CountProducts(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// ExportCSV writes the full product snapshot to the CSV file at path and
// returns the number of products written.
func (s *InventoryService) ExportCSV(ctx context.Context, path string) (int, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.exporter.ExportFile(path, products); err != nil {
		return 0, err
	}

	metrics.ProductsExported.Add(float64(len(products)))
	slog.Info("CSV export finished", slog.String("path", path), slog.Int("exported", len(products)))
	return len(products), nil
}

// Analyze computes the statistics report over the full product snapshot.
// An empty store surfaces stats.ErrEmptyDataset.
func (s *InventoryService) Analyze(ctx context.Context) (*stats.Summary, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := stats.Summarize(products)
	if err != nil {
		return nil, err
	}

	metrics.AnalysesRun.Inc()
	return summary, nil
}
