package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/iyhunko/inventory-console/internal/model"
)

// exportColumns is the field order written by the exporter; the importer
// accepts it back unchanged.
var exportColumns = []string{nameColumn, brandColumn, quantityColumn, priceColumn}

// Exporter writes products to the inventory CSV format.
type Exporter struct{}

// NewExporter creates a new Exporter instance.
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportFile writes the products to a CSV file at path, header row first.
func (e *Exporter) ExportFile(path string, products []model.Product) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}

	if err := e.Write(f, products); err != nil {
		f.Close()
		return fmt.Errorf("failed to write CSV file %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file %s: %w", path, err)
	}
	return nil
}

// Write serializes the products to w with a header row and one row per
// product. Prices are rendered with the shortest representation that
// round-trips through ParseFloat, so re-importing an export loses nothing.
func (e *Exporter) Write(w io.Writer, products []model.Product) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportColumns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, product := range products {
		record := []string{
			product.Name,
			product.Brand,
			strconv.Itoa(product.Quantity),
			strconv.FormatFloat(product.Price, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}
	return nil
}
