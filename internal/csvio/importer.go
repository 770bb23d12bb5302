// Package csvio reads and writes the inventory CSV format: a header row
// naming the name, brand, quantity and price fields, one data row per
// product, comma-separated UTF-8.
package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/iyhunko/inventory-console/internal/model"
)

const (
	nameColumn     = "name"
	brandColumn    = "brand"
	quantityColumn = "quantity"
	priceColumn    = "price"
)

// ErrMissingHeader is returned when the CSV header lacks a required column.
var ErrMissingHeader = errors.New("missing required column in CSV header")

// Importer parses inventory CSV files into product construction inputs.
type Importer struct{}

// NewImporter creates a new Importer instance.
func NewImporter() *Importer {
	return &Importer{}
}

// ImportFile reads products from the CSV file at path. Malformed rows are
// skipped with a logged warning; the number of skipped rows is returned
// alongside the parsed products.
func (i *Importer) ImportFile(path string) ([]model.Product, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	products, skipped, err := i.Read(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV file %s: %w", path, err)
	}
	return products, skipped, nil
}

// Read parses products from r. Column order is resolved from the header
// row, so any permutation of the header fields is accepted.
func (i *Importer) Read(r io.Reader) ([]model.Product, int, error) {
	reader := csv.NewReader(r)
	// Malformed rows are a per-row policy decision, not a parse abort.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, 0, err
	}

	var products []model.Product
	skipped := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn("skipping unparsable CSV row", slog.Int("line", line), slog.Any("err", err))
			skipped++
			continue
		}

		product, err := parseRecord(record, columns)
		if err != nil {
			slog.Warn("skipping malformed CSV row", slog.Int("line", line), slog.Any("err", err))
			skipped++
			continue
		}
		products = append(products, product)
	}

	return products, skipped, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	for _, required := range []string{nameColumn, brandColumn, quantityColumn, priceColumn} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingHeader, required)
		}
	}
	return columns, nil
}

func parseRecord(record []string, columns map[string]int) (model.Product, error) {
	field := func(column string) (string, error) {
		idx := columns[column]
		if idx >= len(record) {
			return "", fmt.Errorf("row is missing the %s field", column)
		}
		return strings.TrimSpace(record[idx]), nil
	}

	name, err := field(nameColumn)
	if err != nil {
		return model.Product{}, err
	}
	brand, err := field(brandColumn)
	if err != nil {
		return model.Product{}, err
	}
	quantityStr, err := field(quantityColumn)
	if err != nil {
		return model.Product{}, err
	}
	priceStr, err := field(priceColumn)
	if err != nil {
		return model.Product{}, err
	}

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid quantity %q: %w", quantityStr, err)
	}

	price, err := strconv.ParseFloat(strings.TrimPrefix(priceStr, "$"), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid price %q: %w", priceStr, err)
	}

	return model.Product{
		Name:     name,
		Brand:    brand,
		Quantity: quantity,
		Price:    price,
	}, nil
}
