package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-console/internal/model"
	"github.com/iyhunko/inventory-console/internal/store"
)

// ProductStore implements store.ProductStore on top of a local SQLite file.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore creates a new ProductStore instance.
func NewProductStore(db *sql.DB) store.ProductStore {
	return &ProductStore{db: db}
}

// Add validates and inserts a new product, assigning its identifier and
// creation timestamp when not already set. The row is persisted before
// Add returns.
func (s *ProductStore) Add(ctx context.Context, product *model.Product) (uuid.UUID, error) {
	if err := product.Validate(); err != nil {
		return uuid.Nil, err
	}

	// Only initialize metadata if not already set
	if product.ID == uuid.Nil {
		product.InitMeta()
	}

	query := `INSERT INTO products (id, name, brand, quantity, price, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, product.ID, product.Name, product.Brand, product.Quantity, product.Price, product.CreatedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return product.ID, nil
}

// ListAll retrieves every product in insertion order.
func (s *ProductStore) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, brand, quantity, price, created_at FROM products ORDER BY position`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var product model.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Brand, &product.Quantity, &product.Price, &product.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

// FindByID retrieves a single product by ID.
func (s *ProductStore) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := `SELECT id, name, brand, quantity, price, created_at FROM products WHERE id = ?`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Close()

	var result model.Product
	err = stmt.QueryRowContext(ctx, id).Scan(
		&result.ID, &result.Name, &result.Brand, &result.Quantity, &result.Price, &result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &result, nil
}

// ExistsByName reports whether any product already carries the given name.
func (s *ProductStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT COUNT(*) FROM products WHERE name = ?`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare exists statement: %w", err)
	}
	defer stmt.Close()

	var count int
	if err := stmt.QueryRowContext(ctx, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}

	return count > 0, nil
}

// Count returns the number of products in the store.
func (s *ProductStore) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM products`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare count statement: %w", err)
	}
	defer stmt.Close()

	var count int
	if err := stmt.QueryRowContext(ctx).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}
