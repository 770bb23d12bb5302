package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-console/internal/model"
)

// ErrNotFound is returned when no product exists for the requested ID.
var ErrNotFound = errors.New("product not found")

// ProductStore defines the interface for the canonical product collection.
// Products are persisted synchronously on Add and never updated in place;
// ListAll returns a read-only snapshot in insertion order.
type ProductStore interface {
	Add(ctx context.Context, product *model.Product) (uuid.UUID, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Count(ctx context.Context) (int, error)
}
