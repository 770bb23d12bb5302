package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrValidation is returned when a product fails field validation.
	ErrValidation = errors.New("product validation failed")

	validate = validator.New()
)

// Product represents a product entity with its properties and metadata.
type Product struct {
	ID        uuid.UUID
	Name      string  `validate:"required"`
	Brand     string  `validate:"required"`
	Quantity  int     `validate:"gte=0"`
	Price     float64 `validate:"gte=0"`
	CreatedAt time.Time
}

// InitMeta initializes the product metadata including ID and creation timestamp.
func (p *Product) InitMeta() {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
}

// Validate checks the product field constraints: name and brand must be
// non-blank, quantity and price must be non-negative.
func (p *Product) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: field %s failed on %q", ErrValidation, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
