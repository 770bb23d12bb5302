package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-console/internal/console"
	"github.com/iyhunko/inventory-console/internal/model"
	"github.com/iyhunko/inventory-console/internal/stats"
	"github.com/iyhunko/inventory-console/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockService is a mock implementation of console.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ImportCSV(ctx context.Context, path string) (int, int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *MockService) AddProduct(ctx context.Context, name, brand string, quantity int, price float64) (*model.Product, error) {
	args := m.Called(ctx, name, brand, quantity, price)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockService) ListBrands(ctx context.Context) ([]stats.BrandCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.BrandCount), args.Error(1)
}

func (m *MockService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockService) ExportCSV(ctx context.Context, path string) (int, error) {
	args := m.Called(ctx, path)
	return args.Int(0), args.Error(1)
}

func (m *MockService) Analyze(ctx context.Context) (*stats.Summary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stats.Summary), args.Error(1)
}

func runSession(t *testing.T, svc console.Service, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := console.New(svc, strings.NewReader(input), &out, "inventory.csv", "inventory_backup.csv")
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestQuit(t *testing.T) {
	svc := new(MockService)
	out := runSession(t, svc, "q\n")
	assert.Contains(t, out, "Closing app. Goodbye!")
}

func TestQuitOnExhaustedInput(t *testing.T) {
	svc := new(MockService)
	out := runSession(t, svc, "")
	assert.Contains(t, out, "Store Inventory Management")
}

func TestInvalidChoiceReprompts(t *testing.T) {
	svc := new(MockService)
	out := runSession(t, svc, "x\nq\n")
	assert.Contains(t, out, "Please choose one of the options above.")
	assert.Contains(t, out, "Closing app. Goodbye!")
}

func TestImportUsesDefaultPath(t *testing.T) {
	svc := new(MockService)
	svc.On("ImportCSV", mock.Anything, "inventory.csv").Return(12, 2, nil)

	out := runSession(t, svc, "i\n\nq\n")
	assert.Contains(t, out, "Imported 12 product(s) from inventory.csv, skipped 2 row(s).")
	svc.AssertExpectations(t)
}

func TestImportErrorReturnsToMenu(t *testing.T) {
	svc := new(MockService)
	svc.On("ImportCSV", mock.Anything, "missing.csv").Return(0, 0, assert.AnError)

	out := runSession(t, svc, "i\nmissing.csv\nq\n")
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "Closing app. Goodbye!")
}

func TestListProducts(t *testing.T) {
	svc := new(MockService)
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.On("ListProducts", mock.Anything).Return([]model.Product{
		{ID: uuid.New(), Name: "Widget", Brand: "Acme", Quantity: 10, Price: 12.99, CreatedAt: created},
	}, nil)

	out := runSession(t, svc, "l\nq\n")
	assert.Contains(t, out, "Widget, Brand: Acme, Qty: 10, Price: $12.99, Added: March 01, 2024")
}

func TestListEmptyInventory(t *testing.T) {
	svc := new(MockService)
	svc.On("ListProducts", mock.Anything).Return([]model.Product{}, nil)

	out := runSession(t, svc, "l\nq\n")
	assert.Contains(t, out, "The inventory is empty.")
}

func TestListBrands(t *testing.T) {
	t.Run("prints each brand with its product count", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBrands", mock.Anything).Return([]stats.BrandCount{
			{Brand: "Globex", Count: 2},
			{Brand: "Acme", Count: 1},
		}, nil)

		out := runSession(t, svc, "r\nq\n")
		assert.Contains(t, out, "Globex: 2 product(s)")
		assert.Contains(t, out, "Acme: 1 product(s)")
		svc.AssertExpectations(t)
	})

	t.Run("empty inventory", func(t *testing.T) {
		svc := new(MockService)
		svc.On("ListBrands", mock.Anything).Return([]stats.BrandCount{}, nil)

		out := runSession(t, svc, "r\nq\n")
		assert.Contains(t, out, "The inventory is empty.")
	})
}

func TestRunSurfacesReaderError(t *testing.T) {
	svc := new(MockService)
	readErr := errors.New("terminal went away")

	var out bytes.Buffer
	c := console.New(svc, iotest.ErrReader(readErr), &out, "inventory.csv", "inventory_backup.csv")

	err := c.Run(context.Background())
	assert.ErrorIs(t, err, readErr)
}

func TestViewProduct(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetProduct", mock.Anything, id).Return(&model.Product{
			ID: id, Name: "Widget", Brand: "Acme", Quantity: 10, Price: 12.99, CreatedAt: created,
		}, nil)

		out := runSession(t, svc, "v\n"+id.String()+"\nq\n")
		assert.Contains(t, out, "*** Widget ***")
		assert.Contains(t, out, "Price: $12.99")
		svc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockService)
		svc.On("GetProduct", mock.Anything, id).Return(nil, store.ErrNotFound)

		out := runSession(t, svc, "v\n"+id.String()+"\nq\n")
		assert.Contains(t, out, "No product found with ID "+id.String())
	})

	t.Run("unparsable id", func(t *testing.T) {
		svc := new(MockService)

		out := runSession(t, svc, "v\nnot-a-uuid\nq\n")
		assert.Contains(t, out, "The ID should be a product UUID")
		svc.AssertNotCalled(t, "GetProduct")
	})
}

func TestNewProductRepromptsOnBadNumbers(t *testing.T) {
	svc := new(MockService)
	id := uuid.New()
	svc.On("AddProduct", mock.Anything, "Widget", "Acme", 10, 12.99).Return(&model.Product{
		ID: id, Name: "Widget", Brand: "Acme", Quantity: 10, Price: 12.99, CreatedAt: time.Now(),
	}, nil)

	// Blank name, unparsable quantity and price each re-prompt once.
	input := "n\n\nWidget\nAcme\nten\n10\ncheap\n$12.99\nq\n"
	out := runSession(t, svc, input)

	assert.Contains(t, out, "A value is required.")
	assert.Contains(t, out, "The quantity should be a number.")
	assert.Contains(t, out, "The price should be a number")
	assert.Contains(t, out, "Widget has been added to the inventory with ID "+id.String())
	svc.AssertExpectations(t)
}

func TestAnalysis(t *testing.T) {
	t.Run("prints the report", func(t *testing.T) {
		svc := new(MockService)
		created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		svc.On("Analyze", mock.Anything).Return(&stats.Summary{
			Count:            4,
			MostExpensive:    model.Product{Name: "Gizmo", Price: 30, CreatedAt: created},
			LeastExpensive:   model.Product{Name: "Widget", Price: 10, CreatedAt: created},
			MostCommonBrand:  stats.BrandCount{Brand: "Acme", Count: 3},
			LeastCommonBrand: stats.BrandCount{Brand: "Globex", Count: 1},
			Oldest:           model.Product{Name: "Widget", CreatedAt: created},
			Newest:           model.Product{Name: "Gizmo", CreatedAt: created},
			HighestQuantity:  model.Product{Name: "Widget", Quantity: 10, CreatedAt: created},
			LowestQuantity:   model.Product{Name: "Gizmo", Quantity: 1, CreatedAt: created},
			Mean:             20, Median: 20, Modes: []float64{20},
			Variance: 50, StdDev: 7.0710678,
			Q1: 15, Q2: 20, Q3: 25, IQR: 10,
		}, nil)

		out := runSession(t, svc, "a\nq\n")
		assert.Contains(t, out, "Total products: 4")
		assert.Contains(t, out, "Average price (mean): $20.00")
		assert.Contains(t, out, "Mode price: $20.00")
		assert.Contains(t, out, "Price variance (population): 50.00")
		assert.Contains(t, out, "- Q1 (lower half median): $15.00")
		assert.Contains(t, out, "Interquartile range (IQR): $10.00")
	})

	t.Run("multimodal prices are listed, not picked arbitrarily", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Analyze", mock.Anything).Return(&stats.Summary{
			Count: 2,
			Modes: []float64{10, 30},
		}, nil)

		out := runSession(t, svc, "a\nq\n")
		assert.Contains(t, out, "Mode price: multimodal: $10.00, $30.00")
	})

	t.Run("empty inventory", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Analyze", mock.Anything).Return(nil, stats.ErrEmptyDataset)

		out := runSession(t, svc, "a\nq\n")
		assert.Contains(t, out, "The inventory is empty; there is nothing to analyze.")
	})
}

func TestBackup(t *testing.T) {
	svc := new(MockService)
	svc.On("ExportCSV", mock.Anything, "custom.csv").Return(3, nil)

	out := runSession(t, svc, "b\ncustom.csv\nq\n")
	assert.Contains(t, out, "Backed up 3 product(s) to custom.csv.")
	svc.AssertExpectations(t)
}
