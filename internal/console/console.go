// Package console implements the interactive menu surface of the inventory
// tool. It reads commands from an injected reader and writes to an injected
// writer, so scripted sessions can drive it in tests.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iyhunko/inventory-console/internal/model"
	"github.com/iyhunko/inventory-console/internal/stats"
	"github.com/iyhunko/inventory-console/internal/store"
)

// Service is the slice of the inventory service the console dispatches to.
type Service interface {
	ImportCSV(ctx context.Context, path string) (imported, skipped int, err error)
	AddProduct(ctx context.Context, name, brand string, quantity int, price float64) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	ListBrands(ctx context.Context) ([]stats.BrandCount, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ExportCSV(ctx context.Context, path string) (int, error)
	Analyze(ctx context.Context) (*stats.Summary, error)
}

// Console runs the interactive menu loop.
type Console struct {
	svc        Service
	in         *bufio.Scanner
	out        io.Writer
	importPath string
	exportPath string
}

// New creates a Console reading commands from in and printing to out.
// importPath and exportPath are offered as defaults in the import and
// backup prompts.
func New(svc Service, in io.Reader, out io.Writer, importPath, exportPath string) *Console {
	return &Console{
		svc:        svc,
		in:         bufio.NewScanner(in),
		out:        out,
		importPath: importPath,
		exportPath: exportPath,
	}
}

// Run displays the menu and dispatches user choices until the user quits or
// input is exhausted. Operation errors are reported and control returns to
// the menu; a failing reader ends the loop with its error.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, ok := c.readLine("\nWhat would you like to do? ")
		if !ok {
			return c.in.Err()
		}

		switch strings.ToLower(strings.TrimSpace(choice)) {
		case "i":
			c.importProducts(ctx)
		case "l":
			c.listProducts(ctx)
		case "r":
			c.listBrands(ctx)
		case "v":
			c.viewProduct(ctx)
		case "n":
			c.newProduct(ctx)
		case "a":
			c.analyzeProducts(ctx)
		case "b":
			c.backupProducts(ctx)
		case "q":
			fmt.Fprintln(c.out, "\nClosing app. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Please choose one of the options above.")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprint(c.out, `
==================================================
            Store Inventory Management
==================================================
 I) Import products from a CSV file
 L) List all products
 R) List all brands
 V) View a product by ID
 N) New product
 A) Product analysis
 B) Backup inventory to a CSV file
 Q) Quit
`)
}

// readLine prints the prompt and returns the next input line. ok is false
// once input is exhausted or the reader fails; the loop in Run surfaces
// the reader's error in that case.
func (c *Console) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) reportError(err error) {
	fmt.Fprintf(c.out, "\nERROR: %v\n", err)
}

func (c *Console) importProducts(ctx context.Context) {
	path, ok := c.readLine(fmt.Sprintf("CSV file to import [%s]: ", c.importPath))
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = c.importPath
	}

	imported, skipped, err := c.svc.ImportCSV(ctx, path)
	if err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "\nImported %d product(s) from %s, skipped %d row(s).\n", imported, path, skipped)
}

func (c *Console) listProducts(ctx context.Context) {
	products, err := c.svc.ListProducts(ctx)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(c.out, "\nThe inventory is empty.")
		return
	}

	fmt.Fprintln(c.out)
	for _, p := range products {
		fmt.Fprintf(c.out, "%s: %s, Brand: %s, Qty: %d, Price: %s, Added: %s\n",
			p.ID, p.Name, p.Brand, p.Quantity, formatPrice(p.Price), formatDate(p.CreatedAt))
	}
}

func (c *Console) listBrands(ctx context.Context) {
	brands, err := c.svc.ListBrands(ctx)
	if err != nil {
		c.reportError(err)
		return
	}
	if len(brands) == 0 {
		fmt.Fprintln(c.out, "\nThe inventory is empty.")
		return
	}

	fmt.Fprintln(c.out)
	for _, b := range brands {
		fmt.Fprintf(c.out, "%s: %d product(s)\n", b.Brand, b.Count)
	}
}

func (c *Console) viewProduct(ctx context.Context) {
	idStr, ok := c.readLine("Enter a product's ID: ")
	if !ok {
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		fmt.Fprintln(c.out, "\nThe ID should be a product UUID as shown by the list screen.")
		return
	}

	product, err := c.svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(c.out, "\nNo product found with ID %s.\n", id)
			return
		}
		c.reportError(err)
		return
	}

	fmt.Fprintf(c.out, `
**************************************************
*** %s ***
Brand: %s
Quantity: %d
Price: %s
Date added: %s
**************************************************
`, product.Name, product.Brand, product.Quantity, formatPrice(product.Price), formatDate(product.CreatedAt))
}

func (c *Console) newProduct(ctx context.Context) {
	name, ok := c.promptNonBlank("Name: ")
	if !ok {
		return
	}
	brand, ok := c.promptNonBlank("Brand: ")
	if !ok {
		return
	}
	quantity, ok := c.promptQuantity()
	if !ok {
		return
	}
	price, ok := c.promptPrice()
	if !ok {
		return
	}

	product, err := c.svc.AddProduct(ctx, name, brand, quantity, price)
	if err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "\n%s has been added to the inventory with ID %s.\n", product.Name, product.ID)
}

func (c *Console) promptNonBlank(prompt string) (string, bool) {
	for {
		value, ok := c.readLine(prompt)
		if !ok {
			return "", false
		}
		value = strings.TrimSpace(value)
		if value != "" {
			return value, true
		}
		fmt.Fprintln(c.out, "A value is required.")
	}
}

func (c *Console) promptQuantity() (int, bool) {
	for {
		value, ok := c.readLine("Quantity: ")
		if !ok {
			return 0, false
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			fmt.Fprintln(c.out, "The quantity should be a number. Example: 100")
			continue
		}
		return quantity, true
	}
}

func (c *Console) promptPrice() (float64, bool) {
	for {
		value, ok := c.readLine("Price (Ex: 12.99): ")
		if !ok {
			return 0, false
		}
		value = strings.TrimPrefix(strings.TrimSpace(value), "$")
		price, err := strconv.ParseFloat(value, 64)
		if err != nil {
			fmt.Fprintln(c.out, "The price should be a number without a currency symbol. Example: 12.99")
			continue
		}
		return price, true
	}
}

func (c *Console) analyzeProducts(ctx context.Context) {
	summary, err := c.svc.Analyze(ctx)
	if err != nil {
		if errors.Is(err, stats.ErrEmptyDataset) {
			fmt.Fprintln(c.out, "\nThe inventory is empty; there is nothing to analyze.")
			return
		}
		c.reportError(err)
		return
	}

	modeLine := formatModes(summary.Modes)
	fmt.Fprintf(c.out, `
--------------------------------------------------
                 PRODUCT ANALYSIS
--------------------------------------------------
Total products: %d
Most expensive: %s: %s
Least expensive: %s: %s
Most common brand: %s (%d product(s))
Least common brand: %s (%d product(s))
Oldest product: %s: %s
Newest product: %s: %s
Highest quantity: %d %s
Lowest quantity: %d %s
Average price (mean): %s
Median price: %s
Mode price: %s
Price variance (population): %.2f
Price standard deviation (population): %s
Quartiles:
- Q1 (lower half median): %s
- Q2 (median): %s
- Q3 (upper half median): %s
Interquartile range (IQR): %s
`,
		summary.Count,
		formatPrice(summary.MostExpensive.Price), summary.MostExpensive.Name,
		formatPrice(summary.LeastExpensive.Price), summary.LeastExpensive.Name,
		summary.MostCommonBrand.Brand, summary.MostCommonBrand.Count,
		summary.LeastCommonBrand.Brand, summary.LeastCommonBrand.Count,
		formatDate(summary.Oldest.CreatedAt), summary.Oldest.Name,
		formatDate(summary.Newest.CreatedAt), summary.Newest.Name,
		summary.HighestQuantity.Quantity, summary.HighestQuantity.Name,
		summary.LowestQuantity.Quantity, summary.LowestQuantity.Name,
		formatPrice(summary.Mean),
		formatPrice(summary.Median),
		modeLine,
		summary.Variance,
		formatPrice(summary.StdDev),
		formatPrice(summary.Q1),
		formatPrice(summary.Q2),
		formatPrice(summary.Q3),
		formatPrice(summary.IQR),
	)
}

func (c *Console) backupProducts(ctx context.Context) {
	path, ok := c.readLine(fmt.Sprintf("Backup file [%s]: ", c.exportPath))
	if !ok {
		return
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = c.exportPath
	}

	exported, err := c.svc.ExportCSV(ctx, path)
	if err != nil {
		c.reportError(err)
		return
	}
	fmt.Fprintf(c.out, "\nBacked up %d product(s) to %s.\n", exported, path)
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func formatDate(t time.Time) string {
	return t.Format("January 02, 2006")
}

func formatModes(modes []float64) string {
	if len(modes) == 1 {
		return formatPrice(modes[0])
	}
	parts := make([]string, len(modes))
	for i, m := range modes {
		parts[i] = formatPrice(m)
	}
	return "multimodal: " + strings.Join(parts, ", ")
}
