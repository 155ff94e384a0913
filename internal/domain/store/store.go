package store

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/retailsim/tienda/internal/display"
	"github.com/retailsim/tienda/internal/domain/customer"
	"github.com/retailsim/tienda/internal/domain/product"
)

// Outcome classifies the terminal state of a purchase attempt.
type Outcome string

const (
	OutcomeCompleted         Outcome = "completed"
	OutcomeEmptyCart         Outcome = "empty_cart"
	OutcomeInsufficientStock Outcome = "insufficient_stock"
)

// PurchaseResult reports how a purchase attempt ended. Total is set only for
// completed purchases; FailedProduct names the offending line when stock ran
// short at checkout.
type PurchaseResult struct {
	Outcome       Outcome
	Total         decimal.Decimal
	FailedProduct string
}

func (r *PurchaseResult) Completed() bool { return r.Outcome == OutcomeCompleted }

// Store owns the product catalog and processes customer purchases. Catalog
// entries are keyed by the product's name at registration time; renaming a
// product afterwards does not re-key it.
type Store struct {
	Name string

	catalog map[string]*product.Product
	sink    display.Sink
}

func New(name string, sink display.Sink) *Store {
	if sink == nil {
		sink = display.Nop()
	}
	return &Store{
		Name:    name,
		catalog: make(map[string]*product.Product),
		sink:    sink,
	}
}

// AddProduct registers p under its name. Registering another product with the
// same name replaces the earlier mapping.
func (s *Store) AddProduct(p *product.Product) {
	s.catalog[p.Name] = p
	s.sink.Println(fmt.Sprintf("Producto '%s' añadido al catálogo.", p.Name))
}

// Lookup returns the cataloged product under name, or nil.
func (s *Store) Lookup(name string) *product.Product { return s.catalog[name] }

func (s *Store) CatalogSize() int { return len(s.catalog) }

// ShowCatalog emits the catalog listing sorted by product name. Read-only.
func (s *Store) ShowCatalog() {
	s.sink.Println(fmt.Sprintf("--- Catálogo de %s ---", s.Name))
	if len(s.catalog) == 0 {
		s.sink.Println("Catálogo vacío.")
		return
	}
	names := make([]string, 0, len(s.catalog))
	for name := range s.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s.sink.Println(fmt.Sprintf("- %s", s.catalog[name]))
	}
	s.sink.Println("------------------------------")
}

// ProcessPurchase runs the two-phase checkout for c's cart: validate every
// line against current stock, then commit. The transaction is all-or-nothing.
// Any failure past the empty-cart guard discards the ENTIRE cart, including
// lines that would have validated; callers must treat that as intentional,
// not something to paper over.
func (s *Store) ProcessPurchase(c *customer.Customer) *PurchaseResult {
	s.sink.Println(fmt.Sprintf("--- Procesando compra de %s ---", c.Name))

	lines := c.CartLines()
	if len(lines) == 0 {
		s.sink.Println("Carrito vacío. Compra cancelada.")
		return &PurchaseResult{Outcome: OutcomeEmptyCart}
	}

	for _, line := range lines {
		if line.Product.Stock < line.Quantity {
			return s.cancel(c, line.Product.Name)
		}
	}

	// Total is computed before any stock moves.
	total := c.CartTotal()
	for _, line := range lines {
		if err := line.Product.Deduct(line.Quantity); err != nil {
			return s.cancel(c, line.Product.Name)
		}
		s.sink.Println(fmt.Sprintf("Stock de %s ahora: %d", line.Product.Name, line.Product.Stock))
	}

	s.sink.Println(fmt.Sprintf("Compra de $%s completada para %s.", total.StringFixed(2), c.Name))
	c.EmptyCart()
	return &PurchaseResult{Outcome: OutcomeCompleted, Total: total}
}

func (s *Store) cancel(c *customer.Customer, productName string) *PurchaseResult {
	s.sink.Println(fmt.Sprintf("ERROR: %s sin suficiente stock. Compra cancelada.", productName))
	c.EmptyCart()
	return &PurchaseResult{Outcome: OutcomeInsufficientStock, FailedProduct: productName}
}
