package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retailsim/tienda/internal/display"
	"github.com/retailsim/tienda/internal/domain/customer"
	"github.com/retailsim/tienda/internal/domain/product"
)

func mustProduct(t *testing.T, name, price string, stock int) *product.Product {
	t.Helper()
	p, err := product.New(name, decimal.RequireFromString(price), stock)
	require.NoError(t, err)
	return p
}

func mustCustomer(t *testing.T, name, id string, sink display.Sink) *customer.Customer {
	t.Helper()
	c, err := customer.New(name, id, sink)
	require.NoError(t, err)
	return c
}

func TestAddProduct(t *testing.T) {
	rec := display.NewRecorder()
	s := New("La Tienda de Manuel Lapo", rec)
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)

	s.AddProduct(laptop)
	assert.Same(t, laptop, s.Lookup("Laptop Gamer"))
	assert.Equal(t, []string{"Producto 'Laptop Gamer' añadido al catálogo."}, rec.Lines())
}

func TestAddProduct_LastRegistrationWins(t *testing.T) {
	s := New("Tienda", display.Nop())
	first := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	second := mustProduct(t, "Laptop Gamer", "999.99", 3)

	s.AddProduct(first)
	s.AddProduct(second)

	assert.Same(t, second, s.Lookup("Laptop Gamer"))
	assert.Equal(t, 1, s.CatalogSize())
}

func TestShowCatalog_Empty(t *testing.T) {
	rec := display.NewRecorder()
	s := New("Tienda", rec)

	s.ShowCatalog()
	assert.Equal(t, []string{
		"--- Catálogo de Tienda ---",
		"Catálogo vacío.",
	}, rec.Lines())
}

func TestShowCatalog(t *testing.T) {
	rec := display.NewRecorder()
	s := New("La Tienda de Manuel Lapo", rec)
	s.AddProduct(mustProduct(t, "Teclado Mecánico", "80.50", 10))
	s.AddProduct(mustProduct(t, "Laptop Gamer", "1200.00", 5))
	rec.Reset()

	s.ShowCatalog()
	assert.Equal(t, []string{
		"--- Catálogo de La Tienda de Manuel Lapo ---",
		"- Laptop Gamer ($1200.00) - Stock: 5",
		"- Teclado Mecánico ($80.50) - Stock: 10",
		"------------------------------",
	}, rec.Lines())
}

func TestProcessPurchase_EmptyCart(t *testing.T) {
	rec := display.NewRecorder()
	s := New("Tienda", rec)
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	s.AddProduct(laptop)
	c := mustCustomer(t, "Manuel Lapo", "ML001", nil)
	rec.Reset()

	result := s.ProcessPurchase(c)

	assert.Equal(t, OutcomeEmptyCart, result.Outcome)
	assert.False(t, result.Completed())
	assert.Equal(t, 5, laptop.Stock)
	assert.Equal(t, 0, c.CartSize())
	assert.Equal(t, []string{
		"--- Procesando compra de Manuel Lapo ---",
		"Carrito vacío. Compra cancelada.",
	}, rec.Lines())
}

func TestProcessPurchase_Commits(t *testing.T) {
	rec := display.NewRecorder()
	s := New("Tienda", rec)
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	teclado := mustProduct(t, "Teclado Mecánico", "80.50", 10)
	s.AddProduct(laptop)
	s.AddProduct(teclado)

	c := mustCustomer(t, "Manuel Lapo", "ML001", nil)
	require.True(t, c.AddToCart(laptop, 2))
	require.True(t, c.AddToCart(teclado, 2))
	wantTotal := c.CartTotal()
	rec.Reset()

	result := s.ProcessPurchase(c)

	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.True(t, result.Completed())
	assert.True(t, result.Total.Equal(wantTotal), "reported total must equal the pre-purchase cart total")
	assert.Equal(t, 3, laptop.Stock)
	assert.Equal(t, 8, teclado.Stock)
	assert.Equal(t, 0, c.CartSize())
	assert.Equal(t, []string{
		"--- Procesando compra de Manuel Lapo ---",
		"Stock de Laptop Gamer ahora: 3",
		"Stock de Teclado Mecánico ahora: 8",
		"Compra de $2561.00 completada para Manuel Lapo.",
	}, rec.Lines())
}

func TestProcessPurchase_InsufficientStockClearsWholeCart(t *testing.T) {
	rec := display.NewRecorder()
	s := New("Tienda", rec)
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	teclado := mustProduct(t, "Teclado Mecánico", "80.50", 10)
	s.AddProduct(laptop)
	s.AddProduct(teclado)

	c := mustCustomer(t, "Manuel Lapo", "ML001", nil)
	require.True(t, c.AddToCart(laptop, 2)) // would have validated
	require.True(t, c.AddToCart(teclado, 10))
	require.True(t, c.AddToCart(teclado, 2)) // cart now holds 12, stock is 10
	rec.Reset()

	result := s.ProcessPurchase(c)

	require.Equal(t, OutcomeInsufficientStock, result.Outcome)
	assert.False(t, result.Completed())
	assert.Equal(t, "Teclado Mecánico", result.FailedProduct)
	assert.Equal(t, 5, laptop.Stock, "no partial commit")
	assert.Equal(t, 10, teclado.Stock)
	assert.Equal(t, 0, c.CartSize(), "the whole cart is discarded, valid lines included")
	assert.Equal(t, []string{
		"--- Procesando compra de Manuel Lapo ---",
		"ERROR: Teclado Mecánico sin suficiente stock. Compra cancelada.",
	}, rec.Lines())
}

// The full demo scenario: an optimistic over-add that passes at add time,
// fails at checkout and wipes the cart, then a second customer buying out the
// remaining stock.
func TestProcessPurchase_EndToEndScenario(t *testing.T) {
	s := New("La Tienda de Manuel Lapo", display.Nop())
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	teclado := mustProduct(t, "Teclado Mecánico", "80.50", 10)
	s.AddProduct(laptop)
	s.AddProduct(teclado)

	manuel := mustCustomer(t, "Manuel Lapo", "ML001", nil)
	require.True(t, manuel.AddToCart(laptop, 1))
	require.True(t, manuel.AddToCart(teclado, 2))
	require.True(t, manuel.AddToCart(laptop, 1))
	require.True(t, manuel.AddToCart(teclado, 10), "add checks current stock (10), not carted quantities")
	assert.Equal(t, 2, manuel.CartQuantity("Laptop Gamer"))
	assert.Equal(t, 12, manuel.CartQuantity("Teclado Mecánico"))

	result := s.ProcessPurchase(manuel)
	require.Equal(t, OutcomeInsufficientStock, result.Outcome)
	assert.Equal(t, "Teclado Mecánico", result.FailedProduct)
	assert.Equal(t, 5, laptop.Stock)
	assert.Equal(t, 10, teclado.Stock)
	assert.Equal(t, 0, manuel.CartSize())

	maribel := mustCustomer(t, "Maribel Salinas", "MS002", nil)
	require.True(t, maribel.AddToCart(laptop, 5))

	result = s.ProcessPurchase(maribel)
	require.Equal(t, OutcomeCompleted, result.Outcome)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("6000.00")), "got %s", result.Total)
	assert.Equal(t, 0, laptop.Stock)
	assert.Equal(t, 0, maribel.CartSize())
}

// Stock mutations go through the shared Product instances, so they are
// visible to any cart still holding a reference.
func TestProcessPurchase_SharedReferences(t *testing.T) {
	s := New("Tienda", display.Nop())
	laptop := mustProduct(t, "Laptop Gamer", "1200.00", 5)
	s.AddProduct(laptop)

	buyer := mustCustomer(t, "Manuel Lapo", "ML001", nil)
	watcher := mustCustomer(t, "Maribel Salinas", "MS002", nil)
	require.True(t, buyer.AddToCart(laptop, 3))
	require.True(t, watcher.AddToCart(laptop, 4))

	require.Equal(t, OutcomeCompleted, s.ProcessPurchase(buyer).Outcome)
	assert.Equal(t, 2, laptop.Stock)
	assert.Same(t, laptop, watcher.CartLines()[0].Product)
	assert.Equal(t, 2, watcher.CartLines()[0].Product.Stock)

	// The watcher's stale 4-unit line now exceeds stock and cancels.
	result := s.ProcessPurchase(watcher)
	assert.Equal(t, OutcomeInsufficientStock, result.Outcome)
	assert.Equal(t, 2, laptop.Stock)
}
