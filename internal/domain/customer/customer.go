package customer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/retailsim/tienda/internal/display"
	"github.com/retailsim/tienda/internal/domain/product"
)

var (
	ErrEmptyName = errors.New("customer: name is required")
	ErrEmptyID   = errors.New("customer: id is required")
)

// Line is one cart entry: a shared reference to the catalog product plus the
// requested quantity. Quantities are always >= 1.
type Line struct {
	Product  *product.Product
	Quantity int
}

// Customer is an identity plus a cart of pending purchases. The cart holds
// references to the same Product instances the store catalogs, so stock
// mutations made by the store are visible here too.
type Customer struct {
	Name string
	ID   string

	cart map[string]*Line // keyed by product name
	sink display.Sink
}

func New(name, id string, sink display.Sink) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if id == "" {
		return nil, ErrEmptyID
	}
	if sink == nil {
		sink = display.Nop()
	}
	return &Customer{
		Name: name,
		ID:   id,
		cart: make(map[string]*Line),
		sink: sink,
	}, nil
}

// AddToCart places quantity units of p in the cart, merging with any existing
// entry for the same product. The stock check is against p's stock at call
// time only; nothing is reserved, and quantities already sitting in carts are
// not counted. The authoritative check happens when the store processes the
// purchase.
func (c *Customer) AddToCart(p *product.Product, quantity int) bool {
	if quantity < 1 {
		c.sink.Println(fmt.Sprintf("Cantidad inválida para %s.", p.Name))
		return false
	}
	if p.Stock < quantity {
		c.sink.Println(fmt.Sprintf("No hay suficiente stock de %s.", p.Name))
		return false
	}
	if line, ok := c.cart[p.Name]; ok {
		line.Quantity += quantity
	} else {
		c.cart[p.Name] = &Line{Product: p, Quantity: quantity}
	}
	c.sink.Println(fmt.Sprintf("%s añadió %dx %s al carrito.", c.Name, quantity, p.Name))
	return true
}

// CartTotal sums price*quantity over all cart entries. Pure; stock and cart
// are left untouched.
func (c *Customer) CartTotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.cart {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// CartLines returns the cart entries sorted by product name.
func (c *Customer) CartLines() []*Line {
	lines := make([]*Line, 0, len(c.cart))
	for _, line := range c.cart {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Product.Name < lines[j].Product.Name
	})
	return lines
}

// CartQuantity returns the quantity currently carted for the named product,
// zero when absent.
func (c *Customer) CartQuantity(productName string) int {
	if line, ok := c.cart[productName]; ok {
		return line.Quantity
	}
	return 0
}

func (c *Customer) CartSize() int { return len(c.cart) }

// EmptyCart discards every entry. The store calls it after each purchase
// attempt, successful or not.
func (c *Customer) EmptyCart() {
	c.cart = make(map[string]*Line)
}

func (c *Customer) String() string {
	return fmt.Sprintf("Cliente: %s (ID: %s)", c.Name, c.ID)
}
