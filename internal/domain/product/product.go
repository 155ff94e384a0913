package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName         = errors.New("product: name is required")
	ErrInvalidPrice      = errors.New("product: price must be zero or greater")
	ErrInvalidStock      = errors.New("product: stock must be zero or greater")
	ErrInvalidQuantity   = errors.New("product: quantity must be greater than zero")
	ErrInsufficientStock = errors.New("product: insufficient stock")
)

// Product is a catalog item. Name doubles as the catalog key, so it must be
// unique within a store. Stock is decremented only when a purchase commits.
type Product struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

func New(name string, price decimal.Decimal, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	return &Product{
		Name:  name,
		Price: price,
		Stock: stock,
	}, nil
}

// Deduct removes quantity units from stock. Only the store's purchase commit
// should call it; availability checks elsewhere read Stock directly.
func (p *Product) Deduct(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

func (p *Product) String() string {
	return fmt.Sprintf("%s ($%s) - Stock: %d", p.Name, p.Price.StringFixed(2), p.Stock)
}
