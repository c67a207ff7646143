package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("price must not be negative")
)

// Product represents a sellable catalog entry.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// NewProduct builds a product ensuring required invariants.
func NewProduct(id int64, name string, price float64) (*Product, error) {
	product := &Product{ID: id}
	if err := product.SetName(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(price); err != nil {
		return nil, err
	}
	return product, nil
}

// SetName trims and validates the product name.
func (p *Product) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice rejects negative prices.
func (p *Product) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	p.Price = price
	return nil
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.SetName(p.Name); err != nil {
		return err
	}
	return p.SetPrice(p.Price)
}
