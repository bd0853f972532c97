package product

import (
	"errors"

	"deliverytracker/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item handed over to a recipient.
//
// Price is kept as a decimal so cost formulas and totals never accumulate
// binary rounding errors. Weight is in kilograms.
type Product struct {
	name   string
	price  decimal.Decimal
	weight float64
	guard  guard.ConstructorGuard
}

// NewProduct creates a Product. Values are taken as given.
//
// Example:
//
//	tablet := product.NewProduct("Tablet", decimal.RequireFromString("1200.00"), 2.5)
func NewProduct(name string, price decimal.Decimal, weight float64) *Product {
	return &Product{
		name:   name,
		price:  price,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate reports whether p was built by NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// Weight returns the product weight in kilograms.
func (p *Product) Weight() float64 {
	return p.weight
}

// SetName renames the product.
func (p *Product) SetName(name string) {
	p.name = name
}

// SetPrice changes the product price.
func (p *Product) SetPrice(price decimal.Decimal) {
	p.price = price
}

// SetWeight changes the product weight.
func (p *Product) SetWeight(weight float64) {
	p.weight = weight
}

// String renders the product as "name - price" with the price at two decimals.
func (p *Product) String() string {
	return p.name + " - " + p.price.StringFixed(2)
}
