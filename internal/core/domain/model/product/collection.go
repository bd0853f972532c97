package product

import "strings"

// Collection is an ordered list of products.
type Collection struct {
	products []*Product
}

// NewCollection creates an empty Collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends p to the end of the collection.
func (c *Collection) Add(p *Product) {
	c.products = append(c.products, p)
}

// Combine appends p and returns the same collection, so calls can be chained:
//
//	c.Combine(tablet).Combine(book)
func (c *Collection) Combine(p *Product) *Collection {
	c.Add(p)
	return c
}

// Products returns a copy of the products in insertion order.
func (c *Collection) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the collection.
func (c *Collection) Len() int {
	return len(c.products)
}

// Describe renders one "name - price" line per product, each ending in a newline.
func (c *Collection) Describe() string {
	var b strings.Builder
	for _, p := range c.products {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String()
}
