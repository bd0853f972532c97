package delivery

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Registry is an ordered collection of deliveries of type T.
//
// Registry[Delivery] holds any variant; Registry[*PersonDelivery] and similar
// instantiations hold a single variant. Entries keep insertion order and
// duplicate numbers are allowed.
type Registry[T Delivery] struct {
	deliveries []T
}

// NewRegistry creates an empty Registry.
func NewRegistry[T Delivery]() *Registry[T] {
	return &Registry[T]{}
}

// NewPersonRegistry creates an empty Registry restricted to person deliveries.
func NewPersonRegistry() *Registry[*PersonDelivery] {
	return NewRegistry[*PersonDelivery]()
}

// Add appends d.
func (r *Registry[T]) Add(d T) {
	r.deliveries = append(r.deliveries, d)
}

// Find returns the first delivery with the given number.
//
// Returns:
//   - (delivery, true) when found
//   - (zero value, false) when no delivery has that number
func (r *Registry[T]) Find(id int) (T, bool) {
	for _, d := range r.deliveries {
		if d.ID() == id {
			return d, true
		}
	}

	var zero T
	return zero, false
}

// Remove drops every delivery with the given number. Unknown numbers are ignored.
func (r *Registry[T]) Remove(id int) {
	r.deliveries = slices.DeleteFunc(r.deliveries, func(d T) bool {
		return d.ID() == id
	})
}

// List returns a copy of the deliveries in insertion order.
func (r *Registry[T]) List() []T {
	out := make([]T, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}

// Len returns the number of deliveries held.
func (r *Registry[T]) Len() int {
	return len(r.deliveries)
}

// TotalCost sums the stored costs of deliveries. An empty slice totals zero.
func TotalCost[T Delivery](deliveries []T) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deliveries {
		total = total.Add(d.Cost())
	}
	return total
}
