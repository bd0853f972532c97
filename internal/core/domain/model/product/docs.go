// Package product holds the goods that deliveries carry.
//
// The package includes:
//   - Product: a shipped item with a name, a monetary price and a weight in kilograms
//   - Collection: an ordered list of products that can render a price list
//
// Products are shared by pointer. A delivery keeps a reference to its product,
// so renaming or repricing a product is visible through every delivery that
// carries it, while costs already computed for those deliveries stay as they were.
package product
