// Package guard provides the constructor guard used by domain types to tell
// values built through their constructors apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil
// validation error for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its designated constructor.
// Embed it in a struct, set it with NewConstructorGuard inside the constructor
// and check it from the type's Validate method:
//
//	type Product struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduct(name string) *Product {
//	    return &Product{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (p *Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
//
// The zero value reports "not constructed". ConstructorGuard is immutable and
// safe to copy and to read from multiple goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard created by NewConstructorGuard.
// For a zero-value guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
