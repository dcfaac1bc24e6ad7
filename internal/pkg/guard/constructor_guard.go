// Package guard implements the constructor guard pattern used by domain objects
// to detect zero-value instances that bypassed their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when a nil
// validation error is passed. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. By embedding a ConstructorGuard in a
// struct, you can detect whether the struct was properly initialized through its
// constructor or created as a zero value.
//
// The guard works by maintaining an internal flag that is only set to true when
// the object is created through the proper constructor function. Any attempt to
// use a zero-value struct will fail validation.
//
// Example usage:
//
//	var ErrProduitNotConstructed = errors.New("Produit must be created via NewProduit")
//
//	type Produit struct {
//	    nom   string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduit(nom string) (*Produit, error) {
//	    if nom == "" {
//	        return nil, errors.New("nom is required")
//	    }
//	    return &Produit{nom: nom, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *Produit) Validate() error {
//	    return p.guard.Validate(ErrProduitNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call this in the constructor of domain objects so they can be
// distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for constructed objects; otherwise returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
