package ports

import (
	"context"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/produit"
)

// ProduitRepository defines the persistence contract for product aggregates.
type ProduitRepository interface {
	// Add persists a new product and returns it with the store-assigned identifier.
	Add(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error)

	// Update persists changes to an existing product.
	// Returns an ObjectNotFoundError when the product does not exist.
	Update(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error)

	// Get retrieves a product by its identifier.
	// Returns an ObjectNotFoundError when no product matches.
	Get(ctx context.Context, id kernel.ID) (*produit.Produit, error)

	// GetAll retrieves every stored product.
	GetAll(ctx context.Context) ([]*produit.Produit, error)

	// GetAllByCategorie retrieves the products filed under the given category.
	// An empty slice is a valid result.
	GetAllByCategorie(ctx context.Context, categorie produit.Categorie) ([]*produit.Produit, error)

	// Delete removes the product with the given identifier.
	// Returns an ObjectNotFoundError when no product matches.
	Delete(ctx context.Context, id kernel.ID) error
}
