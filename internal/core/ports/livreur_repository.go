package ports

import (
	"context"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/livreur"
)

// LivreurRepository defines the persistence contract for livreur aggregates.
type LivreurRepository interface {
	// Add persists a new livreur and returns it with the store-assigned identifier.
	Add(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error)

	// Update persists changes to an existing livreur.
	// Returns an ObjectNotFoundError when the livreur does not exist.
	Update(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error)

	// Get retrieves a livreur by its identifier.
	// Returns an ObjectNotFoundError when no livreur matches.
	Get(ctx context.Context, id kernel.ID) (*livreur.Livreur, error)

	// GetAll retrieves every stored livreur.
	GetAll(ctx context.Context) ([]*livreur.Livreur, error)

	// Delete removes the livreur with the given identifier.
	// Orders referencing the livreur keep their foreign key; removal never
	// cascades to the commande table.
	// Returns an ObjectNotFoundError when no livreur matches.
	Delete(ctx context.Context, id kernel.ID) error
}
