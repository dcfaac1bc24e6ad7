package ports

import (
	"context"

	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"
)

// CommandeRepository defines the persistence contract for order aggregates.
type CommandeRepository interface {
	// Add persists a new order and returns it with the store-assigned identifier.
	Add(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error)

	// Update persists changes to an existing order.
	// Returns an ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error)

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError when no order matches.
	Get(ctx context.Context, id kernel.ID) (*commande.Commande, error)

	// GetAll retrieves every stored order.
	GetAll(ctx context.Context) ([]*commande.Commande, error)

	// GetAllByLivreur retrieves the orders assigned to the given livreur.
	// An empty slice is a valid result: a livreur may have no orders.
	GetAllByLivreur(ctx context.Context, livreurID kernel.ID) ([]*commande.Commande, error)

	// Delete removes the order with the given identifier.
	// Returns an ObjectNotFoundError when no order matches.
	Delete(ctx context.Context, id kernel.ID) error
}
