// Package ports defines repository interfaces for the store domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client and returns it with the store-assigned identifier.
	Add(ctx context.Context, aggregate *client.Client) (*client.Client, error)

	// Update persists changes to an existing client.
	// Returns an ObjectNotFoundError when the client does not exist.
	Update(ctx context.Context, aggregate *client.Client) (*client.Client, error)

	// Get retrieves a client by its identifier.
	// Returns an ObjectNotFoundError when no client matches.
	Get(ctx context.Context, id kernel.ID) (*client.Client, error)

	// GetAll retrieves every stored client.
	GetAll(ctx context.Context) ([]*client.Client, error)

	// GetByEmail retrieves the client whose mail matches the given address.
	// The mail column is unique, so at most one client matches.
	// Returns an ObjectNotFoundError when no client matches.
	GetByEmail(ctx context.Context, mail string) (*client.Client, error)

	// Delete removes the client with the given identifier.
	// Returns an ObjectNotFoundError when no client matches.
	Delete(ctx context.Context, id kernel.ID) error
}
