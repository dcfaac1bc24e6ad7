package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// active transaction. Client code must explicitly manage the transaction
// lifecycle; repositories obtained before Begin operate outside a transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ClientRepository returns a ClientRepository bound to the current transaction.
	ClientRepository() ClientRepository

	// CommandeRepository returns a CommandeRepository bound to the current transaction.
	CommandeRepository() CommandeRepository

	// LivreurRepository returns a LivreurRepository bound to the current transaction.
	LivreurRepository() LivreurRepository

	// ProduitRepository returns a ProduitRepository bound to the current transaction.
	ProduitRepository() ProduitRepository
}
