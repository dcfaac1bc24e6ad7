// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern and wires the entity repositories to it.
//
// Each business operation gets a fresh unit of work from the factory.
// Repositories handed out before Begin run against the main connection;
// after Begin they share the pending transaction until Commit or Rollback.
package postgres

import (
	"context"

	"gardenstore/internal/adapters/out/postgres/clientrepo"
	"gardenstore/internal/adapters/out/postgres/commanderepo"
	"gardenstore/internal/adapters/out/postgres/livreurrepo"
	"gardenstore/internal/adapters/out/postgres/produitrepo"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each created instance is isolated from the others.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the entity
// repositories and records which aggregates the transaction touched.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction.
// Calling Begin again on an instance with an open transaction is a no-op;
// nested transactions are never created.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is open, which lets
// callers defer a rollback unconditionally after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// ClientRepository returns a ClientRepository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) ClientRepository() ports.ClientRepository {
	return clientrepo.NewGormClientRepository(uow.conn(), uow)
}

// CommandeRepository returns a CommandeRepository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) CommandeRepository() ports.CommandeRepository {
	return commanderepo.NewGormCommandeRepository(uow.conn(), uow)
}

// LivreurRepository returns a LivreurRepository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) LivreurRepository() ports.LivreurRepository {
	return livreurrepo.NewGormLivreurRepository(uow.conn(), uow)
}

// ProduitRepository returns a ProduitRepository bound to the current transaction,
// or to the main connection when no transaction is open.
func (uow *GormUnitOfWork) ProduitRepository() ports.ProduitRepository {
	return produitrepo.NewGormProduitRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repositories call it on every write so post-commit processing can see
// what the transaction touched.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
