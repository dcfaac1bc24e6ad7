package services

import (
	"context"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/ports"
)

// Entity is the common surface the CRUD engine needs from an aggregate.
type Entity interface {
	// ID returns the store-assigned identifier; zero for unsaved entities.
	ID() kernel.ID

	// Validate reports whether the entity was properly constructed.
	Validate() error
}

// Repository is the common persistence surface the CRUD engine works against.
// The typed repository ports satisfy it structurally; their extra finders stay
// visible to the entity services through the type parameter R.
type Repository[E Entity] interface {
	Add(ctx context.Context, aggregate E) (E, error)
	Update(ctx context.Context, aggregate E) (E, error)
	Get(ctx context.Context, id kernel.ID) (E, error)
	GetAll(ctx context.Context) ([]E, error)
	Delete(ctx context.Context, id kernel.ID) error
}

// CrudService implements the create/read/update/delete lifecycle shared by
// every entity service. E is the aggregate type and R its repository port;
// selectRepo picks that port off a unit of work.
type CrudService[E Entity, R Repository[E]] struct {
	uowFactory ports.UnitOfWorkFactory
	selectRepo func(ports.UnitOfWork) R
}

func newCrudService[E Entity, R Repository[E]](
	uowFactory ports.UnitOfWorkFactory,
	selectRepo func(ports.UnitOfWork) R,
) CrudService[E, R] {
	return CrudService[E, R]{
		uowFactory: uowFactory,
		selectRepo: selectRepo,
	}
}

// GetOne retrieves a single entity by identifier.
// Returns an ObjectNotFoundError when no entity matches.
func (s *CrudService[E, R]) GetOne(ctx context.Context, id kernel.ID) (E, error) {
	var zero E
	if err := id.Validate(); err != nil {
		return zero, err
	}

	repo := s.selectRepo(s.uowFactory.Create())
	return repo.Get(ctx, id)
}

// GetAll retrieves every stored entity.
func (s *CrudService[E, R]) GetAll(ctx context.Context) ([]E, error) {
	repo := s.selectRepo(s.uowFactory.Create())
	return repo.GetAll(ctx)
}

// Create persists a new entity and returns it with the store-assigned
// identifier filled in.
func (s *CrudService[E, R]) Create(ctx context.Context, aggregate E) (E, error) {
	var zero E
	if err := aggregate.Validate(); err != nil {
		return zero, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	saved, err := s.selectRepo(uow).Add(ctx, aggregate)
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return saved, nil
}

// Update loads the entity, applies the mutation and persists the result, all
// within one transaction. The mutation typically overlays a partial patch.
// Returns an ObjectNotFoundError when no entity matches.
func (s *CrudService[E, R]) Update(ctx context.Context, id kernel.ID, mutate func(E) error) (E, error) {
	var zero E
	if err := id.Validate(); err != nil {
		return zero, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := s.selectRepo(uow)

	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	if err = mutate(aggregate); err != nil {
		return zero, err
	}

	saved, err := repo.Update(ctx, aggregate)
	if err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return saved, nil
}

// Delete removes the entity and returns its last persisted state, so callers
// can report what was removed. Returns an ObjectNotFoundError when no entity
// matches; the lookup and the removal share one transaction.
func (s *CrudService[E, R]) Delete(ctx context.Context, id kernel.ID) (E, error) {
	var zero E
	if err := id.Validate(); err != nil {
		return zero, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := s.selectRepo(uow)

	snapshot, err := repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}

	if err = repo.Delete(ctx, id); err != nil {
		return zero, err
	}

	if err = uow.Commit(ctx); err != nil {
		return zero, err
	}

	return snapshot, nil
}
