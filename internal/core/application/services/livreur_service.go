package services

import (
	"context"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/livreur"
	"gardenstore/internal/core/ports"
)

// LivreurService manages delivery partners.
type LivreurService struct {
	crud CrudService[*livreur.Livreur, ports.LivreurRepository]
}

// NewLivreurService creates a LivreurService.
func NewLivreurService(uowFactory ports.UnitOfWorkFactory) *LivreurService {
	return &LivreurService{
		crud: newCrudService[*livreur.Livreur](uowFactory,
			func(uow ports.UnitOfWork) ports.LivreurRepository { return uow.LivreurRepository() }),
	}
}

// Add persists a new livreur and returns it with the store-assigned identifier.
func (s *LivreurService) Add(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error) {
	return s.crud.Create(ctx, aggregate)
}

// GetOne retrieves a single livreur by identifier.
func (s *LivreurService) GetOne(ctx context.Context, id kernel.ID) (*livreur.Livreur, error) {
	return s.crud.GetOne(ctx, id)
}

// GetAll retrieves every stored livreur.
func (s *LivreurService) GetAll(ctx context.Context) ([]*livreur.Livreur, error) {
	return s.crud.GetAll(ctx)
}

// Update overlays the patch onto the stored livreur and persists the result.
func (s *LivreurService) Update(ctx context.Context, id kernel.ID, patch livreur.Patch) (*livreur.Livreur, error) {
	return s.crud.Update(ctx, id, func(l *livreur.Livreur) error {
		return l.ApplyPatch(patch)
	})
}

// Delete removes the livreur and returns its last persisted state.
// Orders assigned to the livreur are left untouched.
func (s *LivreurService) Delete(ctx context.Context, id kernel.ID) (*livreur.Livreur, error) {
	return s.crud.Delete(ctx, id)
}
