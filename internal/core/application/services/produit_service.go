package services

import (
	"context"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/produit"
	"gardenstore/internal/core/ports"
)

// ProduitService manages the product catalogue.
type ProduitService struct {
	crud CrudService[*produit.Produit, ports.ProduitRepository]
}

// NewProduitService creates a ProduitService.
func NewProduitService(uowFactory ports.UnitOfWorkFactory) *ProduitService {
	return &ProduitService{
		crud: newCrudService[*produit.Produit](uowFactory,
			func(uow ports.UnitOfWork) ports.ProduitRepository { return uow.ProduitRepository() }),
	}
}

// Add persists a new product and returns it with the store-assigned identifier.
func (s *ProduitService) Add(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error) {
	return s.crud.Create(ctx, aggregate)
}

// GetOne retrieves a single product by identifier.
func (s *ProduitService) GetOne(ctx context.Context, id kernel.ID) (*produit.Produit, error) {
	return s.crud.GetOne(ctx, id)
}

// GetAll retrieves every stored product.
func (s *ProduitService) GetAll(ctx context.Context) ([]*produit.Produit, error) {
	return s.crud.GetAll(ctx)
}

// GetByCategorie retrieves the products filed under the given category.
func (s *ProduitService) GetByCategorie(ctx context.Context, categorie produit.Categorie) ([]*produit.Produit, error) {
	if err := categorie.Validate(); err != nil {
		return nil, err
	}

	repo := s.crud.selectRepo(s.crud.uowFactory.Create())
	return repo.GetAllByCategorie(ctx, categorie)
}

// Update overlays the patch onto the stored product and persists the result.
func (s *ProduitService) Update(ctx context.Context, id kernel.ID, patch produit.Patch) (*produit.Produit, error) {
	return s.crud.Update(ctx, id, func(p *produit.Produit) error {
		return p.ApplyPatch(patch)
	})
}

// Delete removes the product and returns its last persisted state.
func (s *ProduitService) Delete(ctx context.Context, id kernel.ID) (*produit.Produit, error) {
	return s.crud.Delete(ctx, id)
}
