package produitrepo

import (
	"context"
	"errors"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/produit"
	"gardenstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProduitRepository implements ProduitRepository using GORM.
type GormProduitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormProduitRepository creates a new GORM product repository.
func NewGormProduitRepository(db *gorm.DB, tracker aggregateTracker) *GormProduitRepository {
	return &GormProduitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product and returns it with the generated identifier.
func (r *GormProduitRepository) Add(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	saved, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(saved.ID(), saved)
	return saved, nil
}

// Update saves an existing product to the database.
func (r *GormProduitRepository) Update(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("id", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Get retrieves a product by ID.
func (r *GormProduitRepository) Get(ctx context.Context, id kernel.ID) (*produit.Produit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProduitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored product in insertion order.
func (r *GormProduitRepository) GetAll(ctx context.Context) ([]*produit.Produit, error) {
	var dtos []ProduitDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByCategorie retrieves the products filed under the given category.
func (r *GormProduitRepository) GetAllByCategorie(ctx context.Context, categorie produit.Categorie) ([]*produit.Produit, error) {
	if err := categorie.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProduitDTO
	if err := r.db.WithContext(ctx).
		Where("categorie = ?", categorie.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes the product with the given identifier.
func (r *GormProduitRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProduitDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", id.String())
	}

	return nil
}

func toDomainSlice(dtos []ProduitDTO) ([]*produit.Produit, error) {
	produits := make([]*produit.Produit, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		produits = append(produits, p)
	}

	return produits, nil
}
