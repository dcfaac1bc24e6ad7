package livreurrepo

import (
	"context"
	"errors"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/livreur"
	"gardenstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLivreurRepository implements LivreurRepository using GORM.
type GormLivreurRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormLivreurRepository creates a new GORM livreur repository.
func NewGormLivreurRepository(db *gorm.DB, tracker aggregateTracker) *GormLivreurRepository {
	return &GormLivreurRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new livreur and returns it with the generated identifier.
func (r *GormLivreurRepository) Add(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error) {
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

// Update saves an existing livreur to the database.
func (r *GormLivreurRepository) Update(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error) {
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

// Get retrieves a livreur by ID.
func (r *GormLivreurRepository) Get(ctx context.Context, id kernel.ID) (*livreur.Livreur, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LivreurDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored livreur in insertion order.
func (r *GormLivreurRepository) GetAll(ctx context.Context) ([]*livreur.Livreur, error) {
	var dtos []LivreurDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	livreurs := make([]*livreur.Livreur, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		livreurs = append(livreurs, l)
	}

	return livreurs, nil
}

// Delete removes the livreur with the given identifier.
// Orders referencing the livreur are left untouched.
func (r *GormLivreurRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LivreurDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", id.String())
	}

	return nil
}
