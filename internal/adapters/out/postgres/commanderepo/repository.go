package commanderepo

import (
	"context"
	"errors"

	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCommandeRepository implements CommandeRepository using GORM.
type GormCommandeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormCommandeRepository creates a new GORM order repository.
func NewGormCommandeRepository(db *gorm.DB, tracker aggregateTracker) *GormCommandeRepository {
	return &GormCommandeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and returns it with the generated identifier.
func (r *GormCommandeRepository) Add(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error) {
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

// Update saves an existing order to the database.
func (r *GormCommandeRepository) Update(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error) {
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

// Get retrieves an order by ID.
func (r *GormCommandeRepository) Get(ctx context.Context, id kernel.ID) (*commande.Commande, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommandeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored order in insertion order.
func (r *GormCommandeRepository) GetAll(ctx context.Context) ([]*commande.Commande, error) {
	var dtos []CommandeDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByLivreur retrieves the orders assigned to the given livreur.
func (r *GormCommandeRepository) GetAllByLivreur(ctx context.Context, livreurID kernel.ID) ([]*commande.Commande, error) {
	if err := livreurID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CommandeDTO
	if err := r.db.WithContext(ctx).
		Where("delivered_by = ?", livreurID.Value()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// Delete removes the order with the given identifier.
func (r *GormCommandeRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CommandeDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", id.String())
	}

	return nil
}

func toDomainSlice(dtos []CommandeDTO) ([]*commande.Commande, error) {
	commandes := make([]*commande.Commande, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		commandes = append(commandes, c)
	}

	return commandes, nil
}
