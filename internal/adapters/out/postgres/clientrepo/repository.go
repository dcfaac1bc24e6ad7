package clientrepo

import (
	"context"
	"errors"

	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client and returns it with the generated identifier.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) (*client.Client, error) {
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

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) (*client.Client, error) {
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

// Get retrieves a client by ID.
func (r *GormClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("id", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every stored client in insertion order.
func (r *GormClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	var dtos []ClientDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	clients := make([]*client.Client, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	return clients, nil
}

// GetByEmail retrieves the client stored under the given mail address.
func (r *GormClientRepository) GetByEmail(ctx context.Context, mail string) (*client.Client, error) {
	if mail == "" {
		return nil, errs.NewValueIsRequiredError("mail")
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "mail = ?", mail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("mail", mail)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the client with the given identifier.
func (r *GormClientRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Value())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("id", id.String())
	}

	return nil
}
