// Package livreurrepo provides the data transfer objects and mapping
// functions for livreur persistence.
package livreurrepo

import (
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/livreur"
)

// LivreurDTO represents the database structure for persisting livreur aggregates.
type LivreurDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Nom        string `gorm:"type:varchar(255);not null"`
	Prenom     string `gorm:"type:varchar(255);not null"`
	Email      string `gorm:"type:varchar(255)"`
	NomContact string `gorm:"type:varchar(255);not null"`
	Societe    string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for livreur entities.
func (LivreurDTO) TableName() string {
	return "livreurs"
}

// fromDomain converts a livreur aggregate to its database representation.
func fromDomain(aggregate *livreur.Livreur) LivreurDTO {
	return LivreurDTO{
		ID:         aggregate.ID().Value(),
		Nom:        aggregate.Nom(),
		Prenom:     aggregate.Prenom(),
		Email:      aggregate.Email(),
		NomContact: aggregate.NomContact(),
		Societe:    aggregate.Societe(),
	}
}

// toDomain converts a database row back to a livreur aggregate.
func toDomain(dto LivreurDTO) (*livreur.Livreur, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return livreur.RestoreLivreur(id, dto.Nom, dto.Prenom, dto.Email, dto.NomContact, dto.Societe)
}
