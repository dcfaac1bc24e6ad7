// Package produitrepo provides the data transfer objects and mapping
// functions for product persistence.
package produitrepo

import (
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/produit"
)

// ProduitDTO represents the database structure for persisting product aggregates.
// The category is stored by its string representation so rows stay readable
// and survive reordering of the enum.
type ProduitDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Nom         string `gorm:"type:varchar(255);not null"`
	Reference   int    `gorm:"type:int;not null"`
	PrixDeVente int    `gorm:"type:int;not null"`
	Stock       int    `gorm:"type:int;not null"`
	Avis        string `gorm:"type:varchar(255);not null"`
	Categorie   string `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for product entities.
func (ProduitDTO) TableName() string {
	return "produits"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *produit.Produit) ProduitDTO {
	return ProduitDTO{
		ID:          aggregate.ID().Value(),
		Nom:         aggregate.Nom(),
		Reference:   aggregate.Reference(),
		PrixDeVente: aggregate.PrixDeVente(),
		Stock:       aggregate.Stock(),
		Avis:        aggregate.Avis(),
		Categorie:   aggregate.Categorie().String(),
	}
}

// toDomain converts a database row back to a product aggregate.
func toDomain(dto ProduitDTO) (*produit.Produit, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	categorie, err := produit.CategorieFromString(dto.Categorie)
	if err != nil {
		return nil, err
	}

	return produit.RestoreProduit(id, dto.Nom, dto.Reference, dto.PrixDeVente, dto.Stock, dto.Avis, categorie)
}
