// Package commanderepo provides the data transfer objects and mapping
// functions for order persistence.
package commanderepo

import (
	"time"

	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"
)

// CommandeDTO represents the database structure for persisting order aggregates.
// DeliveredBy is a nullable foreign key to the livreur table; it is kept as a
// plain column so removing a livreur never touches its orders.
type CommandeDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Montant        int       `gorm:"type:int;not null"`
	DateCommande   time.Time `gorm:"type:date;not null"`
	Quantite       int       `gorm:"type:int;not null"`
	NumeroCommande int       `gorm:"type:int;not null"`
	DeliveredBy    *int64    `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (CommandeDTO) TableName() string {
	return "commandes"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *commande.Commande) CommandeDTO {
	var deliveredBy *int64
	if id := aggregate.DeliveredBy(); id != nil {
		value := id.Value()
		deliveredBy = &value
	}

	return CommandeDTO{
		ID:             aggregate.ID().Value(),
		Montant:        aggregate.Montant(),
		DateCommande:   aggregate.DateCommande(),
		Quantite:       aggregate.Quantite(),
		NumeroCommande: aggregate.NumeroCommande(),
		DeliveredBy:    deliveredBy,
	}
}

// toDomain converts a database row back to an order aggregate.
func toDomain(dto CommandeDTO) (*commande.Commande, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var deliveredBy *kernel.ID
	if dto.DeliveredBy != nil {
		livreurID, idErr := kernel.NewID(*dto.DeliveredBy)
		if idErr != nil {
			return nil, idErr
		}
		deliveredBy = &livreurID
	}

	return commande.RestoreCommande(id, dto.Montant, dto.DateCommande, dto.Quantite, dto.NumeroCommande, deliveredBy)
}
