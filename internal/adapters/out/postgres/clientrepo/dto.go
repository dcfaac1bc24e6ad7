// Package clientrepo provides the data transfer objects and mapping functions
// for client persistence.
package clientrepo

import (
	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client aggregates.
// The primary key is generated by the database on insert; the mail column is
// unique because it doubles as the login identity.
type ClientDTO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Nom          string     `gorm:"type:varchar(255);not null"`
	Prenom       string     `gorm:"type:varchar(255);not null"`
	Adresse      AdresseDTO `gorm:"embedded;embeddedPrefix:adresse_"`
	Mail         string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Telephone    int        `gorm:"type:int;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// AdresseDTO represents the embedded postal address within the client table.
type AdresseDTO struct {
	Rue        string `gorm:"type:varchar(255);not null"`
	Ville      string `gorm:"type:varchar(255);not null"`
	Numero     int    `gorm:"type:int;not null"`
	CodePostal int    `gorm:"type:int;not null"`
}

// fromDomain converts a client aggregate to its database representation.
// A zero domain ID maps to a zero column value so the database generates
// the key on insert.
func fromDomain(aggregate *client.Client) ClientDTO {
	adresse := aggregate.Adresse()

	return ClientDTO{
		ID:     aggregate.ID().Value(),
		Nom:    aggregate.Nom(),
		Prenom: aggregate.Prenom(),
		Adresse: AdresseDTO{
			Rue:        adresse.Rue(),
			Ville:      adresse.Ville(),
			Numero:     adresse.Numero(),
			CodePostal: adresse.CodePostal(),
		},
		Mail:         aggregate.Mail(),
		Telephone:    aggregate.Telephone(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

// toDomain converts a database row back to a client aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	adresse, err := client.NewAdresse(dto.Adresse.Rue, dto.Adresse.Ville, dto.Adresse.Numero, dto.Adresse.CodePostal)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Nom, dto.Prenom, adresse, dto.Mail, dto.Telephone, dto.PasswordHash)
}
