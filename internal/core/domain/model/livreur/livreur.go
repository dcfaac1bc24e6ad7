package livreur

import (
	"errors"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"
	"gardenstore/internal/pkg/guard"
)

// Domain errors for livreur operations.
var (
	// ErrNomIsRequired is returned when attempting to create a livreur without a last name.
	ErrNomIsRequired = errs.NewValueIsRequiredError("nom")
	// ErrPrenomIsRequired is returned when attempting to create a livreur without a first name.
	ErrPrenomIsRequired = errs.NewValueIsRequiredError("prenom")
	// ErrNomContactIsRequired is returned when the contact name is blank.
	ErrNomContactIsRequired = errs.NewValueIsRequiredError("nomContact")
	// ErrSocieteIsRequired is returned when the company name is blank.
	ErrSocieteIsRequired = errs.NewValueIsRequiredError("societe")
	// ErrLivreurIsNotConstructed is returned when using an improperly initialized Livreur.
	ErrLivreurIsNotConstructed = errors.New("Livreur must be created via NewLivreur constructor")
)

// Livreur represents a delivery partner fulfilling orders.
// The orders assigned to a livreur are a derived view read from the order
// side of the relation; the livreur aggregate itself carries no order list,
// and deleting a livreur never cascades to its orders.
type Livreur struct {
	// id uniquely identifies the livreur; zero until persisted
	id kernel.ID
	// nom is the livreur's last name
	nom string
	// prenom is the livreur's first name
	prenom string
	// email is the optional contact email
	email string
	// nomContact is the name of the contact person
	nomContact string
	// societe is the delivery company name
	societe string
	// guard ensures the livreur was properly constructed
	guard guard.ConstructorGuard
}

// NewLivreur creates a new, not yet persisted Livreur.
// The email is optional; all other fields are required.
func NewLivreur(nom, prenom, email, nomContact, societe string) (*Livreur, error) {
	l := &Livreur{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setNom(nom),
		l.setPrenom(prenom),
		l.setEmail(email),
		l.setNomContact(nomContact),
		l.setSociete(societe),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLivreur reconstructs a persisted Livreur from storage.
func RestoreLivreur(id kernel.ID, nom, prenom, email, nomContact, societe string) (*Livreur, error) {
	l, err := NewLivreur(nom, prenom, email, nomContact, societe)
	if err != nil {
		return nil, err
	}

	if err = l.setID(id); err != nil {
		return nil, err
	}

	return l, nil
}

// Patch describes a partial update of a livreur.
// Nil fields keep their current values.
type Patch struct {
	Nom        *string
	Prenom     *string
	Email      *string
	NomContact *string
	Societe    *string
}

// ApplyPatch overlays the supplied fields onto the livreur.
func (l *Livreur) ApplyPatch(patch Patch) error {
	if err := l.Validate(); err != nil {
		return err
	}

	var err error
	if patch.Nom != nil {
		err = errors.Join(err, l.setNom(*patch.Nom))
	}
	if patch.Prenom != nil {
		err = errors.Join(err, l.setPrenom(*patch.Prenom))
	}
	if patch.Email != nil {
		err = errors.Join(err, l.setEmail(*patch.Email))
	}
	if patch.NomContact != nil {
		err = errors.Join(err, l.setNomContact(*patch.NomContact))
	}
	if patch.Societe != nil {
		err = errors.Join(err, l.setSociete(*patch.Societe))
	}

	return err
}

// IsEqual compares two livreurs by identifier.
func (l *Livreur) IsEqual(other *Livreur) bool {
	if other == nil {
		return false
	}
	return l.id.IsEqual(other.id)
}

// Validate checks if the Livreur was properly constructed via its constructor.
func (l *Livreur) Validate() error {
	if l == nil {
		return ErrLivreurIsNotConstructed
	}
	return l.guard.Validate(ErrLivreurIsNotConstructed)
}

// ID returns the store-assigned identifier; zero for unsaved livreurs.
func (l *Livreur) ID() kernel.ID {
	return l.id
}

// Nom returns the livreur's last name.
func (l *Livreur) Nom() string {
	return l.nom
}

// Prenom returns the livreur's first name.
func (l *Livreur) Prenom() string {
	return l.prenom
}

// Email returns the optional contact email; empty when not set.
func (l *Livreur) Email() string {
	return l.email
}

// NomContact returns the name of the contact person.
func (l *Livreur) NomContact() string {
	return l.nomContact
}

// Societe returns the delivery company name.
func (l *Livreur) Societe() string {
	return l.societe
}

func (l *Livreur) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *Livreur) setNom(nom string) error {
	if nom == "" {
		return ErrNomIsRequired
	}

	l.nom = nom
	return nil
}

func (l *Livreur) setPrenom(prenom string) error {
	if prenom == "" {
		return ErrPrenomIsRequired
	}

	l.prenom = prenom
	return nil
}

func (l *Livreur) setEmail(email string) error {
	// optional in the data model
	l.email = email
	return nil
}

func (l *Livreur) setNomContact(nomContact string) error {
	if nomContact == "" {
		return ErrNomContactIsRequired
	}

	l.nomContact = nomContact
	return nil
}

func (l *Livreur) setSociete(societe string) error {
	if societe == "" {
		return ErrSocieteIsRequired
	}

	l.societe = societe
	return nil
}
