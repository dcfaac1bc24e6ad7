package client

import (
	"errors"

	"gardenstore/internal/pkg/errs"
	"gardenstore/internal/pkg/guard"
)

// Domain errors for adresse construction.
var (
	// ErrRueIsRequired is returned when the street name is blank.
	ErrRueIsRequired = errs.NewValueIsRequiredError("rue")
	// ErrVilleIsRequired is returned when the city is blank.
	ErrVilleIsRequired = errs.NewValueIsRequiredError("ville")
	// ErrNumeroIsInvalid is returned when the house number is not positive.
	ErrNumeroIsInvalid = errs.NewValueIsInvalidError("numero")
	// ErrCodePostalIsInvalid is returned when the postal code is not positive.
	ErrCodePostalIsInvalid = errs.NewValueIsInvalidError("codePostal")
	// ErrAdresseIsNotConstructed is returned when using an improperly initialized Adresse.
	ErrAdresseIsNotConstructed = errors.New("Adresse must be created via NewAdresse constructor")
)

// Adresse is a value object for the postal address embedded in a client.
// It is immutable after construction; updating a client's address replaces
// the whole value.
type Adresse struct {
	rue        string
	ville      string
	numero     int
	codePostal int

	guard guard.ConstructorGuard
}

// NewAdresse creates an Adresse from its four components.
// Street and city must be non-blank, house number and postal code positive.
func NewAdresse(rue, ville string, numero, codePostal int) (Adresse, error) {
	adresse := Adresse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		adresse.setRue(rue),
		adresse.setVille(ville),
		adresse.setNumero(numero),
		adresse.setCodePostal(codePostal),
	); err != nil {
		return Adresse{}, err
	}

	return adresse, nil
}

// Validate checks if the Adresse was properly constructed via NewAdresse.
// The zero value of Adresse is invalid and fails this validation.
func (a Adresse) Validate() error {
	return a.guard.Validate(ErrAdresseIsNotConstructed)
}

// Rue returns the street name.
func (a Adresse) Rue() string {
	return a.rue
}

// Ville returns the city.
func (a Adresse) Ville() string {
	return a.ville
}

// Numero returns the house number.
func (a Adresse) Numero() int {
	return a.numero
}

// CodePostal returns the postal code.
func (a Adresse) CodePostal() int {
	return a.codePostal
}

func (a *Adresse) setRue(rue string) error {
	if rue == "" {
		return ErrRueIsRequired
	}

	a.rue = rue
	return nil
}

func (a *Adresse) setVille(ville string) error {
	if ville == "" {
		return ErrVilleIsRequired
	}

	a.ville = ville
	return nil
}

func (a *Adresse) setNumero(numero int) error {
	if numero <= 0 {
		return ErrNumeroIsInvalid
	}

	a.numero = numero
	return nil
}

func (a *Adresse) setCodePostal(codePostal int) error {
	if codePostal <= 0 {
		return ErrCodePostalIsInvalid
	}

	a.codePostal = codePostal
	return nil
}
