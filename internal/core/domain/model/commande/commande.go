package commande

import (
	"errors"
	"time"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"
	"gardenstore/internal/pkg/guard"
)

// Domain errors for commande operations.
var (
	// ErrMontantIsNegative is returned when the order amount is below zero.
	ErrMontantIsNegative = errs.NewValueIsInvalidError("montant")
	// ErrDateCommandeIsRequired is returned when no order date is supplied.
	ErrDateCommandeIsRequired = errs.NewValueIsRequiredError("dateCommande")
	// ErrQuantiteIsNegative is returned when the ordered quantity is below zero.
	ErrQuantiteIsNegative = errs.NewValueIsInvalidError("quantite")
	// ErrNumeroCommandeIsInvalid is returned when the order number is not positive.
	ErrNumeroCommandeIsInvalid = errs.NewValueIsInvalidError("nCommande")
	// ErrCommandeIsNotConstructed is returned when using an improperly initialized Commande.
	ErrCommandeIsNotConstructed = errors.New("Commande must be created via NewCommande constructor")
)

// Commande represents a customer order.
// An order optionally references the livreur that will deliver it; the
// reference is a plain foreign key, never a loaded aggregate, and deleting
// a livreur never cascades to its orders.
//
// Invariants: montant and quantite are non-negative, the order date is set,
// and the order number is positive. Cancelling an order is a hard delete at
// the service layer; there is no cancelled state here.
type Commande struct {
	// id uniquely identifies the order; zero until persisted
	id kernel.ID
	// montant is the order amount in cents
	montant int
	// dateCommande is the day the order was placed
	dateCommande time.Time
	// quantite is the number of ordered items
	quantite int
	// numeroCommande is the business-facing order number
	numeroCommande int
	// deliveredBy optionally references the livreur assigned to this order
	deliveredBy *kernel.ID
	// guard ensures the order was properly constructed
	guard guard.ConstructorGuard
}

// NewCommande creates a new, not yet persisted Commande.
// deliveredBy may be nil when no livreur is assigned yet.
func NewCommande(montant int, dateCommande time.Time, quantite, numeroCommande int, deliveredBy *kernel.ID) (*Commande, error) {
	c := &Commande{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setMontant(montant),
		c.setDateCommande(dateCommande),
		c.setQuantite(quantite),
		c.setNumeroCommande(numeroCommande),
		c.setDeliveredBy(deliveredBy),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCommande reconstructs a persisted Commande from storage.
func RestoreCommande(
	id kernel.ID,
	montant int,
	dateCommande time.Time,
	quantite, numeroCommande int,
	deliveredBy *kernel.ID,
) (*Commande, error) {
	c, err := NewCommande(montant, dateCommande, quantite, numeroCommande, deliveredBy)
	if err != nil {
		return nil, err
	}

	if err = c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// Patch describes a partial update of an order.
// Nil fields keep their current values. Supplying DeliveredBy assigns the
// order to a livreur; there is no write path that clears an assignment.
type Patch struct {
	Montant        *int
	DateCommande   *time.Time
	Quantite       *int
	NumeroCommande *int
	DeliveredBy    *kernel.ID
}

// ApplyPatch overlays the supplied fields onto the order.
func (c *Commande) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var err error
	if patch.Montant != nil {
		err = errors.Join(err, c.setMontant(*patch.Montant))
	}
	if patch.DateCommande != nil {
		err = errors.Join(err, c.setDateCommande(*patch.DateCommande))
	}
	if patch.Quantite != nil {
		err = errors.Join(err, c.setQuantite(*patch.Quantite))
	}
	if patch.NumeroCommande != nil {
		err = errors.Join(err, c.setNumeroCommande(*patch.NumeroCommande))
	}
	if patch.DeliveredBy != nil {
		err = errors.Join(err, c.setDeliveredBy(patch.DeliveredBy))
	}

	return err
}

// IsEqual compares two orders by identifier.
func (c *Commande) IsEqual(other *Commande) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Commande was properly constructed via its constructor.
func (c *Commande) Validate() error {
	if c == nil {
		return ErrCommandeIsNotConstructed
	}
	return c.guard.Validate(ErrCommandeIsNotConstructed)
}

// ID returns the store-assigned identifier; zero for unsaved orders.
func (c *Commande) ID() kernel.ID {
	return c.id
}

// Montant returns the order amount in cents.
func (c *Commande) Montant() int {
	return c.montant
}

// DateCommande returns the day the order was placed.
func (c *Commande) DateCommande() time.Time {
	return c.dateCommande
}

// Quantite returns the number of ordered items.
func (c *Commande) Quantite() int {
	return c.quantite
}

// NumeroCommande returns the business-facing order number.
func (c *Commande) NumeroCommande() int {
	return c.numeroCommande
}

// DeliveredBy returns the id of the assigned livreur, or nil when unassigned.
// The returned pointer is a copy; mutating it does not change the order.
func (c *Commande) DeliveredBy() *kernel.ID {
	if c.deliveredBy == nil {
		return nil
	}
	id := *c.deliveredBy
	return &id
}

func (c *Commande) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Commande) setMontant(montant int) error {
	if montant < 0 {
		return ErrMontantIsNegative
	}

	c.montant = montant
	return nil
}

func (c *Commande) setDateCommande(dateCommande time.Time) error {
	if dateCommande.IsZero() {
		return ErrDateCommandeIsRequired
	}

	c.dateCommande = dateCommande
	return nil
}

func (c *Commande) setQuantite(quantite int) error {
	if quantite < 0 {
		return ErrQuantiteIsNegative
	}

	c.quantite = quantite
	return nil
}

func (c *Commande) setNumeroCommande(numeroCommande int) error {
	if numeroCommande <= 0 {
		return ErrNumeroCommandeIsInvalid
	}

	c.numeroCommande = numeroCommande
	return nil
}

func (c *Commande) setDeliveredBy(deliveredBy *kernel.ID) error {
	if deliveredBy == nil {
		c.deliveredBy = nil
		return nil
	}

	if err := deliveredBy.Validate(); err != nil {
		return err
	}

	id := *deliveredBy
	c.deliveredBy = &id
	return nil
}
