package produit

import (
	"errors"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"
	"gardenstore/internal/pkg/guard"
)

// Domain errors for produit operations.
var (
	// ErrNomIsRequired is returned when attempting to create a product without a name.
	ErrNomIsRequired = errs.NewValueIsRequiredError("nom")
	// ErrReferenceIsInvalid is returned when the reference code is not positive.
	ErrReferenceIsInvalid = errs.NewValueIsInvalidError("reference")
	// ErrPrixDeVenteIsNegative is returned when the sale price is below zero.
	ErrPrixDeVenteIsNegative = errs.NewValueIsInvalidError("prixDeVente")
	// ErrStockIsNegative is returned when the stock quantity is below zero.
	ErrStockIsNegative = errs.NewValueIsInvalidError("stock")
	// ErrAvisIsRequired is returned when the review text is blank.
	ErrAvisIsRequired = errs.NewValueIsRequiredError("avis")
	// ErrProduitIsNotConstructed is returned when using an improperly initialized Produit.
	ErrProduitIsNotConstructed = errors.New("Produit must be created via NewProduit constructor")
)

// Produit represents an article in the garden store catalogue.
// Invariants: stock and sale price are non-negative, the reference code is
// positive and the category is one of the closed Categorie enumeration.
type Produit struct {
	// id uniquely identifies the product; zero until persisted
	id kernel.ID
	// nom is the product name
	nom string
	// reference is the catalogue reference code
	reference int
	// prixDeVente is the sale price in cents
	prixDeVente int
	// stock is the quantity on hand
	stock int
	// avis holds free-text review notes
	avis string
	// categorie classifies the product
	categorie Categorie
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduit creates a new, not yet persisted Produit.
func NewProduit(nom string, reference, prixDeVente, stock int, avis string, categorie Categorie) (*Produit, error) {
	p := &Produit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setNom(nom),
		p.setReference(reference),
		p.setPrixDeVente(prixDeVente),
		p.setStock(stock),
		p.setAvis(avis),
		p.setCategorie(categorie),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduit reconstructs a persisted Produit from storage.
func RestoreProduit(
	id kernel.ID,
	nom string,
	reference, prixDeVente, stock int,
	avis string,
	categorie Categorie,
) (*Produit, error) {
	p, err := NewProduit(nom, reference, prixDeVente, stock, avis, categorie)
	if err != nil {
		return nil, err
	}

	if err = p.setID(id); err != nil {
		return nil, err
	}

	return p, nil
}

// Patch describes a partial update of a product.
// Nil fields keep their current values.
type Patch struct {
	Nom         *string
	Reference   *int
	PrixDeVente *int
	Stock       *int
	Avis        *string
	Categorie   *Categorie
}

// ApplyPatch overlays the supplied fields onto the product.
func (p *Produit) ApplyPatch(patch Patch) error {
	if err := p.Validate(); err != nil {
		return err
	}

	var err error
	if patch.Nom != nil {
		err = errors.Join(err, p.setNom(*patch.Nom))
	}
	if patch.Reference != nil {
		err = errors.Join(err, p.setReference(*patch.Reference))
	}
	if patch.PrixDeVente != nil {
		err = errors.Join(err, p.setPrixDeVente(*patch.PrixDeVente))
	}
	if patch.Stock != nil {
		err = errors.Join(err, p.setStock(*patch.Stock))
	}
	if patch.Avis != nil {
		err = errors.Join(err, p.setAvis(*patch.Avis))
	}
	if patch.Categorie != nil {
		err = errors.Join(err, p.setCategorie(*patch.Categorie))
	}

	return err
}

// IsEqual compares two products by identifier.
func (p *Produit) IsEqual(other *Produit) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks if the Produit was properly constructed via its constructor.
func (p *Produit) Validate() error {
	if p == nil {
		return ErrProduitIsNotConstructed
	}
	return p.guard.Validate(ErrProduitIsNotConstructed)
}

// ID returns the store-assigned identifier; zero for unsaved products.
func (p *Produit) ID() kernel.ID {
	return p.id
}

// Nom returns the product name.
func (p *Produit) Nom() string {
	return p.nom
}

// Reference returns the catalogue reference code.
func (p *Produit) Reference() int {
	return p.reference
}

// PrixDeVente returns the sale price in cents.
func (p *Produit) PrixDeVente() int {
	return p.prixDeVente
}

// Stock returns the quantity on hand.
func (p *Produit) Stock() int {
	return p.stock
}

// Avis returns the free-text review notes.
func (p *Produit) Avis() string {
	return p.avis
}

// Categorie returns the product category.
func (p *Produit) Categorie() Categorie {
	return p.categorie
}

func (p *Produit) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Produit) setNom(nom string) error {
	if nom == "" {
		return ErrNomIsRequired
	}

	p.nom = nom
	return nil
}

func (p *Produit) setReference(reference int) error {
	if reference <= 0 {
		return ErrReferenceIsInvalid
	}

	p.reference = reference
	return nil
}

func (p *Produit) setPrixDeVente(prixDeVente int) error {
	if prixDeVente < 0 {
		return ErrPrixDeVenteIsNegative
	}

	p.prixDeVente = prixDeVente
	return nil
}

func (p *Produit) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsNegative
	}

	p.stock = stock
	return nil
}

func (p *Produit) setAvis(avis string) error {
	if avis == "" {
		return ErrAvisIsRequired
	}

	p.avis = avis
	return nil
}

func (p *Produit) setCategorie(categorie Categorie) error {
	if err := categorie.Validate(); err != nil {
		return err
	}

	p.categorie = categorie
	return nil
}
