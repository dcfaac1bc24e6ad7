package client

import (
	"errors"

	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"
	"gardenstore/internal/pkg/guard"
)

// Domain errors for client operations.
var (
	// ErrNomIsRequired is returned when attempting to create a client without a last name.
	ErrNomIsRequired = errs.NewValueIsRequiredError("nom")
	// ErrPrenomIsRequired is returned when attempting to create a client without a first name.
	ErrPrenomIsRequired = errs.NewValueIsRequiredError("prenom")
	// ErrMailIsRequired is returned when the email address is blank.
	// The email is the client's business identity and login subject, so it can never be empty.
	ErrMailIsRequired = errs.NewValueIsRequiredError("mail")
	// ErrTelephoneIsInvalid is returned when the phone number is not positive.
	ErrTelephoneIsInvalid = errs.NewValueIsInvalidError("telephone")
	// ErrPasswordHashIsRequired is returned when no password hash is supplied.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client represents a customer of the garden store.
// It is an aggregate root identified by a store-assigned integer key.
// The email address doubles as the unique business identity used for login;
// authentication itself never handles a Client, only the identity projection
// derived from it (email plus password hash).
//
// Key invariants:
//   - mail is non-blank (it is the authentication subject)
//   - the password hash is always present and never holds a plaintext password
//   - the embedded Adresse is a valid value object
//
// A fresh client has a zero ID until the entity store assigns one on insert;
// RestoreClient rebuilds a persisted client including its key.
type Client struct {
	// id uniquely identifies the client; zero until persisted
	id kernel.ID
	// nom is the client's last name
	nom string
	// prenom is the client's first name
	prenom string
	// adresse is the embedded postal address
	adresse Adresse
	// mail is the unique business identity, used as the login username
	mail string
	// telephone is the contact phone number
	telephone int
	// passwordHash is the adaptive hash of the client's password
	passwordHash string
	// guard ensures the client was properly constructed
	guard guard.ConstructorGuard
}

// NewClient creates a new Client that has not been persisted yet.
// The entity store assigns the identifier on insert, so the returned client
// reports a zero ID until then. All other fields are validated eagerly and
// the errors are aggregated, matching the constructor pattern used across
// the domain model.
//
// Parameters:
//   - nom: last name (must be non-blank)
//   - prenom: first name (must be non-blank)
//   - adresse: embedded address (must be a constructed Adresse)
//   - mail: unique email identity (must be non-blank)
//   - telephone: contact number (must be positive)
//   - passwordHash: adaptive hash of the password (must be non-blank; hashing
//     happens in the client service, never here)
func NewClient(nom, prenom string, adresse Adresse, mail string, telephone int, passwordHash string) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setNom(nom),
		c.setPrenom(prenom),
		c.setAdresse(adresse),
		c.setMail(mail),
		c.setTelephone(telephone),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a persisted Client from storage, including its
// store-assigned identifier. The restored client behaves identically to one
// created through NewClient.
func RestoreClient(
	id kernel.ID,
	nom, prenom string,
	adresse Adresse,
	mail string,
	telephone int,
	passwordHash string,
) (*Client, error) {
	c, err := NewClient(nom, prenom, adresse, mail, telephone, passwordHash)
	if err != nil {
		return nil, err
	}

	if err = c.setID(id); err != nil {
		return nil, err
	}

	return c, nil
}

// Patch describes a partial update of a client.
// Nil fields keep their current values; the address is replaced as a whole
// when supplied. The patch deliberately has no password field: credential
// changes go through the dedicated change-password path so a plaintext value
// can never reach the store via a merge.
type Patch struct {
	Nom       *string
	Prenom    *string
	Adresse   *Adresse
	Mail      *string
	Telephone *int
}

// ApplyPatch overlays the supplied fields onto the client.
// Fields left nil in the patch retain their prior values.
func (c *Client) ApplyPatch(patch Patch) error {
	if err := c.Validate(); err != nil {
		return err
	}

	var err error
	if patch.Nom != nil {
		err = errors.Join(err, c.setNom(*patch.Nom))
	}
	if patch.Prenom != nil {
		err = errors.Join(err, c.setPrenom(*patch.Prenom))
	}
	if patch.Adresse != nil {
		err = errors.Join(err, c.setAdresse(*patch.Adresse))
	}
	if patch.Mail != nil {
		err = errors.Join(err, c.setMail(*patch.Mail))
	}
	if patch.Telephone != nil {
		err = errors.Join(err, c.setTelephone(*patch.Telephone))
	}

	return err
}

// ChangePasswordHash replaces the stored password hash.
// Only the client service calls this, after hashing the new plaintext.
func (c *Client) ChangePasswordHash(passwordHash string) error {
	return c.setPasswordHash(passwordHash)
}

// IsEqual compares two clients by identifier.
func (c *Client) IsEqual(other *Client) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Client was properly constructed via its constructor.
// The zero value of Client is invalid and fails this validation.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the store-assigned identifier; zero for unsaved clients.
func (c *Client) ID() kernel.ID {
	return c.id
}

// Nom returns the client's last name.
func (c *Client) Nom() string {
	return c.nom
}

// Prenom returns the client's first name.
func (c *Client) Prenom() string {
	return c.prenom
}

// Adresse returns the embedded postal address.
func (c *Client) Adresse() Adresse {
	return c.adresse
}

// Mail returns the unique email identity.
func (c *Client) Mail() string {
	return c.mail
}

// Telephone returns the contact phone number.
func (c *Client) Telephone() int {
	return c.telephone
}

// PasswordHash returns the stored adaptive password hash.
func (c *Client) PasswordHash() string {
	return c.passwordHash
}

func (c *Client) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Client) setNom(nom string) error {
	if nom == "" {
		return ErrNomIsRequired
	}

	c.nom = nom
	return nil
}

func (c *Client) setPrenom(prenom string) error {
	if prenom == "" {
		return ErrPrenomIsRequired
	}

	c.prenom = prenom
	return nil
}

func (c *Client) setAdresse(adresse Adresse) error {
	if err := adresse.Validate(); err != nil {
		return err
	}

	c.adresse = adresse
	return nil
}

func (c *Client) setMail(mail string) error {
	if mail == "" {
		return ErrMailIsRequired
	}

	c.mail = mail
	return nil
}

func (c *Client) setTelephone(telephone int) error {
	if telephone <= 0 {
		return ErrTelephoneIsInvalid
	}

	c.telephone = telephone
	return nil
}

func (c *Client) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	c.passwordHash = passwordHash
	return nil
}
