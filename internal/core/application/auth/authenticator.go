package auth

import (
	"context"
	"errors"

	"gardenstore/internal/pkg/errs"
)

// ErrInvalidCredentials is the single failure returned for every login
// rejection. Callers cannot tell an unknown email from a wrong password,
// so the login endpoint never leaks which accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a bcrypt hash compared against when the email is unknown,
// so both rejection paths pay the same hashing cost.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Identity is the credential projection the authenticator works with.
// It carries only what login needs: the subject email and the stored hash.
type Identity struct {
	Email        string
	PasswordHash string
}

// IdentityProvider resolves the stored identity for an email address.
// Implementations return an ObjectNotFoundError when no account matches.
type IdentityProvider interface {
	IdentityByEmail(ctx context.Context, email string) (Identity, error)
}

// Authenticator verifies a client's credentials against the identity store.
type Authenticator struct {
	identities IdentityProvider
	hasher     PasswordHasher
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(identities IdentityProvider, hasher PasswordHasher) (*Authenticator, error) {
	if identities == nil {
		return nil, errs.NewValueIsRequiredError("identities")
	}
	if hasher == nil {
		return nil, errs.NewValueIsRequiredError("hasher")
	}

	return &Authenticator{
		identities: identities,
		hasher:     hasher,
	}, nil
}

// Authenticate checks the email/password pair and returns the matched
// identity. Every failure surfaces as ErrInvalidCredentials; lookup errors
// other than a missing account are passed through unchanged.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	identity, err := a.identities.IdentityByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// burn a comparison so unknown emails take as long as bad passwords
			_ = a.hasher.Compare(dummyHash, password)
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, err
	}

	if err = a.hasher.Compare(identity.PasswordHash, password); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	return identity, nil
}
