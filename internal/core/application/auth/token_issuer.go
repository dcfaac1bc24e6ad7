package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gardenstore/internal/pkg/errs"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 24 * time.Hour

// ErrTokenIsInvalid is returned when a presented token fails verification,
// whether it is malformed, tampered with, expired or signed with another key.
var ErrTokenIsInvalid = errs.NewValueIsInvalidError("token")

// TokenIssuer mints and verifies HS256 access tokens.
// The signing secret is injected at construction and never read from the
// environment here; rotating the secret invalidates all outstanding tokens.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret.
// An empty secret is rejected: signing with a guessable default would make
// every token forgeable.
func NewTokenIssuer(secret string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	return &TokenIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// Issue mints a signed token for the given subject email.
// The token carries a unique jti, is valid from now and expires after TokenTTL.
func (t *TokenIssuer) Issue(email string) (string, error) {
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}

	now := t.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("token", err)
	}

	return signed, nil
}

// Verify parses and validates a token, returning its subject email.
// Only HS256 signatures are accepted.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return t.now() }),
	)
	if err != nil || !token.Valid {
		return "", ErrTokenIsInvalid
	}

	return claims.Subject, nil
}
