package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_ExpiredTokenIsRejected(t *testing.T) {
	issuer, err := NewTokenIssuer("test-signing-secret")
	require.NoError(t, err)

	// issue the token just past its lifetime in the past
	issuer.now = func() time.Time { return time.Now().Add(-TokenTTL - time.Minute) }
	token, err := issuer.Issue("marie.dupont@example.com")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(token)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrTokenIsInvalid)
}

func TestTokenIssuer_TokenValidForFullLifetime(t *testing.T) {
	issuer, err := NewTokenIssuer("test-signing-secret")
	require.NoError(t, err)

	issued := time.Now()
	issuer.now = func() time.Time { return issued }
	token, err := issuer.Issue("marie.dupont@example.com")
	require.NoError(t, err)

	// still valid a minute before expiry
	issuer.now = func() time.Time { return issued.Add(TokenTTL - time.Minute) }
	subject, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "marie.dupont@example.com", subject)
}
