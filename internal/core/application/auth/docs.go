// Package auth provides credential verification and access token issuing.
//
// The package never handles full client aggregates: callers feed it an
// Identity projection (email plus password hash) through the IdentityProvider
// port, which keeps the authentication flow decoupled from how customer
// accounts are stored.
package auth
