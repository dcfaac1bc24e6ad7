// Package client contains the Client aggregate and its embedded Adresse value
// object. The client's email is the unique business identity consumed by the
// authentication layer; the password hash is stored here but hashing and
// verification live elsewhere.
package client
