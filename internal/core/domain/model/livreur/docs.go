// Package livreur contains the Livreur (delivery partner) aggregate.
package livreur
