// Package commande contains the Commande (order) aggregate.
// An order may reference the livreur delivering it by id; the reverse view
// (a livreur's orders) is derived at read time and never mutated directly.
package commande
