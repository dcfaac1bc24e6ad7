// Package produit contains the Produit aggregate and the Categorie enumeration.
package produit
