package http

import (
	"time"

	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/livreur"
	"gardenstore/internal/core/domain/model/produit"
)

// dateLayout is the wire format for order dates.
const dateLayout = "2006-01-02"

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AdresseModel mirrors the embedded postal address on the wire.
type AdresseModel struct {
	Rue        string `json:"rue"`
	Ville      string `json:"ville"`
	Numero     int    `json:"numero"`
	CodePostal int    `json:"codePostal"`
}

// ClientResponse is the client representation returned by the API.
// The password hash never leaves the server.
type ClientResponse struct {
	ID        int64        `json:"id"`
	Nom       string       `json:"nom"`
	Prenom    string       `json:"prenom"`
	Adresse   AdresseModel `json:"adresse"`
	Mail      string       `json:"mail"`
	Telephone int          `json:"telephone"`
}

// RegisterClientRequest is the payload for opening a customer account.
type RegisterClientRequest struct {
	Nom       string       `json:"nom"`
	Prenom    string       `json:"prenom"`
	Adresse   AdresseModel `json:"adresse"`
	Mail      string       `json:"mail"`
	Telephone int          `json:"telephone"`
	Password  string       `json:"password"`
}

// UpdateClientRequest is the partial-update payload for a client.
// Absent fields keep their stored values. There is no password field here;
// credentials change through the dedicated password endpoint.
type UpdateClientRequest struct {
	Nom       *string       `json:"nom"`
	Prenom    *string       `json:"prenom"`
	Adresse   *AdresseModel `json:"adresse"`
	Mail      *string       `json:"mail"`
	Telephone *int          `json:"telephone"`
}

// ChangePasswordRequest carries the new plaintext password.
type ChangePasswordRequest struct {
	Password string `json:"password"`
}

// LoginRequest carries the credentials presented at login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
}

// CommandeResponse is the order representation returned by the API.
type CommandeResponse struct {
	ID             int64  `json:"id"`
	Montant        int    `json:"montant"`
	DateCommande   string `json:"dateCommande"`
	Quantite       int    `json:"quantite"`
	NumeroCommande int    `json:"nCommande"`
	DeliveredBy    *int64 `json:"deliveredBy"`
}

// RegisterCommandeRequest is the payload for placing an order.
type RegisterCommandeRequest struct {
	Montant        int    `json:"montant"`
	DateCommande   string `json:"dateCommande"`
	Quantite       int    `json:"quantite"`
	NumeroCommande int    `json:"nCommande"`
	DeliveredBy    *int64 `json:"deliveredBy"`
}

// UpdateCommandeRequest is the partial-update payload for an order.
// Supplying deliveredBy assigns the order to a livreur.
type UpdateCommandeRequest struct {
	Montant        *int    `json:"montant"`
	DateCommande   *string `json:"dateCommande"`
	Quantite       *int    `json:"quantite"`
	NumeroCommande *int    `json:"nCommande"`
	DeliveredBy    *int64  `json:"deliveredBy"`
}

// LivreurResponse is the livreur representation returned by the API.
type LivreurResponse struct {
	ID         int64  `json:"id"`
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	NomContact string `json:"nomContact"`
	Societe    string `json:"societe"`
}

// AddLivreurRequest is the payload for registering a delivery partner.
type AddLivreurRequest struct {
	Nom        string `json:"nom"`
	Prenom     string `json:"prenom"`
	Email      string `json:"email"`
	NomContact string `json:"nomContact"`
	Societe    string `json:"societe"`
}

// UpdateLivreurRequest is the partial-update payload for a livreur.
type UpdateLivreurRequest struct {
	Nom        *string `json:"nom"`
	Prenom     *string `json:"prenom"`
	Email      *string `json:"email"`
	NomContact *string `json:"nomContact"`
	Societe    *string `json:"societe"`
}

// ProduitResponse is the product representation returned by the API.
type ProduitResponse struct {
	ID          int64  `json:"id"`
	Nom         string `json:"nom"`
	Reference   int    `json:"reference"`
	PrixDeVente int    `json:"prixDeVente"`
	Stock       int    `json:"stock"`
	Avis        string `json:"avis"`
	Categorie   string `json:"categorie"`
}

// AddProduitRequest is the payload for adding a catalogue product.
type AddProduitRequest struct {
	Nom         string `json:"nom"`
	Reference   int    `json:"reference"`
	PrixDeVente int    `json:"prixDeVente"`
	Stock       int    `json:"stock"`
	Avis        string `json:"avis"`
	Categorie   string `json:"categorie"`
}

// UpdateProduitRequest is the partial-update payload for a product.
type UpdateProduitRequest struct {
	Nom         *string `json:"nom"`
	Reference   *int    `json:"reference"`
	PrixDeVente *int    `json:"prixDeVente"`
	Stock       *int    `json:"stock"`
	Avis        *string `json:"avis"`
	Categorie   *string `json:"categorie"`
}

func toClientResponse(c *client.Client) ClientResponse {
	adresse := c.Adresse()
	return ClientResponse{
		ID:     c.ID().Value(),
		Nom:    c.Nom(),
		Prenom: c.Prenom(),
		Adresse: AdresseModel{
			Rue:        adresse.Rue(),
			Ville:      adresse.Ville(),
			Numero:     adresse.Numero(),
			CodePostal: adresse.CodePostal(),
		},
		Mail:      c.Mail(),
		Telephone: c.Telephone(),
	}
}

func toClientResponses(clients []*client.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toClientResponse(c))
	}
	return responses
}

func toCommandeResponse(c *commande.Commande) CommandeResponse {
	var deliveredBy *int64
	if id := c.DeliveredBy(); id != nil {
		value := id.Value()
		deliveredBy = &value
	}

	return CommandeResponse{
		ID:             c.ID().Value(),
		Montant:        c.Montant(),
		DateCommande:   c.DateCommande().Format(dateLayout),
		Quantite:       c.Quantite(),
		NumeroCommande: c.NumeroCommande(),
		DeliveredBy:    deliveredBy,
	}
}

func toCommandeResponses(commandes []*commande.Commande) []CommandeResponse {
	responses := make([]CommandeResponse, 0, len(commandes))
	for _, c := range commandes {
		responses = append(responses, toCommandeResponse(c))
	}
	return responses
}

func toLivreurResponse(l *livreur.Livreur) LivreurResponse {
	return LivreurResponse{
		ID:         l.ID().Value(),
		Nom:        l.Nom(),
		Prenom:     l.Prenom(),
		Email:      l.Email(),
		NomContact: l.NomContact(),
		Societe:    l.Societe(),
	}
}

func toLivreurResponses(livreurs []*livreur.Livreur) []LivreurResponse {
	responses := make([]LivreurResponse, 0, len(livreurs))
	for _, l := range livreurs {
		responses = append(responses, toLivreurResponse(l))
	}
	return responses
}

func toProduitResponse(p *produit.Produit) ProduitResponse {
	return ProduitResponse{
		ID:          p.ID().Value(),
		Nom:         p.Nom(),
		Reference:   p.Reference(),
		PrixDeVente: p.PrixDeVente(),
		Stock:       p.Stock(),
		Avis:        p.Avis(),
		Categorie:   p.Categorie().String(),
	}
}

func toProduitResponses(produits []*produit.Produit) []ProduitResponse {
	responses := make([]ProduitResponse, 0, len(produits))
	for _, p := range produits {
		responses = append(responses, toProduitResponse(p))
	}
	return responses
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
