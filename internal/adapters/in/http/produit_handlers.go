package http

import (
	"net/http"

	"gardenstore/internal/core/domain/model/produit"

	"github.com/labstack/echo/v4"
)

// GetAllProduits handles GET /produit.
func (s *Server) GetAllProduits(c echo.Context) error {
	produits, err := s.produits.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduitResponses(produits))
}

// GetProduit handles GET /produit/:id.
func (s *Server) GetProduit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid produit id")
	}

	found, err := s.produits.GetOne(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduitResponse(found))
}

// GetProduitsByCategorie handles GET /produit/categorie/:categorie.
func (s *Server) GetProduitsByCategorie(c echo.Context) error {
	categorie, err := produit.CategorieFromString(c.Param("categorie"))
	if err != nil {
		return writeError(c, err)
	}

	produits, err := s.produits.GetByCategorie(c.Request().Context(), categorie)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduitResponses(produits))
}

// AddProduit handles POST /produit/add.
func (s *Server) AddProduit(c echo.Context) error {
	var req AddProduitRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	categorie, err := produit.CategorieFromString(req.Categorie)
	if err != nil {
		return writeError(c, err)
	}

	fresh, err := produit.NewProduit(req.Nom, req.Reference, req.PrixDeVente, req.Stock, req.Avis, categorie)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.produits.Add(c.Request().Context(), fresh)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toProduitResponse(created))
}

// UpdateProduit handles PUT /produit/:id.
func (s *Server) UpdateProduit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid produit id")
	}

	var req UpdateProduitRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	patch := produit.Patch{
		Nom:         req.Nom,
		Reference:   req.Reference,
		PrixDeVente: req.PrixDeVente,
		Stock:       req.Stock,
		Avis:        req.Avis,
	}
	if req.Categorie != nil {
		categorie, catErr := produit.CategorieFromString(*req.Categorie)
		if catErr != nil {
			return writeError(c, catErr)
		}
		patch.Categorie = &categorie
	}

	updated, err := s.produits.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduitResponse(updated))
}

// DeleteProduit handles DELETE /produit/:id.
// Responds with the removed product's last state.
func (s *Server) DeleteProduit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid produit id")
	}

	snapshot, err := s.produits.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toProduitResponse(snapshot))
}
