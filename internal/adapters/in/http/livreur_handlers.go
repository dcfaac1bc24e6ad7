package http

import (
	"net/http"

	"gardenstore/internal/core/domain/model/livreur"

	"github.com/labstack/echo/v4"
)

// GetAllLivreurs handles GET /livreur.
func (s *Server) GetAllLivreurs(c echo.Context) error {
	livreurs, err := s.livreurs.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLivreurResponses(livreurs))
}

// GetLivreur handles GET /livreur/:id.
func (s *Server) GetLivreur(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid livreur id")
	}

	found, err := s.livreurs.GetOne(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLivreurResponse(found))
}

// GetLivreurCommandes handles GET /livreur/:id/commandes.
// Returns the orders assigned to the livreur; an unknown livreur is a 404
// while a livreur without orders gets an empty list.
func (s *Server) GetLivreurCommandes(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid livreur id")
	}

	commandes, err := s.commandes.GetByLivreur(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCommandeResponses(commandes))
}

// AddLivreur handles POST /livreur/add.
func (s *Server) AddLivreur(c echo.Context) error {
	var req AddLivreurRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fresh, err := livreur.NewLivreur(req.Nom, req.Prenom, req.Email, req.NomContact, req.Societe)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.livreurs.Add(c.Request().Context(), fresh)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toLivreurResponse(created))
}

// UpdateLivreur handles PUT /livreur/:id.
func (s *Server) UpdateLivreur(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid livreur id")
	}

	var req UpdateLivreurRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	updated, err := s.livreurs.Update(c.Request().Context(), id, livreur.Patch{
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		NomContact: req.NomContact,
		Societe:    req.Societe,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLivreurResponse(updated))
}

// DeleteLivreur handles DELETE /livreur/:id.
// Responds with the removed livreur's last state; assigned orders are kept.
func (s *Server) DeleteLivreur(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid livreur id")
	}

	snapshot, err := s.livreurs.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toLivreurResponse(snapshot))
}
