package http

import (
	"net/http"

	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetAllCommandes handles GET /commande.
func (s *Server) GetAllCommandes(c echo.Context) error {
	commandes, err := s.commandes.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCommandeResponses(commandes))
}

// GetCommande handles GET /commande/:id.
func (s *Server) GetCommande(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid commande id")
	}

	found, err := s.commandes.GetOne(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCommandeResponse(found))
}

// RegisterCommande handles POST /commande/register.
func (s *Server) RegisterCommande(c echo.Context) error {
	var req RegisterCommandeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	date, err := parseDate(req.DateCommande)
	if err != nil {
		return badRequest(c, "Invalid dateCommande, expected YYYY-MM-DD")
	}

	deliveredBy, err := optionalLivreurID(req.DeliveredBy)
	if err != nil {
		return writeError(c, err)
	}

	fresh, err := commande.NewCommande(req.Montant, date, req.Quantite, req.NumeroCommande, deliveredBy)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.commandes.Register(c.Request().Context(), fresh)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toCommandeResponse(created))
}

// UpdateCommande handles PUT /commande/:id.
// Absent fields keep their stored values; supplying deliveredBy assigns the
// order to a livreur.
func (s *Server) UpdateCommande(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid commande id")
	}

	var req UpdateCommandeRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	patch := commande.Patch{
		Montant:        req.Montant,
		Quantite:       req.Quantite,
		NumeroCommande: req.NumeroCommande,
	}
	if req.DateCommande != nil {
		date, dateErr := parseDate(*req.DateCommande)
		if dateErr != nil {
			return badRequest(c, "Invalid dateCommande, expected YYYY-MM-DD")
		}
		patch.DateCommande = &date
	}
	if req.DeliveredBy != nil {
		livreurID, idErr := kernel.NewID(*req.DeliveredBy)
		if idErr != nil {
			return writeError(c, idErr)
		}
		patch.DeliveredBy = &livreurID
	}

	updated, err := s.commandes.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toCommandeResponse(updated))
}

// CancelCommande handles DELETE /commande/:id.
// Cancelling an unknown order is a 404, never a silent success.
func (s *Server) CancelCommande(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid commande id")
	}

	if _, err = s.commandes.Cancel(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func optionalLivreurID(raw *int64) (*kernel.ID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.NewID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
