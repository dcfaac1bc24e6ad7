package http

import (
	"net/http"

	"gardenstore/internal/core/application/services"
	"gardenstore/internal/core/domain/model/client"

	"github.com/labstack/echo/v4"
)

// GetAllClients handles GET /client.
func (s *Server) GetAllClients(c echo.Context) error {
	clients, err := s.clients.GetAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toClientResponses(clients))
}

// GetClient handles GET /client/:id.
func (s *Server) GetClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	found, err := s.clients.GetOne(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toClientResponse(found))
}

// RegisterClient handles POST /client/insert.
func (s *Server) RegisterClient(c echo.Context) error {
	var req RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	adresse, err := client.NewAdresse(req.Adresse.Rue, req.Adresse.Ville, req.Adresse.Numero, req.Adresse.CodePostal)
	if err != nil {
		return writeError(c, err)
	}

	created, err := s.clients.Register(c.Request().Context(), services.RegisterClientParams{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Adresse:   adresse,
		Mail:      req.Mail,
		Telephone: req.Telephone,
		Password:  req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, toClientResponse(created))
}

// UpdateClient handles PUT /client/:id.
// Absent fields keep their stored values.
func (s *Server) UpdateClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	var req UpdateClientRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	patch := client.Patch{
		Nom:       req.Nom,
		Prenom:    req.Prenom,
		Mail:      req.Mail,
		Telephone: req.Telephone,
	}
	if req.Adresse != nil {
		adresse, adresseErr := client.NewAdresse(req.Adresse.Rue, req.Adresse.Ville, req.Adresse.Numero, req.Adresse.CodePostal)
		if adresseErr != nil {
			return writeError(c, adresseErr)
		}
		patch.Adresse = &adresse
	}

	updated, err := s.clients.Update(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toClientResponse(updated))
}

// ChangeClientPassword handles PUT /client/:id/password.
func (s *Server) ChangeClientPassword(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	var req ChangePasswordRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err = s.clients.ChangePassword(c.Request().Context(), id, req.Password); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteClient handles DELETE /client/:id.
// Responds with the removed client's last state.
func (s *Server) DeleteClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, "Invalid client id")
	}

	snapshot, err := s.clients.Delete(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toClientResponse(snapshot))
}
