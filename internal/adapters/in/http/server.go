// Package http exposes the store back office over a JSON REST API.
//
// Every route except login, client registration and the health probe is
// protected by a bearer token minted at login. Error payloads are uniform
// across all endpoints.
package http

import (
	"errors"
	"net/http"
	"strings"

	"gardenstore/internal/core/application/auth"
	"gardenstore/internal/core/application/services"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the application services.
type Server struct {
	clients   *services.ClientService
	commandes *services.CommandeService
	livreurs  *services.LivreurService
	produits  *services.ProduitService

	authenticator *auth.Authenticator
	tokens        *auth.TokenIssuer
	jwtSecret     []byte
}

// NewServer creates an HTTP server wired to the application services.
func NewServer(
	clients *services.ClientService,
	commandes *services.CommandeService,
	livreurs *services.LivreurService,
	produits *services.ProduitService,
	authenticator *auth.Authenticator,
	tokens *auth.TokenIssuer,
	jwtSecret string,
) *Server {
	return &Server{
		clients:       clients,
		commandes:     commandes,
		livreurs:      livreurs,
		produits:      produits,
		authenticator: authenticator,
		tokens:        tokens,
		jwtSecret:     []byte(jwtSecret),
	}
}

// RegisterRoutes attaches all endpoints and the token middleware to the echo
// instance. Login, client registration and the health probe stay public so a
// new customer can obtain an account and a token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: s.jwtSecret,
		Skipper: func(c echo.Context) bool {
			path := c.Path()
			if path == "/health" {
				return true
			}
			if c.Request().Method == http.MethodPost &&
				(path == "/client/login" || path == "/client/insert") {
				return true
			}
			return false
		},
	}))

	e.GET("/health", s.Health)

	clients := e.Group("/client")
	clients.GET("", s.GetAllClients)
	clients.GET("/:id", s.GetClient)
	clients.POST("/insert", s.RegisterClient)
	clients.POST("/login", s.Login)
	clients.PUT("/:id", s.UpdateClient)
	clients.PUT("/:id/password", s.ChangeClientPassword)
	clients.DELETE("/:id", s.DeleteClient)

	commandes := e.Group("/commande")
	commandes.GET("", s.GetAllCommandes)
	commandes.GET("/:id", s.GetCommande)
	commandes.POST("/register", s.RegisterCommande)
	commandes.PUT("/:id", s.UpdateCommande)
	commandes.DELETE("/:id", s.CancelCommande)

	livreurs := e.Group("/livreur")
	livreurs.GET("", s.GetAllLivreurs)
	livreurs.GET("/:id", s.GetLivreur)
	livreurs.GET("/:id/commandes", s.GetLivreurCommandes)
	livreurs.POST("/add", s.AddLivreur)
	livreurs.PUT("/:id", s.UpdateLivreur)
	livreurs.DELETE("/:id", s.DeleteLivreur)

	produits := e.Group("/produit")
	produits.GET("", s.GetAllProduits)
	produits.GET("/:id", s.GetProduit)
	produits.GET("/categorie/:categorie", s.GetProduitsByCategorie)
	produits.POST("/add", s.AddProduit)
	produits.PUT("/:id", s.UpdateProduit)
	produits.DELETE("/:id", s.DeleteProduit)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /client/login.
// Both an unknown email and a wrong password yield the same 401 body.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	identity, err := s.authenticator.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, Error{
				Code:    http.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}
		return internalError(c)
	}

	token, err := s.tokens.Issue(identity.Email)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Email:       identity.Email,
		AccessToken: token,
	})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (kernel.ID, error) {
	return kernel.ParseID(strings.TrimSpace(c.Param("id")))
}

// writeError maps application errors onto HTTP status codes.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(c)
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
