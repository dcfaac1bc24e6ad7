package cmd

import (
	httpin "gardenstore/internal/adapters/in/http"
	"gardenstore/internal/adapters/out/postgres"
	"gardenstore/internal/core/application/auth"
	"gardenstore/internal/core/application/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CompositionRoot wires the application services, the authentication
// components and the HTTP server onto one database connection.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePasswordHasher() auth.PasswordHasher {
	return auth.NewBcryptHasher(bcrypt.DefaultCost)
}

func (c *CompositionRoot) CreateClientService() *services.ClientService {
	return services.NewClientService(c.uowFactory, c.CreatePasswordHasher())
}

func (c *CompositionRoot) CreateCommandeService() *services.CommandeService {
	return services.NewCommandeService(c.uowFactory)
}

func (c *CompositionRoot) CreateLivreurService() *services.LivreurService {
	return services.NewLivreurService(c.uowFactory)
}

func (c *CompositionRoot) CreateProduitService() *services.ProduitService {
	return services.NewProduitService(c.uowFactory)
}

func (c *CompositionRoot) CreateAuthenticator() (*auth.Authenticator, error) {
	return auth.NewAuthenticator(c.CreateClientService(), c.CreatePasswordHasher())
}

func (c *CompositionRoot) CreateTokenIssuer() (*auth.TokenIssuer, error) {
	return auth.NewTokenIssuer(c.config.JWTSecret)
}

// CreateHTTPServer builds the fully wired HTTP server.
// Fails when the authentication components cannot be constructed, which is
// how a missing JWT secret surfaces at startup.
func (c *CompositionRoot) CreateHTTPServer() (*httpin.Server, error) {
	authenticator, err := c.CreateAuthenticator()
	if err != nil {
		return nil, err
	}

	tokens, err := c.CreateTokenIssuer()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(
		c.CreateClientService(),
		c.CreateCommandeService(),
		c.CreateLivreurService(),
		c.CreateProduitService(),
		authenticator,
		tokens,
		c.config.JWTSecret,
	), nil
}
