package services

import (
	"context"

	"gardenstore/internal/core/application/auth"
	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/ports"
)

// RegisterClientParams carries the data needed to open a customer account.
// Password is the plaintext supplied by the caller; the service hashes it
// before anything touches the domain model.
type RegisterClientParams struct {
	Nom       string
	Prenom    string
	Adresse   client.Adresse
	Mail      string
	Telephone int
	Password  string
}

// ClientService manages customer accounts.
// Beyond the shared CRUD lifecycle it owns the two credential paths, hashing
// plaintext passwords on the way in, and projects stored accounts into the
// Identity shape the authenticator consumes.
type ClientService struct {
	crud   CrudService[*client.Client, ports.ClientRepository]
	hasher auth.PasswordHasher
}

// NewClientService creates a ClientService.
func NewClientService(uowFactory ports.UnitOfWorkFactory, hasher auth.PasswordHasher) *ClientService {
	return &ClientService{
		crud: newCrudService[*client.Client](uowFactory,
			func(uow ports.UnitOfWork) ports.ClientRepository { return uow.ClientRepository() }),
		hasher: hasher,
	}
}

// Register opens a new customer account.
// The plaintext password is hashed here; the stored aggregate only ever
// carries the hash.
func (s *ClientService) Register(ctx context.Context, params RegisterClientParams) (*client.Client, error) {
	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	aggregate, err := client.NewClient(
		params.Nom,
		params.Prenom,
		params.Adresse,
		params.Mail,
		params.Telephone,
		passwordHash,
	)
	if err != nil {
		return nil, err
	}

	return s.crud.Create(ctx, aggregate)
}

// GetOne retrieves a single client by identifier.
func (s *ClientService) GetOne(ctx context.Context, id kernel.ID) (*client.Client, error) {
	return s.crud.GetOne(ctx, id)
}

// GetAll retrieves every stored client.
func (s *ClientService) GetAll(ctx context.Context) ([]*client.Client, error) {
	return s.crud.GetAll(ctx)
}

// Update overlays the patch onto the stored client and persists the result.
// The patch carries no password field; credential changes go through
// ChangePassword only.
func (s *ClientService) Update(ctx context.Context, id kernel.ID, patch client.Patch) (*client.Client, error) {
	return s.crud.Update(ctx, id, func(c *client.Client) error {
		return c.ApplyPatch(patch)
	})
}

// Delete removes the client and returns its last persisted state.
func (s *ClientService) Delete(ctx context.Context, id kernel.ID) (*client.Client, error) {
	return s.crud.Delete(ctx, id)
}

// ChangePassword replaces the client's credential with a hash of the new
// plaintext password.
func (s *ClientService) ChangePassword(ctx context.Context, id kernel.ID, newPassword string) error {
	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	_, err = s.crud.Update(ctx, id, func(c *client.Client) error {
		return c.ChangePasswordHash(passwordHash)
	})
	return err
}

// IdentityByEmail projects the account stored under the given email into the
// credential shape used for login. Satisfies auth.IdentityProvider, so the
// authenticator never sees a full client aggregate.
func (s *ClientService) IdentityByEmail(ctx context.Context, email string) (auth.Identity, error) {
	repo := s.crud.selectRepo(s.crud.uowFactory.Create())

	c, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return auth.Identity{}, err
	}

	return auth.Identity{
		Email:        c.Mail(),
		PasswordHash: c.PasswordHash(),
	}, nil
}
