package services_test

import (
	"testing"

	"gardenstore/internal/core/application/services"
	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validAdresse(t *testing.T) client.Adresse {
	t.Helper()
	adresse, err := client.NewAdresse("Rue des Lilas", "Namur", 12, 5000)
	require.NoError(t, err)
	return adresse
}

func restoredClient(t *testing.T, id int64) *client.Client {
	t.Helper()
	c, err := client.RestoreClient(
		kernel.MustNewID(id),
		"Dupont", "Marie", validAdresse(t),
		"marie.dupont@example.com", 471234567, "$2a$10$storedhash",
	)
	require.NoError(t, err)
	return c
}

func TestClientService_Register_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()

	saved := restoredClient(t, 1)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "s3cret").Return("$2a$10$freshhash", nil).Once()
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*client.Client")).Return(saved, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewClientService(mockFactory, mockHasher)

	// Act
	created, err := service.Register(ctx, services.RegisterClientParams{
		Nom:       "Dupont",
		Prenom:    "Marie",
		Adresse:   validAdresse(t),
		Mail:      "marie.dupont@example.com",
		Telephone: 471234567,
		Password:  "s3cret",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, created.ID().IsEqual(kernel.MustNewID(1)))
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
	mockHasher.AssertExpectations(t)

	// the aggregate handed to the repository carries the hash, not the plaintext
	added := mockRepo.Calls[0].Arguments.Get(1).(*client.Client)
	assert.Equal(t, "$2a$10$freshhash", added.PasswordHash())
}

func TestClientService_Register_InvalidParams(t *testing.T) {
	// Arrange
	ctx := t.Context()

	mockFactory := new(MockUnitOfWorkFactory)
	mockHasher := new(MockPasswordHasher)
	mockHasher.On("Hash", "s3cret").Return("$2a$10$freshhash", nil).Once()

	service := services.NewClientService(mockFactory, mockHasher)

	// Act
	_, err := service.Register(ctx, services.RegisterClientParams{
		Nom:       "",
		Prenom:    "Marie",
		Adresse:   validAdresse(t),
		Mail:      "marie.dupont@example.com",
		Telephone: 471234567,
		Password:  "s3cret",
	})

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, client.ErrNomIsRequired)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestClientService_Update_AppliesPatch(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.MustNewID(1)
	stored := restoredClient(t, 1)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(stored, nil).Once(),
		mockRepo.On("Update", ctx, stored).Return(stored, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewClientService(mockFactory, new(MockPasswordHasher))

	// Act
	prenom := "Claire"
	updated, err := service.Update(ctx, id, client.Patch{Prenom: &prenom})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Claire", updated.Prenom())
	assert.Equal(t, "Dupont", updated.Nom())
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestClientService_Update_NotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.MustNewID(99)
	notFound := errs.NewObjectNotFoundError("id", id)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return((*client.Client)(nil), notFound).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewClientService(mockFactory, new(MockPasswordHasher))

	// Act
	prenom := "Claire"
	_, err := service.Update(ctx, id, client.Patch{Prenom: &prenom})

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestClientService_ChangePassword_StoresNewHash(t *testing.T) {
	// Arrange
	ctx := t.Context()
	id := kernel.MustNewID(1)
	stored := restoredClient(t, 1)

	mockRepo := new(MockClientRepository)
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockHasher := new(MockPasswordHasher)

	mockHasher.On("Hash", "n3w-pass").Return("$2a$10$newhash", nil).Once()
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ClientRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, id).Return(stored, nil).Once(),
		mockRepo.On("Update", ctx, stored).Return(stored, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	service := services.NewClientService(mockFactory, mockHasher)

	// Act
	err := service.ChangePassword(ctx, id, "n3w-pass")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", stored.PasswordHash())
	mockHasher.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestClientService_IdentityByEmail(t *testing.T) {
	t.Run("projects_stored_credentials", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		stored := restoredClient(t, 1)

		mockRepo := new(MockClientRepository)
		mockUoW := new(MockUnitOfWork)
		mockFactory := new(MockUnitOfWorkFactory)

		mockFactory.On("Create").Return(mockUoW).Once()
		mockUoW.On("ClientRepository").Return(mockRepo).Once()
		mockRepo.On("GetByEmail", ctx, "marie.dupont@example.com").Return(stored, nil).Once()

		service := services.NewClientService(mockFactory, new(MockPasswordHasher))

		// Act
		identity, err := service.IdentityByEmail(ctx, "marie.dupont@example.com")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "marie.dupont@example.com", identity.Email)
		assert.Equal(t, "$2a$10$storedhash", identity.PasswordHash)
		mockUoW.AssertNotCalled(t, "Begin", ctx)
	})

	t.Run("unknown_email", func(t *testing.T) {
		// Arrange
		ctx := t.Context()
		notFound := errs.NewObjectNotFoundError("mail", "nobody@example.com")

		mockRepo := new(MockClientRepository)
		mockUoW := new(MockUnitOfWork)
		mockFactory := new(MockUnitOfWorkFactory)

		mockFactory.On("Create").Return(mockUoW).Once()
		mockUoW.On("ClientRepository").Return(mockRepo).Once()
		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return((*client.Client)(nil), notFound).Once()

		service := services.NewClientService(mockFactory, new(MockPasswordHasher))

		// Act
		_, err := service.IdentityByEmail(ctx, "nobody@example.com")

		// Assert
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
