package services_test

import (
	"context"

	"gardenstore/internal/core/domain/model/client"
	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/domain/model/livreur"
	"gardenstore/internal/core/domain/model/produit"
	"gardenstore/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations for testing.
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Add(ctx context.Context, aggregate *client.Client) (*client.Client, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, aggregate *client.Client) (*client.Client, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.ID) (*client.Client, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*client.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetByEmail(ctx context.Context, mail string) (*client.Client, error) {
	args := m.Called(ctx, mail)
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommandeRepository struct {
	mock.Mock
}

func (m *MockCommandeRepository) Add(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*commande.Commande), args.Error(1)
}

func (m *MockCommandeRepository) Update(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*commande.Commande), args.Error(1)
}

func (m *MockCommandeRepository) Get(ctx context.Context, id kernel.ID) (*commande.Commande, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*commande.Commande), args.Error(1)
}

func (m *MockCommandeRepository) GetAll(ctx context.Context) ([]*commande.Commande, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*commande.Commande), args.Error(1)
}

func (m *MockCommandeRepository) GetAllByLivreur(ctx context.Context, livreurID kernel.ID) ([]*commande.Commande, error) {
	args := m.Called(ctx, livreurID)
	return args.Get(0).([]*commande.Commande), args.Error(1)
}

func (m *MockCommandeRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLivreurRepository struct {
	mock.Mock
}

func (m *MockLivreurRepository) Add(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurRepository) Update(ctx context.Context, aggregate *livreur.Livreur) (*livreur.Livreur, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurRepository) Get(ctx context.Context, id kernel.ID) (*livreur.Livreur, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurRepository) GetAll(ctx context.Context) ([]*livreur.Livreur, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*livreur.Livreur), args.Error(1)
}

func (m *MockLivreurRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProduitRepository struct {
	mock.Mock
}

func (m *MockProduitRepository) Add(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*produit.Produit), args.Error(1)
}

func (m *MockProduitRepository) Update(ctx context.Context, aggregate *produit.Produit) (*produit.Produit, error) {
	args := m.Called(ctx, aggregate)
	return args.Get(0).(*produit.Produit), args.Error(1)
}

func (m *MockProduitRepository) Get(ctx context.Context, id kernel.ID) (*produit.Produit, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*produit.Produit), args.Error(1)
}

func (m *MockProduitRepository) GetAll(ctx context.Context) ([]*produit.Produit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*produit.Produit), args.Error(1)
}

func (m *MockProduitRepository) GetAllByCategorie(ctx context.Context, categorie produit.Categorie) ([]*produit.Produit, error) {
	args := m.Called(ctx, categorie)
	return args.Get(0).([]*produit.Produit), args.Error(1)
}

func (m *MockProduitRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUnitOfWork) CommandeRepository() ports.CommandeRepository {
	args := m.Called()
	return args.Get(0).(ports.CommandeRepository)
}

func (m *MockUnitOfWork) LivreurRepository() ports.LivreurRepository {
	args := m.Called()
	return args.Get(0).(ports.LivreurRepository)
}

func (m *MockUnitOfWork) ProduitRepository() ports.ProduitRepository {
	args := m.Called()
	return args.Get(0).(ports.ProduitRepository)
}

type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() ports.UnitOfWork {
	args := m.Called()
	return args.Get(0).(ports.UnitOfWork)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}
