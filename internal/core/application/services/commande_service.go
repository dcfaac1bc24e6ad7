package services

import (
	"context"

	"gardenstore/internal/core/domain/model/commande"
	"gardenstore/internal/core/domain/model/kernel"
	"gardenstore/internal/core/ports"
)

// CommandeService manages customer orders.
type CommandeService struct {
	crud       CrudService[*commande.Commande, ports.CommandeRepository]
	uowFactory ports.UnitOfWorkFactory
}

// NewCommandeService creates a CommandeService.
func NewCommandeService(uowFactory ports.UnitOfWorkFactory) *CommandeService {
	return &CommandeService{
		crud: newCrudService[*commande.Commande](uowFactory,
			func(uow ports.UnitOfWork) ports.CommandeRepository { return uow.CommandeRepository() }),
		uowFactory: uowFactory,
	}
}

// Register persists a new order and returns it with the store-assigned
// identifier.
func (s *CommandeService) Register(ctx context.Context, aggregate *commande.Commande) (*commande.Commande, error) {
	return s.crud.Create(ctx, aggregate)
}

// GetOne retrieves a single order by identifier.
func (s *CommandeService) GetOne(ctx context.Context, id kernel.ID) (*commande.Commande, error) {
	return s.crud.GetOne(ctx, id)
}

// GetAll retrieves every stored order.
func (s *CommandeService) GetAll(ctx context.Context) ([]*commande.Commande, error) {
	return s.crud.GetAll(ctx)
}

// Update overlays the patch onto the stored order and persists the result.
func (s *CommandeService) Update(ctx context.Context, id kernel.ID, patch commande.Patch) (*commande.Commande, error) {
	return s.crud.Update(ctx, id, func(c *commande.Commande) error {
		return c.ApplyPatch(patch)
	})
}

// Cancel removes the order and returns its last persisted state.
// Cancelling a missing order is an error: callers get an ObjectNotFoundError
// instead of a silent no-op, so a mistyped identifier cannot pass for a
// successful cancellation.
func (s *CommandeService) Cancel(ctx context.Context, id kernel.ID) (*commande.Commande, error) {
	return s.crud.Delete(ctx, id)
}

// GetByLivreur retrieves the orders assigned to the given livreur.
// The livreur must exist; the order list itself may be empty. This is the
// read side of the order/livreur relation, derived entirely from the order
// table's foreign key.
func (s *CommandeService) GetByLivreur(ctx context.Context, livreurID kernel.ID) ([]*commande.Commande, error) {
	if err := livreurID.Validate(); err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()

	if _, err := uow.LivreurRepository().Get(ctx, livreurID); err != nil {
		return nil, err
	}

	return uow.CommandeRepository().GetAllByLivreur(ctx, livreurID)
}
