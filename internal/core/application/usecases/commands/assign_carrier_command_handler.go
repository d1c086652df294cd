package commands

import (
	"context"

	"shipflow/internal/core/domain/model/shipment"
)

// AssignCarrierCommandHandler sets the carrier of a REQUESTED shipment.
// Only the sender may do so; the carrier must be someone else.
type AssignCarrierCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewAssignCarrierCommandHandler(uowFactory ShipmentUoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{uowFactory: uowFactory}
}

func (h AssignCarrierCommandHandler) Handle(ctx context.Context, command AssignCarrierCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipments := uow.ShipmentRepository()

	s, err := shipments.Get(ctx, command.ShipmentID())
	if err != nil {
		return nil, err
	}

	if err = s.AssignCarrier(command.ActorID(), command.CarrierID()); err != nil {
		return nil, err
	}

	if err = shipments.UpdateCarrier(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
