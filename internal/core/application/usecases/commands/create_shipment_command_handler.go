package commands

import (
	"context"

	"shipflow/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler stores a new REQUESTED shipment. Creation is not a
// transition, so no history record is written and nobody is notified.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{uowFactory: uowFactory}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, command CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	created, err := shipment.NewShipment(command.ShipmentID(), command.SenderID(), command.CarrierID(), currentTime())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShipmentRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
