package commands

import (
	"errors"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand puts a new shipment into REQUESTED. The acting party becomes
// the sender; a carrier may already be known when the marketplace matched offline.
type CreateShipmentCommand struct {
	shipmentID kernel.UUID
	senderID   kernel.UUID
	carrierID  *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewCreateShipmentCommand(shipmentID, senderID kernel.UUID, carrierID *kernel.UUID) (CreateShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), senderID.Validate()); err != nil {
		return CreateShipmentCommand{}, err
	}
	if carrierID != nil {
		if err := carrierID.Validate(); err != nil {
			return CreateShipmentCommand{}, err
		}
	}

	return CreateShipmentCommand{
		shipmentID: shipmentID,
		senderID:   senderID,
		carrierID:  carrierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c CreateShipmentCommand) SenderID() kernel.UUID { return c.senderID }
func (c CreateShipmentCommand) CarrierID() *kernel.UUID { return c.carrierID }

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}
