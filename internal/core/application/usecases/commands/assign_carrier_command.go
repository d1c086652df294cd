package commands

import (
	"errors"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/guard"
)

var ErrAssignCarrierCommandIsNotConstructed = errors.New(
	"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
)

// AssignCarrierCommand records the carrier the sender matched with.
type AssignCarrierCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	carrierID  kernel.UUID
	guard      guard.ConstructorGuard
}

func NewAssignCarrierCommand(shipmentID, actorID, carrierID kernel.UUID) (AssignCarrierCommand, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate(), carrierID.Validate()); err != nil {
		return AssignCarrierCommand{}, err
	}

	return AssignCarrierCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		carrierID:  carrierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignCarrierCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c AssignCarrierCommand) ActorID() kernel.UUID { return c.actorID }
func (c AssignCarrierCommand) CarrierID() kernel.UUID { return c.carrierID }

func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}
