package commands

import (
	"errors"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"
	"shipflow/internal/pkg/guard"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand asks to move a shipment to a new status on behalf of an
// authenticated party. Annotations are trimmed and length-checked up front, so a
// constructed command never fails validation inside the transaction.
//
// Example:
//
//	cmd, err := NewChangeStatusCommand(shipmentID, carrierID, shipment.PickedUp,
//	    shipment.TransitionOptions{Location: "Warehouse 4", EvidenceRef: "photos/label.jpg"})
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type ChangeStatusCommand struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	status     shipment.Status
	options    shipment.TransitionOptions
	guard      guard.ConstructorGuard
}

// NewChangeStatusCommand validates the request.
func NewChangeStatusCommand(
	shipmentID, actorID kernel.UUID,
	status shipment.Status,
	options shipment.TransitionOptions,
) (ChangeStatusCommand, error) {
	normalized, optErr := options.Normalize()

	var actorErr error
	if err := actorID.Validate(); err != nil {
		actorErr = errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}

	if err := errors.Join(
		shipmentID.Validate(),
		actorErr,
		status.Validate(),
		optErr,
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return ChangeStatusCommand{
		shipmentID: shipmentID,
		actorID:    actorID,
		status:     status,
		options:    normalized,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeStatusCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c ChangeStatusCommand) ActorID() kernel.UUID { return c.actorID }
func (c ChangeStatusCommand) Status() shipment.Status { return c.status }
func (c ChangeStatusCommand) Options() shipment.TransitionOptions { return c.options }

// Validate ensures the command was created through the constructor.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}
