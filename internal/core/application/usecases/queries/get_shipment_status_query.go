package queries

import (
	"errors"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/guard"
)

var ErrGetShipmentStatusQueryIsNotConstructed = errors.New(
	"GetShipmentStatusQuery must be created via NewGetShipmentStatusQuery constructor",
)

// GetShipmentStatusQuery asks for the current status of a shipment and the
// statuses the asking party may move it to next.
type GetShipmentStatusQuery struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentStatusQuery(shipmentID, actorID kernel.UUID) (GetShipmentStatusQuery, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return GetShipmentStatusQuery{}, err
	}
	return GetShipmentStatusQuery{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentStatusQuery) ShipmentID() kernel.UUID { return q.shipmentID }
func (q GetShipmentStatusQuery) ActorID() kernel.UUID { return q.actorID }

func (q GetShipmentStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentStatusQueryIsNotConstructed)
}

type GetShipmentStatusQueryResponse struct {
	ID        kernel.UUID
	SenderID  kernel.UUID
	CarrierID *kernel.UUID
	Status    shipment.Status
	Role      shipment.Role
	// AllowedNextStates lists what the actor can request through a status
	// change. DISPUTED is never listed; it is reached by filing a dispute.
	AllowedNextStates []shipment.Status
	CanDispute        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
