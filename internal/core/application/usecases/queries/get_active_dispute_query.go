package queries

import (
	"errors"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/guard"
)

var ErrGetActiveDisputeQueryIsNotConstructed = errors.New(
	"GetActiveDisputeQuery must be created via NewGetActiveDisputeQuery constructor",
)

// GetActiveDisputeQuery asks for the most recent dispute filed on a shipment.
type GetActiveDisputeQuery struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetActiveDisputeQuery(shipmentID, actorID kernel.UUID) (GetActiveDisputeQuery, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return GetActiveDisputeQuery{}, err
	}
	return GetActiveDisputeQuery{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveDisputeQuery) ShipmentID() kernel.UUID { return q.shipmentID }
func (q GetActiveDisputeQuery) ActorID() kernel.UUID { return q.actorID }

func (q GetActiveDisputeQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDisputeQueryIsNotConstructed)
}
