package queries

import (
	"errors"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/guard"
)

var ErrGetShipmentHistoryQueryIsNotConstructed = errors.New(
	"GetShipmentHistoryQuery must be created via NewGetShipmentHistoryQuery constructor",
)

// GetShipmentHistoryQuery asks for the transition records of one shipment on
// behalf of one of its parties.
type GetShipmentHistoryQuery struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetShipmentHistoryQuery(shipmentID, actorID kernel.UUID) (GetShipmentHistoryQuery, error) {
	if err := errors.Join(shipmentID.Validate(), actorID.Validate()); err != nil {
		return GetShipmentHistoryQuery{}, err
	}
	return GetShipmentHistoryQuery{
		shipmentID: shipmentID,
		actorID:    actorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetShipmentHistoryQuery) ShipmentID() kernel.UUID { return q.shipmentID }
func (q GetShipmentHistoryQuery) ActorID() kernel.UUID { return q.actorID }

func (q GetShipmentHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentHistoryQueryIsNotConstructed)
}

// GetShipmentHistoryQueryResponse is one transition record, oldest first in the
// returned slice.
type GetShipmentHistoryQueryResponse struct {
	ID          kernel.UUID
	Seq         int64
	Status      shipment.Status
	ActorID     kernel.UUID
	Note        string
	Location    string
	EvidenceRef string
	RecordedAt  time.Time
}
