package notifications

import (
	"fmt"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
)

var titles = map[shipment.Status]string{
	shipment.Accepted:  "Shipment accepted",
	shipment.PickedUp:  "Parcel picked up",
	shipment.InTransit: "Parcel on its way",
	shipment.Arrived:   "Parcel arrived",
	shipment.Delivered: "Delivery confirmed",
	shipment.Disputed:  "Shipment disputed",
}

var bodies = map[shipment.Status]string{
	shipment.Accepted:  "The carrier accepted shipment %s.",
	shipment.PickedUp:  "The carrier picked up the parcel for shipment %s.",
	shipment.InTransit: "Shipment %s is in transit.",
	shipment.Arrived:   "Shipment %s arrived at its destination. Please confirm delivery.",
	shipment.Delivered: "The sender confirmed delivery of shipment %s.",
	shipment.Disputed:  "A dispute was filed for shipment %s.",
}

// Recipients returns the parties of the change other than the actor.
func Recipients(change ports.StatusChange) []kernel.UUID {
	recipients := make([]kernel.UUID, 0, 2)
	if !change.SenderID.IsEqual(change.ActorID) {
		recipients = append(recipients, change.SenderID)
	}
	if change.CarrierID != nil && !change.CarrierID.IsEqual(change.ActorID) {
		recipients = append(recipients, *change.CarrierID)
	}
	return recipients
}

// NewStatusEvent renders the human readable payload for a change.
func NewStatusEvent(change ports.StatusChange) ports.StatusEvent {
	title, ok := titles[change.NewStatus]
	if !ok {
		title = "Shipment updated"
	}
	body := fmt.Sprintf("Shipment %s is now %s.", change.ShipmentID, change.NewStatus)
	if format, ok := bodies[change.NewStatus]; ok {
		body = fmt.Sprintf(format, change.ShipmentID)
	}

	return ports.StatusEvent{
		ShipmentID: change.ShipmentID,
		NewStatus:  change.NewStatus,
		Title:      title,
		Body:       body,
		Timestamp:  change.OccurredAt,
	}
}
