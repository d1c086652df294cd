// Package ports defines the contracts between the shipment workflow core and its
// infrastructure: the Lifecycle Store repositories, the unit of work that makes
// their writes atomic, and the outbound notification boundary.
package ports

import (
	"context"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

// ShipmentRepository persists the Shipment row. Only status, carrier and
// updatedAt ever change after creation.
type ShipmentRepository interface {
	// Add persists a newly created shipment.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get loads the current status and party identities.
	// Returns an errs.ObjectNotFoundError when the shipment does not exist.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// UpdateStatus writes the aggregate's status and updatedAt only if the stored
	// status still equals expected. A mismatch is reported as errs.ConflictError
	// and nothing is written.
	//
	// Example:
	//   previous, _ := s.MoveTo(shipment.PickedUp, now)
	//   if err := repo.UpdateStatus(ctx, s, previous); errors.Is(err, errs.ErrConflict) {
	//       // another request moved the shipment first
	//   }
	UpdateStatus(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) error

	// UpdateCarrier writes the matched carrier while the stored status is still REQUESTED.
	UpdateCarrier(ctx context.Context, aggregate *shipment.Shipment) error
}
