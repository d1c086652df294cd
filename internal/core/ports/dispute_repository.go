package ports

import (
	"context"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
)

// DisputeRepository stores complaint records. Disputes are never deleted.
type DisputeRepository interface {
	Add(ctx context.Context, aggregate *dispute.Dispute) error

	// GetLatest returns the most recent dispute of a shipment, which is the active one.
	// Returns an errs.ObjectNotFoundError when none was filed.
	GetLatest(ctx context.Context, shipmentID kernel.UUID) (*dispute.Dispute, error)
}
