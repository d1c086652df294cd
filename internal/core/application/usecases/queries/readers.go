package queries

import (
	"context"
	"iter"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"
)

// Read-side views of the Lifecycle Store. Query handlers run outside a unit of
// work, so the gorm repositories are handed the plain connection.
type (
	ShipmentReader interface {
		Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
	}

	HistoryReader interface {
		History(ctx context.Context, shipmentID kernel.UUID) iter.Seq2[*shipment.TransitionRecord, error]
	}

	DisputeReader interface {
		GetLatest(ctx context.Context, shipmentID kernel.UUID) (*dispute.Dispute, error)
	}
)

// loadForParty returns the shipment only when actorID is its sender or carrier.
func loadForParty(
	ctx context.Context,
	shipments ShipmentReader,
	shipmentID, actorID kernel.UUID,
	action string,
) (*shipment.Shipment, error) {
	s, err := shipments.Get(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	if !s.IsParty(actorID) {
		return nil, errs.NewPermissionDeniedError(actorID.String(), action)
	}
	return s, nil
}
