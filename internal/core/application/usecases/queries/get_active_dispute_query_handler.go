package queries

import (
	"context"

	"shipflow/internal/core/domain/model/dispute"
)

// GetActiveDisputeQueryHandler returns the latest dispute of a shipment to one
// of its parties. A shipment that was never disputed yields ErrObjectNotFound.
type GetActiveDisputeQueryHandler struct {
	shipments ShipmentReader
	disputes  DisputeReader
}

func NewGetActiveDisputeQueryHandler(shipments ShipmentReader, disputes DisputeReader) GetActiveDisputeQueryHandler {
	return GetActiveDisputeQueryHandler{shipments: shipments, disputes: disputes}
}

func (h GetActiveDisputeQueryHandler) Handle(ctx context.Context, query GetActiveDisputeQuery) (*dispute.Dispute, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := loadForParty(ctx, h.shipments, query.ShipmentID(), query.ActorID(), "read dispute"); err != nil {
		return nil, err
	}

	return h.disputes.GetLatest(ctx, query.ShipmentID())
}
