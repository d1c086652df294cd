package queries

import (
	"context"
)

// GetShipmentHistoryQueryHandler reads the history of a shipment. Every Handle
// call ranges over a fresh read of the store, so two calls with no transition
// in between return the same records.
//
// Example:
//
//	handler := NewGetShipmentHistoryQueryHandler(shipmentRepo, transitionRepo)
//	query, _ := NewGetShipmentHistoryQuery(shipmentID, actorID)
//
//	records, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrPermissionDenied) {
//	    // actor is neither sender nor carrier
//	}
//	for _, r := range records {
//	    fmt.Println(r.Seq, r.Status, r.RecordedAt)
//	}
type GetShipmentHistoryQueryHandler struct {
	shipments   ShipmentReader
	transitions HistoryReader
}

func NewGetShipmentHistoryQueryHandler(shipments ShipmentReader, transitions HistoryReader) GetShipmentHistoryQueryHandler {
	return GetShipmentHistoryQueryHandler{shipments: shipments, transitions: transitions}
}

func (h GetShipmentHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentHistoryQuery,
) ([]GetShipmentHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := loadForParty(ctx, h.shipments, query.ShipmentID(), query.ActorID(), "read history"); err != nil {
		return nil, err
	}

	records := make([]GetShipmentHistoryQueryResponse, 0)
	for record, err := range h.transitions.History(ctx, query.ShipmentID()) {
		if err != nil {
			return nil, err
		}
		records = append(records, GetShipmentHistoryQueryResponse{
			ID:          record.ID(),
			Seq:         record.Seq(),
			Status:      record.Status(),
			ActorID:     record.ActorID(),
			Note:        record.Note(),
			Location:    record.Location(),
			EvidenceRef: record.EvidenceRef(),
			RecordedAt:  record.RecordedAt(),
		})
	}

	return records, nil
}
