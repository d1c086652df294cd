package queries

import (
	"context"
	"slices"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

// NextStatesPolicy is the part of the status registry the status view needs.
type NextStatesPolicy interface {
	PermittedNextStates(s *shipment.Shipment, actorID kernel.UUID) []shipment.Status
}

type GetShipmentStatusQueryHandler struct {
	shipments ShipmentReader
	policy    NextStatesPolicy
}

func NewGetShipmentStatusQueryHandler(shipments ShipmentReader, policy NextStatesPolicy) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{shipments: shipments, policy: policy}
}

func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	s, err := loadForParty(ctx, h.shipments, query.ShipmentID(), query.ActorID(), "read status")
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	permitted := h.policy.PermittedNextStates(s, query.ActorID())
	canDispute := slices.Contains(permitted, shipment.Disputed)
	next := slices.DeleteFunc(slices.Clone(permitted), func(st shipment.Status) bool {
		return st == shipment.Disputed
	})

	return GetShipmentStatusQueryResponse{
		ID:                s.ID(),
		SenderID:          s.SenderID(),
		CarrierID:         s.CarrierID(),
		Status:            s.Status(),
		Role:              s.RoleOf(query.ActorID()),
		AllowedNextStates: next,
		CanDispute:        canDispute,
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}, nil
}
