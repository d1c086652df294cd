package http

import (
	"time"

	"github.com/google/uuid"
)

// Wire types of the API document.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type NewShipment struct {
	Id        *uuid.UUID `json:"id,omitempty"`
	CarrierId *uuid.UUID `json:"carrierId,omitempty"`
}

type Shipment struct {
	Id        uuid.UUID  `json:"id"`
	SenderId  uuid.UUID  `json:"senderId"`
	CarrierId *uuid.UUID `json:"carrierId,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type ShipmentStatus struct {
	Shipment
	Role              string   `json:"role"`
	AllowedNextStates []string `json:"allowedNextStates"`
	CanDispute        bool     `json:"canDispute"`
}

type ChangeStatusRequest struct {
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
	Location    *string `json:"location,omitempty"`
	EvidenceRef *string `json:"evidenceRef,omitempty"`
}

type AssignCarrierRequest struct {
	CarrierId uuid.UUID `json:"carrierId"`
}

type TransitionRecord struct {
	Id          uuid.UUID `json:"id"`
	Seq         int64     `json:"seq"`
	ShipmentId  uuid.UUID `json:"shipmentId"`
	Status      string    `json:"status"`
	ActorId     uuid.UUID `json:"actorId"`
	Note        string    `json:"note,omitempty"`
	Location    string    `json:"location,omitempty"`
	EvidenceRef string    `json:"evidenceRef,omitempty"`
	RecordedAt  time.Time `json:"recordedAt"`
}

type DisputeRequest struct {
	Reason       string   `json:"reason"`
	Description  string   `json:"description"`
	EvidenceRefs []string `json:"evidenceRefs,omitempty"`
}

type Dispute struct {
	Id               uuid.UUID `json:"id"`
	ShipmentId       uuid.UUID `json:"shipmentId"`
	ReporterId       uuid.UUID `json:"reporterId"`
	Reason           string    `json:"reason"`
	Description      string    `json:"description"`
	EvidenceRefs     []string  `json:"evidenceRefs"`
	ResolutionStatus string    `json:"resolutionStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

type PushTokenRequest struct {
	Token string `json:"token"`
}
