// Package transitionrepo stores the append-only shipment history. Seq is a
// database-assigned bigserial that orders records of the same shipment.
package transitionrepo

import (
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// TransitionDTO represents one row of shipment_transitions.
type TransitionDTO struct {
	Seq         int64     `gorm:"primaryKey;autoIncrement;index:idx_transitions_shipment_seq,priority:2"`
	ID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_transitions_shipment_seq,priority:1"`
	Status      string    `gorm:"type:varchar(16);not null;check:status IN ('REQUESTED','ACCEPTED','PICKED_UP','IN_TRANSIT','ARRIVED','DELIVERED','DISPUTED')"`
	ActorID     uuid.UUID `gorm:"type:uuid;not null"`
	Note        string    `gorm:"type:text;not null;default:''"`
	Location    string    `gorm:"type:varchar(255);not null;default:''"`
	EvidenceRef string    `gorm:"type:text;not null;default:''"`
	RecordedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for transition records.
func (TransitionDTO) TableName() string {
	return "shipment_transitions"
}

func fromDomain(record *shipment.TransitionRecord) TransitionDTO {
	return TransitionDTO{
		ID:          record.ID().Bytes(),
		ShipmentID:  record.ShipmentID().Bytes(),
		Status:      record.Status().String(),
		ActorID:     record.ActorID().Bytes(),
		Note:        record.Note(),
		Location:    record.Location(),
		EvidenceRef: record.EvidenceRef(),
		RecordedAt:  record.RecordedAt(),
	}
}

func toDomain(dto TransitionDTO) (*shipment.TransitionRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreTransitionRecord(
		id,
		dto.Seq,
		shipmentID,
		status,
		actorID,
		shipment.TransitionOptions{
			Note:        dto.Note,
			Location:    dto.Location,
			EvidenceRef: dto.EvidenceRef,
		},
		dto.RecordedAt.UTC(),
	)
}
