// Package shipmentrepo persists the Shipment row of the Lifecycle Store.
// It converts between the domain aggregate and its database representation and
// performs the compare-and-set status write that serializes concurrent transitions.
package shipmentrepo

import (
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure of a shipment. Status is stored
// as one of the seven enum tokens and guarded by a check constraint.
type ShipmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	CarrierID *uuid.UUID `gorm:"type:uuid;index"`
	Status    string     `gorm:"type:varchar(16);not null;check:status IN ('REQUESTED','ACCEPTED','PICKED_UP','IN_TRANSIT','ARRIVED','DELIVERED','DISPUTED')"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:        aggregate.ID().Bytes(),
		SenderID:  aggregate.SenderID().Bytes(),
		CarrierID: kernel.NullableBytes(aggregate.CarrierID()),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDPtrFromNullable(dto.CarrierID)
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, senderID, carrierID, status, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
