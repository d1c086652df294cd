// Package disputerepo persists dispute records. Evidence references live in a
// Postgres text[] column.
package disputerepo

import (
	"time"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DisputeDTO represents the database structure of a dispute.
type DisputeDTO struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ShipmentID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReporterID       uuid.UUID      `gorm:"type:uuid;not null"`
	Reason           string         `gorm:"type:varchar(64);not null"`
	Description      string         `gorm:"type:text;not null"`
	EvidenceRefs     pq.StringArray `gorm:"type:text[];not null"`
	ResolutionStatus string         `gorm:"type:varchar(16);not null;check:resolution_status IN ('open','closed')"`
	CreatedAt        time.Time      `gorm:"not null"`
}

// TableName specifies the database table name for dispute records.
func (DisputeDTO) TableName() string {
	return "disputes"
}

func fromDomain(aggregate *dispute.Dispute) DisputeDTO {
	evidence := aggregate.EvidenceRefs()
	if evidence == nil {
		evidence = []string{}
	}

	return DisputeDTO{
		ID:               aggregate.ID().Bytes(),
		ShipmentID:       aggregate.ShipmentID().Bytes(),
		ReporterID:       aggregate.ReporterID().Bytes(),
		Reason:           aggregate.Reason(),
		Description:      aggregate.Description(),
		EvidenceRefs:     pq.StringArray(evidence),
		ResolutionStatus: aggregate.Resolution().String(),
		CreatedAt:        aggregate.CreatedAt(),
	}
}

func toDomain(dto DisputeDTO) (*dispute.Dispute, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	reporterID, err := kernel.UUIDFromBytes(dto.ReporterID[:])
	if err != nil {
		return nil, err
	}

	return dispute.RestoreDispute(
		id,
		shipmentID,
		reporterID,
		dto.Reason,
		dto.Description,
		[]string(dto.EvidenceRefs),
		dispute.ResolutionStatus(dto.ResolutionStatus),
		dto.CreatedAt.UTC(),
	)
}
