package shipmentrepo

import (
	"context"
	"errors"

	"shipflow/internal/adapters/out/postgres/pgerrors"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"

	"gorm.io/gorm"
)

const resource = "shipment"

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a repository bound to db, which may be a transaction.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("add shipment", resource, aggregate.ID().String(), err)
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(resource, id.String())
		}
		return nil, pgerrors.Classify("get shipment", resource, id.String(), err)
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on the status column. Under READ COMMITTED the
// second of two racing writers waits for the first, re-evaluates the WHERE clause
// against the committed row and matches nothing.
func (r *GormShipmentRepository) UpdateStatus(
	ctx context.Context,
	aggregate *shipment.Shipment,
	expected shipment.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), expected.String()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return pgerrors.Classify("update shipment status", resource, aggregate.ID().String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError(resource, aggregate.ID().String())
	}

	return nil
}

// UpdateCarrier stores the matched carrier; it only applies while the shipment is REQUESTED.
// updated_at is left alone: it tracks status changes.
func (r *GormShipmentRepository) UpdateCarrier(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, shipment.Requested.String()).
		UpdateColumn("carrier_id", dto.CarrierID)
	if result.Error != nil {
		return pgerrors.Classify("update shipment carrier", resource, aggregate.ID().String(), result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError(resource, aggregate.ID().String())
	}

	return nil
}
