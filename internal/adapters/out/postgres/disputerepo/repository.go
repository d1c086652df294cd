package disputerepo

import (
	"context"
	"errors"

	"shipflow/internal/adapters/out/postgres/pgerrors"
	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDisputeRepository implements ports.DisputeRepository using GORM.
type GormDisputeRepository struct {
	db *gorm.DB
}

func NewGormDisputeRepository(db *gorm.DB) *GormDisputeRepository {
	return &GormDisputeRepository{db: db}
}

// Add saves a new dispute.
func (r *GormDisputeRepository) Add(ctx context.Context, aggregate *dispute.Dispute) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("add dispute", "dispute", aggregate.ID().String(), err)
	}

	return nil
}

// GetLatest retrieves the most recently filed dispute of a shipment.
func (r *GormDisputeRepository) GetLatest(ctx context.Context, shipmentID kernel.UUID) (*dispute.Dispute, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto DisputeDTO
	err := r.db.WithContext(ctx).
		Where("shipment_id = ?", shipmentID.Bytes()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dispute", shipmentID.String())
		}
		return nil, pgerrors.Classify("get dispute", "dispute", shipmentID.String(), err)
	}

	return toDomain(dto)
}
