package transitionrepo

import (
	"context"
	"iter"

	"shipflow/internal/adapters/out/postgres/pgerrors"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

const resource = "shipment"

// GormTransitionRepository implements ports.TransitionRepository using GORM.
type GormTransitionRepository struct {
	db *gorm.DB
}

// NewGormTransitionRepository creates a repository bound to db, which may be a transaction.
func NewGormTransitionRepository(db *gorm.DB) *GormTransitionRepository {
	return &GormTransitionRepository{db: db}
}

// Append inserts the record and copies the assigned sequence number back onto it.
func (r *GormTransitionRepository) Append(ctx context.Context, record *shipment.TransitionRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrors.Classify("append transition", resource, record.ShipmentID().String(), err)
	}

	record.AssignSeq(dto.Seq)
	return nil
}

// History streams records oldest first. Each range over the returned sequence
// runs its own query, so no cursor state survives between iterations.
func (r *GormTransitionRepository) History(
	ctx context.Context,
	shipmentID kernel.UUID,
) iter.Seq2[*shipment.TransitionRecord, error] {
	return func(yield func(*shipment.TransitionRecord, error) bool) {
		if err := shipmentID.Validate(); err != nil {
			yield(nil, err)
			return
		}

		rows, err := r.db.WithContext(ctx).Raw(`
			SELECT
				seq,
				id,
				shipment_id,
				status,
				actor_id,
				note,
				location,
				evidence_ref,
				recorded_at
			FROM shipment_transitions
			WHERE shipment_id = ?
			ORDER BY seq
		`, shipmentID.Bytes()).Rows()
		if err != nil {
			yield(nil, pgerrors.Classify("read history", resource, shipmentID.String(), err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dto TransitionDTO
			if err = rows.Scan(
				&dto.Seq,
				&dto.ID,
				&dto.ShipmentID,
				&dto.Status,
				&dto.ActorID,
				&dto.Note,
				&dto.Location,
				&dto.EvidenceRef,
				&dto.RecordedAt,
			); err != nil {
				yield(nil, pgerrors.Classify("read history", resource, shipmentID.String(), err))
				return
			}

			record, convErr := toDomain(dto)
			if convErr != nil {
				yield(nil, convErr)
				return
			}

			if !yield(record, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(nil, pgerrors.Classify("read history", resource, shipmentID.String(), err))
		}
	}
}
