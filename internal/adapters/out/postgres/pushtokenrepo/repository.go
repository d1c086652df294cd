package pushtokenrepo

import (
	"context"
	"strings"
	"time"

	"shipflow/internal/adapters/out/postgres/pgerrors"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxTokenLength = 255

// GormPushTokenRepository implements ports.PushTokenRepository using GORM.
type GormPushTokenRepository struct {
	db *gorm.DB
}

func NewGormPushTokenRepository(db *gorm.DB) *GormPushTokenRepository {
	return &GormPushTokenRepository{db: db}
}

// Save upserts the token; an existing row is reassigned to ownerID.
func (r *GormPushTokenRepository) Save(ctx context.Context, ownerID kernel.UUID, token string) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if len(token) > maxTokenLength {
		return errs.NewValueIsOutOfRangeError("token", len(token), 1, maxTokenLength)
	}

	dto := PushTokenDTO{
		Token:     token,
		OwnerID:   ownerID.Bytes(),
		CreatedAt: time.Now().UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{"owner_id"}),
		}).
		Create(&dto).Error
	if err != nil {
		return pgerrors.Classify("save push token", "push token", token, err)
	}

	return nil
}

// ListByOwner returns the tokens of ownerID, oldest registration first.
func (r *GormPushTokenRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]string, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	tokens := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&PushTokenDTO{}).
		Where("owner_id = ?", ownerID.Bytes()).
		Order("created_at, token").
		Pluck("token", &tokens).Error
	if err != nil {
		return nil, pgerrors.Classify("list push tokens", "push token", ownerID.String(), err)
	}

	return tokens, nil
}

// Delete removes token if present.
func (r *GormPushTokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).Delete(&PushTokenDTO{}, "token = ?", token).Error; err != nil {
		return pgerrors.Classify("delete push token", "push token", token, err)
	}
	return nil
}
