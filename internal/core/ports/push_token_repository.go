package ports

import (
	"context"

	"shipflow/internal/core/domain/model/kernel"
)

// PushTokenRepository keeps the push-delivery addresses registered by parties.
type PushTokenRepository interface {
	// Save registers token for ownerID. Registering a known token moves it to the new owner.
	Save(ctx context.Context, ownerID kernel.UUID, token string) error
	ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]string, error)
	// Delete removes a token; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
