package postgres

import (
	"shipflow/internal/adapters/out/postgres/disputerepo"
	"shipflow/internal/adapters/out/postgres/pushtokenrepo"
	"shipflow/internal/adapters/out/postgres/shipmentrepo"
	"shipflow/internal/adapters/out/postgres/transitionrepo"

	"gorm.io/gorm"
)

// Models lists every table of the Lifecycle Store and the notification addresses.
func Models() []any {
	return []any{
		&shipmentrepo.ShipmentDTO{},
		&transitionrepo.TransitionDTO{},
		&disputerepo.DisputeDTO{},
		&pushtokenrepo.PushTokenDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
