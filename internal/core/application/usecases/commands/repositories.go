// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest unit it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	TransitionRepoFactory interface {
		TransitionRepository() ports.TransitionRepository
	}

	DisputeRepoFactory interface {
		DisputeRepository() ports.DisputeRepository
	}

	PushTokenRepoFactory interface {
		PushTokenRepository() ports.PushTokenRepository
	}

	// ShipmentUoW covers operations that only touch the shipment row.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// LifecycleUoW writes a status change and its history record atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   shipments := uow.ShipmentRepository()
	//   history := uow.TransitionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		ShipmentRepoFactory
		TransitionRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// DisputeUoW extends LifecycleUoW with the dispute table, so the move into
	// DISPUTED and the complaint record share one transaction.
	DisputeUoW interface {
		LifecycleUoW
		DisputeRepoFactory
	}

	DisputeUoWFactory interface {
		Create() DisputeUoW
	}

	PushTokenUoW interface {
		TxManager
		PushTokenRepoFactory
	}

	PushTokenUoWFactory interface {
		Create() PushTokenUoW
	}
)

// TransitionRules is the Status Registry as seen by the transition engine.
type TransitionRules interface {
	IsTransitionAllowed(current, next shipment.Status) bool
	IsPermitted(s *shipment.Shipment, actorID kernel.UUID, requested shipment.Status) bool
}
