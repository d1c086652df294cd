package ports

import (
	"context"
)

// UnitOfWorkFactory hands every command its own transaction scope.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups the writes of one status change. The status swap, the
// appended transition record and an optional dispute land together on Commit
// or not at all.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when Begin was not called or the store rejects the transaction.
	Commit(ctx context.Context) error
	// Rollback discards everything written since Begin.
	Rollback(ctx context.Context) error

	// The repositories share the transaction opened by Begin.
	ShipmentRepository() ShipmentRepository
	TransitionRepository() TransitionRepository
	DisputeRepository() DisputeRepository
	PushTokenRepository() PushTokenRepository
}
