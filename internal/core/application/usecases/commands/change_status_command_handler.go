package commands

import (
	"context"

	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
)

// ChangeStatusCommandHandler is the transition engine. It holds no state between
// calls: the current status lives in the store and the rules in the registry.
//
// Errors, all returned before anything is written or with the transaction rolled back:
//   - errs.ErrObjectNotFound: no such shipment
//   - errs.ErrInvalidTransition: the target is not reachable from the current status;
//     DISPUTED is never reachable here, disputes go through FileDisputeCommandHandler
//   - errs.ErrPermissionDenied: the actor's role does not drive the target status
//   - errs.ErrConflict: another transition of the same shipment committed first
//   - errs.ErrPersistenceFailure: the store failed
//
// Example:
//
//	handler := NewChangeStatusCommandHandler(uowFactory, services.NewStatusRegistry(), fanOut, locks)
//	record, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // re-read the shipment and let the caller decide
//	case err != nil:
//	    return err
//	}
//	fmt.Println(record.Status(), record.Seq())
type ChangeStatusCommandHandler struct {
	uowFactory LifecycleUoWFactory
	rules      TransitionRules
	notifier   ports.StatusChangeNotifier
	locks      *ShipmentLocks
}

// NewChangeStatusCommandHandler shares locks with every other handler that
// changes shipment status in this process. A nil locks gets a private set.
func NewChangeStatusCommandHandler(
	uowFactory LifecycleUoWFactory,
	rules TransitionRules,
	notifier ports.StatusChangeNotifier,
	locks *ShipmentLocks,
) ChangeStatusCommandHandler {
	if locks == nil {
		locks = NewShipmentLocks(0)
	}
	return ChangeStatusCommandHandler{
		uowFactory: uowFactory,
		rules:      withoutDispute{rules},
		notifier:   notifier,
		locks:      locks,
	}
}

// Handle applies the transition and, once committed, hands the change to the notifier.
func (h ChangeStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeStatusCommand,
) (*shipment.TransitionRecord, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(command.ShipmentID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	applied, err := applyTransition(ctx, uow, h.rules, transition{
		shipmentID: command.ShipmentID(),
		actorID:    command.ActorID(),
		target:     command.Status(),
		options:    command.Options(),
	}, currentTime())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(applied.change)
	return applied.record, nil
}
