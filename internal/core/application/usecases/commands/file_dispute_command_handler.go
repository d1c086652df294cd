package commands

import (
	"context"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
)

// FileDisputeCommandHandler is the dispute sub-flow: the ordinary transition into
// DISPUTED, noted as "dispute: <reason>", plus the dispute row, committed together.
// If the dispute insert fails the status change is rolled back with it.
//
// Example:
//
//	cmd, err := NewFileDisputeCommand(shipmentID, actorID, "damaged", "Corner crushed", []string{"photos/1.jpg"})
//	if err != nil {
//	    return err // malformed complaint, nothing written
//	}
//	d, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println("dispute", d.ID(), "is", d.Resolution())
type FileDisputeCommandHandler struct {
	uowFactory DisputeUoWFactory
	rules      TransitionRules
	notifier   ports.StatusChangeNotifier
	locks      *ShipmentLocks
}

func NewFileDisputeCommandHandler(
	uowFactory DisputeUoWFactory,
	rules TransitionRules,
	notifier ports.StatusChangeNotifier,
	locks *ShipmentLocks,
) FileDisputeCommandHandler {
	if locks == nil {
		locks = NewShipmentLocks(0)
	}
	return FileDisputeCommandHandler{
		uowFactory: uowFactory,
		rules:      rules,
		notifier:   notifier,
		locks:      locks,
	}
}

// Handle returns the created dispute, which is always open.
func (h FileDisputeCommandHandler) Handle(ctx context.Context, command FileDisputeCommand) (*dispute.Dispute, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	at := currentTime()
	complaint, err := dispute.NewDispute(
		command.ShipmentID(),
		command.ActorID(),
		command.Reason(),
		command.Description(),
		command.EvidenceRefs(),
		at,
	)
	if err != nil {
		return nil, err
	}

	unlock := h.locks.Lock(command.ShipmentID())
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	applied, err := applyTransition(ctx, uow, h.rules, transition{
		shipmentID: command.ShipmentID(),
		actorID:    command.ActorID(),
		target:     shipment.Disputed,
		options:    shipment.TransitionOptions{Note: complaint.TransitionNote()},
	}, at)
	if err != nil {
		return nil, err
	}

	if err = uow.DisputeRepository().Add(ctx, complaint); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Notify(applied.change)
	return complaint, nil
}
