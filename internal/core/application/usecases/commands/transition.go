package commands

import (
	"context"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
	"shipflow/internal/pkg/errs"
)

// transition is one requested status change, as the engine sees it.
type transition struct {
	shipmentID kernel.UUID
	actorID    kernel.UUID
	target     shipment.Status
	options    shipment.TransitionOptions
}

type appliedTransition struct {
	record *shipment.TransitionRecord
	change ports.StatusChange
}

// applyTransition loads the shipment, checks the graph before the role, then writes
// the new status and appends the history record inside uow's open transaction.
// Commit is left to the caller so the dispute flow can add its own row first.
func applyTransition(
	ctx context.Context,
	uow LifecycleUoW,
	rules TransitionRules,
	t transition,
	now time.Time,
) (appliedTransition, error) {
	shipments := uow.ShipmentRepository()
	history := uow.TransitionRepository()

	s, err := shipments.Get(ctx, t.shipmentID)
	if err != nil {
		return appliedTransition{}, err
	}

	current := s.Status()
	if !rules.IsTransitionAllowed(current, t.target) {
		return appliedTransition{}, errs.NewInvalidTransitionError(current, t.target)
	}
	if !rules.IsPermitted(s, t.actorID, t.target) {
		return appliedTransition{}, errs.NewPermissionDeniedError(t.actorID.String(), "move shipment to "+t.target.String())
	}

	record, err := shipment.NewTransitionRecord(s.ID(), t.target, t.actorID, t.options, now)
	if err != nil {
		return appliedTransition{}, err
	}

	previous, err := s.MoveTo(t.target, now)
	if err != nil {
		return appliedTransition{}, err
	}

	if err = shipments.UpdateStatus(ctx, s, previous); err != nil {
		return appliedTransition{}, err
	}

	if err = history.Append(ctx, record); err != nil {
		return appliedTransition{}, err
	}

	return appliedTransition{
		record: record,
		change: ports.StatusChange{
			ShipmentID: s.ID(),
			OldStatus:  previous,
			NewStatus:  t.target,
			ActorID:    t.actorID,
			SenderID:   s.SenderID(),
			CarrierID:  s.CarrierID(),
			OccurredAt: now,
		},
	}, nil
}

// withoutDispute hides the DISPUTED edge: only the dispute flow may take it,
// since it also has to write the complaint record.
type withoutDispute struct {
	TransitionRules
}

func (r withoutDispute) IsTransitionAllowed(current, next shipment.Status) bool {
	return next != shipment.Disputed && r.TransitionRules.IsTransitionAllowed(current, next)
}

// currentTime returns the current time at the precision Postgres stores.
func currentTime() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
