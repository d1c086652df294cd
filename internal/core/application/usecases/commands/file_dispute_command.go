package commands

import (
	"errors"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/guard"
)

var ErrFileDisputeCommandIsNotConstructed = errors.New(
	"FileDisputeCommand must be created via NewFileDisputeCommand constructor",
)

// FileDisputeCommand moves a shipment into DISPUTED and records the complaint.
// The complaint input is validated here, before any transaction starts.
type FileDisputeCommand struct {
	shipmentID   kernel.UUID
	actorID      kernel.UUID
	reason       string
	description  string
	evidenceRefs []string
	guard        guard.ConstructorGuard
}

func NewFileDisputeCommand(
	shipmentID, actorID kernel.UUID,
	reason, description string,
	evidenceRefs []string,
) (FileDisputeCommand, error) {
	draft, err := dispute.NewDispute(shipmentID, actorID, reason, description, evidenceRefs, currentTime())
	if err != nil {
		return FileDisputeCommand{}, err
	}

	return FileDisputeCommand{
		shipmentID:   shipmentID,
		actorID:      actorID,
		reason:       draft.Reason(),
		description:  draft.Description(),
		evidenceRefs: draft.EvidenceRefs(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c FileDisputeCommand) ShipmentID() kernel.UUID { return c.shipmentID }
func (c FileDisputeCommand) ActorID() kernel.UUID { return c.actorID }
func (c FileDisputeCommand) Reason() string { return c.reason }
func (c FileDisputeCommand) Description() string { return c.description }
func (c FileDisputeCommand) EvidenceRefs() []string { return append([]string(nil), c.evidenceRefs...) }

func (c FileDisputeCommand) Validate() error {
	return c.guard.Validate(ErrFileDisputeCommandIsNotConstructed)
}
