package dispute

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"
	"shipflow/internal/pkg/guard"
)

const (
	MaxReasonLength      = 64
	MaxDescriptionLength = 2000
	MaxEvidenceRefs      = 10
	maxEvidenceRefLength = 2048
)

var ErrDisputeIsNotConstructed = errors.New("Dispute must be created via NewDispute constructor")

// Dispute is the structured complaint filed when a shipment moves into DISPUTED.
type Dispute struct {
	id           kernel.UUID
	shipmentID   kernel.UUID
	reporterID   kernel.UUID
	reason       string
	description  string
	evidenceRefs []string
	resolution   ResolutionStatus
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewDispute validates the complaint input and returns an open dispute.
//
//	d, err := dispute.NewDispute(shipmentID, actorID, "damaged", "box arrived crushed", []string{"s3://evidence/1.jpg"}, time.Now())
//	if errors.Is(err, errs.ErrValueIsRequired) {
//	    // reason or description missing
//	}
func NewDispute(
	shipmentID, reporterID kernel.UUID,
	reason, description string,
	evidenceRefs []string,
	now time.Time,
) (*Dispute, error) {
	d := &Dispute{
		id:         kernel.NewUUID(),
		resolution: Open,
		createdAt:  now.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentID.Validate(),
		reporterID.Validate(),
		d.setReason(reason),
		d.setDescription(description),
		d.setEvidenceRefs(evidenceRefs),
	); err != nil {
		return nil, err
	}
	d.shipmentID = shipmentID
	d.reporterID = reporterID

	return d, nil
}

// RestoreDispute rebuilds a stored dispute.
func RestoreDispute(
	id, shipmentID, reporterID kernel.UUID,
	reason, description string,
	evidenceRefs []string,
	resolution ResolutionStatus,
	createdAt time.Time,
) (*Dispute, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		reporterID.Validate(),
		resolution.Validate(),
	); err != nil {
		return nil, err
	}

	return &Dispute{
		id:           id,
		shipmentID:   shipmentID,
		reporterID:   reporterID,
		reason:       reason,
		description:  description,
		evidenceRefs: append([]string(nil), evidenceRefs...),
		resolution:   resolution,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (d *Dispute) Validate() error {
	if d == nil {
		return ErrDisputeIsNotConstructed
	}
	return d.guard.Validate(ErrDisputeIsNotConstructed)
}

func (d *Dispute) ID() kernel.UUID { return d.id }
func (d *Dispute) ShipmentID() kernel.UUID { return d.shipmentID }
func (d *Dispute) ReporterID() kernel.UUID { return d.reporterID }
func (d *Dispute) Reason() string { return d.reason }
func (d *Dispute) Description() string { return d.description }
func (d *Dispute) Resolution() ResolutionStatus { return d.resolution }
func (d *Dispute) CreatedAt() time.Time { return d.createdAt }

// EvidenceRefs returns a copy of the evidence references.
func (d *Dispute) EvidenceRefs() []string {
	return append([]string(nil), d.evidenceRefs...)
}

// TransitionNote is the history note written for the DISPUTED transition.
func (d *Dispute) TransitionNote() string {
	return "dispute: " + d.reason
}

func (d *Dispute) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if n := utf8.RuneCountInString(reason); n > MaxReasonLength {
		return errs.NewValueIsOutOfRangeError("reason", n, 1, MaxReasonLength)
	}
	d.reason = reason
	return nil
}

func (d *Dispute) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if n := utf8.RuneCountInString(description); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description", n, 1, MaxDescriptionLength)
	}
	d.description = description
	return nil
}

func (d *Dispute) setEvidenceRefs(refs []string) error {
	if len(refs) > MaxEvidenceRefs {
		return errs.NewValueIsOutOfRangeError("evidenceRefs", len(refs), 0, MaxEvidenceRefs)
	}
	cleaned := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			return errs.NewValueIsRequiredError("evidenceRef")
		}
		if n := utf8.RuneCountInString(ref); n > maxEvidenceRefLength {
			return errs.NewValueIsOutOfRangeError("evidenceRef", n, 1, maxEvidenceRefLength)
		}
		cleaned = append(cleaned, ref)
	}
	d.evidenceRefs = cleaned
	return nil
}
