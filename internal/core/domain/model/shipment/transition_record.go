package shipment

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
	maxNoteLength        = 1000
	maxLocationLength    = 255
	maxEvidenceRefLength = 2048
)

// ErrTransitionRecordIsNotConstructed is returned for a record that bypassed its constructors.
var ErrTransitionRecordIsNotConstructed = errors.New(
	"TransitionRecord must be created via NewTransitionRecord constructor",
)

// TransitionOptions carries the optional annotations of a status change.
type TransitionOptions struct {
	Note        string
	Location    string
	EvidenceRef string
}

// Normalize trims the annotations and enforces their length limits.
func (o TransitionOptions) Normalize() (TransitionOptions, error) {
	normalized := TransitionOptions{
		Note:        strings.TrimSpace(o.Note),
		Location:    strings.TrimSpace(o.Location),
		EvidenceRef: strings.TrimSpace(o.EvidenceRef),
	}

	if err := errors.Join(
		checkLength("note", normalized.Note, maxNoteLength),
		checkLength("location", normalized.Location, maxLocationLength),
		checkLength("evidenceRef", normalized.EvidenceRef, maxEvidenceRefLength),
	); err != nil {
		return TransitionOptions{}, err
	}

	return normalized, nil
}

// TransitionRecord is an append-only history entry: one per successful transition,
// never updated or deleted. Seq is assigned by the store and orders records of
// the same shipment together with RecordedAt.
type TransitionRecord struct {
	id         kernel.UUID
	seq        int64
	shipmentID kernel.UUID
	status     Status
	actorID    kernel.UUID
	options    TransitionOptions
	recordedAt time.Time
	guard      guard.ConstructorGuard
}

// NewTransitionRecord builds the record for a transition into status by actorID.
func NewTransitionRecord(
	shipmentID kernel.UUID,
	status Status,
	actorID kernel.UUID,
	options TransitionOptions,
	at time.Time,
) (*TransitionRecord, error) {
	normalized, optErr := options.Normalize()
	if err := errors.Join(
		shipmentID.Validate(),
		status.Validate(),
		actorID.Validate(),
		optErr,
	); err != nil {
		return nil, err
	}

	return &TransitionRecord{
		id:         kernel.NewUUID(),
		shipmentID: shipmentID,
		status:     status,
		actorID:    actorID,
		options:    normalized,
		recordedAt: at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreTransitionRecord rebuilds a stored record.
func RestoreTransitionRecord(
	id kernel.UUID,
	seq int64,
	shipmentID kernel.UUID,
	status Status,
	actorID kernel.UUID,
	options TransitionOptions,
	recordedAt time.Time,
) (*TransitionRecord, error) {
	if err := errors.Join(
		id.Validate(),
		shipmentID.Validate(),
		status.Validate(),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}

	return &TransitionRecord{
		id:         id,
		seq:        seq,
		shipmentID: shipmentID,
		status:     status,
		actorID:    actorID,
		options:    options,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (r *TransitionRecord) Validate() error {
	if r == nil {
		return ErrTransitionRecordIsNotConstructed
	}
	return r.guard.Validate(ErrTransitionRecordIsNotConstructed)
}

func (r *TransitionRecord) ID() kernel.UUID { return r.id }
func (r *TransitionRecord) Seq() int64 { return r.seq }
func (r *TransitionRecord) ShipmentID() kernel.UUID { return r.shipmentID }
func (r *TransitionRecord) Status() Status { return r.status }
func (r *TransitionRecord) ActorID() kernel.UUID { return r.actorID }
func (r *TransitionRecord) Note() string { return r.options.Note }
func (r *TransitionRecord) Location() string { return r.options.Location }
func (r *TransitionRecord) EvidenceRef() string { return r.options.EvidenceRef }
func (r *TransitionRecord) RecordedAt() time.Time { return r.recordedAt }

// AssignSeq is called once by the store after the insert returned the sequence number.
func (r *TransitionRecord) AssignSeq(seq int64) {
	if r.seq == 0 {
		r.seq = seq
	}
}

func checkLength(param, value string, maxLength int) error {
	if n := utf8.RuneCountInString(value); n > maxLength {
		return errs.NewValueIsOutOfRangeError(param, n, 0, maxLength)
	}
	return nil
}
