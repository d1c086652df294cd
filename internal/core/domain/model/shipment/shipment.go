package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"
	"shipflow/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned for a Shipment that bypassed NewShipment/RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrCarrierIsSender is returned when the same identity would play both roles.
	ErrCarrierIsSender = errs.NewValueIsInvalidErrorWithCause("carrier", errors.New("carrier must differ from sender"))
)

// Shipment is the parcel-transport unit whose delivery status is tracked.
//
// The surrounding marketplace creates it in REQUESTED and may match a carrier
// while it is still REQUESTED. From then on the transition engine is the only
// writer of status and updatedAt.
type Shipment struct {
	id        kernel.UUID
	senderID  kernel.UUID
	carrierID *kernel.UUID
	status    Status
	createdAt time.Time
	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewShipment creates a REQUESTED shipment. carrierID may be nil until matched.
func NewShipment(id, senderID kernel.UUID, carrierID *kernel.UUID, now time.Time) (*Shipment, error) {
	s := &Shipment{
		status:    Requested,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSender(senderID),
		s.setCarrier(carrierID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment rebuilds an aggregate from storage without applying creation rules.
func RestoreShipment(
	id, senderID kernel.UUID,
	carrierID *kernel.UUID,
	status Status,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setSender(senderID),
		s.setCarrier(carrierID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.status = status

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID { return s.id }
func (s *Shipment) SenderID() kernel.UUID { return s.senderID }
func (s *Shipment) CarrierID() *kernel.UUID { return s.carrierID }
func (s *Shipment) Status() Status { return s.status }
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// RoleOf reports how actorID relates to the shipment.
func (s *Shipment) RoleOf(actorID kernel.UUID) Role {
	switch {
	case s.senderID.IsEqual(actorID):
		return RoleSender
	case s.carrierID != nil && s.carrierID.IsEqual(actorID):
		return RoleCarrier
	default:
		return RoleNone
	}
}

// IsParty reports whether actorID is the sender or the matched carrier.
func (s *Shipment) IsParty(actorID kernel.UUID) bool {
	return s.RoleOf(actorID) != RoleNone
}

// Parties returns the sender followed by the carrier, when one is matched.
func (s *Shipment) Parties() []kernel.UUID {
	if s.carrierID == nil {
		return []kernel.UUID{s.senderID}
	}
	return []kernel.UUID{s.senderID, *s.carrierID}
}

// AssignCarrier records the matched carrier. Only the sender may do it and only
// while the shipment is still REQUESTED.
func (s *Shipment) AssignCarrier(actorID, carrierID kernel.UUID) error {
	if s.RoleOf(actorID) != RoleSender {
		return errs.NewPermissionDeniedError(actorID.String(), "assign a carrier")
	}
	if s.status != Requested {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("carrier can only be assigned in %s, shipment is %s", Requested, s.status),
		)
	}
	if err := carrierID.Validate(); err != nil {
		return err
	}
	return s.setCarrier(&carrierID)
}

// MoveTo sets the new status and bumps updatedAt. Callers decide whether the
// move is allowed; MoveTo only refuses values outside the enum.
func (s *Shipment) MoveTo(next Status, at time.Time) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	previous := s.status
	s.status = next
	s.updatedAt = at.UTC()
	return previous, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setSender(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sender", err)
	}
	s.senderID = senderID
	return nil
}

func (s *Shipment) setCarrier(carrierID *kernel.UUID) error {
	if carrierID == nil {
		s.carrierID = nil
		return nil
	}
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrier", err)
	}
	if carrierID.IsEqual(s.senderID) {
		return ErrCarrierIsSender
	}
	id := *carrierID
	s.carrierID = &id
	return nil
}
