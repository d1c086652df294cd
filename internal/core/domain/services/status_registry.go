package services

import (
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

// StatusRegistry is the static definition of the shipment lifecycle:
//
//	REQUESTED  -> ACCEPTED, DISPUTED
//	ACCEPTED   -> PICKED_UP, DISPUTED
//	PICKED_UP  -> IN_TRANSIT, DISPUTED
//	IN_TRANSIT -> ARRIVED, DISPUTED
//	ARRIVED    -> DELIVERED, DISPUTED
//	DELIVERED  -> DISPUTED
//	DISPUTED   -> (terminal)
//
// The carrier alone drives ACCEPTED, PICKED_UP, IN_TRANSIT and ARRIVED. The sender
// alone confirms DELIVERED. Either party may move the shipment to DISPUTED.
// Nobody else may act.
//
// Example:
//
//	registry := services.NewStatusRegistry()
//	if !registry.IsTransitionAllowed(s.Status(), shipment.Delivered) {
//	    return errs.NewInvalidTransitionError(s.Status(), shipment.Delivered)
//	}
//	if !registry.IsPermitted(s, actorID, shipment.Delivered) {
//	    return errs.NewPermissionDeniedError(actorID.String(), "confirm delivery")
//	}
type StatusRegistry struct {
	transitions map[shipment.Status][]shipment.Status
	drivers     map[shipment.Status][]shipment.Role
}

// NewStatusRegistry returns the registry holding the shipment lifecycle.
func NewStatusRegistry() StatusRegistry {
	return StatusRegistry{
		transitions: map[shipment.Status][]shipment.Status{
			shipment.Requested: {shipment.Accepted, shipment.Disputed},
			shipment.Accepted:  {shipment.PickedUp, shipment.Disputed},
			shipment.PickedUp:  {shipment.InTransit, shipment.Disputed},
			shipment.InTransit: {shipment.Arrived, shipment.Disputed},
			shipment.Arrived:   {shipment.Delivered, shipment.Disputed},
			shipment.Delivered: {shipment.Disputed},
			shipment.Disputed:  {},
		},
		drivers: map[shipment.Status][]shipment.Role{
			shipment.Accepted:  {shipment.RoleCarrier},
			shipment.PickedUp:  {shipment.RoleCarrier},
			shipment.InTransit: {shipment.RoleCarrier},
			shipment.Arrived:   {shipment.RoleCarrier},
			shipment.Delivered: {shipment.RoleSender},
			shipment.Disputed:  {shipment.RoleSender, shipment.RoleCarrier},
		},
	}
}

// AllowedNextStates returns the statuses reachable from current in lifecycle order.
// The result is empty for DISPUTED and for invalid values, and is safe to modify.
func (r StatusRegistry) AllowedNextStates(current shipment.Status) []shipment.Status {
	next := r.transitions[current]
	return append(make([]shipment.Status, 0, len(next)), next...)
}

// IsTransitionAllowed reports whether next is reachable from current in one step.
func (r StatusRegistry) IsTransitionAllowed(current, next shipment.Status) bool {
	for _, candidate := range r.transitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsPermitted reports whether actorID's role on s allows driving the shipment
// into requested. It does not look at the graph; callers check IsTransitionAllowed first.
func (r StatusRegistry) IsPermitted(s *shipment.Shipment, actorID kernel.UUID, requested shipment.Status) bool {
	if s == nil {
		return false
	}
	role := s.RoleOf(actorID)
	if role == shipment.RoleNone {
		return false
	}
	for _, driver := range r.drivers[requested] {
		if driver == role {
			return true
		}
	}
	return false
}

// PermittedNextStates combines both predicates: the statuses actorID may move s to right now.
func (r StatusRegistry) PermittedNextStates(s *shipment.Shipment, actorID kernel.UUID) []shipment.Status {
	if s == nil {
		return []shipment.Status{}
	}
	permitted := make([]shipment.Status, 0, 2)
	for _, next := range r.transitions[s.Status()] {
		if r.IsPermitted(s, actorID, next) {
			permitted = append(permitted, next)
		}
	}
	return permitted
}
