package shipment

import (
	"fmt"

	"shipflow/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
//
//	REQUESTED ─> ACCEPTED ─> PICKED_UP ─> IN_TRANSIT ─> ARRIVED ─> DELIVERED
//	    └────────────┴───────────┴────────────┴───────────┴───────────┴──> DISPUTED
//
// DISPUTED is terminal. Statuses are persisted as their String() tokens.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Requested
	Accepted
	PickedUp
	InTransit
	Arrived
	Delivered
	Disputed
)

var statusTokens = map[Status]string{
	Requested: "REQUESTED",
	Accepted:  "ACCEPTED",
	PickedUp:  "PICKED_UP",
	InTransit: "IN_TRANSIT",
	Arrived:   "ARRIVED",
	Delivered: "DELIVERED",
	Disputed:  "DISPUTED",
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Requested, Accepted, PickedUp, InTransit, Arrived, Delivered, Disputed}
}

// ParseStatus converts a persisted or transported token back into a Status.
func ParseStatus(token string) (Status, error) {
	for status, t := range statusTokens {
		if t == token {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", token),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusTokens[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted token, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if token, ok := statusTokens[s]; ok {
		return token
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == Disputed
}

func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
