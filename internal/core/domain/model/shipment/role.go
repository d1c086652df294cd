package shipment

// Role is the relation between an actor and a shipment.
type Role int

const (
	RoleNone Role = iota
	RoleSender
	RoleCarrier
)

func (r Role) String() string {
	switch r {
	case RoleSender:
		return "sender"
	case RoleCarrier:
		return "carrier"
	default:
		return "none"
	}
}
