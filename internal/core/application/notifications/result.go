package notifications

import (
	"shipflow/internal/core/domain/model/kernel"
)

// DeliveryResult is the outcome of one send attempt. Err is nil on success.
// An attempt that never reached Send, because the channel could not list the
// recipient's addresses, has an empty Address.
type DeliveryResult struct {
	ShipmentID kernel.UUID
	Recipient  kernel.UUID
	Channel    string
	Address    string
	Err        error
	Retired    bool
}

func (r DeliveryResult) OK() bool { return r.Err == nil }
