package commands

import (
	"sync"

	"shipflow/internal/core/domain/model/kernel"

	"github.com/cespare/xxhash/v2"
)

// DefaultShipmentLockStripes is used when NewShipmentLocks is given a non-positive count.
const DefaultShipmentLockStripes = 64

// ShipmentLocks serializes status changes of one shipment inside the process,
// from Begin until the change is handed to the notifier. Notifications are
// therefore enqueued in commit order. Shipments share a stripe when their ids
// hash to the same slot.
//
// Processes do not share these locks; across processes the conditional status
// write still reports the loser as a conflict.
type ShipmentLocks struct {
	stripes []sync.Mutex
}

func NewShipmentLocks(stripes int) *ShipmentLocks {
	if stripes <= 0 {
		stripes = DefaultShipmentLockStripes
	}
	return &ShipmentLocks{stripes: make([]sync.Mutex, stripes)}
}

// Lock blocks until the stripe of shipmentID is free and returns its release.
func (l *ShipmentLocks) Lock(shipmentID kernel.UUID) (unlock func()) {
	id := shipmentID.Bytes()
	mu := &l.stripes[xxhash.Sum64(id[:])%uint64(len(l.stripes))]
	mu.Lock()
	return mu.Unlock
}
