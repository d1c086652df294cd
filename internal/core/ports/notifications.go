package ports

import (
	"context"
	"errors"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

// ErrAddressGone is returned (possibly wrapped) by NotificationChannel.Send when the
// address will never accept deliveries again, e.g. an unregistered push token.
var ErrAddressGone = errors.New("notification address is no longer valid")

// StatusChange describes a committed transition.
type StatusChange struct {
	ShipmentID kernel.UUID
	OldStatus  shipment.Status
	NewStatus  shipment.Status
	ActorID    kernel.UUID
	SenderID   kernel.UUID
	CarrierID  *kernel.UUID
	OccurredAt time.Time
}

// StatusChangeNotifier is called once a transition has committed. Notify never
// blocks on delivery and never reports delivery problems to the caller.
type StatusChangeNotifier interface {
	Notify(change StatusChange)
}

// StatusEvent is the payload sent to every recipient on every channel.
type StatusEvent struct {
	ShipmentID kernel.UUID     `json:"shipmentId"`
	NewStatus  shipment.Status `json:"newStatus"`
	Title      string          `json:"title"`
	Body       string          `json:"body"`
	Timestamp  time.Time       `json:"timestamp"`
}

// NotificationChannel is an outbound delivery medium such as push or a live socket.
type NotificationChannel interface {
	// Name identifies the channel in logs and delivery results.
	Name() string

	// Addresses lists where recipient can be reached on this channel. An empty
	// list means the recipient is not reachable here.
	Addresses(ctx context.Context, recipient kernel.UUID) ([]string, error)

	Send(ctx context.Context, address string, event StatusEvent) error

	// Retire drops an address after Send reported ErrAddressGone.
	Retire(ctx context.Context, address string) error
}
