package notifications_test

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"
)

type sent struct {
	address string
	event   ports.StatusEvent
}

// fakeChannel records every send. Per-address behaviour is set through sendErr
// and delay; Addresses falls back to one address per recipient.
type fakeChannel struct {
	name         string
	addressErr   error
	sendErr      map[string]error
	delay        time.Duration
	retireErr    error
	extraAddress map[string][]string

	mu      sync.Mutex
	sent    []sent
	retired []string
}

func newFakeChannel(name string) *fakeChannel {
	return &fakeChannel{name: name, sendErr: map[string]error{}, extraAddress: map[string][]string{}}
}

func addressOf(channel string, recipient kernel.UUID) string {
	return channel + ":" + recipient.String()
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) Addresses(_ context.Context, recipient kernel.UUID) ([]string, error) {
	if c.addressErr != nil {
		return nil, c.addressErr
	}
	return append([]string{addressOf(c.name, recipient)}, c.extraAddress[recipient.String()]...), nil
}

func (c *fakeChannel) Send(ctx context.Context, address string, event ports.StatusEvent) error {
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := c.sendErr[address]; err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, sent{address: address, event: event})
	return nil
}

func (c *fakeChannel) Retire(_ context.Context, address string) error {
	if c.retireErr != nil {
		return c.retireErr
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.retired = append(c.retired, address)
	return nil
}

func (c *fakeChannel) sentTo(address string) []ports.StatusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := make([]ports.StatusEvent, 0)
	for _, s := range c.sent {
		if s.address == address {
			events = append(events, s.event)
		}
	}
	return events
}

func (c *fakeChannel) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var occurredAt = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

func changeOf(shipmentID, actor, sender kernel.UUID, carrier *kernel.UUID, from, to shipment.Status) ports.StatusChange {
	return ports.StatusChange{
		ShipmentID: shipmentID,
		OldStatus:  from,
		NewStatus:  to,
		ActorID:    actor,
		SenderID:   sender,
		CarrierID:  carrier,
		OccurredAt: occurredAt,
	}
}
