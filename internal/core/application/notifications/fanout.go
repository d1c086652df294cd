package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/ports"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"
)

const (
	defaultLanes          = 8
	defaultLaneBuffer     = 256
	defaultChannelTimeout = 3 * time.Second
)

type Config struct {
	// Lanes is the number of ordered queues. Events of one recipient always
	// land on the same lane.
	Lanes          int
	LaneBuffer     int
	ChannelTimeout time.Duration

	// OnResult, when set, observes every delivery attempt after it was logged.
	OnResult func(DeliveryResult)
}

func (c Config) withDefaults() Config {
	if c.Lanes <= 0 {
		c.Lanes = defaultLanes
	}
	if c.LaneBuffer <= 0 {
		c.LaneBuffer = defaultLaneBuffer
	}
	if c.ChannelTimeout <= 0 {
		c.ChannelTimeout = defaultChannelTimeout
	}
	return c
}

type delivery struct {
	recipient kernel.UUID
	event     ports.StatusEvent
}

// FanOut implements ports.StatusChangeNotifier.
type FanOut struct {
	channels []ports.NotificationChannel
	cfg      Config
	logger   *slog.Logger
	lanes    []chan delivery

	mu      sync.RWMutex
	started bool
	closed  bool
	workers sync.WaitGroup
}

var _ ports.StatusChangeNotifier = (*FanOut)(nil)

func NewFanOut(channels []ports.NotificationChannel, cfg Config, logger *slog.Logger) *FanOut {
	cfg = cfg.withDefaults()
	lanes := make([]chan delivery, cfg.Lanes)
	for i := range lanes {
		lanes[i] = make(chan delivery, cfg.LaneBuffer)
	}

	return &FanOut{
		channels: append([]ports.NotificationChannel(nil), channels...),
		cfg:      cfg,
		logger:   logger.With("component", "notification_fanout"),
		lanes:    lanes,
	}
}

// Start launches one worker per lane. Events queued before Start are delivered
// once the workers run. Calling Start again has no effect.
func (f *FanOut) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started || f.closed {
		return
	}
	f.started = true

	for _, lane := range f.lanes {
		f.workers.Add(1)
		go f.drain(ctx, lane)
	}
	f.logger.InfoContext(ctx, "Notification fan-out started",
		"lanes", len(f.lanes), "channels", len(f.channels))
}

// Stop refuses new events, lets the workers finish what is queued and waits
// for them. Without a prior Start the queued events are discarded.
func (f *FanOut) Stop() {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	f.closed = true
	for _, lane := range f.lanes {
		close(lane)
	}
	f.mu.Unlock()

	f.workers.Wait()
	f.logger.Info("Notification fan-out stopped")
}

// Notify queues one event per recipient and returns immediately.
func (f *FanOut) Notify(change ports.StatusChange) {
	recipients := Recipients(change)
	if len(recipients) == 0 {
		return
	}
	event := NewStatusEvent(change)

	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, recipient := range recipients {
		if f.closed {
			f.logger.Warn("Notification dropped, fan-out stopped",
				"shipment_id", change.ShipmentID.String(), "recipient", recipient.String(), "status", change.NewStatus.String())
			continue
		}
		select {
		case f.laneFor(recipient) <- delivery{recipient: recipient, event: event}:
		default:
			f.logger.Warn("Notification dropped, lane full",
				"shipment_id", change.ShipmentID.String(), "recipient", recipient.String(), "status", change.NewStatus.String())
		}
	}
}

func (f *FanOut) laneFor(recipient kernel.UUID) chan delivery {
	id := recipient.Bytes()
	return f.lanes[xxhash.Sum64(id[:])%uint64(len(f.lanes))]
}

func (f *FanOut) drain(ctx context.Context, lane <-chan delivery) {
	defer f.workers.Done()
	for d := range lane {
		for _, result := range f.Dispatch(ctx, d.recipient, d.event) {
			f.report(ctx, result)
		}
	}
}

// Dispatch sends event to every address of recipient on every channel and
// waits for all of them. Channels run concurrently, each bounded by
// Config.ChannelTimeout. Results are grouped by channel in configuration order.
func (f *FanOut) Dispatch(ctx context.Context, recipient kernel.UUID, event ports.StatusEvent) []DeliveryResult {
	perChannel := make([][]DeliveryResult, len(f.channels))

	var g errgroup.Group
	for i, channel := range f.channels {
		g.Go(func() error {
			channelCtx, cancel := context.WithTimeout(ctx, f.cfg.ChannelTimeout)
			defer cancel()
			perChannel[i] = f.sendOnChannel(channelCtx, channel, recipient, event)
			return nil
		})
	}
	_ = g.Wait()

	results := make([]DeliveryResult, 0, len(f.channels))
	for _, r := range perChannel {
		results = append(results, r...)
	}
	return results
}

func (f *FanOut) sendOnChannel(
	ctx context.Context,
	channel ports.NotificationChannel,
	recipient kernel.UUID,
	event ports.StatusEvent,
) []DeliveryResult {
	base := DeliveryResult{ShipmentID: event.ShipmentID, Recipient: recipient, Channel: channel.Name()}

	addresses, err := channel.Addresses(ctx, recipient)
	if err != nil {
		base.Err = err
		return []DeliveryResult{base}
	}

	results := make([]DeliveryResult, 0, len(addresses))
	for _, address := range addresses {
		result := base
		result.Address = address
		result.Err = channel.Send(ctx, address, event)
		if errors.Is(result.Err, ports.ErrAddressGone) {
			if retireErr := channel.Retire(context.WithoutCancel(ctx), address); retireErr != nil {
				f.logger.WarnContext(ctx, "Failed to retire address",
					"channel", channel.Name(), "recipient", recipient.String(), "error", retireErr)
			} else {
				result.Retired = true
			}
		}
		results = append(results, result)
	}
	return results
}

func (f *FanOut) report(ctx context.Context, result DeliveryResult) {
	switch {
	case result.Retired:
		f.logger.InfoContext(ctx, "Retired notification address",
			"shipment_id", result.ShipmentID.String(), "recipient", result.Recipient.String(), "channel", result.Channel)
	case !result.OK():
		f.logger.WarnContext(ctx, "Notification delivery failed",
			"shipment_id", result.ShipmentID.String(),
			"recipient", result.Recipient.String(),
			"channel", result.Channel,
			"error", result.Err,
		)
	}
	if f.cfg.OnResult != nil {
		f.cfg.OnResult(result)
	}
}
