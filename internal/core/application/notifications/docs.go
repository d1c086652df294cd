// Package notifications fans committed status changes out to the parties of a
// shipment over every configured channel.
//
// Each change is turned into one StatusEvent per recipient. Recipients are the
// parties of the shipment other than the actor. Events are queued on a lane
// chosen by hashing the recipient id; a lane is drained by a single worker, so
// one recipient sees the events of a shipment in commit order. Within a lane
// the channels of an event are dispatched concurrently, each under its own
// timeout, and every (recipient, channel, address) attempt ends in a
// DeliveryResult.
//
// Delivery is best effort. A full lane drops the event with a warning, a failed
// send is logged, and an address the channel reports as gone is retired.
// Nothing is ever reported back to the transition that produced the change.
//
//	fanOut := notifications.NewFanOut(
//	    []ports.NotificationChannel{pushChannel, liveChannel},
//	    notifications.Config{Lanes: 8, LaneBuffer: 256, ChannelTimeout: 3 * time.Second},
//	    logger,
//	)
//	fanOut.Start(ctx)
//	defer fanOut.Stop()
package notifications
