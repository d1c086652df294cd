// Package shipment provides the Shipment aggregate and the values that describe
// its delivery lifecycle.
//
// The package includes:
//   - Status: the closed set of lifecycle states and their persisted tokens
//   - Role: how an actor relates to a shipment (sender, carrier or neither)
//   - Shipment: the aggregate whose status the transition engine advances
//   - TransitionRecord: the immutable history entry written for every transition
//
// Which transitions exist and who may drive them is decided by the status
// registry in the domain services package, not here; this package only keeps
// the aggregate and its records well formed.
package shipment
