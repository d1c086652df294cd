// Package services provides domain services that hold shipment workflow rules
// which do not belong to a single aggregate.
//
// The package includes:
//   - StatusRegistry: the transition graph between shipment statuses and the
//     role-based predicate deciding who may drive each status
//
// Both predicates are total over every shipment.Status value (Unknown and
// out-of-range values are simply never allowed) and free of side effects, so
// command handlers receive the registry as a dependency and tests exercise it
// without any persistence.
package services
