// Package dispute models the complaint record that accompanies a shipment's move into DISPUTED.
//
// A Dispute is created only together with that transition and is never deleted:
// resolution happens outside this service and only closes it. A shipment may
// accumulate several disputes over time; the most recent one is the active one.
//
// Input limits:
//   - reason: 1..64 characters after trimming, a short category such as "damaged"
//   - description: 1..2000 characters after trimming
//   - evidence references: at most 10, each non-empty and at most 2048 characters
package dispute
