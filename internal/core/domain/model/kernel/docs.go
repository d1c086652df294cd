// Package kernel holds the value objects shared by every aggregate of the
// shipment workflow. Today that is UUID; values are immutable and safe for
// concurrent use.
package kernel
