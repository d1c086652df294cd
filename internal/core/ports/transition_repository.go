package ports

import (
	"context"
	"iter"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
)

// TransitionRepository is the append-only history of a shipment's status changes.
type TransitionRepository interface {
	// Append stores the record and assigns its sequence number.
	Append(ctx context.Context, record *shipment.TransitionRecord) error

	// History streams the records of a shipment oldest first. Every call starts a
	// fresh read; the sequence can be ranged over any number of times. An error
	// is yielded once, as the last element, and ends the sequence.
	//
	// Example:
	//   for record, err := range repo.History(ctx, shipmentID) {
	//       if err != nil {
	//           return err
	//       }
	//       fmt.Println(record.Status(), record.RecordedAt())
	//   }
	History(ctx context.Context, shipmentID kernel.UUID) iter.Seq2[*shipment.TransitionRecord, error]
}
