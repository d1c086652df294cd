package queries_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentReader struct{ mock.Mock }

func (m *MockShipmentReader) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockDisputeReader struct{ mock.Mock }

func (m *MockDisputeReader) GetLatest(ctx context.Context, shipmentID kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

// stubHistory replays records and then, if set, a trailing error.
type stubHistory struct {
	records []*shipment.TransitionRecord
	err     error
	calls   int
}

func (s *stubHistory) History(_ context.Context, _ kernel.UUID) iter.Seq2[*shipment.TransitionRecord, error] {
	s.calls++
	return func(yield func(*shipment.TransitionRecord, error) bool) {
		for _, r := range s.records {
			if !yield(r, nil) {
				return
			}
		}
		if s.err != nil {
			yield(nil, s.err)
		}
	}
}

var restoredAt = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

func restoreShipment(t *testing.T, sender, carrier kernel.UUID, status shipment.Status) *shipment.Shipment {
	t.Helper()
	s, err := shipment.RestoreShipment(kernel.NewUUID(), sender, &carrier, status, restoredAt, restoredAt)
	require.NoError(t, err)
	return s
}
