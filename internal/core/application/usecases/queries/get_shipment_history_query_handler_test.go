package queries_test

import (
	"errors"
	"testing"
	"time"

	"shipflow/internal/core/application/usecases/queries"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOf(t *testing.T, s *shipment.Shipment, actor kernel.UUID, statuses ...shipment.Status) []*shipment.TransitionRecord {
	t.Helper()
	records := make([]*shipment.TransitionRecord, 0, len(statuses))
	for i, st := range statuses {
		r, err := shipment.RestoreTransitionRecord(
			kernel.NewUUID(), int64(i+1), s.ID(), st, actor,
			shipment.TransitionOptions{Note: st.String()},
			restoredAt.Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, err)
		records = append(records, r)
	}
	return records
}

func TestGetShipmentHistoryQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	sender, carrier := kernel.NewUUID(), kernel.NewUUID()
	s := restoreShipment(t, sender, carrier, shipment.PickedUp)

	shipments := new(MockShipmentReader)
	shipments.On("Get", ctx, s.ID()).Return(s, nil)
	history := &stubHistory{records: historyOf(t, s, carrier, shipment.Accepted, shipment.PickedUp)}
	handler := queries.NewGetShipmentHistoryQueryHandler(shipments, history)

	for _, actor := range []kernel.UUID{sender, carrier} {
		query, err := queries.NewGetShipmentHistoryQuery(s.ID(), actor)
		require.NoError(t, err)

		records, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, shipment.Accepted, records[0].Status)
		assert.Equal(t, int64(1), records[0].Seq)
		assert.Equal(t, shipment.PickedUp, records[1].Status)
		assert.Equal(t, "PICKED_UP", records[1].Note)
		assert.True(t, records[1].RecordedAt.After(records[0].RecordedAt))
	}
	assert.Equal(t, 2, history.calls)
}

func TestGetShipmentHistoryQueryHandler_Handle_RepeatedReadsAreIdentical(t *testing.T) {
	ctx := t.Context()
	sender, carrier := kernel.NewUUID(), kernel.NewUUID()
	s := restoreShipment(t, sender, carrier, shipment.Arrived)

	shipments := new(MockShipmentReader)
	shipments.On("Get", ctx, s.ID()).Return(s, nil)
	history := &stubHistory{records: historyOf(t, s, carrier,
		shipment.Accepted, shipment.PickedUp, shipment.InTransit, shipment.Arrived)}
	handler := queries.NewGetShipmentHistoryQueryHandler(shipments, history)
	query, err := queries.NewGetShipmentHistoryQuery(s.ID(), sender)
	require.NoError(t, err)

	first, err := handler.Handle(ctx, query)
	require.NoError(t, err)
	second, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, s.Status(), second[len(second)-1].Status)
}

func TestGetShipmentHistoryQueryHandler_Handle_EmptyHistory(t *testing.T) {
	ctx := t.Context()
	sender, carrier := kernel.NewUUID(), kernel.NewUUID()
	s := restoreShipment(t, sender, carrier, shipment.Requested)

	shipments := new(MockShipmentReader)
	shipments.On("Get", ctx, s.ID()).Return(s, nil)
	handler := queries.NewGetShipmentHistoryQueryHandler(shipments, &stubHistory{})
	query, err := queries.NewGetShipmentHistoryQuery(s.ID(), sender)
	require.NoError(t, err)

	records, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGetShipmentHistoryQueryHandler_Handle_Errors(t *testing.T) {
	ctx := t.Context()
	sender, carrier := kernel.NewUUID(), kernel.NewUUID()
	s := restoreShipment(t, sender, carrier, shipment.Accepted)

	t.Run("stranger is denied", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		shipments.On("Get", ctx, s.ID()).Return(s, nil)
		history := &stubHistory{}
		query, err := queries.NewGetShipmentHistoryQuery(s.ID(), kernel.NewUUID())
		require.NoError(t, err)

		_, err = queries.NewGetShipmentHistoryQueryHandler(shipments, history).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Zero(t, history.calls)
	})

	t.Run("unknown shipment", func(t *testing.T) {
		missing := kernel.NewUUID()
		shipments := new(MockShipmentReader)
		shipments.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("shipment", missing))
		query, err := queries.NewGetShipmentHistoryQuery(missing, sender)
		require.NoError(t, err)

		_, err = queries.NewGetShipmentHistoryQueryHandler(shipments, &stubHistory{}).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("read fails midway", func(t *testing.T) {
		shipments := new(MockShipmentReader)
		shipments.On("Get", ctx, s.ID()).Return(s, nil)
		history := &stubHistory{
			records: historyOf(t, s, carrier, shipment.Accepted),
			err:     errs.NewPersistenceFailureError("read history", errors.New("connection reset")),
		}
		query, err := queries.NewGetShipmentHistoryQuery(s.ID(), carrier)
		require.NoError(t, err)

		records, err := queries.NewGetShipmentHistoryQueryHandler(shipments, history).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrPersistenceFailure)
		assert.Nil(t, records)
	})

	t.Run("query not constructed", func(t *testing.T) {
		_, err := queries.NewGetShipmentHistoryQueryHandler(new(MockShipmentReader), &stubHistory{}).
			Handle(ctx, queries.GetShipmentHistoryQuery{})

		require.ErrorIs(t, err, queries.ErrGetShipmentHistoryQueryIsNotConstructed)
	})
}

func TestNewGetShipmentHistoryQuery_RequiresIDs(t *testing.T) {
	_, err := queries.NewGetShipmentHistoryQuery(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = queries.NewGetShipmentHistoryQuery(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
