package shipment_test

import (
	"strings"
	"testing"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionRecord(t *testing.T) {
	t.Run("should trim and keep annotations", func(t *testing.T) {
		shipmentID, actor := kernel.NewUUID(), kernel.NewUUID()

		r, err := shipment.NewTransitionRecord(shipmentID, shipment.PickedUp, actor, shipment.TransitionOptions{
			Note:        "  picked up at reception ",
			Location:    " Berlin Hbf ",
			EvidenceRef: "photos/abc.jpg",
		}, fixedNow)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.NoError(t, r.ID().Validate())
		assert.Zero(t, r.Seq())
		assert.True(t, shipmentID.IsEqual(r.ShipmentID()))
		assert.True(t, actor.IsEqual(r.ActorID()))
		assert.Equal(t, shipment.PickedUp, r.Status())
		assert.Equal(t, "picked up at reception", r.Note())
		assert.Equal(t, "Berlin Hbf", r.Location())
		assert.Equal(t, "photos/abc.jpg", r.EvidenceRef())
		assert.Equal(t, fixedNow, r.RecordedAt())
	})

	t.Run("should reject oversized annotations", func(t *testing.T) {
		_, err := shipment.NewTransitionRecord(kernel.NewUUID(), shipment.Arrived, kernel.NewUUID(),
			shipment.TransitionOptions{Note: strings.Repeat("x", 1001)}, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "note")
	})

	t.Run("should reject invalid status and identities", func(t *testing.T) {
		_, err := shipment.NewTransitionRecord(kernel.UUID{}, shipment.Unknown, kernel.UUID{},
			shipment.TransitionOptions{}, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestTransitionRecord_AssignSeq(t *testing.T) {
	r, err := shipment.NewTransitionRecord(kernel.NewUUID(), shipment.Accepted, kernel.NewUUID(),
		shipment.TransitionOptions{}, fixedNow)
	require.NoError(t, err)

	r.AssignSeq(7)
	r.AssignSeq(9)

	assert.Equal(t, int64(7), r.Seq())
}

func TestRestoreTransitionRecord(t *testing.T) {
	id := kernel.NewUUID()

	r, err := shipment.RestoreTransitionRecord(id, 3, kernel.NewUUID(), shipment.Delivered, kernel.NewUUID(),
		shipment.TransitionOptions{Note: "signed"}, fixedNow)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(r.ID()))
	assert.Equal(t, int64(3), r.Seq())
	assert.Equal(t, "signed", r.Note())

	var zero shipment.TransitionRecord
	require.ErrorIs(t, zero.Validate(), shipment.ErrTransitionRecordIsNotConstructed)
}
