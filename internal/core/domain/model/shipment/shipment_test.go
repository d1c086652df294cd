package shipment_test

import (
	"testing"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func TestNewShipment(t *testing.T) {
	t.Run("should create a requested shipment without carrier", func(t *testing.T) {
		id, sender := kernel.NewUUID(), kernel.NewUUID()

		s, err := shipment.NewShipment(id, sender, nil, fixedNow)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, id.IsEqual(s.ID()))
		assert.True(t, sender.IsEqual(s.SenderID()))
		assert.Nil(t, s.CarrierID())
		assert.Equal(t, shipment.Requested, s.Status())
		assert.Equal(t, fixedNow, s.CreatedAt())
		assert.Equal(t, fixedNow, s.UpdatedAt())
	})

	t.Run("should accept a pre-matched carrier", func(t *testing.T) {
		carrier := kernel.NewUUID()

		s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &carrier, fixedNow)

		require.NoError(t, err)
		require.NotNil(t, s.CarrierID())
		assert.True(t, carrier.IsEqual(*s.CarrierID()))
	})

	t.Run("should reject missing identifiers", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.UUID{}, kernel.UUID{}, nil, fixedNow)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "sender")
	})

	t.Run("should reject carrier equal to sender", func(t *testing.T) {
		sender := kernel.NewUUID()

		_, err := shipment.NewShipment(kernel.NewUUID(), sender, &sender, fixedNow)

		require.ErrorIs(t, err, shipment.ErrCarrierIsSender)
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("should restore any valid status", func(t *testing.T) {
		carrier := kernel.NewUUID()
		for _, status := range shipment.AllStatuses() {
			s, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), &carrier, status, fixedNow, fixedNow)

			require.NoError(t, err)
			assert.Equal(t, status, s.Status())
		}
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(kernel.NewUUID(), kernel.NewUUID(), nil, shipment.Unknown, fixedNow, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_Validate(t *testing.T) {
	var zero shipment.Shipment
	require.ErrorIs(t, zero.Validate(), shipment.ErrShipmentIsNotConstructed)

	var nilShipment *shipment.Shipment
	require.ErrorIs(t, nilShipment.Validate(), shipment.ErrShipmentIsNotConstructed)
}

func TestShipment_RoleOf(t *testing.T) {
	sender, carrier, stranger := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	s, err := shipment.NewShipment(kernel.NewUUID(), sender, &carrier, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, shipment.RoleSender, s.RoleOf(sender))
	assert.Equal(t, shipment.RoleCarrier, s.RoleOf(carrier))
	assert.Equal(t, shipment.RoleNone, s.RoleOf(stranger))
	assert.True(t, s.IsParty(sender))
	assert.True(t, s.IsParty(carrier))
	assert.False(t, s.IsParty(stranger))
	assert.Len(t, s.Parties(), 2)

	unmatched, err := shipment.NewShipment(kernel.NewUUID(), sender, nil, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, shipment.RoleNone, unmatched.RoleOf(carrier))
	assert.Equal(t, []kernel.UUID{sender}, unmatched.Parties())
}

func TestShipment_AssignCarrier(t *testing.T) {
	newUnmatched := func(t *testing.T) (*shipment.Shipment, kernel.UUID) {
		t.Helper()
		sender := kernel.NewUUID()
		s, err := shipment.NewShipment(kernel.NewUUID(), sender, nil, fixedNow)
		require.NoError(t, err)
		return s, sender
	}

	t.Run("sender assigns a carrier while requested", func(t *testing.T) {
		s, sender := newUnmatched(t)
		carrier := kernel.NewUUID()

		require.NoError(t, s.AssignCarrier(sender, carrier))
		assert.Equal(t, shipment.RoleCarrier, s.RoleOf(carrier))
	})

	t.Run("non sender is denied", func(t *testing.T) {
		s, _ := newUnmatched(t)

		err := s.AssignCarrier(kernel.NewUUID(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("sender cannot carry own shipment", func(t *testing.T) {
		s, sender := newUnmatched(t)

		require.ErrorIs(t, s.AssignCarrier(sender, sender), shipment.ErrCarrierIsSender)
	})

	t.Run("carrier is frozen after requested", func(t *testing.T) {
		s, sender := newUnmatched(t)
		require.NoError(t, s.AssignCarrier(sender, kernel.NewUUID()))
		_, err := s.MoveTo(shipment.Accepted, fixedNow)
		require.NoError(t, err)

		err = s.AssignCarrier(sender, kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "ACCEPTED")
	})
}

func TestShipment_MoveTo(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), nil, fixedNow)
	require.NoError(t, err)
	later := fixedNow.Add(time.Hour)

	previous, err := s.MoveTo(shipment.Accepted, later)

	require.NoError(t, err)
	assert.Equal(t, shipment.Requested, previous)
	assert.Equal(t, shipment.Accepted, s.Status())
	assert.Equal(t, later, s.UpdatedAt())
	assert.Equal(t, fixedNow, s.CreatedAt())

	_, err = s.MoveTo(shipment.Unknown, later)
	require.Error(t, err)
	assert.Equal(t, shipment.Accepted, s.Status())
}
