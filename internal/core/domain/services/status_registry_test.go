package services_test

import (
	"fmt"
	"testing"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedGraph = map[shipment.Status][]shipment.Status{
	shipment.Requested: {shipment.Accepted, shipment.Disputed},
	shipment.Accepted:  {shipment.PickedUp, shipment.Disputed},
	shipment.PickedUp:  {shipment.InTransit, shipment.Disputed},
	shipment.InTransit: {shipment.Arrived, shipment.Disputed},
	shipment.Arrived:   {shipment.Delivered, shipment.Disputed},
	shipment.Delivered: {shipment.Disputed},
	shipment.Disputed:  {},
}

func withUnknown() []shipment.Status {
	return append([]shipment.Status{shipment.Unknown, shipment.Status(99)}, shipment.AllStatuses()...)
}

func contains(list []shipment.Status, s shipment.Status) bool {
	for _, candidate := range list {
		if candidate == s {
			return true
		}
	}
	return false
}

func TestStatusRegistry_AllowedNextStates(t *testing.T) {
	registry := services.NewStatusRegistry()

	for current, expected := range expectedGraph {
		t.Run(current.String(), func(t *testing.T) {
			assert.Equal(t, expected, registry.AllowedNextStates(current))
		})
	}

	t.Run("should be empty for invalid values", func(t *testing.T) {
		assert.Empty(t, registry.AllowedNextStates(shipment.Unknown))
		assert.Empty(t, registry.AllowedNextStates(shipment.Status(-3)))
	})

	t.Run("should return a copy", func(t *testing.T) {
		next := registry.AllowedNextStates(shipment.Requested)
		next[0] = shipment.Delivered

		assert.Equal(t, shipment.Accepted, registry.AllowedNextStates(shipment.Requested)[0])
	})
}

func TestStatusRegistry_IsTransitionAllowed_FullGrid(t *testing.T) {
	registry := services.NewStatusRegistry()

	for _, current := range withUnknown() {
		for _, next := range withUnknown() {
			expected := contains(expectedGraph[current], next)
			t.Run(fmt.Sprintf("%s_to_%s", current, next), func(t *testing.T) {
				assert.Equal(t, expected, registry.IsTransitionAllowed(current, next))
			})
		}
	}
}

func TestStatusRegistry_DisputedReachableFromEveryNonTerminal(t *testing.T) {
	registry := services.NewStatusRegistry()

	for _, status := range shipment.AllStatuses() {
		assert.Equal(t, !status.IsTerminal(), registry.IsTransitionAllowed(status, shipment.Disputed), status.String())
	}
	assert.Empty(t, registry.AllowedNextStates(shipment.Disputed))
}

func TestStatusRegistry_IsPermitted_FullGrid(t *testing.T) {
	registry := services.NewStatusRegistry()
	sender, carrier, stranger := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	expectedRoles := map[shipment.Status][]shipment.Role{
		shipment.Accepted:  {shipment.RoleCarrier},
		shipment.PickedUp:  {shipment.RoleCarrier},
		shipment.InTransit: {shipment.RoleCarrier},
		shipment.Arrived:   {shipment.RoleCarrier},
		shipment.Delivered: {shipment.RoleSender},
		shipment.Disputed:  {shipment.RoleSender, shipment.RoleCarrier},
	}
	actors := map[shipment.Role]kernel.UUID{
		shipment.RoleSender:  sender,
		shipment.RoleCarrier: carrier,
		shipment.RoleNone:    stranger,
	}

	for _, current := range shipment.AllStatuses() {
		s, err := shipment.RestoreShipment(kernel.NewUUID(), sender, &carrier, current, time.Now(), time.Now())
		require.NoError(t, err)

		for _, requested := range withUnknown() {
			for role, actor := range actors {
				expected := false
				for _, allowed := range expectedRoles[requested] {
					expected = expected || allowed == role
				}
				t.Run(fmt.Sprintf("%s_%s_by_%s", current, requested, role), func(t *testing.T) {
					assert.Equal(t, expected, registry.IsPermitted(s, actor, requested))
				})
			}
		}
	}
}

func TestStatusRegistry_IsPermitted_UnmatchedCarrier(t *testing.T) {
	registry := services.NewStatusRegistry()
	sender := kernel.NewUUID()
	s, err := shipment.NewShipment(kernel.NewUUID(), sender, nil, time.Now())
	require.NoError(t, err)

	assert.False(t, registry.IsPermitted(s, kernel.NewUUID(), shipment.Accepted))
	assert.True(t, registry.IsPermitted(s, sender, shipment.Disputed))
	assert.False(t, registry.IsPermitted(nil, sender, shipment.Disputed))
}

func TestStatusRegistry_PermittedNextStates(t *testing.T) {
	registry := services.NewStatusRegistry()
	sender, carrier := kernel.NewUUID(), kernel.NewUUID()

	testCases := []struct {
		current       shipment.Status
		senderCanDo   []shipment.Status
		carrierCanDo  []shipment.Status
		strangerCanDo []shipment.Status
	}{
		{shipment.Requested, []shipment.Status{shipment.Disputed}, []shipment.Status{shipment.Accepted, shipment.Disputed}, []shipment.Status{}},
		{shipment.Arrived, []shipment.Status{shipment.Delivered, shipment.Disputed}, []shipment.Status{shipment.Disputed}, []shipment.Status{}},
		{shipment.Delivered, []shipment.Status{shipment.Disputed}, []shipment.Status{shipment.Disputed}, []shipment.Status{}},
		{shipment.Disputed, []shipment.Status{}, []shipment.Status{}, []shipment.Status{}},
	}

	for _, tc := range testCases {
		t.Run(tc.current.String(), func(t *testing.T) {
			s, err := shipment.RestoreShipment(kernel.NewUUID(), sender, &carrier, tc.current, time.Now(), time.Now())
			require.NoError(t, err)

			assert.Equal(t, tc.senderCanDo, registry.PermittedNextStates(s, sender))
			assert.Equal(t, tc.carrierCanDo, registry.PermittedNextStates(s, carrier))
			assert.Equal(t, tc.strangerCanDo, registry.PermittedNextStates(s, kernel.NewUUID()))
		})
	}
}
