package shipment_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(shipment.Unknown))
		assert.Equal(t, 1, int(shipment.Requested))
		assert.Equal(t, 7, int(shipment.Disputed))
	})

	t.Run("should list seven valid statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t, []shipment.Status{
			shipment.Requested,
			shipment.Accepted,
			shipment.PickedUp,
			shipment.InTransit,
			shipment.Arrived,
			shipment.Delivered,
			shipment.Disputed,
		}, shipment.AllStatuses())
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   shipment.Status
		expected string
	}{
		{shipment.Requested, "REQUESTED"},
		{shipment.Accepted, "ACCEPTED"},
		{shipment.PickedUp, "PICKED_UP"},
		{shipment.InTransit, "IN_TRANSIT"},
		{shipment.Arrived, "ARRIVED"},
		{shipment.Delivered, "DELIVERED"},
		{shipment.Disputed, "DISPUTED"},
		{shipment.Unknown, "UNKNOWN"},
		{shipment.Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every listed status", func(t *testing.T) {
		for _, status := range shipment.AllStatuses() {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []shipment.Status{shipment.Unknown, shipment.Status(-1), shipment.Status(8)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round trip every token", func(t *testing.T) {
		for _, status := range shipment.AllStatuses() {
			parsed, err := shipment.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown tokens", func(t *testing.T) {
		for _, token := range []string{"", "UNKNOWN", "delivered", "LOST"} {
			status, err := shipment.ParseStatus(token)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, token)
			assert.Equal(t, shipment.Unknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, status := range shipment.AllStatuses() {
		assert.Equal(t, status == shipment.Disputed, status.IsTerminal(), status.String())
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(map[string]shipment.Status{"status": shipment.InTransit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"IN_TRANSIT"}`, string(data))

	var decoded struct {
		Status shipment.Status `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"status":"ARRIVED"}`), &decoded))
	assert.Equal(t, shipment.Arrived, decoded.Status)

	require.Error(t, json.Unmarshal([]byte(`{"status":"TELEPORTED"}`), &decoded))

	_, err = json.Marshal(map[string]shipment.Status{"status": shipment.Unknown})
	require.Error(t, err)
}
