package kernel_test

import (
	"encoding/json"
	"testing"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validUUID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"canonical", validUUID},
		{"braces", "{" + validUUID + "}"},
		{"urn prefix", "urn:uuid:" + validUUID},
		{"no hyphens", "550e8400e29b41d4a716446655440000"},
	}

	for _, tc := range testCases {
		t.Run("should accept "+tc.name, func(t *testing.T) {
			id, err := kernel.UUIDFromString(tc.input)

			require.NoError(t, err)
			assert.Equal(t, validUUID, id.String())
		})
	}

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, input := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromString(uuid.Nil.String())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should restore from bytes", func(t *testing.T) {
		raw := uuid.MustParse(validUUID)

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should reject invalid length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})
		require.Error(t, err)
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Nullable(t *testing.T) {
	t.Run("nil column stays nil", func(t *testing.T) {
		id, err := kernel.UUIDPtrFromNullable(nil)

		require.NoError(t, err)
		assert.Nil(t, id)
		assert.Nil(t, kernel.NullableBytes(nil))
	})

	t.Run("round trips a present value", func(t *testing.T) {
		original := kernel.NewUUID()

		restored, err := kernel.UUIDPtrFromNullable(kernel.NullableBytes(&original))

		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.True(t, original.IsEqual(*restored))
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	require.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	require.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_JSON(t *testing.T) {
	type envelope struct {
		ID kernel.UUID `json:"id"`
	}
	id, err := kernel.UUIDFromString(validUUID)
	require.NoError(t, err)

	data, err := json.Marshal(envelope{ID: id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+validUUID+`"}`, string(data))

	var decoded envelope
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, id.IsEqual(decoded.ID))

	require.Error(t, json.Unmarshal([]byte(`{"id":"nope"}`), &decoded))
}
