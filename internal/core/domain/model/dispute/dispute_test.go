package dispute_test

import (
	"strings"
	"testing"
	"time"

	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var filedAt = time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)

func TestNewDispute(t *testing.T) {
	t.Run("should create an open dispute with trimmed input", func(t *testing.T) {
		shipmentID, reporter := kernel.NewUUID(), kernel.NewUUID()

		d, err := dispute.NewDispute(shipmentID, reporter, "  damaged ", " box crushed \n",
			[]string{" photos/1.jpg", "photos/2.jpg "}, filedAt)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.NoError(t, d.ID().Validate())
		assert.True(t, shipmentID.IsEqual(d.ShipmentID()))
		assert.True(t, reporter.IsEqual(d.ReporterID()))
		assert.Equal(t, "damaged", d.Reason())
		assert.Equal(t, "box crushed", d.Description())
		assert.Equal(t, []string{"photos/1.jpg", "photos/2.jpg"}, d.EvidenceRefs())
		assert.Equal(t, dispute.Open, d.Resolution())
		assert.Equal(t, filedAt, d.CreatedAt())
		assert.Equal(t, "dispute: damaged", d.TransitionNote())
	})

	t.Run("should allow no evidence", func(t *testing.T) {
		d, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), "late", "three days late", nil, filedAt)

		require.NoError(t, err)
		assert.Empty(t, d.EvidenceRefs())
	})

	testCases := []struct {
		name        string
		reason      string
		description string
		evidence    []string
		sentinel    error
		contains    string
	}{
		{"blank reason", "   ", "text", nil, errs.ErrValueIsRequired, "reason"},
		{"long reason", strings.Repeat("r", 65), "text", nil, errs.ErrValueIsOutOfRange, "reason"},
		{"blank description", "lost", "", nil, errs.ErrValueIsRequired, "description"},
		{"long description", "lost", strings.Repeat("d", 2001), nil, errs.ErrValueIsOutOfRange, "description"},
		{"too much evidence", "lost", "text", make([]string, 11), errs.ErrValueIsOutOfRange, "evidenceRefs"},
		{"blank evidence", "lost", "text", []string{"ok", " "}, errs.ErrValueIsRequired, "evidenceRef"},
	}

	for _, tc := range testCases {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			d, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), tc.reason, tc.description, tc.evidence, filedAt)

			require.ErrorIs(t, err, tc.sentinel)
			assert.Contains(t, err.Error(), tc.contains)
			assert.Nil(t, d)
		})
	}

	t.Run("should accept limits exactly", func(t *testing.T) {
		evidence := make([]string, dispute.MaxEvidenceRefs)
		for i := range evidence {
			evidence[i] = "ref"
		}

		_, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(),
			strings.Repeat("r", dispute.MaxReasonLength),
			strings.Repeat("d", dispute.MaxDescriptionLength),
			evidence, filedAt)

		require.NoError(t, err)
	})
}

func TestDispute_EvidenceRefsAreCopied(t *testing.T) {
	d, err := dispute.NewDispute(kernel.NewUUID(), kernel.NewUUID(), "damaged", "dent", []string{"a"}, filedAt)
	require.NoError(t, err)

	refs := d.EvidenceRefs()
	refs[0] = "tampered"

	assert.Equal(t, []string{"a"}, d.EvidenceRefs())
}

func TestRestoreDispute(t *testing.T) {
	id := kernel.NewUUID()

	d, err := dispute.RestoreDispute(id, kernel.NewUUID(), kernel.NewUUID(), "lost", "never arrived",
		[]string{"x"}, dispute.Closed, filedAt)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(d.ID()))
	assert.Equal(t, dispute.Closed, d.Resolution())

	_, err = dispute.RestoreDispute(id, kernel.NewUUID(), kernel.NewUUID(), "lost", "never arrived",
		nil, dispute.ResolutionStatus("pending"), filedAt)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	var zero dispute.Dispute
	require.ErrorIs(t, zero.Validate(), dispute.ErrDisputeIsNotConstructed)
}
