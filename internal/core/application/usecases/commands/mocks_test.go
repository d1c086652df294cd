package commands_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"shipflow/internal/core/application/usecases/commands"
	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) UpdateStatus(ctx context.Context, s *shipment.Shipment, expected shipment.Status) error {
	args := m.Called(ctx, s, expected)
	return args.Error(0)
}

func (m *MockShipmentRepository) UpdateCarrier(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockTransitionRepository struct{ mock.Mock }

func (m *MockTransitionRepository) Append(ctx context.Context, record *shipment.TransitionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTransitionRepository) History(
	ctx context.Context,
	shipmentID kernel.UUID,
) iter.Seq2[*shipment.TransitionRecord, error] {
	args := m.Called(ctx, shipmentID)
	return args.Get(0).(iter.Seq2[*shipment.TransitionRecord, error])
}

type MockDisputeRepository struct{ mock.Mock }

func (m *MockDisputeRepository) Add(ctx context.Context, d *dispute.Dispute) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDisputeRepository) GetLatest(ctx context.Context, shipmentID kernel.UUID) (*dispute.Dispute, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Dispute), args.Error(1)
}

type MockPushTokenRepository struct{ mock.Mock }

func (m *MockPushTokenRepository) Save(ctx context.Context, ownerID kernel.UUID, token string) error {
	args := m.Called(ctx, ownerID, token)
	return args.Error(0)
}

func (m *MockPushTokenRepository) ListByOwner(ctx context.Context, ownerID kernel.UUID) ([]string, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPushTokenRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) TransitionRepository() ports.TransitionRepository {
	args := m.Called()
	return args.Get(0).(ports.TransitionRepository)
}

func (m *MockUoW) DisputeRepository() ports.DisputeRepository {
	args := m.Called()
	return args.Get(0).(ports.DisputeRepository)
}

func (m *MockUoW) PushTokenRepository() ports.PushTokenRepository {
	args := m.Called()
	return args.Get(0).(ports.PushTokenRepository)
}

type MockLifecycleUoWFactory struct{ mock.Mock }

func (m *MockLifecycleUoWFactory) Create() commands.LifecycleUoW {
	args := m.Called()
	return args.Get(0).(commands.LifecycleUoW)
}

type MockDisputeUoWFactory struct{ mock.Mock }

func (m *MockDisputeUoWFactory) Create() commands.DisputeUoW {
	args := m.Called()
	return args.Get(0).(commands.DisputeUoW)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}

type MockPushTokenUoWFactory struct{ mock.Mock }

func (m *MockPushTokenUoWFactory) Create() commands.PushTokenUoW {
	args := m.Called()
	return args.Get(0).(commands.PushTokenUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(change ports.StatusChange) {
	m.Called(change)
}

var fixedCreatedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

type parties struct {
	sender  kernel.UUID
	carrier kernel.UUID
}

func newParties() parties {
	return parties{sender: kernel.NewUUID(), carrier: kernel.NewUUID()}
}

func restoreShipment(t *testing.T, p parties, status shipment.Status) *shipment.Shipment {
	t.Helper()
	created := time.Now().Add(-time.Hour).UTC()
	s, err := shipment.RestoreShipment(kernel.NewUUID(), p.sender, &p.carrier, status, created, created)
	require.NoError(t, err)
	return s
}
