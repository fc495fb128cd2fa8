package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// MockSnapshotter
type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) Save(ctx context.Context, leads []entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockSnapshotter) Load(ctx context.Context) ([]entity.Lead, bool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.Lead), args.Bool(1), args.Error(2)
}

func sampleLeads() []entity.Lead {
	return []entity.Lead{
		{ID: 1, FirstName: "Jane", Company: "Acme School", Status: entity.StatusNew, AssignedAgent: "Ziggy"},
		{ID: 2, FirstName: "Richard", Company: "Busytown", Status: entity.StatusFollowUp, AssignedAgent: "Nathan"},
	}
}

func TestLoadReplacesContentsAndPersists(t *testing.T) {
	ctx := context.Background()
	snap := new(MockSnapshotter)
	snap.On("Save", ctx, mock.Anything).Return(nil)

	s := NewLeadStore(snap)
	assert.NoError(t, s.Load(ctx, sampleLeads()))
	assert.Equal(t, 2, s.Len())

	assert.NoError(t, s.Load(ctx, sampleLeads()[:1]))
	assert.Equal(t, 1, s.Len())

	snap.AssertNumberOfCalls(t, "Save", 2)
}

func TestApplyImportAppendsAndPersists(t *testing.T) {
	ctx := context.Background()
	snap := new(MockSnapshotter)
	snap.On("Save", ctx, mock.Anything).Return(nil)

	s := NewLeadStore(snap)
	assert.NoError(t, s.Load(ctx, sampleLeads()))
	assert.NoError(t, s.ApplyImport(ctx, []entity.Lead{{ID: 3, FirstName: "Edna", Company: "Springfield"}}))

	all := s.All()
	assert.Len(t, all, 3)
	assert.Equal(t, 3, all[2].ID)
	snap.AssertNumberOfCalls(t, "Save", 2)
}

func TestApplyOutcomeReplacesMatchingLead(t *testing.T) {
	ctx := context.Background()
	snap := new(MockSnapshotter)
	snap.On("Save", ctx, mock.Anything).Return(nil)

	s := NewLeadStore(snap)
	assert.NoError(t, s.Load(ctx, sampleLeads()))

	updated := sampleLeads()[1]
	updated.Status = entity.StatusClosed
	assert.NoError(t, s.ApplyOutcome(ctx, updated))

	got, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, entity.StatusClosed, got.Status)
}

func TestApplyOutcomeUnknownIDNeverInserts(t *testing.T) {
	ctx := context.Background()
	snap := new(MockSnapshotter)
	snap.On("Save", ctx, mock.Anything).Return(nil)

	s := NewLeadStore(snap)
	assert.NoError(t, s.Load(ctx, sampleLeads()))

	err := s.ApplyOutcome(ctx, entity.Lead{ID: 99, FirstName: "Ghost"})
	assert.True(t, errors.Is(err, ErrLeadNotFound))
	assert.Equal(t, 2, s.Len())
	// Only the initial Load persisted; the failed outcome must not.
	snap.AssertNumberOfCalls(t, "Save", 1)
}

func TestAllReturnsACopy(t *testing.T) {
	s := NewLeadStore(nil)
	assert.NoError(t, s.Load(context.Background(), sampleLeads()))

	all := s.All()
	all[0].FirstName = "Mutated"

	got, _ := s.Get(1)
	assert.Equal(t, "Jane", got.FirstName)
}
