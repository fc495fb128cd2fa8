package store

import (
	"context"
	"errors"
	"sync"

	"github.com/languagepeople/outreach-backend/internal/entity"
)

// ErrLeadNotFound is returned when an outcome targets an id the store does
// not hold. The store must never turn a miss into an insert.
var ErrLeadNotFound = errors.New("lead not found")

// Snapshotter persists the full lead collection as an opaque blob. The
// store calls Save after every mutation and Load never; loading is the
// caller's startup concern.
type Snapshotter interface {
	Save(ctx context.Context, leads []entity.Lead) error
	Load(ctx context.Context) ([]entity.Lead, bool, error)
}

// NoopSnapshotter keeps everything in memory. Used in tests and when no
// DATABASE_URL is configured.
type NoopSnapshotter struct{}

func (NoopSnapshotter) Save(ctx context.Context, leads []entity.Lead) error { return nil }

func (NoopSnapshotter) Load(ctx context.Context) ([]entity.Lead, bool, error) {
	return nil, false, nil
}

// LeadStore is the authoritative in-memory collection for the session. The
// mutex exists because the HTTP layer serves requests concurrently; the
// workload itself is one user action at a time.
type LeadStore struct {
	mu    sync.Mutex
	leads []entity.Lead
	snap  Snapshotter
}

func NewLeadStore(snap Snapshotter) *LeadStore {
	if snap == nil {
		snap = NoopSnapshotter{}
	}
	return &LeadStore{snap: snap}
}

// Load replaces the contents wholesale. Used once at startup, from either
// the persisted snapshot or the bootstrap document.
func (s *LeadStore) Load(ctx context.Context, leads []entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]entity.Lead(nil), leads...)
	return s.snap.Save(ctx, s.leads)
}

// ApplyImport appends a merge-import result to the collection.
func (s *LeadStore) ApplyImport(ctx context.Context, newLeads []entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append(s.leads, newLeads...)
	return s.snap.Save(ctx, s.leads)
}

// ApplyOutcome replaces the single lead whose id matches. A missing id is
// ErrLeadNotFound, never a silent insert.
func (s *LeadStore) ApplyOutcome(ctx context.Context, updated entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.leads {
		if l.ID == updated.ID {
			s.leads[i] = updated
			return s.snap.Save(ctx, s.leads)
		}
	}
	return ErrLeadNotFound
}

// Get returns the lead with the given id.
func (s *LeadStore) Get(id int) (entity.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

// All returns a copy of the collection in insertion order.
func (s *LeadStore) All() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Lead(nil), s.leads...)
}

func (s *LeadStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.leads)
}
