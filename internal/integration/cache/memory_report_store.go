package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/adapter"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

type memoryEntry struct {
	snapshot  adapter.ReportSnapshot
	expiresAt time.Time
}

// memoryReportStore keeps snapshots in process memory. It is used when Redis
// is not configured; expired entries are dropped on access.
type memoryReportStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	now     func() time.Time
}

// NewMemoryReportStore creates an in-process report store.
func NewMemoryReportStore() adapter.ReportStore {
	return &memoryReportStore{
		entries: make(map[uuid.UUID]memoryEntry),
		now:     time.Now,
	}
}

func (s *memoryReportStore) Save(ctx context.Context, snapshot *adapter.ReportSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[snapshot.ID] = memoryEntry{snapshot: *snapshot, expiresAt: now.Add(ttl)}
	return nil
}

func (s *memoryReportStore) Get(ctx context.Context, id uuid.UUID) (*adapter.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, domainerror.ErrReportNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, id)
		return nil, domainerror.ErrReportNotFound
	}
	snapshot := entry.snapshot
	return &snapshot, nil
}
