// Package usecasetest provides in-memory adapters for use case tests.
package usecasetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rental-ledger/backend/internal/application/adapter"
	"github.com/rental-ledger/backend/internal/domain/entity"
	domainerror "github.com/rental-ledger/backend/internal/domain/error"
)

// TransactionRepository is an in-memory adapter.TransactionRepository.
type TransactionRepository struct {
	mu           sync.Mutex
	Transactions []entity.Transaction
	Err          error

	// LastStart and LastEnd record the bounds of the latest FindByPropertyAndDate call.
	LastStart string
	LastEnd   string
}

// NewTransactionRepository creates a repository holding transactions in store order.
func NewTransactionRepository(transactions ...entity.Transaction) *TransactionRepository {
	return &TransactionRepository{Transactions: transactions}
}

func (r *TransactionRepository) FindByPropertyAndDate(ctx context.Context, propertyID *int64, startDate, endDate string) ([]entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.LastStart, r.LastEnd = startDate, endDate
	if r.Err != nil {
		return nil, r.Err
	}

	result := make([]entity.Transaction, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		if propertyID != nil && t.PropertyID != *propertyID {
			continue
		}
		if startDate != "" && endDate != "" && (t.Date < startDate || t.Date > endDate) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Transactions {
		if r.Transactions[i].ID == id {
			t := r.Transactions[i]
			return &t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	var maxID int64
	for _, t := range r.Transactions {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	transaction.ID = maxID + 1
	r.Transactions = append(r.Transactions, *transaction)
	return nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for i := range r.Transactions {
		if r.Transactions[i].ID == transaction.ID {
			r.Transactions[i] = *transaction
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	for i := range r.Transactions {
		if r.Transactions[i].ID == id {
			r.Transactions = append(r.Transactions[:i], r.Transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

// PropertyRepository is an in-memory adapter.PropertyRepository.
type PropertyRepository struct {
	mu         sync.Mutex
	Properties []entity.Property
	Err        error
}

// NewPropertyRepository creates a repository holding properties.
func NewPropertyRepository(properties ...entity.Property) *PropertyRepository {
	return &PropertyRepository{Properties: properties}
}

func (r *PropertyRepository) List(ctx context.Context) ([]entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	return append([]entity.Property(nil), r.Properties...), nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id int64) (*entity.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return nil, r.Err
	}
	for i := range r.Properties {
		if r.Properties[i].ID == id {
			p := r.Properties[i]
			return &p, nil
		}
	}
	return nil, domainerror.ErrPropertyNotFound
}

func (r *PropertyRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if errors.Is(err, domainerror.ErrPropertyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *PropertyRepository) Create(ctx context.Context, property *entity.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}
	property.ID = int64(len(r.Properties) + 1)
	r.Properties = append(r.Properties, *property)
	return nil
}

// ReportStore is an in-memory adapter.ReportStore that ignores TTLs.
type ReportStore struct {
	mu        sync.Mutex
	Snapshots map[uuid.UUID]adapter.ReportSnapshot
	SaveErr   error
	LastTTL   time.Duration
}

// NewReportStore creates an empty ReportStore.
func NewReportStore() *ReportStore {
	return &ReportStore{Snapshots: make(map[uuid.UUID]adapter.ReportSnapshot)}
}

func (s *ReportStore) Save(ctx context.Context, snapshot *adapter.ReportSnapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.LastTTL = ttl
	s.Snapshots[snapshot.ID] = *snapshot
	return nil
}

func (s *ReportStore) Get(ctx context.Context, id uuid.UUID) (*adapter.ReportSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, ok := s.Snapshots[id]
	if !ok {
		return nil, domainerror.ErrReportNotFound
	}
	return &snapshot, nil
}

// Metrics is an adapter.MetricsRecorder that counts calls.
type Metrics struct {
	mu          sync.Mutex
	Malformed   map[string]int
	CacheHits   int
	CacheMisses int
}

// NewMetrics creates an empty Metrics recorder.
func NewMetrics() *Metrics {
	return &Metrics{Malformed: make(map[string]int)}
}

func (m *Metrics) RecordMalformedRecords(operation string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Malformed[operation] += count
}

func (m *Metrics) RecordReportCache(hit bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if hit {
		m.CacheHits++
	} else {
		m.CacheMisses++
	}
}
