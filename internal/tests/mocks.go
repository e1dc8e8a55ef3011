package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/domain"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/places"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK PLACE FINDER
// ──────────────────────────────────────────────

// LookupCall records the arguments of one FetchNearby invocation.
type LookupCall struct {
	Lat      float64
	Lng      float64
	Category string
}

// MockPlaceFinder is a mock implementation of service.PlaceFinder.
type MockPlaceFinder struct {
	mu sync.Mutex

	// Results maps category -> canned results.
	Results map[string][]places.Place

	// Counters for verification
	CallCount int32
	calls     []LookupCall
}

// NewMockPlaceFinder creates a new mock place finder.
func NewMockPlaceFinder() *MockPlaceFinder {
	return &MockPlaceFinder{Results: make(map[string][]places.Place)}
}

func (m *MockPlaceFinder) FetchNearby(ctx context.Context, lat, lng float64, category string) []places.Place {
	atomic.AddInt32(&m.CallCount, 1)
	m.mu.Lock()
	m.calls = append(m.calls, LookupCall{Lat: lat, Lng: lng, Category: category})
	m.mu.Unlock()
	return m.Results[category]
}

// Calls returns a copy of the recorded invocations.
func (m *MockPlaceFinder) Calls() []LookupCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LookupCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CalledCategories returns the set of categories queried so far.
func (m *MockPlaceFinder) CalledCategories() map[string]int {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int)
	for _, call := range m.calls {
		counts[call.Category]++
	}
	return counts
}

// ──────────────────────────────────────────────
// MOCK TRIP STORE
// ──────────────────────────────────────────────

// MockTripStore is a mock implementation of repository.TripStore.
type MockTripStore struct {
	mu      sync.RWMutex
	records []*domain.TripRecord

	// Counters for verification
	SaveCallCount int32

	// Error injection
	SaveError      error
	GetRecentError error
}

// NewMockTripStore creates a new mock trip store.
func NewMockTripStore() *MockTripStore {
	return &MockTripStore{}
}

func (m *MockTripStore) Save(ctx context.Context, record *domain.TripRecord) error {
	atomic.AddInt32(&m.SaveCallCount, 1)
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *record
	m.records = append(m.records, &copied)
	return nil
}

func (m *MockTripStore) GetByID(ctx context.Context, id string) (*domain.TripRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.ID == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockTripStore) GetRecent(ctx context.Context, limit int64) ([]*domain.TripRecord, error) {
	if m.GetRecentError != nil {
		return nil, m.GetRecentError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.TripRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		copied := *m.records[i]
		out = append(out, &copied)
	}
	return out, nil
}

// SavedRecords returns a copy of everything saved so far.
func (m *MockTripStore) SavedRecords() []*domain.TripRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.TripRecord, 0, len(m.records))
	for _, r := range m.records {
		copied := *r
		out = append(out, &copied)
	}
	return out
}
