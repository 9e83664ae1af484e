package store

import (
	"context"
	"sync"

	"github.com/shandysiswandi/healthsheet/internal/health/entity"
	"github.com/shandysiswandi/healthsheet/internal/pkg/pkgerror"
)

// InMemoryRecordStore keeps the latest dataset of every user for the lifetime
// of the process.
type InMemoryRecordStore struct {
	mu       sync.RWMutex
	datasets map[string]*datasetRecord
}

type datasetRecord struct {
	mu      sync.RWMutex
	dataset entity.Dataset
}

func NewInMemoryRecordStore() *InMemoryRecordStore {
	return &InMemoryRecordStore{
		datasets: make(map[string]*datasetRecord),
	}
}

// Replace overwrites the dataset of username and returns the one it replaced.
func (s *InMemoryRecordStore) Replace(ctx context.Context, username string, dataset entity.Dataset) (entity.Dataset, error) {
	rec := s.getOrCreate(username)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	previous := rec.dataset
	rec.dataset = entity.Dataset{
		Meta:    dataset.Meta,
		Records: entity.CloneRecords(dataset.Records),
	}

	return previous, nil
}

// Fetch returns a copy of the dataset of username, or the zero Dataset.
func (s *InMemoryRecordStore) Fetch(ctx context.Context, username string) (entity.Dataset, error) {
	s.mu.RLock()
	rec, ok := s.datasets[username]
	s.mu.RUnlock()
	if !ok {
		return entity.Dataset{}, nil
	}

	rec.mu.RLock()
	defer rec.mu.RUnlock()

	return entity.Dataset{
		Meta:    rec.dataset.Meta,
		Records: entity.CloneRecords(rec.dataset.Records),
	}, nil
}

func (s *InMemoryRecordStore) getOrCreate(username string) *datasetRecord {
	s.mu.RLock()
	rec, ok := s.datasets[username]
	s.mu.RUnlock()
	if ok {
		return rec
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok = s.datasets[username]; !ok {
		rec = &datasetRecord{}
		s.datasets[username] = rec
	}

	return rec
}

// InMemoryUserStore holds user accounts keyed by username.
type InMemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]entity.User
}

func NewInMemoryUserStore() *InMemoryUserStore {
	return &InMemoryUserStore{
		users: make(map[string]entity.User),
	}
}

func (s *InMemoryUserStore) Create(ctx context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return pkgerror.NewBusiness("username already registered", pkgerror.CodeConflict)
	}

	s.users[user.Username] = user

	return nil
}

func (s *InMemoryUserStore) Get(ctx context.Context, username string) (entity.User, error) {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return entity.User{}, pkgerror.ErrNotFound
	}

	return user, nil
}
