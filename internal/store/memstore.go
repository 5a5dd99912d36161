package store

import (
	"sync"

	"leafcare/internal/analysis"
	"leafcare/internal/diagnose"
)

// MemStore is an in-memory Store for tests. Implements Store.
type MemStore struct {
	mu      sync.Mutex
	records []*Record // insertion order
	byID    map[string]*Record
}

// NewMemStore returns a new in-memory Store.
func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]*Record)}
}

// SaveIdentification implements Store.
func (s *MemStore) SaveIdentification(query string, r *analysis.Result) (string, error) {
	rec, err := newIdentificationRecord(query, r)
	if err != nil {
		return "", err
	}
	s.add(rec)
	return rec.ID, nil
}

// SaveDiagnosis implements Store.
func (s *MemStore) SaveDiagnosis(in *diagnose.Input, r *diagnose.Result) (string, error) {
	rec, err := newDiagnosisRecord(in, r)
	if err != nil {
		return "", err
	}
	s.add(rec)
	return rec.ID, nil
}

func (s *MemStore) add(rec *Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.byID[rec.ID] = rec
}

// Get implements Store.
func (s *MemStore) Get(id string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

// History implements Store.
func (s *MemStore) History(plantName string) ([]*Record, error) {
	key := plantKey(plantName)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Record
	for i := len(s.records) - 1; i >= 0; i-- {
		if plantKey(s.records[i].PlantName) == key {
			cp := *s.records[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Close implements Store.
func (s *MemStore) Close() error { return nil }
