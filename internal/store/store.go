package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leafcare/internal/analysis"
	"leafcare/internal/catalog"
	"leafcare/internal/diagnose"
)

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent dir (e.g. .leafcare).
const DefaultDBPath = ".leafcare/leafcare.db"

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("record not found")

// Kind says which advisor operation produced a record.
type Kind string

const (
	KindIdentification Kind = "identification"
	KindDiagnosis      Kind = "diagnosis"
)

// Record is one stored analysis or diagnosis. Payload is the JSON encoding
// of the result (and, for diagnoses, the questionnaire).
type Record struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	PlantName string          `json:"plantName"`
	Query     string          `json:"query,omitempty"` // identification input; empty for diagnoses
	Status    catalog.Status  `json:"status"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt string          `json:"createdAt"` // RFC 3339, UTC
}

// DiagnosisPayload is the payload of a KindDiagnosis record.
type DiagnosisPayload struct {
	Input  diagnose.Input  `json:"input"`
	Result diagnose.Result `json:"result"`
}

// Store is the persistence facade for advisor results.
// Implementations are SQLite or in-memory.
type Store interface {
	// SaveIdentification stores an analysis produced from query and returns its ID.
	SaveIdentification(query string, r *analysis.Result) (string, error)
	// SaveDiagnosis stores a questionnaire with its diagnosis and returns its ID.
	SaveDiagnosis(in *diagnose.Input, r *diagnose.Result) (string, error)
	// Get returns a record by ID, or ErrNotFound.
	Get(id string) (*Record, error)
	// History lists records for a plant name (case-insensitive), newest first.
	History(plantName string) ([]*Record, error)
	Close() error
}

// nowUTC is replaced in tests.
var nowUTC = func() time.Time { return time.Now().UTC() }

func newIdentificationRecord(query string, r *analysis.Result) (*Record, error) {
	if r == nil {
		return nil, errors.New("analysis result is nil")
	}
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}
	return &Record{
		ID:        uuid.NewString(),
		Kind:      KindIdentification,
		PlantName: r.PlantName,
		Query:     query,
		Status:    r.Status,
		Payload:   payload,
		CreatedAt: nowUTC().Format(time.RFC3339),
	}, nil
}

func newDiagnosisRecord(in *diagnose.Input, r *diagnose.Result) (*Record, error) {
	if in == nil || r == nil {
		return nil, errors.New("diagnosis input and result are required")
	}
	payload, err := json.Marshal(DiagnosisPayload{Input: *in, Result: *r})
	if err != nil {
		return nil, fmt.Errorf("encode diagnosis: %w", err)
	}
	return &Record{
		ID:        uuid.NewString(),
		Kind:      KindDiagnosis,
		PlantName: in.PlantName,
		Status:    r.Status,
		Payload:   payload,
		CreatedAt: nowUTC().Format(time.RFC3339),
	}, nil
}

// plantKey is the lookup key History matches on.
func plantKey(name string) string {
	return catalog.Normalize(name)
}
