package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"leafcare/internal/analysis"
	"leafcare/internal/catalog"
	"leafcare/internal/diagnose"

	_ "modernc.org/sqlite"
)

// nullStr converts a sql.NullString to a plain string (empty if null).
func nullStr(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .leafcare) if it does not exist.
// ":memory:" opens a private in-memory database.
func Open(path string) (*SqlStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every pooled connection to ":memory:" would see its own empty database.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableCount == 0 {
		return s.freshInstall()
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return s.freshInstall()
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if v != currentSchemaVersion {
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// freshInstall creates the schema from scratch on an empty database.
func (s *SqlStore) freshInstall() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version(version) VALUES(?)", currentSchemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// SaveIdentification implements Store.
func (s *SqlStore) SaveIdentification(query string, r *analysis.Result) (string, error) {
	rec, err := newIdentificationRecord(query, r)
	if err != nil {
		return "", err
	}
	if err := s.insert(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// SaveDiagnosis implements Store.
func (s *SqlStore) SaveDiagnosis(in *diagnose.Input, r *diagnose.Result) (string, error) {
	rec, err := newDiagnosisRecord(in, r)
	if err != nil {
		return "", err
	}
	if err := s.insert(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *SqlStore) insert(rec *Record) error {
	var query sql.NullString
	if rec.Query != "" {
		query = sql.NullString{String: rec.Query, Valid: true}
	}
	_, err := s.db.Exec(
		`INSERT INTO records(id, kind, plant_name, plant_key, query, status, payload, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.PlantName, plantKey(rec.PlantName), query,
		string(rec.Status), []byte(rec.Payload), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert %s record: %w", rec.Kind, err)
	}
	return nil
}

const selectRecord = `SELECT id, kind, plant_name, query, status, payload, created_at FROM records`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*Record, error) {
	var rec Record
	var kind, status string
	var query sql.NullString
	var payload []byte
	if err := row.Scan(&rec.ID, &kind, &rec.PlantName, &query, &status, &payload, &rec.CreatedAt); err != nil {
		return nil, err
	}
	rec.Kind = Kind(kind)
	rec.Status = catalog.Status(status)
	rec.Query = nullStr(query)
	rec.Payload = payload
	return &rec, nil
}

// Get implements Store.
func (s *SqlStore) Get(id string) (*Record, error) {
	rec, err := scanRecord(s.db.QueryRow(selectRecord+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return rec, nil
}

// History implements Store.
func (s *SqlStore) History(plantName string) ([]*Record, error) {
	rows, err := s.db.Query(selectRecord+" WHERE plant_key = ? ORDER BY seq DESC", plantKey(plantName))
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
