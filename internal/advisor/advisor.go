// Package advisor is the entry point callers use. It chains identification
// with analysis, runs diagnoses and can record results in a store.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"leafcare/internal/analysis"
	"leafcare/internal/catalog"
	"leafcare/internal/diagnose"
	"leafcare/internal/identify"
	"leafcare/internal/logging"
	"leafcare/internal/store"
)

// ErrNoStore is returned by History when the service keeps no records.
var ErrNoStore = errors.New("no store configured")

// Report is an analysis together with how it was identified.
type Report struct {
	Analysis   *analysis.Result `json:"analysis"`
	EntryID    string           `json:"entryId"`
	Score      int              `json:"score"`
	Exact      bool             `json:"exact"`
	Identified bool             `json:"identified"`
	RecordID   string           `json:"recordId,omitempty"`
}

// DiagnosisReport is a diagnosis and, when stored, its record ID.
type DiagnosisReport struct {
	Result   *diagnose.Result `json:"result"`
	RecordID string           `json:"recordId,omitempty"`
}

// Service wires the matcher, composer and diagnostic engine over one
// read-only catalog. It is safe for concurrent use.
type Service struct {
	entries  []catalog.Entry
	matcher  *identify.Matcher
	composer *analysis.Composer
	store    store.Store
	logger   *slog.Logger
}

// New returns a Service. rng may be nil (global generator); st may be nil,
// in which case nothing is persisted and no method can fail except on
// context cancellation.
func New(entries []catalog.Entry, rng identify.Rand, st store.Store) *Service {
	if rng == nil {
		rng = identify.DefaultRand()
	}
	return &Service{
		entries:  entries,
		matcher:  identify.New(entries, rng),
		composer: analysis.NewComposer(rng),
		store:    st,
		logger:   logging.New("advisor"),
	}
}

// Entries returns the catalog the service matches against.
func (s *Service) Entries() []catalog.Entry { return s.entries }

// Candidates exposes the per-entry scores for a query.
func (s *Service) Candidates(q identify.Query) []identify.Candidate {
	return s.matcher.Candidates(q)
}

// IdentifyAndAnalyze identifies a typed plant name and analyses the match.
func (s *Service) IdentifyAndAnalyze(ctx context.Context, query string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.report(query, s.matcher.Match(query))
}

// IdentifyFromImageMetadata identifies an uploaded image from its filename
// and optional description, then analyses the match.
func (s *Service) IdentifyFromImageMetadata(ctx context.Context, filename, description string) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	label := filename
	if description != "" {
		label = fmt.Sprintf("%s (%s)", filename, description)
	}
	return s.report(label, s.matcher.MatchImage(filename, description))
}

func (s *Service) report(query string, m identify.Match) (*Report, error) {
	rep := &Report{
		Analysis:   s.composer.Compose(m.Entry),
		EntryID:    m.Entry.ID,
		Score:      m.Score,
		Exact:      m.Exact,
		Identified: m.Identified(),
	}
	s.logger.Info("plant identified", "query", query, "entry", rep.EntryID, "score", rep.Score, "status", rep.Analysis.Status)
	if s.store == nil {
		return rep, nil
	}
	id, err := s.store.SaveIdentification(query, rep.Analysis)
	if err != nil {
		s.logger.Error("save identification failed", "query", query, "error", err)
		return nil, fmt.Errorf("save identification: %w", err)
	}
	rep.RecordID = id
	return rep, nil
}

// Diagnose evaluates a symptom questionnaire.
func (s *Service) Diagnose(ctx context.Context, in diagnose.Input) (*DiagnosisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := diagnose.Diagnose(in)
	s.logger.Info("plant diagnosed", "plant", in.PlantName, "symptoms", in.SymptomCount(), "status", res.Status, "action_required", res.ActionRequired)

	rep := &DiagnosisReport{Result: res}
	if s.store == nil {
		return rep, nil
	}
	id, err := s.store.SaveDiagnosis(&in, res)
	if err != nil {
		s.logger.Error("save diagnosis failed", "plant", in.PlantName, "error", err)
		return nil, fmt.Errorf("save diagnosis: %w", err)
	}
	rep.RecordID = id
	return rep, nil
}

// History lists stored records for a plant name, newest first.
func (s *Service) History(ctx context.Context, plantName string) ([]*store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrNoStore
	}
	recs, err := s.store.History(plantName)
	if err != nil {
		return nil, fmt.Errorf("history %q: %w", plantName, err)
	}
	return recs, nil
}
