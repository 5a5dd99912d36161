// Package mcp exposes the plant advisor as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"leafcare/internal/advisor"
	"leafcare/internal/diagnose"
	"leafcare/internal/logging"
)

// Server wraps the MCP SDK server around one advisor Service.
type Server struct {
	MCPServer *sdkmcp.Server

	svc    *advisor.Service
	logger *slog.Logger
}

// NewServer creates an MCP server with the identification, diagnosis and
// catalog tools registered.
func NewServer(svc *advisor.Service, version string) *Server {
	s := &Server{svc: svc, logger: logging.New("mcp")}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "leafcare", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "identify_plant",
		Description: "Identify a plant from a typed name and return its care analysis. Unknown names yield a generic analysis with identified=false.",
	}, s.handleIdentifyPlant)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "identify_image",
		Description: "Identify a plant from an image filename and optional description, then return its care analysis. Low-confidence matches are a guess among the best candidates.",
	}, s.handleIdentifyImage)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "diagnose_plant",
		Description: "Diagnose a plant from a symptom questionnaire. Returns a French narrative, a health status and whether action is required.",
	}, s.handleDiagnosePlant)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_catalog",
		Description: "List the plants the advisor can recognise, with their alternative names.",
	}, s.handleListCatalog)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "plant_history",
		Description: "List stored identifications and diagnoses for a plant name, newest first.",
	}, s.handlePlantHistory)
}

// --- Tool input/output types ---

type identifyPlantInput struct {
	Query string `json:"query" jsonschema:"plant name as typed by the user"`
}

type identifyImageInput struct {
	Filename    string `json:"filename" jsonschema:"original filename of the uploaded image"`
	Description string `json:"description,omitempty" jsonschema:"optional free-text description of the photo"`
}

type diagnosePlantInput struct {
	PlantName       string   `json:"plant_name,omitempty" jsonschema:"name of the plant"`
	PlantSpecies    string   `json:"plant_species,omitempty" jsonschema:"species, if known"`
	LastWatering    string   `json:"last_watering,omitempty" jsonschema:"today, yesterday, few_days, week, more_than_week or dont_remember"`
	Temperature     string   `json:"temperature,omitempty" jsonschema:"very_cold, cold, cool, normal, warm, hot or fluctuating"`
	DirectSunlight  bool     `json:"direct_sunlight,omitempty" jsonschema:"plant gets direct sun"`
	BrightIndirect  bool     `json:"bright_indirect,omitempty" jsonschema:"plant gets bright indirect light"`
	LowLight        bool     `json:"low_light,omitempty" jsonschema:"plant sits in low light"`
	Symptoms        []string `json:"symptoms,omitempty" jsonschema:"any of yellow_leaves, brown_spots, dropping_leaves, dry_leaves, mold_or_fungus, insects, slow_growth, root_issues"`
	AdditionalNotes string   `json:"additional_notes,omitempty" jsonschema:"free-text notes, stored but not used by the rules"`
}

type listCatalogInput struct{}

type catalogPlant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Keywords []string `json:"keywords,omitempty"`
}

type listCatalogOutput struct {
	Plants []catalogPlant `json:"plants"`
	Total  int            `json:"total"`
}

type plantHistoryInput struct {
	PlantName string `json:"plant_name" jsonschema:"plant name, case-insensitive"`
}

type historyRecord struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	PlantName string `json:"plant_name"`
	Query     string `json:"query,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type plantHistoryOutput struct {
	Records []historyRecord `json:"records"`
	Total   int             `json:"total"`
}

// --- Tool handlers ---

func (s *Server) handleIdentifyPlant(ctx context.Context, _ *sdkmcp.CallToolRequest, input identifyPlantInput) (*sdkmcp.CallToolResult, advisor.Report, error) {
	rep, err := s.svc.IdentifyAndAnalyze(ctx, input.Query)
	if err != nil {
		return nil, advisor.Report{}, fmt.Errorf("identify_plant: %w", err)
	}
	return nil, *rep, nil
}

func (s *Server) handleIdentifyImage(ctx context.Context, _ *sdkmcp.CallToolRequest, input identifyImageInput) (*sdkmcp.CallToolResult, advisor.Report, error) {
	if input.Filename == "" && input.Description == "" {
		s.logger.Warn("identify_image rejected: no filename or description")
		return nil, advisor.Report{}, errors.New("filename or description is required")
	}
	rep, err := s.svc.IdentifyFromImageMetadata(ctx, input.Filename, input.Description)
	if err != nil {
		return nil, advisor.Report{}, fmt.Errorf("identify_image: %w", err)
	}
	return nil, *rep, nil
}

func (s *Server) handleDiagnosePlant(ctx context.Context, _ *sdkmcp.CallToolRequest, input diagnosePlantInput) (*sdkmcp.CallToolResult, advisor.DiagnosisReport, error) {
	in, err := input.toInput()
	if err != nil {
		return nil, advisor.DiagnosisReport{}, err
	}
	rep, err := s.svc.Diagnose(ctx, in)
	if err != nil {
		return nil, advisor.DiagnosisReport{}, fmt.Errorf("diagnose_plant: %w", err)
	}
	return nil, *rep, nil
}

func (s *Server) handleListCatalog(_ context.Context, _ *sdkmcp.CallToolRequest, _ listCatalogInput) (*sdkmcp.CallToolResult, listCatalogOutput, error) {
	entries := s.svc.Entries()
	out := listCatalogOutput{Plants: make([]catalogPlant, 0, len(entries)), Total: len(entries)}
	for _, e := range entries {
		out.Plants = append(out.Plants, catalogPlant{
			ID:       e.ID,
			Name:     e.DisplayName,
			Types:    e.CommonTypes,
			Keywords: e.Keywords,
		})
	}
	return nil, out, nil
}

func (s *Server) handlePlantHistory(ctx context.Context, _ *sdkmcp.CallToolRequest, input plantHistoryInput) (*sdkmcp.CallToolResult, plantHistoryOutput, error) {
	recs, err := s.svc.History(ctx, input.PlantName)
	if err != nil {
		return nil, plantHistoryOutput{}, fmt.Errorf("plant_history: %w", err)
	}
	out := plantHistoryOutput{Records: make([]historyRecord, 0, len(recs)), Total: len(recs)}
	for _, r := range recs {
		out.Records = append(out.Records, historyRecord{
			ID:        r.ID,
			Kind:      string(r.Kind),
			PlantName: r.PlantName,
			Query:     r.Query,
			Status:    string(r.Status),
			CreatedAt: r.CreatedAt,
		})
	}
	return nil, out, nil
}

func (d diagnosePlantInput) toInput() (diagnose.Input, error) {
	symptoms, err := diagnose.ParseSymptoms(d.Symptoms)
	if err != nil {
		return diagnose.Input{}, err
	}
	return diagnose.Input{
		PlantName:    d.PlantName,
		PlantSpecies: d.PlantSpecies,
		LastWatering: diagnose.Watering(d.LastWatering),
		Temperature:  diagnose.Temperature(d.Temperature),
		Environment: diagnose.Environment{
			DirectSunlight: d.DirectSunlight,
			BrightIndirect: d.BrightIndirect,
			LowLight:       d.LowLight,
		},
		Symptoms:        symptoms,
		AdditionalNotes: d.AdditionalNotes,
	}, nil
}
