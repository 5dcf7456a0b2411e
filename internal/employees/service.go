package employees

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"staffing-backend/internal/extract"
	"staffing-backend/internal/llm"
	"staffing-backend/internal/render"
	"staffing-backend/internal/roster"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/telemetry"
)

// PageRenderer rasterizes a PDF into ordered page images.
type PageRenderer interface {
	RenderPages(ctx context.Context, data []byte) ([]render.PageImage, error)
}

// Service runs the add-employee pipeline: rasterize, analyze, append.
type Service struct {
	Repo     roster.Repo
	LLM      llm.Client
	Renderer PageRenderer
}

type analysisResult struct {
	Summary         *string   `json:"summary"`
	Skills          *[]string `json:"skills"`
	ExperienceYears *float64  `json:"experienceYears"`
}

// AddEmployee analyzes one resume and appends the result to the
// session roster, discarding any existing ranking and assignments.
func (s *Service) AddEmployee(ctx context.Context, sessionID, name string, pdfData []byte) (roster.Snapshot, roster.Employee, error) {
	if s.Renderer == nil {
		return roster.Snapshot{}, roster.Employee{}, render.ErrUnavailable
	}

	startedAt := time.Now()
	metrics.IncStarted(metrics.OpAnalyze)

	pages, err := s.Renderer.RenderPages(ctx, pdfData)
	if err != nil {
		metrics.IncFailed(metrics.OpAnalyze)
		return roster.Snapshot{}, roster.Employee{}, err
	}
	metrics.AddPagesRendered(len(pages))

	// Plain text is a best-effort supplement; the page images carry the request.
	resumeText, err := extract.TextFromPDF(pdfData)
	if err != nil {
		telemetry.Warn("analyze.text_extraction_skipped", map[string]any{
			"session_id": sessionID,
			"err":        err.Error(),
		})
		resumeText = ""
	}

	input := llm.AnalyzeInput{
		Name:       name,
		Pages:      toLLMPages(pages),
		ResumeText: resumeText,
	}
	raw, err := s.LLM.AnalyzeResume(ctx, input)
	if err != nil {
		metrics.IncFailed(metrics.OpAnalyze)
		return roster.Snapshot{}, roster.Employee{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	parsed, err := parseAnalysis(raw)
	if err != nil {
		metrics.IncFailed(metrics.OpAnalyze)
		return roster.Snapshot{}, roster.Employee{}, err
	}

	emp := roster.Employee{
		ID:              uuid.NewString(),
		Name:            name,
		Summary:         *parsed.Summary,
		Skills:          *parsed.Skills,
		ExperienceYears: *parsed.ExperienceYears,
		Status:          roster.StatusAnalyzed,
	}

	snap, err := s.Repo.AddEmployee(ctx, sessionID, emp)
	if err != nil {
		metrics.IncFailed(metrics.OpAnalyze)
		return roster.Snapshot{}, roster.Employee{}, err
	}

	metrics.IncCompleted(metrics.OpAnalyze)
	metrics.ObserveDurationMs(metrics.OpAnalyze, float64(time.Since(startedAt).Microseconds())/1000.0)
	telemetry.Info("analyze.completed", map[string]any{
		"session_id":     sessionID,
		"employee_id":    emp.ID,
		"pages":          len(pages),
		"roster_version": snap.Version,
		"roster_size":    len(snap.Employees),
	})

	return snap, emp, nil
}

// Snapshot returns the session's current state.
func (s *Service) Snapshot(ctx context.Context, sessionID string) (roster.Snapshot, error) {
	return s.Repo.Snapshot(ctx, sessionID)
}

func parseAnalysis(raw json.RawMessage) (analysisResult, error) {
	var parsed analysisResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return analysisResult{}, fmt.Errorf("%w: parse output: %v", ErrAnalysisFailed, err)
	}
	if parsed.Summary == nil || parsed.Skills == nil || parsed.ExperienceYears == nil {
		return analysisResult{}, fmt.Errorf("%w: output missing required fields", ErrAnalysisFailed)
	}
	if *parsed.ExperienceYears < 0 {
		return analysisResult{}, fmt.Errorf("%w: experienceYears is negative", ErrAnalysisFailed)
	}
	return parsed, nil
}

func toLLMPages(pages []render.PageImage) []llm.Page {
	out := make([]llm.Page, len(pages))
	for i, p := range pages {
		out[i] = llm.Page{MIMEType: p.MIMEType, Data: p.Data}
	}
	return out
}
