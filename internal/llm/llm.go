package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Client abstracts the external model service. Each method is a
// single-shot request: no retry, no streaming. Implementations return
// the model's raw JSON text; callers own schema parsing.
type Client interface {
	AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error)
	RankRoster(ctx context.Context, input RankInput) (json.RawMessage, error)
	DistributeTasks(ctx context.Context, input DistributeInput) (json.RawMessage, error)
}

// Page is one rasterized resume page sent inline with the analysis request.
type Page struct {
	MIMEType string
	Data     []byte
}

// AnalyzeInput captures the inputs for one resume analysis. ResumeText
// is optional supplementary plain text extracted from the PDF.
type AnalyzeInput struct {
	Name       string
	Pages      []Page
	ResumeText string
}

// RosterEntry is the reduced employee record sent with ranking requests.
type RosterEntry struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Summary         string   `json:"summary"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experienceYears"`
}

// RankInput captures the inputs for one ranking call.
type RankInput struct {
	Roster []RosterEntry
}

// RankedEntry is the reduced ranked record sent with distribution requests.
type RankedEntry struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Rank   int      `json:"rank"`
	Skills []string `json:"skills"`
}

// DistributeInput captures the inputs for one task distribution call.
type DistributeInput struct {
	Roster []RankedEntry
	Tasks  []string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation for builds without a provider.
type PlaceholderClient struct{}

// AnalyzeResume returns ErrNotConfigured.
func (PlaceholderClient) AnalyzeResume(ctx context.Context, input AnalyzeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}

// RankRoster returns ErrNotConfigured.
func (PlaceholderClient) RankRoster(ctx context.Context, input RankInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}

// DistributeTasks returns ErrNotConfigured.
func (PlaceholderClient) DistributeTasks(ctx context.Context, input DistributeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, ErrNotConfigured
}
