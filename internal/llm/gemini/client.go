package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"staffing-backend/internal/llm"
	"staffing-backend/internal/shared/telemetry"
)

// Client implements llm.Client against the Gemini API. Analysis and
// ranking use the fast (lower-latency) model; task distribution uses
// the deep (higher-capability) one. The tiering is a cost/quality
// policy, not a technical requirement.
type Client struct {
	client    *genai.Client
	fastModel string
	deepModel string
}

// NewClient constructs a Gemini-backed client.
func NewClient(ctx context.Context, apiKey, fastModel, deepModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if strings.TrimSpace(fastModel) == "" || strings.TrimSpace(deepModel) == "" {
		return nil, fmt.Errorf("gemini model names are required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client:    client,
		fastModel: fastModel,
		deepModel: deepModel,
	}, nil
}

// AnalyzeResume sends the rasterized resume pages for structured extraction.
func (c *Client) AnalyzeResume(ctx context.Context, input llm.AnalyzeInput) (json.RawMessage, error) {
	parts := make([]genai.Part, 0, len(input.Pages)+1)
	parts = append(parts, genai.Text(buildAnalyzePrompt(input)))
	for _, page := range input.Pages {
		parts = append(parts, genai.ImageData(imageFormat(page.MIMEType), page.Data))
	}
	return c.generateJSON(ctx, c.fastModel, analysisSchema, parts...)
}

// RankRoster requests a rank and justification per roster entry.
func (c *Client) RankRoster(ctx context.Context, input llm.RankInput) (json.RawMessage, error) {
	prompt, err := buildRankPrompt(input)
	if err != nil {
		return nil, err
	}
	return c.generateJSON(ctx, c.fastModel, rankingSchema, genai.Text(prompt))
}

// DistributeTasks requests an employee-to-tasks mapping for the task list.
func (c *Client) DistributeTasks(ctx context.Context, input llm.DistributeInput) (json.RawMessage, error) {
	prompt, err := buildDistributePrompt(input)
	if err != nil {
		return nil, err
	}
	return c.generateJSON(ctx, c.deepModel, distributionSchema, genai.Text(prompt))
}

// Close releases the underlying API client.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *Client) generateJSON(ctx context.Context, modelName string, schema *genai.Schema, parts ...genai.Part) (json.RawMessage, error) {
	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	logUsage(modelName, resp.UsageMetadata)

	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(cleanJSONBlock(text)), nil
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini response missing candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response empty content")
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini response has no text parts")
	}
	return b.String(), nil
}

// imageFormat maps a MIME type like "image/jpeg" to the bare format
// name genai.ImageData expects.
func imageFormat(mimeType string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(mimeType)), "image/")
}

func logUsage(model string, usage *genai.UsageMetadata) {
	if usage == nil {
		telemetry.Info("llm.response", map[string]any{"model": model})
		return
	}
	telemetry.Info("llm.response", map[string]any{
		"model":             model,
		"prompt_tokens":     usage.PromptTokenCount,
		"completion_tokens": usage.CandidatesTokenCount,
		"total_tokens":      usage.TotalTokenCount,
	})
}

var _ llm.Client = (*Client)(nil)
