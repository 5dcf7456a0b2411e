package gemini

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"staffing-backend/internal/llm"
)

const analyzeInstruction = `You are reviewing the resume of %s, provided as page images%s.
Extract a concise professional summary, a list of skills, and the total years of professional experience.
Respond with a single JSON object with exactly these fields:
"summary" (string), "skills" (array of strings), "experienceYears" (number).`

const rankInstruction = `You are ranking employees by overall qualification.
Here is the roster as JSON:
%s
Assign each employee a rank from 1 to 100 where 100 is the most qualified, with a short justification.
Respond with a JSON array containing one object per employee with exactly these fields:
"id" (string, copied from the input), "rank" (integer), "justification" (string).`

const distributeInstruction = `You are distributing today's tasks across a ranked team.
Here is the ranked roster as JSON:
%s
Here is the task list as JSON:
%s
Assign every task to exactly one employee, balancing fairness and efficiency: stronger or better-matched employees take the harder tasks, but nobody is left idle while others are overloaded.
Respond with a JSON array of objects with exactly these fields:
"employeeId" (string, copied from the roster) and "tasks" (array of task strings).`

var analysisSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":         {Type: genai.TypeString},
		"skills":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"experienceYears": {Type: genai.TypeNumber},
	},
	Required: []string{"summary", "skills", "experienceYears"},
}

var rankingSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"id":            {Type: genai.TypeString},
			"rank":          {Type: genai.TypeInteger},
			"justification": {Type: genai.TypeString},
		},
		Required: []string{"id", "rank", "justification"},
	},
}

var distributionSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"employeeId": {Type: genai.TypeString},
			"tasks":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"employeeId", "tasks"},
	},
}

func buildAnalyzePrompt(input llm.AnalyzeInput) string {
	textNote := ""
	if strings.TrimSpace(input.ResumeText) != "" {
		textNote = fmt.Sprintf(", with this machine-extracted text as additional context:\n%s\n", input.ResumeText)
	}
	return fmt.Sprintf(analyzeInstruction, input.Name, textNote)
}

func buildRankPrompt(input llm.RankInput) (string, error) {
	rosterJSON, err := json.Marshal(input.Roster)
	if err != nil {
		return "", fmt.Errorf("marshal roster: %w", err)
	}
	return fmt.Sprintf(rankInstruction, rosterJSON), nil
}

func buildDistributePrompt(input llm.DistributeInput) (string, error) {
	rosterJSON, err := json.Marshal(input.Roster)
	if err != nil {
		return "", fmt.Errorf("marshal roster: %w", err)
	}
	tasksJSON, err := json.Marshal(input.Tasks)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return fmt.Sprintf(distributeInstruction, rosterJSON, tasksJSON), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON output.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
