package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffing-backend/internal/llm"
)

func TestBuildAnalyzePromptMentionsNameAndText(t *testing.T) {
	prompt := buildAnalyzePrompt(llm.AnalyzeInput{Name: "Al", ResumeText: "Go engineer since 2019"})
	assert.Contains(t, prompt, "Al")
	assert.Contains(t, prompt, "Go engineer since 2019")
	assert.Contains(t, prompt, `"experienceYears"`)
}

func TestBuildAnalyzePromptWithoutText(t *testing.T) {
	prompt := buildAnalyzePrompt(llm.AnalyzeInput{Name: "Bea"})
	assert.Contains(t, prompt, "Bea")
	assert.NotContains(t, prompt, "machine-extracted text")
}

func TestBuildRankPromptEmbedsRosterJSON(t *testing.T) {
	prompt, err := buildRankPrompt(llm.RankInput{Roster: []llm.RosterEntry{
		{ID: "a", Name: "Al", Summary: "builds services", Skills: []string{"Go"}, ExperienceYears: 5},
	}})
	require.NoError(t, err)
	assert.Contains(t, prompt, `"id":"a"`)
	assert.Contains(t, prompt, `"experienceYears":5`)
	assert.Contains(t, prompt, "1 to 100")
}

func TestBuildDistributePromptEmbedsRosterAndTasks(t *testing.T) {
	prompt, err := buildDistributePrompt(llm.DistributeInput{
		Roster: []llm.RankedEntry{{ID: "a", Name: "Al", Rank: 80, Skills: []string{"Go"}}},
		Tasks:  []string{"Write report", "Fix bug"},
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, `"rank":80`)
	assert.Contains(t, prompt, "Write report")
	assert.Contains(t, prompt, "Fix bug")
	assert.Contains(t, prompt, `"employeeId"`)
}

func TestCleanJSONBlock(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n[1,2]\n```":                `[1,2]`,
		"  \n```json\n{\"a\":1}\n```  ":  `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanJSONBlock(in))
	}
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "jpeg", imageFormat("image/jpeg"))
	assert.Equal(t, "png", imageFormat(" IMAGE/PNG "))
}

func TestSchemasRequireAllFields(t *testing.T) {
	assert.ElementsMatch(t, []string{"summary", "skills", "experienceYears"}, analysisSchema.Required)
	assert.ElementsMatch(t, []string{"id", "rank", "justification"}, rankingSchema.Items.Required)
	assert.ElementsMatch(t, []string{"employeeId", "tasks"}, distributionSchema.Items.Required)
}
