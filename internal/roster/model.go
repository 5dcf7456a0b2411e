package roster

// Status discriminates the two employee record variants. An employee is
// analyzed when the resume extraction completed and ranked once a
// ranking pass has merged a rank onto it.
type Status string

const (
	StatusAnalyzed Status = "analyzed"
	StatusRanked   Status = "ranked"
)

// Employee is one roster entry. Rank and Justification are meaningful
// only when Status is StatusRanked; rank 0 marks an entry the model
// omitted from its ranking response.
type Employee struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Summary         string   `json:"summary"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experienceYears"`
	Status          Status   `json:"status"`
	Rank            int      `json:"rank,omitempty"`
	Justification   string   `json:"justification,omitempty"`
}

// Assignment maps one employee to the tasks the model gave them.
type Assignment struct {
	EmployeeID string   `json:"employeeId"`
	Tasks      []string `json:"tasks"`
}

// Snapshot is a versioned copy of one session's state. The version
// advances on every roster mutation; remote-call results captured
// against an older version are rejected at apply time.
type Snapshot struct {
	Version     uint64       `json:"version"`
	Employees   []Employee   `json:"employees"`
	Ranked      bool         `json:"ranked"`
	Assignments []Assignment `json:"assignments,omitempty"`
}

// RankResult is one entry of the model's ranking response.
type RankResult struct {
	ID            string `json:"id"`
	Rank          int    `json:"rank"`
	Justification string `json:"justification"`
}
