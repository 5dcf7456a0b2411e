package employees

import "staffing-backend/internal/roster"

type employeeResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Summary         string   `json:"summary"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experienceYears"`
	Status          string   `json:"status"`
	Rank            *int     `json:"rank,omitempty"`
	Justification   string   `json:"justification,omitempty"`
}

type snapshotResponse struct {
	Version     uint64               `json:"version"`
	Ranked      bool                 `json:"ranked"`
	Employees   []employeeResponse   `json:"employees"`
	Assignments []assignmentResponse `json:"assignments,omitempty"`
}

type assignmentResponse struct {
	EmployeeID string   `json:"employeeId"`
	Tasks      []string `json:"tasks"`
}

func toEmployeeResponse(emp roster.Employee) employeeResponse {
	out := employeeResponse{
		ID:              emp.ID,
		Name:            emp.Name,
		Summary:         emp.Summary,
		Skills:          emp.Skills,
		ExperienceYears: emp.ExperienceYears,
		Status:          string(emp.Status),
	}
	if emp.Status == roster.StatusRanked {
		rank := emp.Rank
		out.Rank = &rank
		out.Justification = emp.Justification
	}
	return out
}

// ToSnapshotResponse converts a roster snapshot to its wire form. Shared
// by the employees, rankings and assignments handlers.
func ToSnapshotResponse(snap roster.Snapshot) any {
	out := snapshotResponse{
		Version:   snap.Version,
		Ranked:    snap.Ranked,
		Employees: make([]employeeResponse, 0, len(snap.Employees)),
	}
	for _, emp := range snap.Employees {
		out.Employees = append(out.Employees, toEmployeeResponse(emp))
	}
	for _, asg := range snap.Assignments {
		out.Assignments = append(out.Assignments, assignmentResponse{
			EmployeeID: asg.EmployeeID,
			Tasks:      asg.Tasks,
		})
	}
	return out
}
