package assignments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staffing-backend/internal/llm"
	"staffing-backend/internal/roster"
	"staffing-backend/internal/shared/metrics"
	"staffing-backend/internal/shared/telemetry"
)

// Service runs the distribution pipeline: snapshot the ranked roster,
// request an assignment from the model, apply under the captured version.
type Service struct {
	Repo roster.Repo
	LLM  llm.Client
}

// DistributeTasks asks the model to assign each task to one employee.
// The partition of tasks is a best-effort contract owned by the model:
// duplicates or unassigned tasks are accepted as-is. Records naming an
// employee that is not on the roster are dropped since nothing could
// render them.
func (s *Service) DistributeTasks(ctx context.Context, sessionID string, tasks []string) (roster.Snapshot, error) {
	snap, err := s.Repo.Snapshot(ctx, sessionID)
	if err != nil {
		return roster.Snapshot{}, err
	}
	if !snap.Ranked {
		return roster.Snapshot{}, roster.ErrNotRanked
	}

	startedAt := time.Now()
	metrics.IncStarted(metrics.OpDistribute)

	input := llm.DistributeInput{Roster: toRankedEntries(snap.Employees), Tasks: tasks}
	raw, err := s.LLM.DistributeTasks(ctx, input)
	if err != nil {
		metrics.IncFailed(metrics.OpDistribute)
		return roster.Snapshot{}, fmt.Errorf("%w: %v", ErrDistributionFailed, err)
	}

	var parsed []roster.Assignment
	if err := json.Unmarshal(raw, &parsed); err != nil {
		metrics.IncFailed(metrics.OpDistribute)
		return roster.Snapshot{}, fmt.Errorf("%w: parse output: %v", ErrDistributionFailed, err)
	}

	known := make(map[string]struct{}, len(snap.Employees))
	for _, emp := range snap.Employees {
		known[emp.ID] = struct{}{}
	}
	kept := make([]roster.Assignment, 0, len(parsed))
	for _, asg := range parsed {
		if _, ok := known[asg.EmployeeID]; !ok {
			telemetry.Warn("distribute.unknown_employee_dropped", map[string]any{
				"session_id":  sessionID,
				"employee_id": asg.EmployeeID,
			})
			continue
		}
		kept = append(kept, asg)
	}

	applied, err := s.Repo.ApplyAssignments(ctx, sessionID, snap.Version, kept)
	if err != nil {
		metrics.IncFailed(metrics.OpDistribute)
		return roster.Snapshot{}, err
	}

	metrics.IncCompleted(metrics.OpDistribute)
	metrics.ObserveDurationMs(metrics.OpDistribute, float64(time.Since(startedAt).Microseconds())/1000.0)
	telemetry.Info("distribute.completed", map[string]any{
		"session_id":     sessionID,
		"roster_version": applied.Version,
		"tasks":          len(tasks),
		"assignments":    len(applied.Assignments),
	})

	return applied, nil
}

func toRankedEntries(employees []roster.Employee) []llm.RankedEntry {
	out := make([]llm.RankedEntry, len(employees))
	for i, emp := range employees {
		out[i] = llm.RankedEntry{
			ID:     emp.ID,
			Name:   emp.Name,
			Rank:   emp.Rank,
			Skills: emp.Skills,
		}
	}
	return out
}
