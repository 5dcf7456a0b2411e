package rankings

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

// Service runs the ranking pipeline: snapshot, rank remotely, merge,
// apply under the captured roster version.
type Service struct {
	Repo roster.Repo
	LLM  llm.Client
}

// RankRoster ranks the session's current roster. The roster version is
// captured before the remote call; if the roster mutates while the call
// is in flight the result is discarded with roster.ErrStaleRoster and
// the previous ranked state stays untouched.
func (s *Service) RankRoster(ctx context.Context, sessionID string) (roster.Snapshot, error) {
	snap, err := s.Repo.Snapshot(ctx, sessionID)
	if err != nil {
		return roster.Snapshot{}, err
	}
	if len(snap.Employees) == 0 {
		return roster.Snapshot{}, roster.ErrEmptyRoster
	}

	startedAt := time.Now()
	metrics.IncStarted(metrics.OpRank)

	raw, err := s.LLM.RankRoster(ctx, llm.RankInput{Roster: toRosterEntries(snap.Employees)})
	if err != nil {
		metrics.IncFailed(metrics.OpRank)
		return roster.Snapshot{}, fmt.Errorf("%w: %v", ErrRankingFailed, err)
	}

	var results []roster.RankResult
	if err := json.Unmarshal(raw, &results); err != nil {
		metrics.IncFailed(metrics.OpRank)
		return roster.Snapshot{}, fmt.Errorf("%w: parse output: %v", ErrRankingFailed, err)
	}

	ranked := roster.MergeRanking(snap.Employees, results)

	applied, err := s.Repo.ApplyRanking(ctx, sessionID, snap.Version, ranked)
	if err != nil {
		metrics.IncFailed(metrics.OpRank)
		return roster.Snapshot{}, err
	}

	metrics.IncCompleted(metrics.OpRank)
	metrics.ObserveDurationMs(metrics.OpRank, float64(time.Since(startedAt).Microseconds())/1000.0)
	telemetry.Info("rank.completed", map[string]any{
		"session_id":     sessionID,
		"roster_version": applied.Version,
		"roster_size":    len(applied.Employees),
	})

	return applied, nil
}

func toRosterEntries(employees []roster.Employee) []llm.RosterEntry {
	out := make([]llm.RosterEntry, len(employees))
	for i, emp := range employees {
		out[i] = llm.RosterEntry{
			ID:              emp.ID,
			Name:            emp.Name,
			Summary:         emp.Summary,
			Skills:          emp.Skills,
			ExperienceYears: emp.ExperienceYears,
		}
	}
	return out
}
