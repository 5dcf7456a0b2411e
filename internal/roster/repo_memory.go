package roster

import (
	"context"
	"sync"
)

// MemoryRepo is the in-memory implementation of Repo, keyed by session.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]*sessionState
}

type sessionState struct {
	version     uint64
	employees   []Employee
	ranked      bool
	assignments []Assignment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]*sessionState),
	}
}

// Snapshot returns a copy of the session's current state.
func (r *MemoryRepo) Snapshot(ctx context.Context, sessionID string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.data[sessionID]
	if !ok {
		return Snapshot{Employees: []Employee{}}, nil
	}
	return state.snapshot(), nil
}

// AddEmployee appends an analyzed employee and invalidates derived state.
func (r *MemoryRepo) AddEmployee(ctx context.Context, sessionID string, emp Employee) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.data[sessionID]
	if !ok {
		state = &sessionState{}
		r.data[sessionID] = state
	}

	// The analyzed-only roster is stale relative to any previous rank, so
	// ranking and assignments are discarded together with the version bump.
	for i := range state.employees {
		state.employees[i].Status = StatusAnalyzed
		state.employees[i].Rank = 0
		state.employees[i].Justification = ""
	}
	state.employees = append(state.employees, emp)
	state.ranked = false
	state.assignments = nil
	state.version++

	return state.snapshot(), nil
}

// ApplyRanking replaces the roster with its ranked form if the version still matches.
func (r *MemoryRepo) ApplyRanking(ctx context.Context, sessionID string, version uint64, ranked []Employee) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.data[sessionID]
	if !ok || state.version != version {
		return Snapshot{}, ErrStaleRoster
	}

	state.employees = append([]Employee(nil), ranked...)
	state.ranked = true
	state.assignments = nil

	return state.snapshot(), nil
}

// ApplyAssignments stores the distribution result against a ranked roster.
func (r *MemoryRepo) ApplyAssignments(ctx context.Context, sessionID string, version uint64, assignments []Assignment) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.data[sessionID]
	if !ok || state.version != version {
		return Snapshot{}, ErrStaleRoster
	}
	if !state.ranked {
		return Snapshot{}, ErrNotRanked
	}

	state.assignments = append([]Assignment(nil), assignments...)

	return state.snapshot(), nil
}

func (s *sessionState) snapshot() Snapshot {
	out := Snapshot{
		Version:   s.version,
		Employees: make([]Employee, len(s.employees)),
		Ranked:    s.ranked,
	}
	copy(out.Employees, s.employees)
	if len(s.assignments) > 0 {
		out.Assignments = append([]Assignment(nil), s.assignments...)
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
