package roster

import "context"

// Repo stores per-session roster state. Every mutation returns the
// resulting snapshot so callers never observe intermediate state.
type Repo interface {
	// Snapshot returns a copy of the session's current state. An unknown
	// session yields an empty version-zero snapshot.
	Snapshot(ctx context.Context, sessionID string) (Snapshot, error)

	// AddEmployee appends an analyzed employee, discards any ranking and
	// assignments, and advances the roster version.
	AddEmployee(ctx context.Context, sessionID string, emp Employee) (Snapshot, error)

	// ApplyRanking replaces the roster with its ranked form. The version
	// must match the session's current version or ErrStaleRoster is
	// returned and nothing changes.
	ApplyRanking(ctx context.Context, sessionID string, version uint64, ranked []Employee) (Snapshot, error)

	// ApplyAssignments stores the distribution result. Requires a ranked
	// roster at the same version; fails with ErrStaleRoster or
	// ErrNotRanked otherwise, changing nothing.
	ApplyAssignments(ctx context.Context, sessionID string, version uint64, assignments []Assignment) (Snapshot, error)
}
