package roster

import "sort"

// DefaultJustification is substituted for roster entries the model's
// ranking response omitted.
const DefaultJustification = "Not ranked"

// MergeRanking merges a ranking response onto a roster. It is total:
// every input employee appears exactly once in the output. Each entry
// takes the first response record matching its id; unmatched entries
// get rank 0 and the default justification. The result is sorted by
// rank descending, stable relative to input order for ties.
func MergeRanking(employees []Employee, results []RankResult) []Employee {
	merged := make([]Employee, len(employees))
	for i, emp := range employees {
		emp.Status = StatusRanked
		emp.Rank = 0
		emp.Justification = DefaultJustification
		for _, res := range results {
			if res.ID == emp.ID {
				emp.Rank = res.Rank
				emp.Justification = res.Justification
				break
			}
		}
		merged[i] = emp
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Rank > merged[j].Rank
	})
	return merged
}
