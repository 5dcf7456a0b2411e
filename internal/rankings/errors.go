package rankings

import "errors"

// ErrRankingFailed wraps any transport or schema-parse failure from
// the ranking call.
var ErrRankingFailed = errors.New("roster ranking failed")
