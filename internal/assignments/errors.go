package assignments

import "errors"

// ErrDistributionFailed wraps any transport or schema-parse failure
// from the task distribution call.
var ErrDistributionFailed = errors.New("task distribution failed")
