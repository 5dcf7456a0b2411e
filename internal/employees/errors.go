package employees

import "errors"

// ErrAnalysisFailed wraps any transport or schema-parse failure from
// the resume analysis call.
var ErrAnalysisFailed = errors.New("resume analysis failed")
