package scoring

// PointsPerCheck is the score contribution of each passed check.
const PointsPerCheck = 20

// MaxConfidence is the score of a record that passes every check.
const MaxConfidence = 100

// Result is the outcome of validating one record.
type Result struct {
	Confidence      int      `json:"confidence"`
	Issues          []string `json:"issues"`
	ExecutionTimeMs float64  `json:"executionTimeMs"`
}

// Passed reports whether every check passed.
func (r Result) Passed() bool {
	return r.Confidence == MaxConfidence
}
