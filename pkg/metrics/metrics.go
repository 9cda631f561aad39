package metrics

import (
	"github.com/lindahua/benchlite/pkg/bench"
)

// Tags contains values which identify a single benchmark cell within a run.
// NOTE: for further encoding (e.g. with a JSON marshaler) fields here must
// be exported.
type Tags struct {
	RunID         string
	Procedure     string
	Configuration string
}

// Compare compares the current instance of Tags with another one.
func (t *Tags) Compare(tags Tags) bool {
	if t.RunID != tags.RunID {
		return false
	}
	if t.Procedure != tags.Procedure {
		return false
	}
	if t.Configuration != tags.Configuration {
		return false
	}

	return true
}

// Result is a single measured benchmark cell ready for upload.
type Result struct {
	Tags Tags

	ProblemLength  int
	Runs           int
	ElapsedSeconds float64
}

// SecondsPerOp returns the average duration of a single execution. It is
// NaN for skipped cells.
func (r Result) SecondsPerOp() float64 {
	return r.ElapsedSeconds / float64(r.Runs)
}

// New is a constructor for the Result structure.
func New(tags Tags, problemLength, runs int, elapsedSeconds float64) *Result {
	return &Result{
		Tags:           tags,
		ProblemLength:  problemLength,
		Runs:           runs,
		ElapsedSeconds: elapsedSeconds,
	}
}

// FromTable flattens a finished benchmark table into result payloads tagged
// with the given run id, in procedure-major order.
func FromTable(runID string, table *bench.Table) []Result {
	m, n := table.Size()
	results := make([]Result, 0, m*n)

	for j := 0; j < n; j++ {
		proc := table.Procedures()[j]
		for i := 0; i < m; i++ {
			cfg := table.Configs()[i]
			entry := table.EntryAt(i, j)
			results = append(results, Result{
				Tags: Tags{
					RunID:         runID,
					Procedure:     proc.Name(),
					Configuration: cfg.Name(),
				},
				ProblemLength:  entry.ProblemLength,
				Runs:           entry.Runs,
				ElapsedSeconds: entry.Elapsed,
			})
		}
	}

	return results
}
