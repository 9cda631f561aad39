package visualization

import (
	"fmt"

	"github.com/lindahua/benchlite/pkg/bench"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// NewBenchmarkTable builds the view model of a finished benchmark table
// under the given reporting unit: procedure names as headers behind the
// corner label, one row per configuration, cells formatted with 4 decimal
// places.
func NewBenchmarkTable(table *bench.Table, unit bench.Unit, cornerLabel string) *Table {
	m, n := table.Size()

	headers := make([]string, n+1)
	headers[0] = cornerLabel
	for j, proc := range table.Procedures() {
		headers[j+1] = proc.Name()
	}

	data := make([][]string, m)
	for i, cfg := range table.Configs() {
		row := make([]string, n+1)
		row[0] = cfg.Name()
		for j := 0; j < n; j++ {
			row[j+1] = fmt.Sprintf("%.4f", unit.Convert(table.EntryAt(i, j)))
		}
		data[i] = row
	}

	return NewTable(headers, data)
}

// RunMetadata encodes the metadata which is related to a benchmark run.
// This currently only contains the run id, but is intended to encode the
// run environment (hardware and software configuration) as well.
type RunMetadata struct {
	runID string
}

// NewRunMetadata is the RunMetadata constructor and returns a new
// RunMetadata with a specific id.
func NewRunMetadata(ID string) *RunMetadata {
	return &RunMetadata{
		ID,
	}
}

// String returns a printable string with all run metadata.
// This is currently only the run id.
func (metadata *RunMetadata) String() string {
	return "Benchmark run id: " + metadata.runID
}
