package bench

import "fmt"

// Table holds the results of benchmarking every (procedure, configuration)
// pair. Rows are configurations, columns are procedures. Cells default to
// zero, which means "not yet run" or "invalid combination"; RunAll writes
// each cell exactly once and the table is read-only afterwards.
type Table struct {
	configs []Config
	procs   []Procedure

	// Per-cell grids, all m x n where m = len(configs), n = len(procs).
	// Problem lengths are computed eagerly at construction since a length
	// may depend on both the procedure and the configuration.
	plens   [][]int
	nruns   [][]int
	elapsed [][]float64
}

// Entry is an immutable view of a single table cell.
type Entry struct {
	// ProblemLength is the size metric of the cell, from
	// Procedure.ProblemLength.
	ProblemLength int
	// Runs is the number of timed Execute repetitions. Zero marks a skipped
	// or not-yet-run cell.
	Runs int
	// Elapsed is the wall-clock duration of the whole timed batch in
	// seconds.
	Elapsed float64
}

// NewTable allocates a table for the given configurations and procedures and
// eagerly computes the problem-length grid. Problem lengths are computed for
// every cell, including combinations a procedure later reports as invalid;
// ProblemLength is expected to be safe for any configuration handed to the
// harness.
func NewTable(configs []Config, procs []Procedure) *Table {
	m, n := len(configs), len(procs)
	t := &Table{
		configs: configs,
		procs:   procs,
		plens:   make([][]int, m),
		nruns:   make([][]int, m),
		elapsed: make([][]float64, m),
	}

	for i, cfg := range configs {
		t.plens[i] = make([]int, n)
		t.nruns[i] = make([]int, n)
		t.elapsed[i] = make([]float64, n)
		for j, proc := range procs {
			t.plens[i][j] = proc.ProblemLength(cfg)
		}
	}

	return t
}

// Size returns the table dimensions: number of configurations and number of
// procedures.
func (t *Table) Size() (m, n int) {
	return len(t.configs), len(t.procs)
}

// Configs returns the ordered configurations.
func (t *Table) Configs() []Config {
	return t.configs
}

// Procedures returns the ordered procedures.
func (t *Table) Procedures() []Procedure {
	return t.procs
}

// EntryAt returns the cell view for configuration i and procedure j. It
// panics when the indices are out of range.
func (t *Table) EntryAt(i, j int) Entry {
	t.checkBounds(i, j)
	return Entry{
		ProblemLength: t.plens[i][j],
		Runs:          t.nruns[i][j],
		Elapsed:       t.elapsed[i][j],
	}
}

// setCell records the measurement result of a single cell.
func (t *Table) setCell(i, j, runs int, elapsed float64) {
	t.checkBounds(i, j)
	t.nruns[i][j] = runs
	t.elapsed[i][j] = elapsed
}

func (t *Table) checkBounds(i, j int) {
	m, n := t.Size()
	if i < 0 || i >= m || j < 0 || j >= n {
		panic(fmt.Sprintf("benchmark table index (%d, %d) out of range for %dx%d table", i, j, m, n))
	}
}
