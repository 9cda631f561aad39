package bench

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// CSVHeader is the fixed header line of the CSV export.
const CSVHeader = "proc,cfg,length,nruns,elapsed"

// WriteCSV exports the table as CSV: the fixed header followed by one row
// per (procedure, configuration) pair in procedure-major order. Procedure
// and configuration names are quoted; elapsed time is in seconds.
func WriteCSV(w io.Writer, t *Table) error {
	if _, err := fmt.Fprintln(w, CSVHeader); err != nil {
		return errors.Wrap(err, "writing CSV header failed")
	}

	m, n := t.Size()
	for j := 0; j < n; j++ {
		proc := t.Procedures()[j]
		for i := 0; i < m; i++ {
			cfg := t.Configs()[i]
			e := t.EntryAt(i, j)
			_, err := fmt.Fprintf(w, "%q,%q,%d,%d,%v\n", proc.Name(), cfg.Name(), e.ProblemLength, e.Runs, e.Elapsed)
			if err != nil {
				return errors.Wrap(err, "writing CSV row failed")
			}
		}
	}

	return nil
}
