package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Render writes the table as column-aligned text. The header row holds the
// corner label followed by the procedure names; each body row holds a
// configuration name followed by the cell values converted to the given unit
// and formatted with 4 decimal places. The label column is left-justified,
// data columns are right-justified, and a dash divider sized to the rendered
// width separates the header from the body.
//
// The conventional corner label is "config".
func Render(w io.Writer, t *Table, unit Unit, cornerLabel string) error {
	if !unit.valid() {
		return errors.Errorf("rendering with invalid benchmark unit %d", int(unit))
	}

	m, n := t.Size()

	// Build the full grid of strings first so column widths can be computed
	// over header and body together.
	grid := make([][]string, m+1)
	grid[0] = make([]string, n+1)
	grid[0][0] = cornerLabel
	for j, proc := range t.Procedures() {
		grid[0][j+1] = proc.Name()
	}
	for i, cfg := range t.Configs() {
		row := make([]string, n+1)
		row[0] = cfg.Name()
		for j := 0; j < n; j++ {
			row[j+1] = fmt.Sprintf("%.4f", unit.Convert(t.EntryAt(i, j)))
		}
		grid[i+1] = row
	}

	widths := make([]int, n+1)
	for _, row := range grid {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}

	// Rendered width: all columns plus one separating space between each.
	total := n
	for _, width := range widths {
		total += width
	}

	for r, row := range grid {
		line := make([]string, n+1)
		line[0] = row[0] + strings.Repeat(" ", widths[0]-len(row[0]))
		for c := 1; c <= n; c++ {
			line[c] = strings.Repeat(" ", widths[c]-len(row[c])) + row[c]
		}
		if _, err := fmt.Fprintln(w, strings.Join(line, " ")); err != nil {
			return errors.Wrap(err, "writing benchmark table failed")
		}
		if r == 0 {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
				return errors.Wrap(err, "writing benchmark table failed")
			}
		}
	}

	return nil
}
