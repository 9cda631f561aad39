package visualization

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// DrawTable draws a model with headers and data rows to the given writer.
func DrawTable(w io.Writer, table *Table) error {
	output := tablewriter.NewWriter(w)
	output.SetHeader(table.headers)
	for _, v := range table.data {
		output.Append(v)
	}
	output.Render()
	return nil
}

// PrintRunMetadata prints the run metadata banner.
func PrintRunMetadata(w io.Writer, metadata *RunMetadata) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, metadata.String())
}
