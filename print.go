package pointplot

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Print writes a human readable rendition of t to w.
func (t *Table) Print(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	tw.SetHeader(append([]string{"#"}, t.columns...))

	for i, r := range t.rows {
		line := make([]string, t.Arity()+1)
		line[0] = strconv.Itoa(i + 1)
		for j, v := range r {
			line[j+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		tw.Append(line)
	}
	tw.Render()
}
