package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTableWriter returns a table with spaces as the only separators so the
// output is easy to parse from scripts.
func newTableWriter(columns ...string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.Style{
		Box: table.BoxStyle{
			PaddingRight:  "  ",
			PageSeparator: "\n",
		},
		Format: table.FormatOptions{
			Header: text.FormatUpper,
		},
	})

	header := table.Row{}
	colCfg := []table.ColumnConfig{}
	for i, c := range columns {
		header = append(header, c)
		colCfg = append(colCfg, table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft})
	}
	tbl.AppendHeader(header)
	tbl.SetColumnConfigs(colCfg)
	return tbl
}

func renderTable(w io.Writer, tbl table.Writer) error {
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
