package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"genftype/internal/ftype"
)

func newTableCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the decoding table instead of generating code",
		Long: `Show the decoding table for the selected platform, after translations.

Each row is one table slot: the type field value, the mode bits it stands for,
the mnemonic stored there and the constants that map to it. When two constants
share a slot, the first one listed wrote the mnemonic.

Examples:
  genftype table
  genftype table --platform=solaris --all`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.buildTable()
			if err != nil {
				return err
			}

			constants := make(map[uint32][]string)
			for _, as := range b.platform.Assignments() {
				pos := b.mask.Position(as.Value)
				constants[pos] = append(constants[pos], as.Name)
			}

			tbl := newTableWriter("position", "bits", "mnemonic", "constant")
			for i, mnemonic := range b.table {
				pos := uint32(i)
				names := constants[pos]
				if !all && len(names) == 0 && mnemonic == ftype.Unknown {
					continue
				}
				tbl.AppendRow(table.Row{
					pos,
					fmt.Sprintf("0x%x", pos<<b.mask.Shift),
					fmt.Sprintf("%q", mnemonic),
					strings.Join(names, ", "),
				})
			}
			return renderTable(cmd.OutOrStdout(), tbl)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include slots no file type maps to")
	return cmd
}
