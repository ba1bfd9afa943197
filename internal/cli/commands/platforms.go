package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"genftype/internal/platform"
)

func newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the platform profiles a table can be built for",
		Long: `List the platform profiles a table can be built for.

TYPES shows the mnemonics of the file types the platform defines, in the
order they are assigned to the table.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := newTableWriter("name", "mask", "types", "description")
			tbl.AppendRow(platformRow(platform.Host()))
			for _, name := range platform.Names() {
				p, err := platform.Builtin(name)
				if err != nil {
					return err
				}
				tbl.AppendRow(platformRow(p))
			}
			return renderTable(cmd.OutOrStdout(), tbl)
		},
	}
}

func platformRow(p *platform.Platform) table.Row {
	var types []byte
	for _, a := range p.Assignments() {
		types = append(types, a.Mnemonic)
	}
	return table.Row{p.Name, fmt.Sprintf("0x%x", p.Mask), string(types), p.Description}
}
