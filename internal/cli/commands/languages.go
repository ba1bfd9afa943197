package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"genftype/internal/emit"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the languages code can be generated for",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, lang := range emit.Languages() {
				fmt.Fprintln(cmd.OutOrStdout(), lang)
			}
			return nil
		},
	}
}

// printLanguages is the hint shown when --language is missing or wrong.
func printLanguages(w io.Writer) {
	fmt.Fprintf(w, "Known programming languages are:\n    %s\n", emit.LanguageNames())
}
