package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChainCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "chain [THEME]",
		Short: "Print the themes searched for THEME, in order",
		Long: `Print the themes searched for THEME, in order. Parents that are not
installed are left out and hicolor always comes last. Without THEME the
configured or desktop theme is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := r.config.Theme
			if len(args) == 1 {
				theme = args[0]
			}
			if theme == "" {
				theme, _ = detectTheme(cmd.Context(), r.finder)
			}
			for _, id := range r.finder.Chain(theme) {
				fmt.Fprintln(r.stdout, id)
			}
			return nil
		},
	}
}
