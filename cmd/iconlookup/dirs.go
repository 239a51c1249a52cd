package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDirsCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs",
		Short: "Print the icon base directories, highest priority first",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, d := range r.finder.BaseDirs() {
				fmt.Fprintln(r.stdout, d)
			}
			return nil
		},
	}
}
