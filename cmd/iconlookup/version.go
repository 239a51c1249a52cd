package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skip config loading so a broken config cannot hide the version.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprintf(r.stdout, "iconlookup version %s\n", version)
			if commit != "" {
				fmt.Fprintf(r.stdout, "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(r.stdout, "built: %s\n", date)
			}
			return nil
		},
	}
}
