package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/iconlookup/internal/config"
)

func newConfigCmd(r *root) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Fprint(r.stdout, r.config.String())
			return nil
		},
	})

	var output string
	save := &cobra.Command{
		Use:   "save",
		Short: "Write the effective configuration to a file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := output
			if path == "" {
				path = r.configPath
			}
			if path == "" {
				path = config.DefaultPath()
			}
			if path == "" {
				return fmt.Errorf("no config path: pass --output")
			}
			if err := config.Save(r.config, path); err != nil {
				return err
			}
			fmt.Fprintf(r.stdout, "saved %s\n", path)
			return nil
		},
	}
	save.Flags().StringVarP(&output, "output", "o", "", "file to write (default: the config path)")
	cmd.AddCommand(save)
	return cmd
}
