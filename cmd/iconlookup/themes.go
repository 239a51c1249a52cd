package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newThemesCmd(r *root) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List installed icon themes",
		Long:  "List installed icon themes. The desktop theme is marked with *.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := newStyles(r.stdout)
			current, _ := detectTheme(cmd.Context(), r.finder)
			for _, t := range r.finder.Themes() {
				if t.Hidden && !all {
					continue
				}
				mark := " "
				if t.ID == current {
					mark = st.marker.Render("*")
				}
				line := mark + " " + st.id.Render(t.ID)
				if t.Name != t.ID {
					line += " " + st.name.Render("("+t.Name+")")
				}
				if t.Comment != "" {
					line += " " + st.comment.Render(t.Comment)
				}
				if len(t.Inherits) > 0 {
					line += " " + st.comment.Render("inherits "+strings.Join(t.Inherits, ","))
				}
				fmt.Fprintln(r.stdout, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden themes")
	return cmd
}

func newDefaultThemeCmd(r *root) *cobra.Command {
	return &cobra.Command{
		Use:   "default-theme",
		Short: "Print the desktop icon theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			theme, ok := detectTheme(cmd.Context(), r.finder)
			if !ok {
				fmt.Fprintln(r.stderr, "no desktop icon theme detected")
				return &exitError{code: 1, msg: "no desktop icon theme"}
			}
			fmt.Fprintln(r.stdout, theme)
			return nil
		},
	}
}
