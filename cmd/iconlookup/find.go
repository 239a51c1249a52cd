package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/iconlookup"
	"github.com/example/iconlookup/internal/clipboard"
	"github.com/example/iconlookup/internal/notify"
)

// Replaced in tests.
var (
	copyText  = clipboard.WriteText
	pasteText = clipboard.ReadText
)

type findOptions struct {
	theme        string
	size         int
	scale        int
	cache        bool
	preferRaster bool
	copy         bool
	paste        bool
	notify       bool
}

func newFindCmd(r *root) *cobra.Command {
	var opts findOptions
	cmd := &cobra.Command{
		Use:   "find NAME...",
		Short: "Print the file for each icon name",
		Long: `Print the file for each icon name, one per line.

Names that contain a path separator are also tried as a path without
extension once the themes and base directories miss. With --from-clipboard
the whitespace separated names on the clipboard are looked up after NAME.
Missing icons are reported on stderr and make the command exit with status 1.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.paste {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.paste {
				text, err := pasteText()
				if err != nil {
					return fmt.Errorf("read clipboard: %w", err)
				}
				args = append(args, strings.Fields(text)...)
				if len(args) == 0 {
					return fmt.Errorf("clipboard holds no icon names")
				}
			}
			return r.find(cmd, args, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&opts.theme, "theme", "t", "", "theme to search first (default: desktop theme)")
	flags.IntVarP(&opts.size, "size", "s", 0, "icon size in pixels")
	flags.IntVar(&opts.scale, "scale", 0, "display scale")
	flags.BoolVar(&opts.cache, "cache", false, "cache results")
	flags.BoolVar(&opts.preferRaster, "prefer-raster", false, "try png before svg")
	flags.BoolVar(&opts.copy, "copy", false, "copy the found paths to the clipboard")
	flags.BoolVar(&opts.paste, "from-clipboard", false, "also look up the names on the clipboard")
	flags.BoolVar(&opts.notify, "notify", false, "show a desktop notification per result")
	return cmd
}

// applyFlags overlays the flags the user set on the loaded config.
func (o findOptions) applyFlags(cmd *cobra.Command, r *root) {
	cfg := r.config
	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("size") {
		cfg.Size = o.size
	}
	if flags.Changed("scale") {
		cfg.Scale = o.scale
	}
	if flags.Changed("cache") {
		cfg.Cache = o.cache
	}
	if flags.Changed("prefer-raster") {
		cfg.PreferRaster = o.preferRaster
	}
	if flags.Changed("notify") {
		cfg.Notify.Found = o.notify
		cfg.Notify.Missing = o.notify
	}
}

func (r *root) find(cmd *cobra.Command, names []string, opts findOptions) error {
	opts.applyFlags(cmd, r)
	cfg := r.config
	ctx := cmd.Context()

	theme := cfg.Theme
	if theme == "" {
		if detected, ok := detectTheme(ctx, r.finder); ok {
			theme = detected
			r.log.Debug("using desktop theme", zap.String("theme", theme))
		}
	}

	build := func(name string) iconlookup.LookupBuilder {
		b := r.finder.Lookup(name).WithTheme(theme).WithSize(cfg.Size).WithScale(cfg.Scale)
		if cfg.Cache {
			b = b.WithCache()
		}
		if cfg.PreferRaster {
			b = b.PreferRaster()
		}
		return b
	}

	prefs, err := notify.LoadPreferences()
	if err != nil {
		return err
	}
	notifier := notify.New(prefs, r.log)
	notifier.Enable(notify.EventFound, cfg.Notify.Found)
	notifier.Enable(notify.EventMissing, cfg.Notify.Missing)

	var found []string
	missing := 0
	for _, name := range names {
		path, ok := build(name).FindContext(ctx)
		if !ok {
			missing++
			fmt.Fprintf(r.stderr, "%s: not found\n", name)
			notifier.Missing(name)
			continue
		}
		fmt.Fprintln(r.stdout, path)
		found = append(found, path)
		notifier.Found(name, path)
	}

	if opts.copy && len(found) > 0 {
		if err := copyText(strings.Join(found, "\n")); err != nil {
			r.log.Warn("copy to clipboard", zap.Error(err))
		}
	}
	if missing > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d of %d icons not found", missing, len(names))}
	}
	return nil
}
