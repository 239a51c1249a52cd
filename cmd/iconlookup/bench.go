package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/example/iconlookup"
)

func newBenchCmd(r *root) *cobra.Command {
	var (
		iterations int
		theme      string
		size       int
	)
	cmd := &cobra.Command{
		Use:   "bench NAME",
		Short: "Time repeated lookups of NAME with and without the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations < 1 {
				return fmt.Errorf("iterations must be at least 1, got %d", iterations)
			}
			if !cmd.Flags().Changed("theme") {
				theme = r.config.Theme
			}
			if !cmd.Flags().Changed("size") {
				size = r.config.Size
			}
			ctx := cmd.Context()
			b := r.finder.Lookup(args[0]).WithTheme(theme).WithSize(size).WithScale(r.config.Scale)

			path, ok := b.FindContext(ctx)
			if ok {
				fmt.Fprintf(r.stdout, "%s -> %s\n", args[0], path)
			} else {
				fmt.Fprintf(r.stdout, "%s -> not found\n", args[0])
			}

			r.report("uncached", iterations, run(ctx, b, iterations))
			r.finder.Cache().Clear()
			r.report("cached", iterations, run(ctx, b.WithCache(), iterations))

			stats := r.finder.CacheStats()
			fmt.Fprintf(r.stdout, "cache: %s hits, %s misses, %s entries\n",
				humanize.Comma(stats.Hits), humanize.Comma(stats.Misses), humanize.Comma(int64(stats.Entries)))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&iterations, "iterations", "n", 1000, "lookups per run")
	flags.StringVarP(&theme, "theme", "t", "", "theme to search first")
	flags.IntVarP(&size, "size", "s", 0, "icon size in pixels")
	return cmd
}

func run(ctx context.Context, b iconlookup.LookupBuilder, n int) time.Duration {
	start := time.Now()
	for range n {
		b.FindContext(ctx)
	}
	return time.Since(start)
}

func (r *root) report(label string, n int, d time.Duration) {
	d = max(d, time.Nanosecond)
	per := d / time.Duration(n)
	rate := float64(n) / d.Seconds()
	fmt.Fprintf(r.stdout, "%-8s %s lookups in %s (%s/op, %s ops/s)\n",
		label, humanize.Comma(int64(n)), d.Round(time.Microsecond), per, humanize.CommafWithDigits(rate, 1))
}
