package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/iconlookup"
	"github.com/example/iconlookup/internal/config"
	"github.com/example/iconlookup/internal/logging"
	"github.com/example/iconlookup/internal/telemetry"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

// exitError ends the process with code without printing anything further.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

type root struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	baseDirs   []string

	config   *config.Config
	log      *zap.Logger
	finder   *iconlookup.Finder
	shutdown telemetry.Shutdown
}

// detectTheme is replaced in tests to keep the session bus and X server out.
var detectTheme = func(ctx context.Context, f *iconlookup.Finder) (string, bool) {
	return f.DefaultTheme(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	r := &root{stdout: stdout, stderr: stderr}
	cmd := &cobra.Command{
		Use:           "iconlookup",
		Short:         "iconlookup - find freedesktop icon files",
		Long:          "iconlookup resolves icon names to files using the installed freedesktop icon themes.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return r.teardown(cmd.Context())
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&r.configPath, "config", configPathOverride, "config file path")
	flags.StringVar(&r.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringSliceVar(&r.baseDirs, "base-dir", nil, "icon base directory, repeatable (default: XDG directories)")

	cmd.AddCommand(
		newFindCmd(r),
		newThemesCmd(r),
		newChainCmd(r),
		newDefaultThemeCmd(r),
		newDirsCmd(r),
		newBenchCmd(r),
		newConfigCmd(r),
		newVersionCmd(r),
	)
	return cmd
}

// setup loads the config and builds the logger and finder. Precedence is
// flags, then environment, then config file, then defaults.
func (r *root) setup(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(version, r.configPath).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = r.logLevel
	}
	if cmd.Flags().Changed("base-dir") {
		cfg.BaseDirs = r.baseDirs
	}
	r.config = cfg

	log, err := logging.New(cfg.LogLevel, r.stderr)
	if err != nil {
		return err
	}
	r.log = log

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Setup(ctx, "iconlookup", version)
	if err != nil {
		log.Warn("tracing disabled", zap.Error(err))
	}
	r.shutdown = shutdown

	opts := []iconlookup.Option{iconlookup.WithLogger(log)}
	if len(cfg.BaseDirs) > 0 {
		opts = append(opts, iconlookup.WithBaseDirs(cfg.BaseDirs...))
	}
	r.finder = iconlookup.NewFinder(opts...)
	return nil
}

func (r *root) teardown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.shutdown != nil {
		if err := r.shutdown(ctx); err != nil {
			r.log.Warn("flush traces", zap.Error(err))
		}
	}
	if r.log != nil {
		_ = r.log.Sync()
	}
	return nil
}

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
