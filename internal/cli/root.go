// Package cli implements the bundle-generator command line.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/config"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	cfgFile string
	dir     string
	verbose bool
}

// NewRootCommand builds the command tree. Running the root command without
// a subcommand performs a single generation pass.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	genOpts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "bundle-generator",
		Short: "Generate bundle injectors for tagged struct fields",
		Long: `bundle-generator scans Go packages for struct fields tagged with
bundle:"key" and writes, next to every owning type, a companion
<type>.bundleinit.go file holding an Inject<Type>Bundle function that copies
values out of a *bundle.Bundle into those fields.

Settings are read from .bundlegen.yaml in the working directory and can be
overridden with BUNDLEGEN_* environment variables and flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, genOpts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./.bundlegen.yaml)")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "directory package patterns are resolved against")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	genOpts.bindFlags(cmd)

	cmd.AddCommand(
		newGenerateCommand(opts),
		newWatchCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// Execute runs the command line. This is called by main.main().
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load reads the configuration and builds the logger for a command.
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.NewLoader(o.dir, o.cfgFile).Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, o.verbose)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// newLogger creates a text logger; verbose forces the debug level.
func newLogger(w io.Writer, level string, verbose bool) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
