package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/config"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/gen"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/pipeline"
)

// generateOptions are flags that override the configuration for one pass.
type generateOptions struct {
	dryRun  bool
	strict  bool
	report  string
	tag     string
	include []string
	exclude []string
}

func (g *generateOptions) bindFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&g.dryRun, "dry-run", false, "render injectors and list them without writing")
	cmd.Flags().BoolVar(&g.strict, "strict", false, "exit non-zero when an injector cannot be rendered or written")
	cmd.Flags().StringVar(&g.report, "report", "", "write a YAML plan report to this path")
	cmd.Flags().StringVar(&g.tag, "tag", "", "struct tag key marking injectable fields")
	cmd.Flags().StringSliceVar(&g.include, "include", nil, "only generate for owner types matching these globs")
	cmd.Flags().StringSliceVar(&g.exclude, "exclude", nil, "skip owner types matching these globs")
}

// apply copies the flags that were set on cmd over cfg.
func (g *generateOptions) apply(cmd *cobra.Command, cfg *config.Config, args []string) {
	flags := cmd.Flags()

	if len(args) > 0 {
		cfg.Packages = args
	}

	if flags.Changed("dry-run") {
		cfg.DryRun = g.dryRun
	}

	if flags.Changed("strict") {
		cfg.Strict = g.strict
	}

	if flags.Changed("report") {
		cfg.Report = g.report
	}

	if flags.Changed("tag") {
		cfg.Tag = g.tag
	}

	if flags.Changed("include") {
		cfg.Include = g.include
	}

	if flags.Changed("exclude") {
		cfg.Exclude = g.exclude
	}
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	flags := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [packages...]",
		Short: "Run one generation pass",
		Long: `Generate loads the given package patterns (default from config, "./..."),
collects bundle-tagged fields and writes one companion injector file per
owning type.

Examples:
  # Generate for every package of the module
  bundle-generator generate ./...

  # Show what would be written
  bundle-generator generate --dry-run ./screens
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, flags, args)
		},
	}

	flags.bindFlags(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootOptions, opts *generateOptions, args []string) error {
	cfg, logger, err := root.load(cmd)
	if err != nil {
		return err
	}

	opts.apply(cmd, cfg, args)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var w gen.ArtifactWriter = gen.FileWriter{}

	var mem *gen.MemoryWriter
	if cfg.DryRun {
		mem = gen.NewMemoryWriter()
		w = mem
	}

	_, runErr := pipeline.Run(cmd.Context(), cfg.Options(root.dir), w, logger)

	if mem != nil {
		for _, path := range mem.Paths() {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	}

	return runErr
}
