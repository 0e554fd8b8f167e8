package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/gen"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/pipeline"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/watch"
)

func newWatchCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate injectors whenever Go sources change",
		Long: `Watch runs a generation pass, then watches the enclosing module and runs
a fresh pass after every burst of source changes. Generated files are
ignored. Stop it with Ctrl+C.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load(cmd)
			if err != nil {
				return err
			}

			moduleRoot, modulePath, err := watch.FindModuleRoot(root.dir)
			if err != nil {
				return err
			}

			w, err := watch.New(moduleRoot, cfg.Watch.Debounce, logger)
			if err != nil {
				return err
			}
			defer w.Close()

			logger.Info("watching module", "module", modulePath, "root", moduleRoot, "debounce", cfg.Watch.Debounce)

			opts := cfg.Options(root.dir)

			return w.Run(cmd.Context(), func(ctx context.Context) error {
				_, err := pipeline.Run(ctx, opts, gen.FileWriter{}, logger)
				return err
			})
		},
	}
}
