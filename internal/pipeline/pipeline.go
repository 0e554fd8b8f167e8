package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/diagnostic"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/gen"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/plan"
)

// Options controls a single pass.
type Options struct {
	// Patterns are go/packages patterns, e.g. "./...".
	Patterns []string
	// Dir is the directory patterns are resolved against.
	Dir string
	// Tag is the struct tag key that marks a field. Defaults to "bundle".
	Tag string
	// Include and Exclude are glob filters on owner type names.
	Include []string
	Exclude []string
	// Report is the path of an optional YAML plan report.
	Report string
	// DebugUnformatted dumps template output that fails to format.
	DebugUnformatted bool
	// Strict turns render and write failures into an error from Run.
	Strict bool
}

// Result summarizes a pass.
type Result struct {
	Plan        *plan.InjectionPlan
	Files       []gen.GeneratedFile
	Written     int
	Diagnostics diagnostic.Diagnostics
}

// Run executes one pass and writes the generated files through w.
// Load failures abort the pass. Render and write failures are logged and
// recorded per owner in Result.Diagnostics, and the remaining owners are
// still processed. They only make Run fail when opts.Strict is set.
func Run(ctx context.Context, opts Options, w gen.ArtifactWriter, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{"./..."}
	}

	filter, err := analyze.NewFilter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	loader := analyze.NewLoader(analyze.LoaderConfig{Dir: opts.Dir}, logger)

	pkgs, err := loader.Load(ctx, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	collectorOpts := []analyze.CollectorOption{
		analyze.WithFilter(filter),
		analyze.WithLogger(logger),
	}
	if opts.Tag != "" {
		collectorOpts = append(collectorOpts, analyze.WithTag(opts.Tag))
	}

	groups := analyze.NewCollector(collectorOpts...).Collect(pkgs)
	logger.Debug("collected tagged fields", "packages", len(pkgs), "owners", groups.Len())

	resolver := plan.NewResolver(analyze.ResolveMarkers(pkgs), logger)
	p := resolver.Resolve(groups)

	res := &Result{Plan: p}
	res.Diagnostics.Merge(&p.Diagnostics)

	for _, d := range p.Diagnostics.Warnings() {
		logger.Warn(d.Message, "code", d.Code, "owner", d.Owner, "field", d.Field)
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		DebugUnformatted: opts.DebugUnformatted,
	}, logger)

	files, genErr := generator.Generate(p)
	for _, err := range unjoin(genErr) {
		var renderErr *gen.RenderError
		if errors.As(err, &renderErr) {
			res.Diagnostics.Errorf(diagnostic.CodeRenderFailed, renderErr.Owner.String(), "", "%v", renderErr.Err)
			logger.Error("failed to render injector", "owner", renderErr.Owner, "error", renderErr.Err)
		}
	}

	res.Files = files
	res.Written = gen.WriteFiles(w, files, &res.Diagnostics, logger)

	if opts.Report != "" {
		if err := plan.WriteReport(p, opts.Report); err != nil {
			return res, fmt.Errorf("writing report: %w", err)
		}
	}

	logger.Info("generation finished",
		"owners", len(p.Owners), "fields", p.FieldCount(),
		"written", res.Written, "errors", len(res.Diagnostics.Errors()))

	if opts.Strict {
		return res, res.Diagnostics.Err()
	}

	return res, nil
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}

	return []error{err}
}
