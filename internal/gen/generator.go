package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// RuntimePkgPath is the import path of the container package.
	RuntimePkgPath string
	// DebugUnformatted writes the raw template output next to the intended
	// file when it cannot be formatted.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimePkgPath: analyze.RuntimePkgPath,
	}
}

// Generator generates Go code from a resolved injection plan.
type Generator struct {
	config GeneratorConfig
	logger *slog.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, logger *slog.Logger) *Generator {
	if config.RuntimePkgPath == "" {
		config.RuntimePkgPath = analyze.RuntimePkgPath
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Owner is the type the injector was generated for.
	Owner analyze.TypeID
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "screen.bundleinit.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// RenderError reports an owner whose file could not be produced.
type RenderError struct {
	Owner analyze.TypeID
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("generating %s: %v", e.Owner, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Generate generates one file per owner in the plan.
// A failing owner does not stop the others; all failures are returned
// joined, each as a *RenderError.
func (g *Generator) Generate(p *plan.InjectionPlan) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  []error
	)

	for i := range p.Owners {
		owner := &p.Owners[i]

		file, err := g.generateOwner(owner, Filename(owner.Owner.ID.Name))
		if err != nil {
			errs = append(errs, &RenderError{Owner: owner.Owner.ID, Err: err})
			continue
		}

		g.logger.Debug("generated injector",
			"owner", owner.Owner.ID, "file", file.Filename, "fields", len(owner.Fields))
		files = append(files, *file)
	}

	return files, errors.Join(errs...)
}

// generateOwner renders the companion file of a single owner.
func (g *Generator) generateOwner(owner *plan.ResolvedOwner, filename string) (*GeneratedFile, error) {
	data := g.buildTemplateData(owner)

	var buf bytes.Buffer
	if err := injectorTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(owner.Owner.Dir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Owner:    owner.Owner.ID,
		Dir:      owner.Owner.Dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

// Template for the injector file

var injectorTemplate = template.Must(template.New("injector").Parse(`// Code generated by bundle-generator. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)
{{end}}
// {{.FunctionName}} copies the values stored in source into the
// bundle-tagged fields of target. It does nothing when source is nil.
func {{.FunctionName}}(target *{{.TargetType}}, source *{{.BundleType}}) {
	if source == nil {
		return
	}
{{range .Assignments}}
{{- if .Conditional}}
	if v, ok := {{.SourceExpr}}; {{.Guard}} {
		target.{{.Field}} = {{.ValueExpr}}
	}
{{- else}}
	target.{{.Field}} = {{.SourceExpr}}
{{- end}}
{{- end}}
}
`))
