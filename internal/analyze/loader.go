package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	// Dir is the directory patterns are resolved against. Empty means the
	// current working directory.
	Dir string
	// BuildFlags are passed to the underlying build tool (e.g. "-tags=dev").
	BuildFlags []string
	// StubFile reports whether a file holds generated injectors. Such files
	// are type checked with their function bodies dropped, and type errors
	// located in them do not fail the load. Defaults to
	// common.IsGeneratedFile.
	StubFile func(filename string) bool
}

// Loader loads Go packages with full type information.
type Loader struct {
	config LoaderConfig
	logger *slog.Logger
}

// NewLoader creates a new Loader.
func NewLoader(config LoaderConfig, logger *slog.Logger) *Loader {
	if config.StubFile == nil {
		config.StubFile = common.IsGeneratedFile
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Loader{config: config, logger: logger}
}

// Load loads the packages matching patterns (e.g., "./...", "example.com/app/screens").
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]Package, error) {
	cfg := &packages.Config{
		Mode:       LoadMode,
		Context:    ctx,
		Dir:        l.config.Dir,
		BuildFlags: l.config.BuildFlags,
		ParseFile:  l.parseFile,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if file := errorFile(e.Pos); file != "" && l.config.StubFile(file) {
				l.logger.Debug("ignoring error in generated file", "error", e.Msg, "pos", e.Pos)
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	loaded := make([]Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		loaded = append(loaded, Package{
			Path:  pkg.PkgPath,
			Name:  pkg.Name,
			Dir:   packageDir(pkg),
			Types: pkg.Types,
		})

		l.logger.Debug("loaded package", "path", pkg.PkgPath, "files", len(pkg.GoFiles))
	}

	return loaded, nil
}

// parseFile parses every file in full. Generated files lose their function
// bodies: the injector declarations stay visible to code that calls them,
// while a body written for an older version of a struct cannot break the
// next pass.
func (l *Loader) parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	file, err := parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
	if err != nil || !l.config.StubFile(filename) {
		return file, err
	}

	l.logger.Debug("dropping generated function bodies", "file", filename)

	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			fn.Body = nil
		}
	}

	return file, nil
}

// errorFile extracts the file name from a "file:line:col" position.
func errorFile(pos string) string {
	for range 2 {
		i := strings.LastIndexByte(pos, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(pos[i+1:]); err != nil {
			break
		}

		pos = pos[:i]
	}

	if pos == "-" {
		return ""
	}

	return pos
}

func packageDir(pkg *packages.Package) string {
	for _, files := range [][]string{pkg.GoFiles, pkg.CompiledGoFiles, pkg.OtherFiles} {
		if len(files) > 0 {
			return filepath.Dir(files[0])
		}
	}

	return ""
}
