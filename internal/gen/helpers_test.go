package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/plan"
)

type mapImporter map[string]*types.Package

func (m mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("package %q not available in test", path)
}

// checkPackage type-checks src as path; earlier packages in imp are importable.
func checkPackage(t *testing.T, imp mapImporter, path, src string) analyze.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path+".go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	imp[path] = pkg

	return analyze.Package{Path: path, Name: pkg.Name(), Dir: "/src/" + path, Types: pkg}
}

// planFor collects and resolves pkgs.
func planFor(pkgs ...analyze.Package) *plan.InjectionPlan {
	groups := analyze.NewCollector().Collect(pkgs)
	return plan.NewResolver(analyze.DefaultMarkers(), nil).Resolve(groups)
}

// generateOne generates the plan of a single package and returns the only file.
func generateOne(t *testing.T, path, src string) GeneratedFile {
	t.Helper()

	pkg := checkPackage(t, mapImporter{}, path, src)

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(planFor(pkg))
	require.NoError(t, err)
	require.Len(t, files, 1)

	return files[0]
}
