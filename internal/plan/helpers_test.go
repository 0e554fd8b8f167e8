package plan

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
)

// checkPackage type-checks a single-file package. Only standard library
// imports are resolvable.
func checkPackage(t *testing.T, path, src string) analyze.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path+".go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: importer.Default()}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	return analyze.Package{Path: path, Name: pkg.Name(), Dir: "/src/" + path, Types: pkg}
}

// resolveSource collects and resolves src in one go.
func resolveSource(t *testing.T, src string) *InjectionPlan {
	t.Helper()

	pkg := checkPackage(t, "example.com/app/screens", src)
	groups := analyze.NewCollector().Collect([]analyze.Package{pkg})

	return NewResolver(analyze.DefaultMarkers(), nil).Resolve(groups)
}

func fieldType(t *testing.T, pkg analyze.Package, owner, field string) types.Type {
	t.Helper()

	obj := pkg.Types.Scope().Lookup(owner)
	require.NotNil(t, obj, owner)

	st := obj.Type().Underlying().(*types.Struct)
	for i := range st.NumFields() {
		if st.Field(i).Name() == field {
			return st.Field(i).Type()
		}
	}

	require.FailNow(t, "field not found", "%s.%s", owner, field)

	return nil
}
