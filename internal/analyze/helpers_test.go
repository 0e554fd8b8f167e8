package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/require"
)

// runtimeSrc mirrors the marker declarations of the runtime package.
const runtimeSrc = `package bundle

type Serializable interface{ BundleSerializable() }

type Parcelable interface{ BundleParcelable() }

type SerializableMarker struct{}

func (SerializableMarker) BundleSerializable() {}

type ParcelableMarker struct{}

func (ParcelableMarker) BundleParcelable() {}
`

// mapImporter resolves imports from packages checked earlier in the test.
type mapImporter map[string]*types.Package

func (m mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("package %q not available in test", path)
}

// checkSource type-checks src as the package at path. Previously checked
// packages in imp can be imported by it.
func checkSource(t *testing.T, imp mapImporter, path, src string) Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path+".go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	if imp != nil {
		imp[path] = pkg
	}

	return Package{
		Path:  path,
		Name:  pkg.Name(),
		Dir:   "/src/" + path,
		Types: pkg,
	}
}

// checkWithRuntime type-checks src after making the runtime package importable.
func checkWithRuntime(t *testing.T, path, src string) (Package, Package) {
	t.Helper()

	imp := mapImporter{}
	runtime := checkSource(t, imp, RuntimePkgPath, runtimeSrc)
	pkg := checkSource(t, imp, path, src)

	return pkg, runtime
}

func fieldKeys(o *Owner) map[string]string {
	keys := make(map[string]string, len(o.Fields))
	for _, f := range o.Fields {
		keys[f.Name()] = f.Key()
	}

	return keys
}
