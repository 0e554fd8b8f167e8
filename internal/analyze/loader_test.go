package analyze

import (
	"context"
	"go/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const screensPkg = "github.com/zhouyinchun6/bundleWrite-processor/examples/screens"

func TestLoader_Load(t *testing.T) {
	loader := NewLoader(LoaderConfig{}, nil)
	pkgs, err := loader.Load(context.Background(), screensPkg)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, screensPkg, pkg.Path)
	assert.Equal(t, "screens", pkg.Name)
	assert.Equal(t, "screens", filepath.Base(pkg.Dir))
	require.NotNil(t, pkg.Types)
	assert.NotNil(t, pkg.Types.Scope().Lookup("Screen"))
}

func TestLoader_KeepsInjectorDeclarations(t *testing.T) {
	loader := NewLoader(LoaderConfig{}, nil)
	pkgs, err := loader.Load(context.Background(), screensPkg)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	// Screen.Open calls the injector declared in the generated file
	fn, ok := pkgs[0].Types.Scope().Lookup("InjectScreenBundle").(*types.Func)
	require.True(t, ok)
	assert.Equal(t, "func(target *"+screensPkg+".Screen, source *"+RuntimePkgPath+".Bundle)", fn.Type().String())
}

func TestLoader_StubFileFailsWhenNotTolerated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tmp\n\ngo 1.24\n")
	writeFile(t, dir, "app.go", "package app\n\ntype Screen struct{ Count int }\n")
	writeFile(t, dir, "screen.bundleinit.go", "package app\n\nfunc InjectScreenBundle(target *Screen) {\n\ttarget.Title = \"gone\"\n}\n")

	pkgs, err := NewLoader(LoaderConfig{Dir: dir}, nil).Load(context.Background(), ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.NotNil(t, pkgs[0].Types.Scope().Lookup("InjectScreenBundle"))

	_, err = NewLoader(LoaderConfig{Dir: dir, StubFile: func(string) bool { return false }}, nil).
		Load(context.Background(), ".")
	assert.ErrorContains(t, err, "Title")
}

func TestLoader_StaleCompanion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tmp\n\ngo 1.24\n")
	writeFile(t, dir, "app.go", `package app

type Screen struct {
	Count int `+"`bundle:\"count\"`"+`
}

func Open(s *Screen) {
	InjectScreenBundle(s)
}
`)
	// body and imports written for an older Screen
	writeFile(t, dir, "screen.bundleinit.go", `package app

import "strings"

func InjectScreenBundle(target *Screen) {
	target.Title = strings.ToUpper("gone")
}
`)

	pkgs, err := NewLoader(LoaderConfig{Dir: dir}, nil).Load(context.Background(), ".")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	groups := NewCollector().Collect(pkgs)
	screen := groups.Get(TypeID{PkgPath: "example.com/tmp", Name: "Screen"})
	require.NotNil(t, screen)
	assert.Equal(t, map[string]string{"Count": "count"}, fieldKeys(screen))
}

func TestErrorFile(t *testing.T) {
	assert.Equal(t, "/src/app/a.go", errorFile("/src/app/a.go:12:3"))
	assert.Equal(t, "/src/app/a.go", errorFile("/src/app/a.go:12"))
	assert.Equal(t, "/src/app/a.go", errorFile("/src/app/a.go"))
	assert.Equal(t, "C:/src/a.go", errorFile("C:/src/a.go:1:2"))
	assert.Empty(t, errorFile("-"))
	assert.Empty(t, errorFile(""))
}

func TestLoader_CollectAndMarkers(t *testing.T) {
	pkgs, err := NewLoader(LoaderConfig{}, nil).Load(context.Background(), screensPkg)
	require.NoError(t, err)

	groups := NewCollector().Collect(pkgs)
	screen := groups.Get(TypeID{PkgPath: screensPkg, Name: "Screen"})
	require.NotNil(t, screen)
	assert.Equal(t, "Count", screen.Fields[0].Key())
	assert.Equal(t, "t", screen.Fields[1].Key())

	m := ResolveMarkers(pkgs)
	payload := pkgs[0].Types.Scope().Lookup("Payload")
	require.NotNil(t, payload)
	assert.True(t, m.IsSerializable(payload.Type()))
	assert.False(t, m.IsParcelable(payload.Type()))
}

func TestLoader_UnknownPackage(t *testing.T) {
	_, err := NewLoader(LoaderConfig{}, nil).Load(context.Background(), "github.com/zhouyinchun6/bundleWrite-processor/does/not/exist")
	require.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
