package gen

import (
	"github.com/stoewer/go-strcase"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/common"
)

// unexportedMark separates the file of an unexported owner from the file of
// its exported twin (screen vs Screen).
const unexportedMark = ".unexported"

// FunctionName returns the name of the injector generated for owner:
// "InjectScreenBundle" for Screen, "injectScreenBundle" for screen.
func FunctionName(owner *analyze.Owner) string {
	prefix := "Inject"
	if !owner.Exported() {
		prefix = "inject"
	}

	return prefix + common.UpperFirst(owner.ID.Name) + "Bundle"
}

// Filename returns the companion filename of the type called name. It only
// depends on name, and distinct names always get distinct files:
//
//	Screen     -> screen.bundleinit.go
//	screen     -> screen.unexported.bundleinit.go
//	HTTPServer -> http_server.HTTPServer.bundleinit.go
//
// The short forms are used when the name round-trips through its snake case
// stem; every other name is kept verbatim after the stem.
func Filename(name string) string {
	stem := strcase.SnakeCase(name)

	switch name {
	case strcase.UpperCamelCase(stem):
		return stem + common.GeneratedFileSuffix
	case strcase.LowerCamelCase(stem):
		return stem + unexportedMark + common.GeneratedFileSuffix
	default:
		return stem + "." + name + common.GeneratedFileSuffix
	}
}
