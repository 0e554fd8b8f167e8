package gen

import (
	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/plan"
)

// templateData holds all data needed for the injector template.
type templateData struct {
	PackageName  string
	Imports      []importSpec
	FunctionName string
	TargetType   string
	BundleType   string
	Assignments  []assignmentData
}

// assignmentData represents a single field assignment in the injector.
type assignmentData struct {
	Field string
	// SourceExpr reads the value from the container.
	SourceExpr string
	// For conditional assignments: the if-condition over v and ok, and the
	// expression assigned when it holds.
	Conditional bool
	Guard       string
	ValueExpr   string
}

// buildTemplateData constructs the template data for one owner.
func (g *Generator) buildTemplateData(owner *plan.ResolvedOwner) *templateData {
	imports := newImportSet(owner.Owner.ID.PkgPath, reservedNames(owner.Owner)...)

	data := &templateData{
		PackageName:  owner.Owner.PkgName,
		FunctionName: FunctionName(owner.Owner),
		TargetType:   owner.Owner.ID.Name,
		BundleType:   qualify(imports.add(g.config.RuntimePkgPath, ""), "Bundle"),
	}

	for i := range owner.Fields {
		data.Assignments = append(data.Assignments, buildAssignment(&owner.Fields[i], imports))
	}

	data.Imports = imports.specs()

	return data
}

// reservedNames lists the identifiers an import qualifier would clash with:
// the locals of the injector and everything declared at the top level of the
// owner's package.
func reservedNames(owner *analyze.Owner) []string {
	names := []string{targetVar, sourceVar, valueVar}

	if owner.Object != nil && owner.Object.Pkg() != nil {
		names = append(names, owner.Object.Pkg().Scope().Names()...)
	}

	return names
}

// qualify prefixes name with a package qualifier when there is one.
func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}

	return pkg + "." + name
}
