package gen

import (
	"fmt"
	"go/types"
	"strconv"

	"github.com/zhouyinchun6/bundleWrite-processor/internal/plan"
)

// Names used inside the generated function.
const (
	targetVar = "target"
	sourceVar = "source"
	valueVar  = "v"
)

// buildAssignment renders the statement for one field according to its
// category.
func buildAssignment(f *plan.ResolvedField, imports *importSet) assignmentData {
	a := assignmentData{
		Field:       f.Descriptor.Name(),
		Conditional: f.Category.Conditional(),
	}

	key := strconv.Quote(f.Descriptor.Key())
	fieldType := types.TypeString(f.Descriptor.Type(), imports.qualifier)

	switch f.Category {
	case plan.CategoryPrimitive:
		applyPrimitiveStrategy(&a, f, key, fieldType)

	case plan.CategoryText:
		applyTextStrategy(&a, f, key, fieldType)

	case plan.CategorySerializable, plan.CategoryParcelable:
		applyObjectStrategy(&a, f, key, fieldType)

	case plan.CategoryUnsupported:
		// Filtered out by the resolver
	}

	return a
}

// applyPrimitiveStrategy: target.F = source.GetX("k", target.F)
// A named field type is converted to the accessor's basic type and back.
func applyPrimitiveStrategy(a *assignmentData, f *plan.ResolvedField, key, fieldType string) {
	current := targetVar + "." + a.Field
	if f.NeedsConversion {
		current = fmt.Sprintf("%s(%s)", f.BasicType, current)
	}

	expr := fmt.Sprintf("%s.%s(%s, %s)", sourceVar, f.Accessor, key, current)
	if f.NeedsConversion {
		expr = fmt.Sprintf("%s(%s)", fieldType, expr)
	}

	a.SourceExpr = expr
}

// applyTextStrategy: if v, ok := source.GetString("k"); ok { target.F = v }
func applyTextStrategy(a *assignmentData, f *plan.ResolvedField, key, fieldType string) {
	a.SourceExpr = fmt.Sprintf("%s.%s(%s)", sourceVar, f.Accessor, key)
	a.Guard = "ok"
	a.ValueExpr = valueVar

	if f.NeedsConversion {
		a.ValueExpr = fmt.Sprintf("%s(%s)", fieldType, valueVar)
	}
}

// applyObjectStrategy: if v, ok := source.GetX("k").(T); ok { target.F = v }
func applyObjectStrategy(a *assignmentData, f *plan.ResolvedField, key, fieldType string) {
	a.SourceExpr = fmt.Sprintf("%s.%s(%s).(%s)", sourceVar, f.Accessor, key, fieldType)
	a.Guard = "ok"
	a.ValueExpr = valueVar

	if f.Nilable {
		a.Guard = "ok && " + valueVar + " != nil"
	}
}
