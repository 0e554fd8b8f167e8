package plan

import (
	"github.com/zhouyinchun6/bundleWrite-processor/internal/analyze"
	"github.com/zhouyinchun6/bundleWrite-processor/internal/diagnostic"
)

// InjectionPlan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type InjectionPlan struct {
	// Owners is the list of owning types with at least one emitted field,
	// sorted by TypeID.
	Owners []ResolvedOwner
	// Diagnostics contains all warnings from resolution.
	Diagnostics diagnostic.Diagnostics
}

// FieldCount returns the number of fields that will be emitted.
func (p *InjectionPlan) FieldCount() int {
	n := 0
	for _, o := range p.Owners {
		n += len(o.Fields)
	}

	return n
}

// ResolvedOwner is an owning type together with its classified fields.
type ResolvedOwner struct {
	// Owner is the collected owning type.
	Owner *analyze.Owner
	// Fields are the emitted fields in declaration order.
	Fields []ResolvedField
	// Skipped are the tagged fields whose type is unsupported.
	Skipped []analyze.FieldDescriptor
}

// ResolvedField is a field with its extraction strategy.
type ResolvedField struct {
	// Descriptor is the collected field.
	Descriptor analyze.FieldDescriptor
	// Category is the chosen extraction strategy.
	Category Category
	// Accessor is the Bundle method that reads the value (e.g., "GetInt").
	Accessor string
	// BasicType is the Go basic type the accessor works with for primitive
	// and text fields (e.g., "int", "string"). Empty otherwise.
	BasicType string
	// NeedsConversion is true when the field's type is a named type over
	// BasicType and values must be converted at the boundary.
	NeedsConversion bool
	// Nilable is true when the field's type can hold nil, so a found value
	// must also be checked against nil before assignment.
	Nilable bool
}
