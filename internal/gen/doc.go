// Package gen renders injector functions from a resolved InjectionPlan.
//
// Generation approach uses text/template + go/format. Every owning type gets
// one companion file next to its own sources, holding a single function:
//
//	func InjectScreenBundle(target *Screen, source *bundle.Bundle)
//
// Codegen patterns:
//   - Primitive: unconditional assignment, current value as default
//   - Text: assignment guarded by the accessor's ok result
//   - Serializable / Parcelable: type assertion to the declared field type,
//     assignment guarded by ok (and a nil check for nilable types)
package gen
