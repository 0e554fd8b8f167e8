// Package plan classifies collected fields and produces the InjectionPlan
// consumed by code generation.
//
// Resolution pipeline:
//  1. Load packages → analyze.Package list
//  2. Collect tagged fields → analyze.OwnerGroups
//  3. For each field, pick exactly one Category, first match wins:
//     primitive, text, serializable, parcelable, unsupported
//  4. Emit diagnostics (duplicate external keys); unsupported fields are
//     dropped without a diagnostic
package plan
