// Package diagnostic provides structured, non-fatal findings reported
// during a generation pass.
//
// Key capabilities:
//   - Duplicate external key warnings
//   - Unsupported field types, as info for the plan report only
//   - Per-artifact render and write failures
//   - Severity-aware merging and a combined error for failing passes
package diagnostic
