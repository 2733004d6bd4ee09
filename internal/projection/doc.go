// Package projection turns the static analysis facts into the triage view.
//
// The projector joins per-entry classification with per-group reuse counts,
// re-evaluates the length rule against the live policy threshold, and
// applies issue-mode filtering, free-text search, and sort ordering.
//
// The projector is pure: all inputs (entries, report, parameters) are
// snapshotted in a Params value before projection begins, so a stale reuse
// lookup can never be mixed with a fresh policy parameter. Recomputation
// on a parameter change simply runs Project again.
package projection
