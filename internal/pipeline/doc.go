// Package pipeline orchestrates the audit stages.
//
// An audit runs as an ordered sequence of steps over shared state:
// import the credential exports, normalize rows into entries, analyze
// the entries for weak and reused passwords, and project the result
// view. Each step is a small type implementing the Step interface, so
// individual stages can be tested in isolation and reordered or
// extended without touching the orchestration code.
package pipeline
