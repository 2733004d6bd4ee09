// Package analysis implements the credential analysis core.
//
// The core is a composition of three pure stages:
//   - Classify: evaluates the baseline strength rule set against a password
//   - GroupReused: partitions entries by exact password value
//   - Score/Level: combines reuse count and weakness into a risk ranking
//
// Analyze runs all stages over an entry sequence and produces a Report.
// Every stage is a pure function of its inputs: no I/O, no mutation of
// shared state, and deterministic output, so the whole analysis can be
// recomputed from scratch whenever the input changes.
package analysis
