// Package model defines the core data structures used throughout credaudit.
//
// This package contains the following main types:
//   - Record: A raw row parsed from a credential export file
//   - Entry: A normalized credential record fed to the analysis core
//   - Report: The static analysis result (weak findings, reuse groups, summary)
//   - ResultRow: One row of the policy-adjusted triage projection
//   - AuditResult: The complete audit output handed to report writers
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (importer, normalize, analysis, projection,
// report) need to use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output,
// with the exception of plaintext passwords which are never serialized.
package model
