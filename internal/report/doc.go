// Package report provides output formatting for audit results.
//
// Three formats are supported: human-readable text for terminal use,
// JSON for tool integration, and GitHub Flavored Markdown for sharing.
// All writers implement the Writer interface and never print passwords;
// optional masking additionally hides usernames and domains.
package report
