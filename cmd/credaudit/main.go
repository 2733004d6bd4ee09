// Package main provides the entry point for the credaudit CLI.
//
// credaudit is a password-hygiene auditing tool for credential exports.
// It reads CSV exports from browsers and password managers, flags weak
// passwords, detects reuse across accounts, and scores each account's
// risk. Passwords never appear in any output.
//
// Usage:
//
//	credaudit audit export.csv
//	credaudit audit --issues weak --sort risk export.csv more.csv
//
// See --help for all available options.
package main

// main is the entry point for credaudit.
func main() {
	Execute()
}
