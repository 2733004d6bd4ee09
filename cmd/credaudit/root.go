// Package main provides the entry point for the credaudit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for credaudit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credaudit",
		Short: "Password-hygiene auditing tool for credential exports",
		Long: `credaudit audits credential exports from browsers and password managers.
It flags weak passwords, detects password reuse across accounts, and
scores each account's risk so the worst offenders surface first.

Passwords are read only to classify and fingerprint them. They are never
printed, logged, or written to any report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewCompareCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
