package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/credaudit/credaudit/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/credaudit.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new credaudit configuration file",
		Long: `Initialize creates a new .credaudit.yaml configuration file in the current directory.

The generated file includes commented examples and documentation for
every available option: length policy, issue filter, sort order,
local-entry exclusion, and output masking.

Examples:
  # Create .credaudit.yaml in current directory
  credaudit init

  # Create config file at a specific path
  credaudit init -o myconfig.yaml

  # Force overwrite existing file
  credaudit init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := configTemplate.ReadFile("templates/credaudit.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write configuration file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure settings such as:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Minimum password length")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Default issue filter and sort order")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Output masking for shared reports")

	return nil
}
