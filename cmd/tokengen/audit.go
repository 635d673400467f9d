package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengen/internal/cssvars"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the theme's text and accent colors for WCAG contrast",
	Long: `Measure every foreground role against every surface role.
Pairs below AA are warnings; body text below the large-text minimum is an error.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAudit,
}

func init() {
	addThemeFlags(auditCmd)
	f := auditCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any contrast warning")
	f.String("output-format", "", "Output format: issues|summary|full|json (default: full)")
}

func runAudit(cmd *cobra.Command, _ []string) error {
	tokens, err := loadTokens()
	if err != nil {
		return err
	}

	strict := getBoolWithFallback("strict", "audit.strict", false)
	result, err := cssvars.Audit(cssvars.AuditConfig{Tokens: tokens, Strict: strict})
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "audit.output-format", string(cssvars.OutputFull))
	format := cssvars.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		useColors := getBoolWithFallback("color", "color", false)
		if err := cssvars.WriteAuditOutput(cmd.OutOrStdout(), result, format, useColors); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if result.Failed(strict) {
		return exitError{code: 1}
	}
	return nil
}
