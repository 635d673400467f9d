package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengen/internal/cssvars"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint design token usage in CSS, templ and Go files",
	Long: `Check that stylesheets and templates reference defined tokens.
Detects undefined var() references, hardcoded colors that have a token, and
unused tokens.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for token references")
	f.String("tokens", "", "Token stylesheet to check against (default: <output-dir>/tokens.css)")
	f.String("output-dir", defaultOutputDir, "Output directory containing generated files")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum token usage percentage")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (tokenlint) suffix on issues")
}

// runLint is shared between `tokengen lint` and `tokengen generate --lint`.
func runLint(cmd *cobra.Command) error {
	lintConfig := buildLintConfig()

	lintResult, err := cssvars.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := cssvars.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := cssvars.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	// Exit code logic - "Soft Gate" approach: errors always fail, strict
	// mode fails on any issue or a missed threshold
	if lintResult.Failed(lintConfig.Strict) {
		log.WithFields(map[string]any{
			"issues": len(lintResult.Issues),
			"strict": lintConfig.Strict,
		}).Debug("lint failed")
		return exitError{code: 1}
	}

	return nil
}
