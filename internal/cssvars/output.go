package cssvars

import (
	"fmt"
	"io"
	"strings"
)

// DetermineOutputFormat selects the output format from the flag. Quiet mode
// and unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch strings.ToLower(formatFlag) {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	}

	// Following golangci-lint's UX: issues only by default
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, ShouldUseColors(config.UseColors))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintAdoptionProgress(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(result.Warnings)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintAdoptionProgress(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(result.Warnings)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
		NewVerboseReporter(w, reporter.UseColors()).PrintWarnings(result.Warnings)
	}
	return nil
}

// WriteAuditOutput writes the audit result in the specified format
func WriteAuditOutput(w io.Writer, result *AuditResult, format OutputFormat, useColors bool) error {
	config := LintConfig{UseColors: useColors, PrintLinterName: true}

	switch format {
	case OutputJSON:
		return WriteAuditJSON(w, result)

	case OutputSummary:
		NewVerboseReporter(w, ShouldUseColors(useColors)).PrintAuditTable(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		NewVerboseReporter(w, reporter.UseColors()).PrintAuditTable(*result)
		if len(result.Issues) > 0 {
			fmt.Fprintln(w, "")
		}
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, 0)

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, 0)
	}
	return nil
}
