package cssvars

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting linting results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := append([]Issue(nil), issues...)
	sortIssues(sorted)

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	switch issue.Severity {
	case SeverityError:
		text = RenderStyle(StyleRed, "error: ", r.useColors) + text
	case SeverityWarning:
		text = RenderStyle(StyleYellow, "warning: ", r.useColors) + text
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	// Print source lines with caret indicator
	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up with the source.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue, truncated int) {
	totalIssues := len(issues)
	errors, warnings := countSeverities(issues)

	fmt.Fprintln(r.w, "")

	counts := pluralizeCount(totalIssues, "issue", "issues")
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details,
			pluralizeCount(errors, "error", "errors")+", "+pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		details = append(details, pluralizeCount(truncated, "issue", "issues")+" truncated")
	}
	if len(details) > 0 {
		counts += " (" + strings.Join(details, "; ") + ")"
	}
	fmt.Fprintf(r.w, "%s:\n", counts)

	// Group by linter
	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)

	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if totalIssues > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
