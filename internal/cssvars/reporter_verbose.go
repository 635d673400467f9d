package cssvars

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/tokengen"
)

// VerboseReporter handles detailed statistics, the audit table and swatches
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Tokens Defined:       %d\n", result.TotalTokens)
	fmt.Fprintf(r.w, "Tokens Used:          %d (%.1f%%)\n", result.TokensUsed, result.UsagePercentage)
	fmt.Fprintf(r.w, "Unused Tokens:        %d\n", len(result.UnusedTokens))
	fmt.Fprintf(r.w, "Files Scanned:        %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Token References:     %d\n", result.VarReferences)
	fmt.Fprintf(r.w, "Undefined References: %d\n", result.UndefinedRefs)
	fmt.Fprintf(r.w, "Hardcoded Colors:     %d (%d replaceable)\n", result.ColorLiterals, result.MatchedLiterals)
}

// PrintAdoptionProgress shows visual progress bar
func (r *VerboseReporter) PrintAdoptionProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Token Adoption", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.UsagePercentage)
}

// PrintQuickWins shows the most common replaceable literals
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	for i, win := range result.QuickWins {
		fmt.Fprintf(r.w, "%d. %q - %d occurrences → Use %s\n",
			i+1, win.Literal, win.Occurrences, win.Suggestion)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// PrintAuditTable prints one row per measured pair.
func (r *VerboseReporter) PrintAuditTable(result AuditResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan,
		fmt.Sprintf("Contrast Audit (%s, %s)", result.Scheme, result.Mode), r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	for _, p := range result.Pairs {
		style := StyleGreen
		switch {
		case p.Level == tokengen.LevelFail:
			style = StyleRed
		case p.Level == tokengen.LevelAALarge:
			style = StyleYellow
		}
		fmt.Fprintf(r.w, "%-12s on %-12s %6.2f:1  %s\n",
			p.Foreground, p.Background, p.Ratio, RenderStyle(style, p.Level.String(), r.useColors))
	}
}

// PrintPalette prints a swatch per role.
func (r *VerboseReporter) PrintPalette(palette tokengen.ColorPalette) {
	fmt.Fprintln(r.w, RenderStyle(StyleCyan,
		fmt.Sprintf("Palette (%s, %s)", palette.Scheme, palette.Mode), r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	for _, nc := range palette.Roles() {
		label := fmt.Sprintf("%-12s %s", nc.Role, nc.Color.CSS())
		fmt.Fprintln(r.w, Swatch(nc.Color, label, r.useColors))
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	fmt.Fprintf(w, "[%s%s] %.1f%%\n",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled), percentage)
}
