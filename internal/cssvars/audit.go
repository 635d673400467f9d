package cssvars

import (
	"fmt"

	"github.com/yacobolo/tokengen"
)

// AuditConfig selects the theme to check.
type AuditConfig struct {
	Tokens tokengen.DesignTokens
	Strict bool // fail on warnings as well as errors
}

// ContrastPair is one foreground role measured against one surface role.
type ContrastPair struct {
	Foreground tokengen.Role          `json:"foreground"`
	Background tokengen.Role          `json:"background"`
	FgColor    tokengen.HSLColor      `json:"-"`
	BgColor    tokengen.HSLColor      `json:"-"`
	Ratio      float64                `json:"ratio"`
	Level      tokengen.ContrastLevel `json:"-"`
}

// AuditResult holds every measured pair and the issues they raised.
type AuditResult struct {
	Mode   tokengen.ColorMode
	Scheme tokengen.ColorScheme
	Pairs  []ContrastPair
	Issues []Issue
}

// textRoles must stay legible even as large text.
var textRoles = map[tokengen.Role]bool{tokengen.RoleText: true, tokengen.RoleTextMuted: true}

// Audit checks every foreground role against every surface role. Pairs below
// AA are warnings; text roles below the large-text minimum are errors.
func Audit(config AuditConfig) (*AuditResult, error) {
	palette := config.Tokens.Palette()
	result := &AuditResult{Mode: palette.Mode, Scheme: palette.Scheme}

	for _, fgRole := range tokengen.ForegroundRoles() {
		fg, ok := palette.Color(fgRole)
		if !ok {
			return nil, fmt.Errorf("palette has no %s role", fgRole)
		}
		for _, bgRole := range tokengen.SurfaceRoles() {
			bg, ok := palette.Color(bgRole)
			if !ok {
				return nil, fmt.Errorf("palette has no %s role", bgRole)
			}

			ratio := fg.ContrastRatio(bg)
			pair := ContrastPair{
				Foreground: fgRole,
				Background: bgRole,
				FgColor:    fg,
				BgColor:    bg,
				Ratio:      ratio,
				Level:      tokengen.LevelForRatio(ratio),
			}
			result.Pairs = append(result.Pairs, pair)

			if issue, ok := pairIssue(config.Tokens, pair); ok {
				result.Issues = append(result.Issues, issue)
			}
		}
	}

	return result, nil
}

func pairIssue(tokens tokengen.DesignTokens, pair ContrastPair) (Issue, bool) {
	if pair.Ratio >= tokengen.ContrastAA {
		return Issue{}, false
	}

	severity := SeverityWarning
	target, threshold := "AA", tokengen.ContrastAA
	if textRoles[pair.Foreground] && pair.Ratio < tokengen.ContrastAALarge {
		severity = SeverityError
		target, threshold = "AA Large", tokengen.ContrastAALarge
	}

	return Issue{
		FromLinter: LinterContrast,
		Severity:   severity,
		Text: fmt.Sprintf(IssueLowContrast,
			tokens.ColorVar(pair.Foreground), tokens.ColorVar(pair.Background), pair.Ratio, target, threshold),
		Pos: IssuePos{Filename: FormatCSS.FileName()},
	}, true
}

// Failed reports whether the audit should fail the run.
func (r *AuditResult) Failed(strict bool) bool {
	errors, warnings := countSeverities(r.Issues)
	return errors > 0 || (strict && warnings > 0)
}
