package cssvars

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lintTokensCSS = `:root {
  --sh-color-primary: #3366cc;
  --sh-color-text: hsl(0, 0%, 0%);
  --sh-color-border: #3366cc;
  --sh-spacing-1: 4px;
}
.self { color: var(--sh-missing); }
`

const lintAppCSS = `.btn {
  color: var(--sh-colr-primary);
  background: #3366CC;
  border-color: #abcdef;
  padding: var(--sh-spacing-1);
}
.card { color: #3366cc; width: 10px; }
`

func setupLintProject(t *testing.T) (dir, tokensFile string) {
	t.Helper()
	dir = t.TempDir()
	tokensFile = writeFile(t, dir, "tokens.css", lintTokensCSS)
	writeFile(t, dir, "app.css", lintAppCSS)
	return dir, tokensFile
}

func TestLint(t *testing.T) {
	dir, tokensFile := setupLintProject(t)

	result, err := Lint(LintConfig{
		ScanPaths:  []string{filepath.Join(dir, "*.css")},
		TokensFile: tokensFile,
		Threshold:  50,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalTokens)
	assert.Equal(t, 1, result.TokensUsed)
	assert.InDelta(t, 25.0, result.UsagePercentage, 0.001)
	assert.Equal(t, []string{"--sh-color-primary", "--sh-color-text", "--sh-color-border"}, result.UnusedTokens)
	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 2, result.VarReferences)
	assert.Equal(t, 1, result.UndefinedRefs)
	assert.Equal(t, 3, result.ColorLiterals)
	assert.Equal(t, 2, result.MatchedLiterals)

	require.Len(t, result.Issues, 3)

	undefined := result.Issues[0]
	assert.Equal(t, SeverityError, undefined.Severity)
	assert.Equal(t, LinterTokens, undefined.FromLinter)
	assert.Equal(t, `undefined token "--sh-colr-primary" (did you mean --sh-color-primary?)`, undefined.Text)
	assert.Equal(t, IssuePos{Filename: filepath.Join(dir, "app.css"), Line: 2, Column: 10}, undefined.Pos)
	require.NotNil(t, undefined.Replacement)
	assert.Equal(t, "--sh-color-primary", undefined.Replacement.NewText)
	assert.Equal(t, []string{"  color: var(--sh-colr-primary);"}, undefined.SourceLines)

	hardcoded := result.Issues[1]
	assert.Equal(t, SeverityWarning, hardcoded.Severity)
	assert.Equal(t, `hardcoded color "#3366CC" should use var(--sh-color-primary)`, hardcoded.Text)
	require.NotNil(t, hardcoded.Replacement)
	assert.Equal(t, "var(--sh-color-primary)", hardcoded.Replacement.NewText)
	assert.Equal(t, 7, hardcoded.Replacement.InlineLength)

	assert.Equal(t, 7, result.Issues[2].Pos.Line)

	assert.Equal(t, []string{"token usage 25.0% is below threshold 50.0%"}, result.Warnings)
	assert.Equal(t, []QuickWin{
		{Literal: "#3366CC", Occurrences: 1, Suggestion: "var(--sh-color-primary)"},
		{Literal: "#3366cc", Occurrences: 1, Suggestion: "var(--sh-color-primary)"},
	}, result.QuickWins)

	assert.True(t, result.Failed(false))
}

func TestLintStrictReportsUnmatchedColors(t *testing.T) {
	dir, tokensFile := setupLintProject(t)

	result, err := Lint(LintConfig{
		ScanPaths:  []string{filepath.Join(dir, "app.css")},
		TokensFile: tokensFile,
		Strict:     true,
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 4)
	info := result.Issues[2]
	assert.Equal(t, SeverityInfo, info.Severity)
	assert.Equal(t, `hardcoded color "#abcdef" has no matching token`, info.Text)
	assert.Nil(t, info.Replacement)
}

func TestLintErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Lint(LintConfig{TokensFile: filepath.Join(dir, "missing.css")})
	assert.ErrorContains(t, err, "load tokens")

	empty := writeFile(t, dir, "empty.css", "/* nothing */")
	_, err = Lint(LintConfig{TokensFile: empty})
	assert.ErrorContains(t, err, "no custom properties")
}

func TestLintFailed(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		strict bool
		want   bool
	}{
		{"clean", LintResult{}, true, false},
		{"warnings only", LintResult{Issues: []Issue{{Severity: SeverityWarning}}}, false, false},
		{"warnings strict", LintResult{Issues: []Issue{{Severity: SeverityWarning}}}, true, true},
		{"threshold strict", LintResult{Warnings: []string{"low usage"}}, true, true},
		{"error", LintResult{Issues: []Issue{{Severity: SeverityError}}}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Failed(tt.strict))
		})
	}
}

func TestLimitIssues(t *testing.T) {
	var issues []Issue
	for i := 0; i < 5; i++ {
		issues = append(issues, Issue{FromLinter: LinterTokens, Text: "same"})
	}
	for i := 0; i < 3; i++ {
		issues = append(issues, Issue{FromLinter: LinterTokens, Text: fmt.Sprintf("distinct %d", i)})
	}
	issues = append(issues, Issue{FromLinter: LinterContrast, Text: "contrast"})

	t.Run("unlimited", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{})
		assert.Len(t, got, 9)
		assert.Zero(t, truncated)
	})

	t.Run("max same issues", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 2})
		assert.Len(t, got, 6)
		assert.Equal(t, 3, truncated)
	})

	t.Run("max per linter", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 4})
		assert.Len(t, got, 5)
		assert.Equal(t, 4, truncated)
		assert.Equal(t, LinterContrast, got[4].FromLinter)
	})

	t.Run("both", func(t *testing.T) {
		got, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 6, MaxSameIssues: 1})
		assert.Len(t, got, 3)
		assert.Equal(t, 6, truncated)
	})
}

func TestGenerateQuickWinsTopTen(t *testing.T) {
	counts := make(map[string]int)
	names := make(map[string]string)
	for i := 0; i < 12; i++ {
		lit := fmt.Sprintf("#%06x", i)
		counts[lit] = i + 1
		names[lit] = "--sh-c"
	}

	wins := generateQuickWins(counts, names)
	require.Len(t, wins, 10)
	assert.Equal(t, "#00000b", wins[0].Literal)
	assert.Equal(t, 12, wins[0].Occurrences)
	assert.Equal(t, "var(--sh-c)", wins[0].Suggestion)
}
