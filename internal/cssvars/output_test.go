package cssvars

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tokengen"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputIssues},
		{"issues", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"FULL", false, OutputFull},
		{"json", false, OutputJSON},
		{"json", true, OutputIssues},
		{"bogus", false, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	result := &LintResult{
		TotalTokens:     2,
		TokensUsed:      1,
		UsagePercentage: 50,
		FilesScanned:    1,
		Issues: []Issue{{
			FromLinter:  LinterTokens,
			Text:        `undefined token "--sh-colr"`,
			Severity:    SeverityError,
			SourceLines: []string{"color: var(--sh-colr);"},
			Pos:         IssuePos{Filename: "app.css", Line: 4, Column: 8},
			Replacement: &Replacement{NewText: "--sh-color", InlineLength: 9},
		}},
		TruncatedCount: 3,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputJSON, LintConfig{}))

	var got JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "1.0", got.Version)
	assert.NotEmpty(t, got.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 1, Errors: 1, Truncated: 3, FilesScanned: 1}, got.Summary)
	assert.Equal(t, 50.0, got.Stats.UsagePercentage)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, JSONIssue{
		File:       "app.css",
		Line:       4,
		Column:     8,
		Severity:   "error",
		Message:    `undefined token "--sh-colr"`,
		Linter:     "tokenlint",
		Source:     "color: var(--sh-colr);",
		Suggestion: "--sh-color",
	}, got.Issues[0])

	// empty lists are arrays, never null
	assert.Contains(t, buf.String(), `"unused_tokens": []`)
	assert.Contains(t, buf.String(), `"quick_wins": []`)
	assert.Contains(t, buf.String(), `"warnings": []`)
}

func TestWriteOutputIssues(t *testing.T) {
	result := &LintResult{
		Issues:   sampleIssues()[1:2],
		Warnings: []string{"token usage 10.0% is below threshold 50.0%"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, result, OutputIssues, LintConfig{PrintLinterName: true}))

	out := buf.String()
	assert.Contains(t, out, `a.css:1:10: `)
	assert.Contains(t, out, "1 issue:\n* tokenlint: 1\n")
	assert.Contains(t, out, "token usage 10.0% is below threshold 50.0%")
	assert.NotContains(t, out, "Token Linter Statistics")
}

func TestWriteOutputSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, &LintResult{TotalTokens: 3}, OutputSummary, LintConfig{}))

	out := buf.String()
	assert.Contains(t, out, "Tokens Defined:       3")
	assert.NotContains(t, out, "issues")
}

func TestWriteAuditJSON(t *testing.T) {
	result, err := Audit(AuditConfig{Tokens: tokengen.Default()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAuditOutput(&buf, result, OutputJSON, false))

	var got JSONAuditOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "monochromatic", got.Scheme)
	assert.Equal(t, "light", got.Mode)
	require.Len(t, got.Pairs, len(result.Pairs))
	assert.Equal(t, "text", got.Pairs[0].Foreground)
	assert.Equal(t, "background", got.Pairs[0].Background)
	assert.Equal(t, result.Pairs[0].FgColor.Hex(), got.Pairs[0].FgHex)
	assert.Equal(t, len(result.Issues), got.Summary.TotalIssues)
}

func TestWriteAuditOutputFull(t *testing.T) {
	result, err := Audit(AuditConfig{Tokens: tokengen.Default()})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAuditOutput(&buf, result, OutputFull, false))

	assert.Contains(t, buf.String(), "Contrast Audit (monochromatic, light)")
	assert.Contains(t, buf.String(), pluralizeCount(len(result.Issues), "issue", "issues"))
}
