package cssvars

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured lint export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
	Warnings  []string       `json:"warnings"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains token usage statistics
type JSONStats struct {
	TotalTokens     int      `json:"total_tokens"`
	TokensUsed      int      `json:"tokens_used"`
	UsagePercentage float64  `json:"usage_percentage"`
	UnusedTokens    []string `json:"unused_tokens"`
	VarReferences   int      `json:"var_references"`
	UndefinedRefs   int      `json:"undefined_references"`
	ColorLiterals   int      `json:"color_literals"`
	MatchedLiterals int      `json:"matched_literals"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Linter     string `json:"linter"`
	Source     string `json:"source,omitempty"`     // Optional source line
	Suggestion string `json:"suggestion,omitempty"` // Optional replacement text
}

// JSONQuickWin represents a frequently hardcoded, replaceable color
type JSONQuickWin struct {
	Literal     string `json:"literal"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion"`
}

// JSONAuditOutput is the contrast audit export schema
type JSONAuditOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Scheme    string      `json:"scheme"`
	Mode      string      `json:"mode"`
	Summary   JSONSummary `json:"summary"`
	Pairs     []JSONPair  `json:"pairs"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONPair is one measured foreground/background pair
type JSONPair struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	FgHex      string  `json:"fg_hex"`
	BgHex      string  `json:"bg_hex"`
	Ratio      float64 `json:"ratio"`
	Level      string  `json:"level"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	return encodeJSON(w, buildJSONOutput(result))
}

// WriteAuditJSON writes the audit result as JSON
func WriteAuditJSON(w io.Writer, result *AuditResult) error {
	return encodeJSON(w, buildAuditJSONOutput(result))
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func convertIssues(issues []Issue) []JSONIssue {
	jsonIssues := make([]JSONIssue, len(issues))
	for i, issue := range issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		suggestion := ""
		if issue.Replacement != nil {
			suggestion = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:       issue.Pos.Filename,
			Line:       issue.Pos.Line,
			Column:     issue.Pos.Column,
			Severity:   issue.Severity,
			Message:    issue.Text,
			Linter:     issue.FromLinter,
			Source:     source,
			Suggestion: suggestion,
		}
	}
	return jsonIssues
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	errors, warnings := countSeverities(result.Issues)

	wins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		wins[i] = JSONQuickWin{
			Literal:     win.Literal,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}

	unused := result.UnusedTokens
	if unused == nil {
		unused = []string{}
	}
	warningList := result.Warnings
	if warningList == nil {
		warningList = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TotalTokens:     result.TotalTokens,
			TokensUsed:      result.TokensUsed,
			UsagePercentage: result.UsagePercentage,
			UnusedTokens:    unused,
			VarReferences:   result.VarReferences,
			UndefinedRefs:   result.UndefinedRefs,
			ColorLiterals:   result.ColorLiterals,
			MatchedLiterals: result.MatchedLiterals,
		},
		Issues:    convertIssues(result.Issues),
		QuickWins: wins,
		Warnings:  warningList,
	}
}

func buildAuditJSONOutput(result *AuditResult) JSONAuditOutput {
	errors, warnings := countSeverities(result.Issues)

	pairs := make([]JSONPair, len(result.Pairs))
	for i, p := range result.Pairs {
		pairs[i] = JSONPair{
			Foreground: string(p.Foreground),
			Background: string(p.Background),
			FgHex:      p.FgColor.Hex(),
			BgHex:      p.BgColor.Hex(),
			Ratio:      p.Ratio,
			Level:      p.Level.String(),
		}
	}

	return JSONAuditOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Scheme:    result.Scheme.String(),
		Mode:      result.Mode.String(),
		Summary: JSONSummary{
			TotalIssues: len(result.Issues),
			Errors:      errors,
			Warnings:    warnings,
		},
		Pairs:  pairs,
		Issues: convertIssues(result.Issues),
	}
}
