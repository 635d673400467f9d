package cssvars

// Issue represents a single violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "tokenlint"
	Text        string       `json:"Text"`        // "undefined token \"--sh-colr-primary\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/app.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the reference)
}

// Replacement provides a fix suggestion
type Replacement struct {
	NewText      string // "var(--sh-color-primary)"
	InlineLength int    // Length of text to replace
}

// Linter names
const (
	LinterTokens   = "tokenlint"
	LinterContrast = "contrast"
)

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue messages
const (
	IssueUndefinedToken  = "undefined token %q"
	IssueHardcodedColor  = "hardcoded color %q should use var(%s)"
	IssueUnmatchedColor  = "hardcoded color %q has no matching token"
	IssueLowContrast     = "%s on %s has contrast %.2f:1, below %s (%.1f:1)"
	IssueUnusedThreshold = "token usage %.1f%% is below threshold %.1f%%"
)

// countSeverities tallies errors and warnings.
func countSeverities(issues []Issue) (errors, warnings int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
