package cssvars

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sahilm/fuzzy"

	"github.com/yacobolo/tokengen/internal/logger"
)

// LintConfig holds linting configuration
type LintConfig struct {
	ScanPaths  []string // Patterns to scan (e.g., "web/**/*.css", "web/**/*.templ")
	TokensFile string   // Path to the generated tokens.css
	Strict     bool     // Report unmatched colors and fail on any issue
	Threshold  float64  // Minimum token usage percentage, 0 disables

	// golangci-style configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (tokenlint) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)

	Logger *logger.Logger
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	TotalTokens     int     // custom properties defined in the tokens file
	TokensUsed      int     // distinct defined tokens referenced at least once
	UsagePercentage float64 // TokensUsed / TotalTokens
	UnusedTokens    []string

	FilesScanned    int
	FilesSkipped    int
	VarReferences   int // var(--x) uses found
	UndefinedRefs   int // var(--x) uses of unknown tokens
	ColorLiterals   int // hardcoded colors on color properties
	MatchedLiterals int // hardcoded colors equal to a token's value

	// Issues in golangci-lint format
	Issues         []Issue
	TruncatedCount int // Issues removed due to limits

	// Summary
	Warnings  []string
	QuickWins []QuickWin // most frequent replaceable literals
}

// QuickWin is a hardcoded color that appears often and has a token.
type QuickWin struct {
	Literal     string
	Occurrences int
	Suggestion  string // "var(--sh-color-primary)"
}

// tokenIndex is the lookup data built from the tokens file.
type tokenIndex struct {
	values map[string]string // name -> value
	names  []string          // definition order
	byHex  map[string]string // normalized color -> first token name
}

func buildTokenIndex(sheet *Sheet) *tokenIndex {
	idx := &tokenIndex{
		values: sheet.CustomProperties(),
		names:  sheet.CustomPropertyNames(),
		byHex:  make(map[string]string),
	}
	for _, name := range idx.names {
		hex, err := NormalizeColor(idx.values[name])
		if err != nil {
			continue
		}
		if _, taken := idx.byHex[hex]; !taken {
			idx.byHex[hex] = name
		}
	}
	return idx
}

// suggest returns the defined token closest to an unknown name, or "".
func (idx *tokenIndex) suggest(name string) string {
	matches := fuzzy.Find(name, idx.names)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// Lint checks the scanned files against the tokens file.
func Lint(config LintConfig) (*LintResult, error) {
	log := config.Logger.With("tokens", config.TokensFile)

	sheet, err := ParseTokenFile(config.TokensFile)
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}
	idx := buildTokenIndex(sheet)
	if len(idx.names) == 0 {
		return nil, fmt.Errorf("no custom properties defined in %s", config.TokensFile)
	}
	log.With("count", len(idx.names)).Debug("loaded tokens")

	refs, stats, err := ScanFiles(config.ScanPaths, config.Logger)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	result := analyzeReferences(idx, excludeFile(refs, config.TokensFile), config.Strict)
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped

	if config.Threshold > 0 && result.UsagePercentage < config.Threshold {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf(IssueUnusedThreshold, result.UsagePercentage, config.Threshold))
	}

	sortIssues(result.Issues)
	result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)

	log.WithFields(map[string]any{
		"files":  result.FilesScanned,
		"issues": len(result.Issues),
	}).Debug("lint complete")

	return result, nil
}

// excludeFile drops references found in the tokens file itself.
func excludeFile(refs []Reference, path string) []Reference {
	clean := filepath.Clean(path)
	out := refs[:0:0]
	for _, r := range refs {
		if filepath.Clean(r.Location.File) != clean {
			out = append(out, r)
		}
	}
	return out
}

func analyzeReferences(idx *tokenIndex, refs []Reference, strict bool) *LintResult {
	result := &LintResult{TotalTokens: len(idx.names)}
	used := make(map[string]bool)
	literalCounts := make(map[string]int)
	literalTokens := make(map[string]string)

	for _, ref := range refs {
		switch ref.Kind {
		case RefVar:
			result.VarReferences++
			if _, ok := idx.values[ref.Value]; ok {
				used[ref.Value] = true
				continue
			}
			result.UndefinedRefs++
			issue := newIssue(ref, SeverityError, fmt.Sprintf(IssueUndefinedToken, ref.Value))
			if s := idx.suggest(ref.Value); s != "" {
				issue.Text += fmt.Sprintf(" (did you mean %s?)", s)
				issue.Replacement = &Replacement{NewText: s, InlineLength: len(ref.Value)}
			}
			result.Issues = append(result.Issues, issue)

		case RefColor:
			if !isColorProperty(ref.Property) {
				continue
			}
			result.ColorLiterals++

			hex, err := NormalizeColor(ref.Value)
			name := ""
			if err == nil {
				name = idx.byHex[hex]
			}
			if name != "" {
				result.MatchedLiterals++
				literalCounts[ref.Value]++
				literalTokens[ref.Value] = name
				issue := newIssue(ref, SeverityWarning, fmt.Sprintf(IssueHardcodedColor, ref.Value, name))
				issue.Replacement = &Replacement{NewText: "var(" + name + ")", InlineLength: len(ref.Value)}
				result.Issues = append(result.Issues, issue)
				continue
			}
			if strict {
				result.Issues = append(result.Issues,
					newIssue(ref, SeverityInfo, fmt.Sprintf(IssueUnmatchedColor, ref.Value)))
			}
		}
	}

	result.TokensUsed = len(used)
	if result.TotalTokens > 0 {
		result.UsagePercentage = float64(result.TokensUsed) / float64(result.TotalTokens) * 100
	}
	for _, name := range idx.names {
		if !used[name] {
			result.UnusedTokens = append(result.UnusedTokens, name)
		}
	}
	result.QuickWins = generateQuickWins(literalCounts, literalTokens)

	return result
}

func newIssue(ref Reference, severity, text string) Issue {
	issue := Issue{
		FromLinter: LinterTokens,
		Text:       text,
		Severity:   severity,
		Pos: IssuePos{
			Filename: ref.Location.File,
			Line:     ref.Location.Line,
			Column:   ref.Location.Column,
		},
	}
	if ref.Location.Text != "" {
		issue.SourceLines = []string{ref.Location.Text}
	}
	return issue
}

// generateQuickWins ranks replaceable literals by frequency, top 10.
func generateQuickWins(counts map[string]int, tokens map[string]string) []QuickWin {
	wins := make([]QuickWin, 0, len(counts))
	for literal, count := range counts {
		wins = append(wins, QuickWin{
			Literal:     literal,
			Occurrences: count,
			Suggestion:  "var(" + tokens[literal] + ")",
		})
	}

	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Literal < wins[j].Literal
	})

	if len(wins) > 10 {
		wins = wins[:10]
	}
	return wins
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 {
		issues = capPerLinter(issues, config.MaxIssuesPerLinter)
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

func capPerLinter(issues []Issue, limit int) []Issue {
	counts := make(map[string]int)
	var filtered []Issue
	for _, issue := range issues {
		if counts[issue.FromLinter] < limit {
			filtered = append(filtered, issue)
			counts[issue.FromLinter]++
		}
	}
	return filtered
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// Failed reports whether the result should fail the run: any error, or any
// issue at all in strict mode.
func (r *LintResult) Failed(strict bool) bool {
	errors, _ := countSeverities(r.Issues)
	if errors > 0 {
		return true
	}
	return strict && (len(r.Issues) > 0 || len(r.Warnings) > 0)
}
