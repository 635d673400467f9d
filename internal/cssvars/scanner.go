package cssvars

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/tokengen/internal/logger"
)

// ReferenceKind distinguishes token references from hardcoded colors.
type ReferenceKind int

const (
	RefVar   ReferenceKind = iota // var(--name)
	RefColor                      // #fff, rgb(...), hsl(...)
)

// Reference is a token use or a color literal found in a scanned file.
type Reference struct {
	Kind     ReferenceKind
	Value    string // "--sh-color-primary" or "#fff"
	Property string // declaration the reference sits in, "" when unknown
	Location FileLocation
}

// FileLocation tracks where a reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of the reference)
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// Patterns for non-CSS sources such as templ, html and Go files
	varRefPattern   = regexp.MustCompile(`var\(\s*(--[A-Za-z_][\w-]*)`)
	colorPattern    = regexp.MustCompile(`#[0-9a-fA-F]{6}\b|#[0-9a-fA-F]{3}\b|\b(?:rgba?|hsla?)\([^)]*\)`)
	propertyPattern = regexp.MustCompile(`([a-zA-Z-]+)\s*:\s*[^:;{}"'` + "`" + `]*$`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once.
// A missing .gitignore disables this filter.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Generated templ output is always skipped. Relative paths are also checked
// against the working directory's .gitignore.
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for token references and
// color literals.
func ScanFiles(scanPatterns []string, log *logger.Logger) ([]Reference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	log.WithFields(map[string]any{
		"scanned": stats.FilesScanned,
		"skipped": stats.FilesSkipped,
	}).Debug("expanded scan patterns")

	var allRefs []Reference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			log.With("file", file).Error(err, "skipping unreadable file")
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands globs and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file. Stylesheets go through the CSS lexer;
// everything else is scanned line by line.
func scanFile(filePath string) ([]Reference, error) {
	if strings.EqualFold(filepath.Ext(filePath), ".css") {
		return scanCSSFile(filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []Reference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

func scanCSSFile(filePath string) ([]Reference, error) {
	// #nosec G304 - path comes from the configured scan patterns
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	sheet, err := ParseTokenCSS(string(content), filePath)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(content), "\n")
	lineText := func(n int) string {
		if n < 1 || n > len(lines) {
			return ""
		}
		return strings.TrimRight(lines[n-1], "\r")
	}

	var refs []Reference
	for _, d := range sheet.Declarations {
		for _, r := range d.Refs {
			refs = append(refs, Reference{
				Kind:     RefVar,
				Value:    r.Name,
				Property: d.Property,
				Location: FileLocation{File: filePath, Line: r.Pos.Line, Column: r.Pos.Column, Text: lineText(r.Pos.Line)},
			})
		}
		if d.IsCustom() {
			// defining a custom property from a literal is allowed
			continue
		}
		for _, c := range d.Colors {
			refs = append(refs, Reference{
				Kind:     RefColor,
				Value:    c.Text,
				Property: d.Property,
				Location: FileLocation{File: filePath, Line: c.Pos.Line, Column: c.Pos.Column, Text: lineText(c.Pos.Line)},
			})
		}
	}
	return refs, nil
}

// extractFromLine finds references in one line of a non-CSS source.
func extractFromLine(line string, lineNum int, file string) []Reference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []Reference
	for _, m := range varRefPattern.FindAllStringSubmatchIndex(line, -1) {
		refs = append(refs, Reference{
			Kind:     RefVar,
			Value:    line[m[2]:m[3]],
			Property: propertyBefore(line, m[0]),
			Location: FileLocation{File: file, Line: lineNum, Column: m[0] + 1, Text: line},
		})
	}
	for _, m := range colorPattern.FindAllStringIndex(line, -1) {
		refs = append(refs, Reference{
			Kind:     RefColor,
			Value:    line[m[0]:m[1]],
			Property: propertyBefore(line, m[0]),
			Location: FileLocation{File: file, Line: lineNum, Column: m[0] + 1, Text: line},
		})
	}
	return refs
}

// propertyBefore returns the CSS property whose value contains position idx,
// as in style="color: #fff".
func propertyBefore(line string, idx int) string {
	m := propertyPattern.FindStringSubmatch(line[:idx])
	if m == nil {
		return ""
	}
	return strings.ToLower(m[1])
}

// GetRelativePath converts an absolute path to a path relative to the working
// directory when possible.
func GetRelativePath(absPath string) string {
	wd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(wd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return absPath
	}
	return rel
}
