// Package cssvars writes design tokens to disk in several formats and checks
// stylesheets and templates against them.
package cssvars

import (
	"github.com/yacobolo/tokengen"
	"github.com/yacobolo/tokengen/internal/logger"
)

// Format is an artifact Generate can write.
type Format string

// Generated artifacts
const (
	FormatCSS    Format = "css"    // tokens.css
	FormatJSON   Format = "json"   // tokens.json
	FormatYAML   Format = "yaml"   // tokens.yaml
	FormatGo     Format = "go"     // tokens.gen.go
	FormatLayout Format = "layout" // layout.css
)

// Formats lists every artifact format in write order.
func Formats() []Format {
	return []Format{FormatCSS, FormatJSON, FormatYAML, FormatGo, FormatLayout}
}

// FileName is the file a format is written to inside the output directory.
func (f Format) FileName() string {
	switch f {
	case FormatCSS:
		return "tokens.css"
	case FormatJSON:
		return "tokens.json"
	case FormatYAML:
		return "tokens.yaml"
	case FormatGo:
		return "tokens.gen.go"
	case FormatLayout:
		return "layout.css"
	}
	return ""
}

// GenerateConfig holds generator configuration
type GenerateConfig struct {
	Seed        tokengen.HSLColor
	Scheme      tokengen.ColorScheme
	Mode        tokengen.ColorMode
	Prefix      string   // "sh"
	Selector    string   // ":root"
	OutputDir   string   // "web/styles/tokens"
	PackageName string   // "tokens", for tokens.gen.go
	Formats     []Format // empty means css only
	Logger      *logger.Logger
}

// Tokens builds the design tokens described by the config.
func (c GenerateConfig) Tokens() tokengen.DesignTokens {
	t := tokengen.NewWithMode(c.Seed, c.Scheme, c.Mode).WithPrefix(c.Prefix)
	if c.Selector != "" {
		t = t.WithSelector(c.Selector)
	}
	return t
}

// GenerateResult contains generation stats
type GenerateResult struct {
	TokensGenerated int
	Files           []string // paths written, in format order
}

// OutputFormat represents the lint and audit output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
