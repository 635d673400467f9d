package cssvars

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/tokengen"
)

// Generate is the main entry point: it derives the tokens and writes every
// requested format into OutputDir.
func Generate(config GenerateConfig) (*GenerateResult, error) {
	log := config.Logger.With("dir", config.OutputDir)

	formats := config.Formats
	if len(formats) == 0 {
		formats = []Format{FormatCSS}
	}
	formats, err := normalizeFormats(formats)
	if err != nil {
		return nil, err
	}

	tokens := config.Tokens()
	result := &GenerateResult{TokensGenerated: len(tokens.Tokens())}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	for _, f := range formats {
		content, err := render(f, tokens, config)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}

		path := filepath.Join(config.OutputDir, f.FileName())
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		result.Files = append(result.Files, path)
		log.WithFields(map[string]any{"format": string(f), "path": path}).Debug("wrote file")
	}

	return result, nil
}

// normalizeFormats validates and deduplicates formats, keeping write order.
func normalizeFormats(formats []Format) ([]Format, error) {
	requested := make(map[Format]bool, len(formats))
	for _, f := range formats {
		f = Format(strings.ToLower(string(f)))
		if f.FileName() == "" {
			return nil, fmt.Errorf("unknown format %q", f)
		}
		requested[f] = true
	}

	var out []Format
	for _, f := range Formats() {
		if requested[f] {
			out = append(out, f)
		}
	}
	return out, nil
}

func render(f Format, tokens tokengen.DesignTokens, config GenerateConfig) ([]byte, error) {
	switch f {
	case FormatCSS:
		return []byte(RenderCSS(tokens)), nil
	case FormatJSON:
		return RenderJSON(tokens)
	case FormatYAML:
		return RenderYAML(tokens)
	case FormatGo:
		return RenderGo(tokens, config.PackageName)
	case FormatLayout:
		return []byte(RenderLayout(tokens.Prefix())), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

const generatedHeader = "Code generated by tokengen. DO NOT EDIT."

// RenderCSS is the custom property stylesheet.
func RenderCSS(tokens tokengen.DesignTokens) string {
	return "/* " + generatedHeader + " */\n\n" + tokens.CSSString()
}

// RenderLayout is the container and grid stylesheet.
func RenderLayout(prefix string) string {
	var b strings.Builder
	b.WriteString("/* " + generatedHeader + " */\n\n")
	b.WriteString(tokengen.ContainerCSS(prefix, tokengen.DefaultContainer()))
	b.WriteString("\n")
	b.WriteString(tokengen.GridCSS(prefix, tokengen.DefaultGrid()))
	return b.String()
}

// tokenDocument is the JSON and YAML export shape.
type tokenDocument struct {
	Version  string           `json:"version" yaml:"version"`
	Seed     string           `json:"seed" yaml:"seed"`
	Scheme   string           `json:"scheme" yaml:"scheme"`
	Mode     string           `json:"mode" yaml:"mode"`
	Prefix   string           `json:"prefix" yaml:"prefix"`
	Selector string           `json:"selector" yaml:"selector"`
	Tokens   []tokengen.Token `json:"tokens" yaml:"tokens"`
}

func newTokenDocument(tokens tokengen.DesignTokens) tokenDocument {
	return tokenDocument{
		Version:  "1.0",
		Seed:     tokens.Seed().Hex(),
		Scheme:   tokens.Palette().Scheme.String(),
		Mode:     tokens.Palette().Mode.String(),
		Prefix:   tokens.Prefix(),
		Selector: tokens.Selector(),
		Tokens:   tokens.Tokens(),
	}
}

// RenderJSON is the ordered token list as indented JSON.
func RenderJSON(tokens tokengen.DesignTokens) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, newTokenDocument(tokens)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderYAML is the ordered token list as YAML.
func RenderYAML(tokens tokengen.DesignTokens) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# " + generatedHeader + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newTokenDocument(tokens)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderGo is a gofmt'd Go file with one constant per custom property name
// and a map of every name to its value.
func RenderGo(tokens tokengen.DesignTokens, packageName string) ([]byte, error) {
	if packageName == "" {
		packageName = "tokens"
	}
	list := tokens.Tokens()

	var b strings.Builder
	fmt.Fprintf(&b, "// %s\n\n", generatedHeader)
	fmt.Fprintf(&b, "package %s\n\n", packageName)

	var group tokengen.Group
	b.WriteString("// Custom property names.\nconst (\n")
	for _, tok := range list {
		if tok.Group != group {
			if group != "" {
				b.WriteString("\n")
			}
			group = tok.Group
			fmt.Fprintf(&b, "\t// %s\n", capitalize(string(group)))
		}
		fmt.Fprintf(&b, "\t%s = %q\n", toGoName(tok.Name, tokens.Prefix()), tok.Name)
	}
	b.WriteString(")\n\n")

	b.WriteString("// AllTokens maps every custom property name to its value.\n")
	b.WriteString("var AllTokens = map[string]string{\n")
	for _, tok := range list {
		fmt.Fprintf(&b, "\t%s: %q,\n", toGoName(tok.Name, tokens.Prefix()), tok.Value)
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format generated go: %w", err)
	}
	return src, nil
}

// toGoName converts a custom property name to PascalCase, dropping the
// dashes and the prefix: --sh-color-primary → ColorPrimary.
func toGoName(name, prefix string) string {
	name = strings.TrimPrefix(name, "--")
	if prefix != "" {
		name = strings.TrimPrefix(name, prefix+"-")
	}

	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	for i, part := range parts {
		parts[i] = capitalize(part)
	}

	result := strings.Join(parts, "")
	if result == "" || unicode.IsDigit(rune(result[0])) {
		result = "T" + result
	}
	return result
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
