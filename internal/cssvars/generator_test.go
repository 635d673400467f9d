package cssvars

import (
	"encoding/json"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yacobolo/tokengen"
)

func defaultGenerateConfig(dir string) GenerateConfig {
	return GenerateConfig{
		Seed:      tokengen.DefaultSeed,
		Scheme:    tokengen.DefaultScheme,
		Mode:      tokengen.Light,
		Prefix:    tokengen.DefaultPrefix,
		OutputDir: dir,
	}
}

func TestGenerateDefaultsToCSS(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "tokens")

	result, err := Generate(defaultGenerateConfig(dir))
	require.NoError(t, err)

	assert.Equal(t, len(tokengen.Default().Tokens()), result.TokensGenerated)
	assert.Equal(t, []string{filepath.Join(dir, "tokens.css")}, result.Files)

	content, err := os.ReadFile(result.Files[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "/* Code generated by tokengen. DO NOT EDIT. */"))
	assert.Contains(t, string(content), "--sh-color-primary: hsl(312, 35%, 33%);")
}

func TestGenerateAllFormats(t *testing.T) {
	dir := t.TempDir()
	config := defaultGenerateConfig(dir)
	// request order and case do not matter
	config.Formats = []Format{"LAYOUT", FormatGo, FormatYAML, FormatJSON, FormatCSS, FormatCSS}

	result, err := Generate(config)
	require.NoError(t, err)

	var names []string
	for _, f := range result.Files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"tokens.css", "tokens.json", "tokens.yaml", "tokens.gen.go", "layout.css"}, names)

	for _, f := range result.Files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.NotZero(t, info.Size(), f)
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	config := defaultGenerateConfig(t.TempDir())
	config.Formats = []Format{"toml"}

	_, err := Generate(config)
	assert.ErrorContains(t, err, `unknown format "toml"`)
}

func TestGenerateCustomSelector(t *testing.T) {
	dir := t.TempDir()
	config := defaultGenerateConfig(dir)
	config.Selector = "[data-theme=dark]"
	config.Mode = tokengen.Dark

	_, err := Generate(config)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "tokens.css"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[data-theme=dark] {\n")
}

func TestRenderJSON(t *testing.T) {
	tokens := tokengen.Default()
	out, err := RenderJSON(tokens)
	require.NoError(t, err)

	var doc struct {
		Version string           `json:"version"`
		Seed    string           `json:"seed"`
		Scheme  string           `json:"scheme"`
		Mode    string           `json:"mode"`
		Tokens  []tokengen.Token `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "1.0", doc.Version)
	assert.Equal(t, tokengen.DefaultSeed.Hex(), doc.Seed)
	assert.Equal(t, "monochromatic", doc.Scheme)
	assert.Equal(t, "light", doc.Mode)
	assert.Equal(t, tokens.Tokens(), doc.Tokens)
}

func TestRenderYAML(t *testing.T) {
	tokens := tokengen.Default()
	out, err := RenderYAML(tokens)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "# Code generated"))

	var doc tokenDocument
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, newTokenDocument(tokens), doc)
}

func TestRenderGo(t *testing.T) {
	src, err := RenderGo(tokengen.Default(), "theme")
	require.NoError(t, err)

	file, err := parser.ParseFile(token.NewFileSet(), "tokens.gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "theme", file.Name.Name)

	code := string(src)
	assert.Contains(t, code, "// Code generated by tokengen. DO NOT EDIT.")
	assert.Regexp(t, `ColorPrimary\s+= "--sh-color-primary"`, code)
	assert.Regexp(t, `FontSize2xl\s+= "--sh-font-size-2xl"`, code)
	assert.Regexp(t, `ColorPrimary:\s+"hsl\(312, 35%, 33%\)",`, code)
	assert.Contains(t, code, "\t// Shadow\n")
}

func TestRenderGoDefaultPackage(t *testing.T) {
	src, err := RenderGo(tokengen.Default().WithPrefix(""), "")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package tokens\n")
	assert.Regexp(t, `ColorPrimary\s+= "--color-primary"`, string(src))
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"--sh-color-primary", "sh", "ColorPrimary"},
		{"--sh-color-surface-alt", "sh", "ColorSurfaceAlt"},
		{"--sh-spacing-0", "sh", "Spacing0"},
		{"--color-primary", "", "ColorPrimary"},
		{"--ds-radius_lg", "ds", "RadiusLg"},
		{"--sh-2xl", "sh", "T2xl"},
		{"--other-color", "sh", "OtherColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toGoName(tt.name, tt.prefix))
		})
	}
}

func TestRenderLayout(t *testing.T) {
	out := RenderLayout("sh")
	assert.Contains(t, out, ".sh-container {")
	assert.Contains(t, out, ".sh-grid {")
	assert.Contains(t, out, "@media (min-width: 640px)")
}
