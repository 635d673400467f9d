package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so rootCmd can be executed
// repeatedly in one process.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			var vals []string
			if def := strings.Trim(f.DefValue, "[]"); def != "" {
				vals = strings.Split(def, ",")
			}
			_ = sv.Replace(vals)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// inTempDir runs the test from a fresh working directory.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}

func exitCode(err error) int {
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return -1
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := runCLI(t, "generate",
		"--output-dir", dir,
		"--format", "css,json,go",
		"--seed", "#3366cc",
		"--scheme", "triadic",
		"--package", "theme",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated files in "+dir)
	assert.Contains(t, out, "Tokens generated: ")

	css, err := os.ReadFile(filepath.Join(dir, "tokens.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ":root {")
	assert.Contains(t, string(css), "--sh-color-primary: hsl(220")

	goSrc, err := os.ReadFile(filepath.Join(dir, "tokens.gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(goSrc), "package theme")

	_, err = os.Stat(filepath.Join(dir, "tokens.json"))
	require.NoError(t, err)
}

func TestGenerateCommandInvalidSeed(t *testing.T) {
	_, err := runCLI(t, "gen", "--output-dir", t.TempDir(), "--seed", "not-a-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.seed")
}

func TestGenerateCommandQuiet(t *testing.T) {
	out, err := runCLI(t, "generate", "--quiet", "--output-dir", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRootDelegatesToGenerate(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(".tokengen.yaml", []byte("generate:\n  output-dir: out\n  formats: [css, layout]\n"), 0o644))

	_, err := runCLI(t)
	require.NoError(t, err)

	for _, name := range []string{"tokens.css", "layout.css"} {
		_, err := os.Stat(filepath.Join(dir, "out", name))
		assert.NoError(t, err, name)
	}
}

func setupLintFixture(t *testing.T, css string) string {
	t.Helper()
	dir := t.TempDir()
	_, err := runCLI(t, "generate", "--quiet", "--output-dir", dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte(css), 0o644))
	return dir
}

func TestLintCommandClean(t *testing.T) {
	dir := setupLintFixture(t, ".btn { color: var(--sh-color-primary); }\n")

	out, err := runCLI(t, "lint",
		"--output-dir", dir,
		"--paths", filepath.Join(dir, "*.css"),
	)
	require.NoError(t, err)
	assert.Contains(t, out, "0 issues:")
}

func TestLintCommandUndefinedTokenFails(t *testing.T) {
	dir := setupLintFixture(t, ".btn { color: var(--sh-color-primry); }\n")

	out, err := runCLI(t, "lint",
		"--tokens", filepath.Join(dir, "tokens.css"),
		"--paths", filepath.Join(dir, "app.css"),
	)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, `undefined token "--sh-color-primry" (did you mean --sh-color-primary?)`)
	assert.Contains(t, out, "(tokenlint)")
}

func TestLintCommandStrictFailsOnUnmatchedColor(t *testing.T) {
	dir := setupLintFixture(t, ".btn { color: #123457; }\n")
	args := []string{"lint", "--output-dir", dir, "--paths", filepath.Join(dir, "app.css"), "--output-format", "json"}

	out, err := runCLI(t, args...)
	require.NoError(t, err, "unmatched colors are only reported in strict mode")

	var report struct {
		Summary struct {
			TotalIssues  int `json:"total_issues"`
			FilesScanned int `json:"files_scanned"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 0, report.Summary.TotalIssues)
	assert.Equal(t, 1, report.Summary.FilesScanned)

	out, err = runCLI(t, append(args, "--strict")...)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, `hardcoded color \"#123457\" has no matching token`)
}

func TestLintCommandMissingTokens(t *testing.T) {
	_, err := runCLI(t, "lint", "--tokens", filepath.Join(t.TempDir(), "nope.css"))
	require.Error(t, err)
	assert.Equal(t, -1, exitCode(err))
	assert.Contains(t, err.Error(), "lint failed")
}

func TestGenerateWithLint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte(".a { padding: var(--sh-spacing-2); }\n"), 0o644))

	out, err := runCLI(t, "generate", "--output-dir", dir, "--lint")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated files in")
	assert.Contains(t, out, "issues:")
}

func TestAuditCommand(t *testing.T) {
	out, err := runCLI(t, "audit", "--output-format", "json", "--mode", "dark")
	require.NoError(t, err)

	var report struct {
		Mode  string `json:"mode"`
		Pairs []struct {
			Foreground string  `json:"foreground"`
			Ratio      float64 `json:"ratio"`
		} `json:"pairs"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "dark", report.Mode)
	assert.Len(t, report.Pairs, 27)
	assert.Equal(t, "text", report.Pairs[0].Foreground)
}

func TestAuditCommandTable(t *testing.T) {
	out, err := runCLI(t, "audit", "--scheme", "complementary")
	require.NoError(t, err)
	assert.Contains(t, out, "Contrast Audit (complementary, light)")
}

func TestAuditCommandInvalidMode(t *testing.T) {
	_, err := runCLI(t, "audit", "--mode", "sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mode")
}

func TestPaletteCommand(t *testing.T) {
	out, err := runCLI(t, "palette", "--seed", "#3366cc")
	require.NoError(t, err)
	assert.Contains(t, out, "Palette (monochromatic, light)")
	assert.Contains(t, out, "primary")
	assert.Contains(t, out, "text-muted")
}

func TestInvalidLogFormat(t *testing.T) {
	_, err := runCLI(t, "palette", "--log-format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log format")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	inTempDir(t)

	_, err := runCLI(t, "init")
	require.NoError(t, err)

	// Verify file was created
	data, err := os.ReadFile(".tokengen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "theme:")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")
}

func TestInitCommand_ConfigIsValid(t *testing.T) {
	inTempDir(t)

	_, err := runCLI(t, "init")
	require.NoError(t, err)

	resetKoanf()
	require.NoError(t, loadConfigFromPath(".tokengen.yaml"))
	_, err = buildGenerateConfig()
	require.NoError(t, err)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	inTempDir(t)

	// Create existing file
	require.NoError(t, os.WriteFile(".tokengen.yaml", []byte("existing"), 0o644))

	_, err := runCLI(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	inTempDir(t)

	// Create existing file
	require.NoError(t, os.WriteFile(".tokengen.yaml", []byte("existing"), 0o644))

	_, err := runCLI(t, "init", "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(".tokengen.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "scheme: monochromatic")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tokengen dev\n", out)
}

func TestCompletionCommand(t *testing.T) {
	out, err := runCLI(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "tokengen")

	_, err = runCLI(t, "completion", "tcsh")
	assert.Error(t, err)
}
