package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/yacobolo/tokengen"
	"github.com/yacobolo/tokengen/internal/cssvars"
)

const (
	defaultOutputDir = "web/styles/tokens"
	defaultPackage   = "tokens"
)

var (
	defaultScanPaths = []string{
		"web/**/*.css",
		"internal/**/*.templ",
		"internal/**/*.go",
	}

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return tokengen.IsValidIdentifier(fl.Field().String())
		})

		_ = v.RegisterValidation("seed_color", func(fl validator.FieldLevel) bool {
			_, err := tokengen.ParseHex(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// themeSettings selects the theme every command derives.
type themeSettings struct {
	Seed     string `validate:"omitempty,seed_color"` // empty uses tokengen.DefaultSeed
	Scheme   string `validate:"required,oneof=monochromatic analogous complementary triadic tetradic split-complementary"`
	Mode     string `validate:"required,oneof=light dark"`
	Prefix   string `validate:"omitempty,css_ident"`
	Selector string `validate:"required"`
}

type generateSettings struct {
	Theme     themeSettings
	OutputDir string   `validate:"required"`
	Package   string   `validate:"required,css_ident"`
	Formats   []string `validate:"min=1,dive,oneof=css json yaml go layout"`
}

func buildThemeSettings() themeSettings {
	return themeSettings{
		Seed:     getStringWithFallback("seed", "theme.seed", ""),
		Scheme:   normalizeName(getStringWithFallback("scheme", "theme.scheme", tokengen.DefaultScheme.String())),
		Mode:     normalizeName(getStringWithFallback("mode", "theme.mode", tokengen.Light.String())),
		Prefix:   getOptionalStringWithFallback("prefix", "theme.prefix", tokengen.DefaultPrefix),
		Selector: getStringWithFallback("selector", "theme.selector", tokengen.DefaultSelector),
	}
}

func buildGenerateSettings() generateSettings {
	formats := getStringsWithFallback("format", "generate.formats", []string{string(cssvars.FormatCSS)})
	for i, f := range formats {
		formats[i] = normalizeName(f)
	}

	return generateSettings{
		Theme:     buildThemeSettings(),
		OutputDir: getStringWithFallback("output-dir", "generate.output-dir", defaultOutputDir),
		Package:   getStringWithFallback("package", "generate.package", defaultPackage),
		Formats:   formats,
	}
}

// normalizeName lowercases an enum value and accepts underscores for dashes.
func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
}

// validateSettings runs struct validation and reports the first failing
// field by its lowercased path.
func validateSettings(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := strings.ToLower(strings.Join(strings.Split(ve.StructNamespace(), ".")[1:], "."))
		return fmt.Errorf("invalid config: %s=%v failed validation for tag '%s'", field, ve.Value(), ve.Tag())
	}
	return fmt.Errorf("invalid config: %w", err)
}

// tokens derives the design tokens. The settings must be valid.
func (s themeSettings) tokens() (tokengen.DesignTokens, error) {
	seed := tokengen.DefaultSeed
	if s.Seed != "" {
		parsed, err := tokengen.ParseHex(s.Seed)
		if err != nil {
			return tokengen.DesignTokens{}, err
		}
		seed = parsed
	}
	scheme, err := tokengen.ParseColorScheme(s.Scheme)
	if err != nil {
		return tokengen.DesignTokens{}, err
	}
	mode, err := tokengen.ParseColorMode(s.Mode)
	if err != nil {
		return tokengen.DesignTokens{}, err
	}

	t := tokengen.NewWithMode(seed, scheme, mode).WithPrefix(s.Prefix)
	if s.Selector != "" {
		t = t.WithSelector(s.Selector)
	}
	return t, nil
}

// loadTokens builds and validates the theme from the current configuration.
func loadTokens() (tokengen.DesignTokens, error) {
	settings := buildThemeSettings()
	if err := validateSettings(settings); err != nil {
		return tokengen.DesignTokens{}, err
	}
	return settings.tokens()
}

// buildGenerateConfig constructs the library's GenerateConfig from koanf state.
func buildGenerateConfig() (cssvars.GenerateConfig, error) {
	settings := buildGenerateSettings()
	if err := validateSettings(settings); err != nil {
		return cssvars.GenerateConfig{}, err
	}

	tokens, err := settings.Theme.tokens()
	if err != nil {
		return cssvars.GenerateConfig{}, err
	}

	formats := make([]cssvars.Format, len(settings.Formats))
	for i, f := range settings.Formats {
		formats[i] = cssvars.Format(f)
	}

	return cssvars.GenerateConfig{
		Seed:        tokens.Seed(),
		Scheme:      tokens.Palette().Scheme,
		Mode:        tokens.Palette().Mode,
		Prefix:      tokens.Prefix(),
		Selector:    tokens.Selector(),
		OutputDir:   settings.OutputDir,
		PackageName: settings.Package,
		Formats:     formats,
		Logger:      log,
	}, nil
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() cssvars.LintConfig {
	outputDir := getStringWithFallback("output-dir", "generate.output-dir", defaultOutputDir)

	return cssvars.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		TokensFile:         getStringWithFallback("tokens", "lint.tokens", filepath.Join(outputDir, cssvars.FormatCSS.FileName())),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Threshold:          getFloat64WithFallback("threshold", "lint.threshold", 0.0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             log,
	}
}
