package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengen/internal/cssvars"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate design tokens from a seed color",
	Long: `Derive the palette, scales and layout rules from one seed color and write
them as CSS custom properties, JSON, YAML or Go constants.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	addThemeFlags(generateCmd)
	f := generateCmd.Flags()
	f.String("output-dir", defaultOutputDir, "Output directory for generated files")
	f.StringSlice("format", []string{"css"}, "Formats to write: css,json,yaml,go,layout")
	f.String("package", defaultPackage, "Go package name for tokens.gen.go")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	result, err := cssvars.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated files in %s\n", config.OutputDir)
		fmt.Fprintf(out, "  Tokens generated: %d\n", result.TokensGenerated)
		for _, f := range result.Files {
			fmt.Fprintf(out, "  %s\n", cssvars.GetRelativePath(f))
		}
	}

	// Run lint after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint(cmd)
	}

	return nil
}
