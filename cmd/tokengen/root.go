package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokengen",
	Short: "Design token generator and linter",
	Long: `Derive a complete design token set from one seed color.
Colors, typography, spacing, radius and shadows are written as CSS custom
properties and checked against your stylesheets and templates.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console|json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// addThemeFlags registers the flags that select a theme.
func addThemeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("seed", "", "Seed color as hex (default: hsl(312, 35%, 33%))")
	f.String("scheme", "", "Color scheme: monochromatic|analogous|complementary|triadic|tetradic|split-complementary")
	f.String("mode", "", "Color mode: light|dark")
	f.String("prefix", "sh", "Custom property prefix, empty for bare names")
	f.String("selector", ":root", "Selector the custom properties are declared under")
}
