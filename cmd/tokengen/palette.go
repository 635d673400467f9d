package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/tokengen/internal/cssvars"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Preview the derived color palette",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		tokens, err := loadTokens()
		if err != nil {
			return err
		}

		useColors := cssvars.ShouldUseColors(getBoolWithFallback("color", "color", false))
		cssvars.NewVerboseReporter(cmd.OutOrStdout(), useColors).PrintPalette(tokens.Palette())
		return nil
	},
}

func init() {
	addThemeFlags(paletteCmd)
}
