package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .tokengen.yaml config file",
	Long:  `Create a .tokengen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# tokengen configuration
# Docs: https://github.com/yacobolo/tokengen

# Shared settings
verbose: false
log-format: console  # console | json

# Theme derived by generate, audit and palette
theme:
  seed: ""           # hex seed color, empty for the built-in default
  scheme: monochromatic
  mode: light        # light | dark
  prefix: sh
  selector: ":root"

# Generation settings
generate:
  output-dir: web/styles/tokens
  package: tokens    # package name for tokens.gen.go
  formats:
    - css            # css | json | yaml | go | layout
  lint: false

# Linting settings
lint:
  paths:
    - "web/**/*.css"
    - "internal/**/*.templ"
    - "internal/**/*.go"
  tokens: ""         # default: <generate.output-dir>/tokens.css
  strict: false
  threshold: 0.0
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Contrast audit settings
audit:
  strict: false
  output-format: full      # issues | summary | full | json
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
