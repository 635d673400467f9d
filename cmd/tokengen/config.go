package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/tokengen/internal/logger"
)

const defaultConfigFile = ".tokengen.yaml"

var (
	k   = koanf.New(".")
	log *logger.Logger
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	if err := k.Load(changedFlags(cmd.Flags()), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return setupLogger()
}

// changedFlags exposes only the flags given on the command line, so flag
// defaults never shadow values from the file or environment.
func changedFlags(fs *pflag.FlagSet) *posflag.Posflag {
	return posflag.ProviderWithFlag(fs, ".", nil, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	})
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (TOKENGEN_* prefix)
	if err := k.Load(env.Provider("TOKENGEN_", ".", func(s string) string {
		// TOKENGEN_THEME_SEED -> theme.seed
		// TOKENGEN_LINT_STRICT -> lint.strict
		// TOKENGEN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TOKENGEN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// setupLogger builds the diagnostic logger from the verbose and log-format
// settings.
func setupLogger() error {
	opts, err := logger.OptionsFor(
		getBoolWithFallback("verbose", "verbose", false),
		getStringWithFallback("log-format", "log-format", logger.FormatConsole),
	)
	if err != nil {
		return err
	}
	l, err := logger.New(opts)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	log = l
	return nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getOptionalStringWithFallback is getStringWithFallback for settings where
// an explicit empty string is meaningful.
func getOptionalStringWithFallback(flagKey, configKey, defaultVal string) string {
	if k.Exists(flagKey) {
		return k.String(flagKey)
	}
	if k.Exists(configKey) {
		return k.String(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
