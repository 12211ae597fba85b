// File: cmd/flags.go
package cmd

import (
	"fmt"
)

// Shared command flags
var (
	cfgFile    string // Path to the config file
	formatFlag string // Common flag for output format (table/json/yaml)
	debugFlag  bool   // Emit debug logs on stderr
)

// validateFormat checks if the provided format is one of "table", "json" or "yaml"
func validateFormat(format string) error {
	if format != "table" && format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s. Valid options are 'table', 'json' or 'yaml'", format)
	}
	return nil
}

// initSharedFlags initializes flags that are shared across multiple commands
func initSharedFlags() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tunnelblickctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log debug output to stderr")
}
