// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point and base configuration for the `tunnelblickctl` CLI.
// It defines the root command (`rootCmd`), loads the configuration shared by every
// subcommand and builds the client that talks to Tunnelblick through osascript.
//
// Features:
// - Serves as the primary entry point for the `tunnelblickctl` CLI application.
// - Defines global flags (--config, --format, --debug).
// - Handles the --version and --complete flags, on the root or any subcommand.
//
// Usage:
// - Run the `tunnelblickctl` command without any arguments to see the help message:
//   `./tunnelblickctl`
// - Connect a VPN:
//   `./tunnelblickctl connect "Office VPN"`
//
// Authors:
// - tunnelblickctl contributors

package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is the CLI version, set at link time with
// -ldflags "-X github.com/edespino/tunnelblickctl/cmd.Version=<version>".
var Version = "dev"

//go:embed tunnelblickctl.bash
var completionScript string

var (
	versionFlag  bool
	completeFlag string
)

// State shared by subcommands, populated by setup before any RunE.
var (
	cfg          *Config
	outputFormat string
	logger       Logger = NewLogger(io.Discard, false)
	client       *Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tunnelblickctl",
	Short: "Command-line control for Tunnelblick",
	Long: `The tunnelblickctl CLI drives the Tunnelblick VPN manager through
its scripting interface. It can connect and disconnect VPN configurations,
list them, report their status and start or quit the application.

Examples:
  - Show the state of every configuration:
    ./tunnelblickctl status

  - Connect all configurations:
    ./tunnelblickctl connect --all

  - Load bash completion:
    source <(./tunnelblickctl --complete bash)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Completion output is static and must work with a broken config.
		if cmd.Flags().Changed("complete") && !versionFlag {
			return nil
		}
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This function is called by main.main() to start the application.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration and builds the client used by every command.
// Flags given on the command line take precedence over the config file.
func setup(cmd *cobra.Command) error {
	config, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	format := config.Format
	if formatFlag != "" {
		format = formatFlag
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	l := NewLogger(cmd.ErrOrStderr(), debugFlag || config.Debug)
	l.Debug("Config loaded", "file", config.File, "interpreter", config.Interpreter, "format", format)

	c := NewClient(cmdExecutor, config.Interpreter, l)
	if config.Script != "" {
		if err := c.LoadScript(config.Script); err != nil {
			return err
		}
		l.Debug("Preamble loaded", "path", config.Script)
	}

	cfg, outputFormat, logger, client = config, format, l, c
	return nil
}

// withRootFlags lets --version and --complete take over any subcommand.
func withRootFlags(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if versionFlag || cmd.Flags().Changed("complete") {
			return runRoot(cmd)
		}
		return run(cmd, args)
	}
}

// runRoot handles --version and --complete, falling back to the help text.
func runRoot(cmd *cobra.Command) error {
	if versionFlag {
		text, err := versionString(cmd)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	}

	if cmd.Flags().Changed("complete") {
		fmt.Fprint(cmd.OutOrStdout(), complete(completeFlag))
		return nil
	}

	return cmd.Help()
}

// versionString reports the CLI version and the version of the running
// Tunnelblick application.
func versionString(cmd *cobra.Command) (string, error) {
	appVersion, err := client.Execute(cmd.Context(), GetVersion())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s\nTunnelblick %s\n", cmd.Root().Name(), Version, strings.TrimSpace(appVersion)), nil
}

// complete returns the completion script. A single script serves every shell.
func complete(shell string) string {
	return completionScript
}

// init initializes the root command by defining global flags and configurations.
func init() {
	initSharedFlags()
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVar(&versionFlag, "version", false, "Print the CLI and Tunnelblick versions")
	rootCmd.PersistentFlags().StringVar(&completeFlag, "complete", "", "Print the completion script for `shell`")
}
