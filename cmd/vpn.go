// File: cmd/vpn.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	connectAllFlag    bool
	disconnectAllFlag bool
)

var connectCmd = &cobra.Command{
	Use:   "connect [VPN]",
	Short: "Connect a VPN configuration",
	Long: `Connect a single VPN configuration by name, or every configuration with --all:
  tunnelblickctl connect "Office VPN"
  tunnelblickctl connect --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		command, err := selectCommand(args, connectAllFlag, Connect, ConnectAll)
		if err != nil {
			return err
		}
		return runCommand(cmd, command)
	}),
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect [VPN]",
	Short: "Disconnect a VPN configuration",
	Long: `Disconnect a single VPN configuration by name, or every configuration with --all:
  tunnelblickctl disconnect "Office VPN"
  tunnelblickctl disconnect --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		command, err := selectCommand(args, disconnectAllFlag, Disconnect, DisconnectAll)
		if err != nil {
			return err
		}
		return runCommand(cmd, command)
	}),
}

var quitCmd = &cobra.Command{
	Use:   "quit",
	Short: "Quit Tunnelblick",
	Args:  cobra.NoArgs,
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, Quit())
	}),
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Launch Tunnelblick",
	Args:  cobra.NoArgs,
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, Launch())
	}),
}

// selectCommand picks the all-configurations form when all is set, even if
// a name was given as well.
func selectCommand(args []string, all bool, one func(string) Command, every func() Command) (Command, error) {
	if all {
		return every(), nil
	}
	if len(args) != 1 {
		return Command{}, fmt.Errorf("please specify a VPN or --all")
	}
	return one(args[0]), nil
}

// runCommand sends command and prints the reply unchanged apart from
// trailing newlines.
func runCommand(cmd *cobra.Command, command Command) error {
	reply, err := client.Execute(cmd.Context(), command)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(reply, "\n"))
	return nil
}

func init() {
	connectCmd.Flags().BoolVarP(&connectAllFlag, "all", "a", false, "Connect all configurations")
	disconnectCmd.Flags().BoolVarP(&disconnectAllFlag, "all", "a", false, "Disconnect all configurations")

	rootCmd.AddCommand(connectCmd, disconnectCmd, quitCmd, launchCmd)
}
