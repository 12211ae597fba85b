// File: cmd/status.go
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

var headerFlag bool

// statusCmd reports every configuration with its state and byte counters.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of every VPN configuration",
	Long: `Show autoconnect setting, state, name and byte counters of every
VPN configuration, one per line in the order Tunnelblick reports them:
  tunnelblickctl status
  tunnelblickctl status --format json`,
	Args: cobra.NoArgs,
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		reply, err := client.Execute(cmd.Context(), GetStatus())
		if err != nil {
			return err
		}
		records, err := parseStatus(reply)
		if err != nil {
			return err
		}
		logger.Debug("Status decoded", "records", len(records))
		return printStatus(cmd.OutOrStdout(), records, outputFormat, headerFlag)
	}),
}

// listCmd prints the configuration names.
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List VPN configurations",
	Args:    cobra.NoArgs,
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		reply, err := client.Execute(cmd.Context(), GetConfigurations())
		if err != nil {
			return err
		}
		names := parseNames(reply)
		if outputFormat != "table" {
			return renderDocument(cmd.OutOrStdout(), names, outputFormat)
		}
		out := cmd.OutOrStdout()
		for _, name := range names {
			if _, err := out.Write([]byte(name + "\n")); err != nil {
				return err
			}
		}
		return nil
	}),
}

// parseNames splits the list reply into one name per non-empty line.
func parseNames(reply string) []string {
	names := make([]string, 0)
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}

func init() {
	statusCmd.Flags().BoolVar(&headerFlag, "header", false, "Print a header row (table format only)")
	rootCmd.AddCommand(statusCmd, listCmd)
}
