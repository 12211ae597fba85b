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

// Description:
// This file implements the `info` command, which reports the environment
// tunnelblickctl runs in: the host, the scripting interpreter and the
// Tunnelblick application it talks to.
//
// Output includes:
// - Host:
//   * Operating system, architecture, kernel and hostname
// - Client:
//   * CLI version and config file in use
//   * Interpreter name and resolved path
// - Application:
//   * Tunnelblick version, or the reason it could not be queried
//
// Note:
// - An unreachable application is reported in the document rather than
//   failing the command.
// - Output is YAML unless --format json is given.

package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

// EnvInfo contains the environment details collected by the info command.
type EnvInfo struct {
	// Version is the tunnelblickctl version.
	Version string `json:"version" yaml:"version"`

	// OS is the operating system name.
	OS string `json:"os" yaml:"os"`

	// Architecture is the system's CPU architecture.
	Architecture string `json:"architecture" yaml:"architecture"`

	// Kernel is the kernel release reported by uname.
	Kernel string `json:"kernel,omitempty" yaml:"kernel,omitempty"`

	// Hostname is the system's network name.
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`

	// ConfigFile is the config file that was read, if any.
	ConfigFile string `json:"config_file,omitempty" yaml:"config_file,omitempty"`

	// Interpreter is the configured interpreter name.
	Interpreter string `json:"interpreter" yaml:"interpreter"`

	// InterpreterPath is the interpreter resolved on PATH.
	// This field is omitted if the interpreter was not found.
	InterpreterPath string `json:"interpreter_path,omitempty" yaml:"interpreter_path,omitempty"`

	// AppVersion is the Tunnelblick version string.
	AppVersion string `json:"app_version,omitempty" yaml:"app_version,omitempty"`

	// Errors lists what could not be collected.
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// infoCmd represents the info command that reports the runtime environment.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display environment information",
	Long:  `Display host, interpreter and Tunnelblick version information.`,
	Args:  cobra.NoArgs,
	RunE: withRootFlags(func(cmd *cobra.Command, args []string) error {
		return RunInfo(cmd, args)
	}),
}

// getKernelVersion returns the kernel release by executing 'uname -r'.
func getKernelVersion() (string, error) {
	output, err := exec.Command("uname", "-r").Output()
	if err != nil {
		return "", fmt.Errorf("kernel: failed to retrieve version: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// getHostname returns the system's network hostname.
func getHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: failed to retrieve hostname: %w", err)
	}
	return hostname, nil
}

// gatherInfo collects the environment report. Failures are recorded in
// the report; the application is only queried when the interpreter exists.
func gatherInfo(cmd *cobra.Command) EnvInfo {
	info := EnvInfo{
		Version:      Version,
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
		ConfigFile:   cfg.File,
		Interpreter:  cfg.Interpreter,
	}

	if kernel, err := getKernelVersion(); err == nil {
		info.Kernel = kernel
	} else {
		info.Errors = append(info.Errors, err.Error())
	}
	if hostname, err := getHostname(); err == nil {
		info.Hostname = hostname
	} else {
		info.Errors = append(info.Errors, err.Error())
	}

	path, err := exec.LookPath(cfg.Interpreter)
	if err != nil {
		info.Errors = append(info.Errors, fmt.Sprintf("interpreter: %s not found", cfg.Interpreter))
		return info
	}
	info.InterpreterPath = path

	appVersion, err := client.Execute(cmd.Context(), GetVersion())
	if err != nil {
		logger.Debug("Application version unavailable", "error", err)
		info.Errors = append(info.Errors, fmt.Sprintf("app_version: %v", err))
		return info
	}
	info.AppVersion = strings.TrimSpace(appVersion)
	return info
}

// RunInfo gathers and displays the environment report. The table format
// has no tabular rendering here, so it falls back to YAML.
func RunInfo(cmd *cobra.Command, args []string) error {
	format := outputFormat
	if format == "table" {
		format = "yaml"
	}
	return renderDocument(cmd.OutOrStdout(), gatherInfo(cmd), format)
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
