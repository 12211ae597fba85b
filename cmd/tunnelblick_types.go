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

// File: cmd/tunnelblick_types.go
// Purpose: Type definitions for talking to Tunnelblick: the commands the
// preamble script understands and the configuration records reported by
// the status command.

package cmd

// CommandKind identifies one of the handlers exposed by the preamble script.
type CommandKind int

const (
	KindConnect CommandKind = iota
	KindConnectAll
	KindDisconnect
	KindDisconnectAll
	KindGetConfigurations
	KindGetStatus
	KindQuit
	KindLaunch
	KindGetVersion
)

// Command is a single request to Tunnelblick. Build one with the
// constructors below; the zero value is KindConnect with an empty name.
type Command struct {
	Kind CommandKind
	VPN  string
}

// Connect connects the configuration named vpn.
func Connect(vpn string) Command { return Command{Kind: KindConnect, VPN: vpn} }

// ConnectAll connects every configuration.
func ConnectAll() Command { return Command{Kind: KindConnectAll} }

// Disconnect disconnects the configuration named vpn.
func Disconnect(vpn string) Command { return Command{Kind: KindDisconnect, VPN: vpn} }

// DisconnectAll disconnects every configuration.
func DisconnectAll() Command { return Command{Kind: KindDisconnectAll} }

// GetConfigurations lists the configuration names.
func GetConfigurations() Command { return Command{Kind: KindGetConfigurations} }

// GetStatus reports the state of every configuration.
func GetStatus() Command { return Command{Kind: KindGetStatus} }

// Quit quits Tunnelblick.
func Quit() Command { return Command{Kind: KindQuit} }

// Launch starts Tunnelblick.
func Launch() Command { return Command{Kind: KindLaunch} }

// GetVersion asks Tunnelblick for its version string.
func GetVersion() Command { return Command{Kind: KindGetVersion} }

// Name returns the handler name invoked in the preamble script.
func (c Command) Name() string {
	switch c.Kind {
	case KindConnect:
		return "connect"
	case KindConnectAll:
		return "connectAll"
	case KindDisconnect:
		return "disconnect"
	case KindDisconnectAll:
		return "disconnectAll"
	case KindGetConfigurations:
		return "getConfigurations"
	case KindGetStatus:
		return "showStatus"
	case KindQuit:
		return "quit"
	case KindLaunch:
		return "run"
	case KindGetVersion:
		return "getVersion"
	}
	return ""
}

// Args returns the handler arguments in call order.
func (c Command) Args() []string {
	switch c.Kind {
	case KindConnect, KindDisconnect:
		return []string{c.VPN}
	}
	return nil
}

// Aligned reports whether the reply should be column aligned by the bridge.
func (c Command) Aligned() bool {
	return c.Kind == KindGetStatus
}

// ConfigurationRecord is one row of the status reply.
type ConfigurationRecord struct {
	Autoconnect string `json:"autoconnect" yaml:"autoconnect"`
	State       string `json:"state" yaml:"state"`
	Name        string `json:"name" yaml:"name"`
	BytesIn     uint64 `json:"bytesin" yaml:"bytesin"`
	BytesOut    uint64 `json:"bytesout" yaml:"bytesout"`
}

// statusColumns is the positional layout of a status row.
var statusColumns = []string{"autoconnect", "state", "name", "bytesin", "bytesout"}
