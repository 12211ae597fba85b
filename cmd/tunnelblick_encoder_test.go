// File: cmd/tunnelblick_encoder_test.go
package cmd

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEncode(t *testing.T) {
	tests := []struct {
		name     string
		command  Command
		expected string
	}{
		{"connect", Connect("Office"), `tell Tunnelblick to connect("Office")`},
		{"connect with space", Connect("Office VPN"), `tell Tunnelblick to connect("Office VPN")`},
		{"connect all", ConnectAll(), `tell Tunnelblick to connectAll()`},
		{"disconnect", Disconnect("Office VPN"), `tell Tunnelblick to disconnect("Office VPN")`},
		{"disconnect all", DisconnectAll(), `tell Tunnelblick to disconnectAll()`},
		{"list", GetConfigurations(), `tell Tunnelblick to getConfigurations()`},
		{"status", GetStatus(), `tell Tunnelblick to showStatus()`},
		{"quit", Quit(), `tell Tunnelblick to quit()`},
		{"version", GetVersion(), `tell Tunnelblick to getVersion()`},
		{"launch", Launch(), `run Tunnelblick`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.command.Encode())
		})
	}
}

func TestCommandEncodeEscapesArguments(t *testing.T) {
	tests := []struct {
		name     string
		vpn      string
		expected string
	}{
		{"quote", `Office "main"`, `tell Tunnelblick to connect("Office \"main\"")`},
		{"backslash", `a\b`, `tell Tunnelblick to connect("a\\b")`},
		{"breakout attempt", `x") & do shell script ("rm`, `tell Tunnelblick to connect("x\") & do shell script (\"rm")`},
		{"newline", "a\nb", `tell Tunnelblick to connect("a\nb")`},
		{"unicode", "Büro", `tell Tunnelblick to connect("Büro")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Connect(tt.vpn).Encode()
			assert.Equal(t, tt.expected, encoded)
			assert.NotContains(t, encoded, "\n", "encoded call must stay on one line")
		})
	}
}

func TestQuoteArgRoundTrip(t *testing.T) {
	names := []string{
		"Office",
		"Office VPN",
		"home-lab_01",
		`with "quotes"`,
		`back\slash`,
		"tab\there",
		"",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			unquoted, err := strconv.Unquote(quoteArg(name))
			require.NoError(t, err)
			assert.Equal(t, name, unquoted)
		})
	}
}

func TestCommandAligned(t *testing.T) {
	assert.True(t, GetStatus().Aligned())
	for _, c := range []Command{Connect("x"), ConnectAll(), Disconnect("x"), DisconnectAll(), GetConfigurations(), Quit(), Launch(), GetVersion()} {
		assert.False(t, c.Aligned(), c.Name())
	}
}
