// File: cmd/tunnelblick_client_test.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock command executor for testing
type MockCommander struct {
	Outputs []string
	Errors  []error
	index   int
	cmds    []string
	inputs  []string
}

func (m *MockCommander) ExecuteWithInput(ctx context.Context, input string, name string, args ...string) ([]byte, error) {
	m.cmds = append(m.cmds, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	m.inputs = append(m.inputs, input)

	if m.index >= len(m.Outputs) {
		return nil, fmt.Errorf("unexpected call %d", m.index)
	}
	output := m.Outputs[m.index]
	var err error
	if m.index < len(m.Errors) {
		err = m.Errors[m.index]
	}
	m.index++
	return []byte(output), err
}

func (m *MockCommander) GetCommands() []string {
	return m.cmds
}

func (m *MockCommander) GetInputs() []string {
	return m.inputs
}

func newTestClient(mock Commander) *Client {
	return NewClient(mock, "osascript", NewLogger(io.Discard, true))
}

func TestClientExecute(t *testing.T) {
	tests := []struct {
		name        string
		command     Command
		reply       string
		expected    string
		expectedCmd string
	}{
		{
			name:        "connect",
			command:     Connect("Office VPN"),
			reply:       "true\n",
			expected:    "true\n",
			expectedCmd: `tell Tunnelblick to connect("Office VPN")`,
		},
		{
			name:        "list is not aligned",
			command:     GetConfigurations(),
			reply:       "a\tb\nccc\td\n",
			expected:    "a\tb\nccc\td\n",
			expectedCmd: `tell Tunnelblick to getConfigurations()`,
		},
		{
			name:        "status reply is returned unchanged",
			command:     GetStatus(),
			reply:       "yes,connected,Office\tHQ,1,2\n",
			expected:    "yes,connected,Office\tHQ,1,2\n",
			expectedCmd: `tell Tunnelblick to showStatus()`,
		},
		{
			name:        "launch",
			command:     Launch(),
			reply:       "true\n",
			expected:    "true\n",
			expectedCmd: `run Tunnelblick`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockCommander{Outputs: []string{tt.reply}}
			client := newTestClient(mock)

			reply, err := client.Execute(context.Background(), tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reply)

			require.Len(t, mock.GetCommands(), 1)
			assert.Equal(t, "osascript -", mock.GetCommands()[0])

			script := mock.GetInputs()[0]
			assert.True(t, strings.HasPrefix(script, preambleScript), "script must start with the preamble")
			assert.True(t, strings.HasSuffix(script, "\n"+tt.expectedCmd), "script must end with the call expression")
		})
	}
}

func TestClientExecuteFailure(t *testing.T) {
	mock := &MockCommander{
		Outputs: []string{""},
		Errors:  []error{fmt.Errorf("%w osascript: executable file not found", ErrSpawn)},
	}
	client := newTestClient(mock)

	reply, err := client.Execute(context.Background(), GetStatus())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSpawn)
	assert.Empty(t, reply)
}

func TestClientLoadScript(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.applescript")
	require.NoError(t, os.WriteFile(path, []byte("-- custom preamble"), 0644))

	mock := &MockCommander{Outputs: []string{"true\n"}}
	client := newTestClient(mock)
	require.NoError(t, client.LoadScript(path))

	_, err := client.Execute(context.Background(), Quit())
	require.NoError(t, err)
	assert.Equal(t, "-- custom preamble\ntell Tunnelblick to quit()", mock.GetInputs()[0])

	err = client.LoadScript(filepath.Join(tmpDir, "missing.applescript"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read script")
}

func TestPreambleDeclaresHandlers(t *testing.T) {
	assert.Contains(t, preambleScript, "script "+scriptTarget)
	for _, c := range []Command{Connect("x"), ConnectAll(), Disconnect("x"), DisconnectAll(), GetConfigurations(), GetStatus(), Quit(), GetVersion()} {
		assert.Contains(t, preambleScript, "on "+c.Name()+"(", c.Name())
	}
	assert.Contains(t, preambleScript, "on run")
}

func TestAlignColumns(t *testing.T) {
	aligned, err := alignColumns("a\tb\nccc\td\n")
	require.NoError(t, err)
	assert.Equal(t, "a    b\nccc  d\n", aligned)
}

func TestStatusNameWithTabSurvivesBridge(t *testing.T) {
	mock := &MockCommander{Outputs: []string{"yes,connected,Office\tHQ,1,2\n"}}
	client := newTestClient(mock)

	reply, err := client.Execute(context.Background(), GetStatus())
	require.NoError(t, err)

	records, err := parseStatus(reply)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Office\tHQ", records[0].Name)
	assert.Equal(t, uint64(1), records[0].BytesIn)
	assert.Equal(t, uint64(2), records[0].BytesOut)
}

func TestAlignColumnsLeavesUntabbedTextUnchanged(t *testing.T) {
	raw := "yes,connected,\"Office, HQ\",1024,2048\nno,disconnected,Home,0,0\n"
	aligned, err := alignColumns(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, aligned)
}
