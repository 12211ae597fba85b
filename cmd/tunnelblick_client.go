// File: cmd/tunnelblick_client.go
package cmd

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"text/tabwriter"
)

// preambleScript declares the Tunnelblick script object every command is sent to.
//
//go:embed tunnelblick.applescript
var preambleScript string

// Client sends commands to Tunnelblick through the scripting interpreter.
type Client struct {
	commander   Commander
	interpreter string
	script      string
	logger      Logger
}

// NewClient returns a client using the compiled-in preamble.
func NewClient(commander Commander, interpreter string, logger Logger) *Client {
	return &Client{
		commander:   commander,
		interpreter: interpreter,
		script:      preambleScript,
		logger:      logger,
	}
}

// LoadScript replaces the preamble with the contents of path.
func (c *Client) LoadScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script %s: %w", path, err)
	}
	c.script = string(data)
	return nil
}

// compileScript appends the encoded command to the preamble.
func (c *Client) compileScript(command Command) string {
	return c.script + "\n" + command.Encode()
}

// Execute runs command and returns the interpreter's reply byte for byte.
// Replies of aligned commands are also logged in column-aligned form; the
// aligned copy is never returned since tab expansion rewrites field values.
func (c *Client) Execute(ctx context.Context, command Command) (string, error) {
	script := c.compileScript(command)
	c.logger.Debug("Sending command", "interpreter", c.interpreter, "command", command.Name(), "script_bytes", len(script))

	output, err := c.commander.ExecuteWithInput(ctx, script, c.interpreter, "-")
	if err != nil {
		c.logger.Debug("Command failed", "command", command.Name(), "error", err)
		return "", err
	}
	c.logger.Debug("Received reply", "command", command.Name(), "reply_bytes", len(output))

	reply := string(output)
	if command.Aligned() {
		aligned, err := alignColumns(reply)
		if err != nil {
			return "", err
		}
		c.logger.Debug("Aligned reply", "command", command.Name(), "reply", aligned)
	}
	return reply, nil
}

// alignColumns expands tab separated cells into padded columns. Text without
// tabs passes through unchanged.
func alignColumns(text string) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	if _, err := w.Write([]byte(text)); err != nil {
		return "", fmt.Errorf("failed to align reply: %w", err)
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("failed to align reply: %w", err)
	}
	return buf.String(), nil
}
