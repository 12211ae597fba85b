// File: cmd/command.go
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Bridge failure classes. Every one of them is fatal to the invocation.
var (
	ErrSpawn  = errors.New("couldn't spawn interpreter")
	ErrWrite  = errors.New("couldn't write to interpreter stdin")
	ErrRead   = errors.New("couldn't read interpreter stdout")
	ErrScript = errors.New("script failed")
)

// Commander interface for command execution
type Commander interface {
	ExecuteWithInput(ctx context.Context, input string, name string, args ...string) ([]byte, error)
}

// RealCommander executes actual system commands
type RealCommander struct{}

// ExecuteWithInput starts name with piped stdin and stdout, writes input,
// closes stdin and only then drains stdout. The interpreter does not start
// producing its reply until it has seen end of input, so the order matters.
func (c RealCommander) ExecuteWithInput(ctx context.Context, input string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSpawn, name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSpawn, name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrSpawn, name, err)
	}

	if _, err := io.WriteString(stdin, input); err != nil {
		stdin.Close()
		_ = cmd.Wait()
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := stdin.Close(); err != nil {
		_ = cmd.Wait()
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	output, err := io.ReadAll(stdout)
	if err != nil {
		_ = cmd.Wait()
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	if err := cmd.Wait(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return output, fmt.Errorf("%w: %s", ErrScript, msg)
	}
	return output, nil
}

// Default commander instance
var cmdExecutor Commander = RealCommander{}

// SetCommander allows changing the commander for tests
func SetCommander(c Commander) {
	cmdExecutor = c
}
