// File: cmd/tunnelblick_encoder.go
package cmd

import (
	"fmt"
	"strings"
)

// scriptTarget is the script object declared by the preamble.
const scriptTarget = "Tunnelblick"

// Encode renders the command as the call expression appended to the preamble.
// Launching uses the run idiom since the application may not be running yet.
func (c Command) Encode() string {
	if c.Kind == KindLaunch {
		return "run " + scriptTarget
	}

	args := c.Args()
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, quoteArg(arg))
	}
	return fmt.Sprintf("tell %s to %s(%s)", scriptTarget, c.Name(), strings.Join(quoted, ","))
}

// quoteArg renders s as an AppleScript string literal. Only the escapes the
// script compiler understands are produced; everything else is kept as is.
func quoteArg(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
