// File: cmd/output.go
package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// renderDocument writes v as indented JSON or as YAML.
func renderDocument(w io.Writer, v interface{}, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("output: failed to generate: %w", err)
	}

	_, err = w.Write(data)
	return err
}
