// File: cmd/status_parser.go
package cmd

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrDecode is returned when a status reply cannot be decoded.
var ErrDecode = errors.New("failed to decode status")

// parseStatus decodes the status reply into records in arrival order.
// Any malformed row fails the whole reply.
func parseStatus(raw string) ([]ConfigurationRecord, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = len(statusColumns)
	reader.TrimLeadingSpace = true

	records := make([]ConfigurationRecord, 0)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		record, err := decodeRecord(fields)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d: %w", ErrDecode, line, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// decodeRecord maps the positional fields of one row.
func decodeRecord(fields []string) (ConfigurationRecord, error) {
	bytesIn, err := parseCounter(fields[3])
	if err != nil {
		return ConfigurationRecord{}, fmt.Errorf("bytesin: %w", err)
	}
	bytesOut, err := parseCounter(fields[4])
	if err != nil {
		return ConfigurationRecord{}, fmt.Errorf("bytesout: %w", err)
	}
	return ConfigurationRecord{
		Autoconnect: fields[0],
		State:       fields[1],
		Name:        fields[2],
		BytesIn:     bytesIn,
		BytesOut:    bytesOut,
	}, nil
}

func parseCounter(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(s), 10, 64)
}
