// Package loader reads the station, position and booking source files into
// the in-memory tables the engine works on. Schema tolerance for
// heterogeneous upstream exporters lives here: each semantic column has one
// canonical name plus a short ordered alias list, resolved once per file.
// The engine never sees raw rows.
package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSVRows reads a CSV file into header-keyed rows. A UTF-8 BOM is
// stripped and files that are not valid UTF-8 are re-decoded as Latin-1,
// matching the encodings seen from the upstream exporters.
func readCSVRows(path string) ([]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		decoded, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				row[name] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// pick returns the first non-empty value among the alias columns.
func pick(row map[string]string, aliases ...string) string {
	for _, a := range aliases {
		if v := strings.TrimSpace(row[a]); v != "" {
			return v
		}
	}
	return ""
}

// parseFloat parses a decimal value, tolerating a decimal comma.
func parseFloat(value string) (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", value)
	}
	return f, nil
}

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp parses the timestamp formats produced by the upstream
// exporters. Values without a zone offset are taken as UTC.
func parseTimestamp(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return t, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}
