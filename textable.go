package textable

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrConfiguration     = errors.New("invalid conversion request")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrSourceRead        = errors.New("cannot read source")
	ErrStructural        = errors.New("malformed table")
)

// Format represents an input source format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

var formats = []Format{JSON, CSV, XLSX}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported source formats.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: no extension on %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// UnmarshalText implements [encoding.TextUnmarshaler] so a Format can be read
// from config files.
func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Table is the tabular form every source is normalized into.
//
// Loaders fill cells with nil, string, bool, int64 or float64; other Go
// integer and float types are accepted too. Every row must have exactly
// len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Validate reports whether t satisfies the rectangular invariant and holds
// only scalar cells.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrStructural)
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrStructural, i, len(row), len(t.Columns))
		}
		for j, cell := range row {
			if _, err := normalizeCell(cell); err != nil {
				return fmt.Errorf("row %d column %q: %w", i, t.Columns[j], err)
			}
		}
	}
	return nil
}

