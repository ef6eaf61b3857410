package textable

import (
	"fmt"
	"log/slog"
)

// Request describes one conversion. Exactly one of Path and Data must be set.
type Request struct {
	Format Format
	Path   string
	Data   any
}

// Validate checks the request without touching the source.
func (r Request) Validate() error {
	switch {
	case r.Path != "" && r.Data != nil:
		return fmt.Errorf("%w: give either a path or in-memory data, not both", ErrConfiguration)
	case r.Path == "" && r.Data == nil:
		return fmt.Errorf("%w: a path or in-memory data is required", ErrConfiguration)
	}
	if _, err := ParseFormat(string(r.Format)); err != nil {
		return err
	}
	return nil
}

// Load normalizes the request's source into a Table.
func Load(r Request) (*Table, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	format, _ := ParseFormat(string(r.Format))
	switch format {
	case JSON:
		if r.Path != "" {
			return loadJSONFile(r.Path)
		}
		return loadJSONData(r.Data)
	case CSV:
		if r.Path != "" {
			return loadCSVFile(r.Path)
		}
		return loadCSVData(r.Data)
	case XLSX:
		if r.Path != "" {
			return loadXLSXFile(r.Path)
		}
		return loadXLSXData(r.Data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, r.Format)
	}
}

// Option configures [Convert].
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for advisories. Default: [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Convert loads the request's source and renders it as a LaTeX table
// fragment. JSON conversions are experimental and log a warning on every call.
func Convert(r Request, opts ...Option) (string, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if format, err := ParseFormat(string(r.Format)); err == nil && format == JSON {
		o.logger.Warn("json conversion is experimental and may change or be removed",
			"format", format)
	}
	t, err := Load(r)
	if err != nil {
		return "", err
	}
	return Render(t)
}

// asTable returns data when the caller already supplied the tabular form.
func asTable(data any) (*Table, bool) {
	switch t := data.(type) {
	case *Table:
		return t, t != nil
	case Table:
		return &t, true
	default:
		return nil, false
	}
}

// normalizeTable copies t, converting cells to the types a Table holds.
func normalizeTable(t *Table) (*Table, error) {
	out := &Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]any, len(t.Rows)),
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrStructural, i, len(row), len(t.Columns))
		}
		cells := make([]any, len(row))
		for j, v := range row {
			c, err := normalizeCell(v)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i, t.Columns[j], err)
			}
			cells[j] = c
		}
		out.Rows[i] = cells
	}
	return out, nil
}

func unsupportedData(f Format, data any) error {
	return fmt.Errorf("%w: format %q cannot load in-memory %T", ErrConfiguration, f, data)
}
