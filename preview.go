package textable

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// BorderStyle controls preview border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// ParseBorder parses a border style name: "rounded", "ascii" or "none".
func ParseBorder(s string) (BorderStyle, error) {
	switch strings.ToLower(s) {
	case "rounded", "":
		return BorderRounded, nil
	case "ascii":
		return BorderASCII, nil
	case "none":
		return BorderNone, nil
	default:
		return 0, fmt.Errorf("unknown border style %q", s)
	}
}

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// PreviewOption configures [WritePreview].
type PreviewOption func(*previewConfig)

type previewConfig struct {
	border      BorderStyle
	maxWidth    int
	headerStyle func(string) string
}

// WithBorder sets the border style. Default: BorderRounded.
func WithBorder(b BorderStyle) PreviewOption {
	return func(c *previewConfig) { c.border = b }
}

// WithMaxWidth truncates cells wider than n with "...". Zero means no limit.
func WithMaxWidth(n int) PreviewOption {
	return func(c *previewConfig) { c.maxWidth = n }
}

// WithHeaderStyle wraps each padded header cell, e.g. to make it bold. It
// runs after padding so escape codes never affect widths.
func WithHeaderStyle(fn func(string) string) PreviewOption {
	return func(c *previewConfig) { c.headerStyle = fn }
}

// WritePreview draws t as a terminal table. Cells show the same text the
// LaTeX fragment would, before escaping.
func WritePreview(w io.Writer, t *Table, opts ...PreviewOption) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cfg := previewConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellText(cell)
		}
		rows[i] = cells
	}

	widths := computeWidths(t.Columns, rows)
	if cfg.maxWidth > 0 {
		for i := range widths {
			if widths[i] > cfg.maxWidth {
				widths[i] = cfg.maxWidth
			}
		}
	}

	if bc, ok := borderSets[cfg.border]; ok {
		return renderBorderedTable(w, bc, t.Columns, rows, widths, cfg.headerStyle)
	}
	return renderPlainTable(w, t.Columns, rows, widths, cfg.headerStyle)
}

func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// --- Plain table (BorderNone) ---

func renderPlainTable(w io.Writer, header []string, rows [][]string, widths []int, headerStyle func(string) string) error {
	if len(header) == 0 {
		return nil
	}
	if err := writePlainRow(w, header, widths, headerStyle); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writePlainRow(w, row, widths, nil); err != nil {
			return err
		}
	}
	return nil
}

func writePlainRow(w io.Writer, cells []string, widths []int, style func(string) string) error {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = formatCell(cells[i], width)
		if style != nil {
			parts[i] = style(parts[i])
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// --- Bordered table ---

func renderBorderedTable(w io.Writer, bc borderChars, header []string, rows [][]string, widths []int, headerStyle func(string) string) error {
	if len(header) == 0 {
		return nil
	}
	if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, bc.vertical, headerStyle); err != nil {
		return err
	}
	if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
		return err
	}
	for _, row := range rows {
		if err := drawBorderedRow(w, row, widths, bc.vertical, nil); err != nil {
			return err
		}
	}
	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, vert string, style func(string) string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range widths {
		formatted := formatCell(cells[i], width)
		if style != nil {
			formatted = style(formatted)
		}
		sb.WriteString(" ")
		sb.WriteString(formatted)
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// formatCell truncates s to width and left-aligns it.
func formatCell(s string, width int) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
