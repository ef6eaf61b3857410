package textable

import (
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	colSep      = " & "
	rowEnd      = ` \\`
	emptyCell   = "--"
	alignToken  = "c"
	midrule     = `\midrule`
	tablePrefix = "\n" + `\begin{table}[h!]
\centering
\rowcolors{2}{gray!15}{white}
\scalebox{0.8}{%
\resizebox{\textwidth}{!}{%
\begin{tabular}{`
	tableSuffix = "\n" + midrule + `
\end{tabular}}}
\end{table}
`
)

// Write renders t as a LaTeX table fragment and writes it to w.
// Nothing is written when t is malformed.
func Write(w io.Writer, t *Table) error {
	s, err := Render(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render returns t as a LaTeX table fragment.
func Render(t *Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = `\textbf{` + col + `}`
	}

	lines := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellText(cell)
		}
		lines[i] = strings.Join(cells, colSep) + rowEnd
	}

	var sb strings.Builder
	sb.WriteString(tablePrefix)
	sb.WriteString(strings.Repeat(alignToken, len(t.Columns)))
	sb.WriteString("}\n" + midrule + "\n")
	sb.WriteString(escape(strings.Join(header, colSep) + rowEnd))
	sb.WriteString("\n" + midrule + "\n")
	sb.WriteString(escape(strings.Join(lines, "\n")))
	sb.WriteString(tableSuffix)
	return sb.String(), nil
}

// escape guards the LaTeX comment character. Other special characters pass
// through unchanged.
func escape(s string) string {
	return strings.ReplaceAll(s, "%", `\%`)
}

// cellText returns the display string of a cell. Null, NaN, empty, zero and
// false cells all render as the empty-cell placeholder.
func cellText(v any) string {
	if n, err := normalizeCell(v); err == nil {
		v = n
	}
	switch c := v.(type) {
	case nil:
		return emptyCell
	case string:
		if c == "" {
			return emptyCell
		}
		return c
	case bool:
		if !c {
			return emptyCell
		}
		return strconv.FormatBool(c)
	case int64:
		if c == 0 {
			return emptyCell
		}
		return strconv.FormatInt(c, 10)
	case float64:
		if c == 0 || math.IsNaN(c) {
			return emptyCell
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return emptyCell
	}
}
