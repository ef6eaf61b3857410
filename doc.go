// Package textable converts tabular data into a LaTeX table fragment.
//
// Sources are JSON, CSV or XLSX, read either from a file or from data already
// in memory. Every source is first normalized into a [Table], an ordered list
// of column names and rows of scalar cells, which [Render] then turns into
// markup. [Convert] does both steps for a single [Request]:
//
//	out, err := textable.Convert(textable.Request{
//		Format: textable.CSV,
//		Path:   "scores.csv",
//	})
//
// # Sources
//
//   - [JSON] reads an array of flat objects. Columns are the union of keys in
//     order of first appearance. In memory it accepts records as maps,
//     [github.com/Velocidex/ordereddict.Dict] values or raw JSON bytes.
//     JSON conversion is experimental and logs a warning on every call.
//   - [CSV] reads a semicolon separated file whose first line is the header.
//     In memory it accepts [][]string records, header first.
//   - [XLSX] reads the first worksheet with its first row as the header. In
//     memory it accepts an open [github.com/xuri/excelize/v2.File].
//
// Every format also accepts a [Table] in memory.
//
// Text cells from CSV and XLSX are typed per column: a column whose values
// all parse as integers holds int64 cells, likewise float64 and bool, and
// NA markers such as "" or "NaN" become null.
//
// # Markup
//
// The fragment is a table environment holding a tabular block with one "c"
// column per column. Header names are set in bold. Cells that are null, empty,
// zero or false print as "--". Percent signs are escaped; no other character
// is.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrConfiguration] — both or neither of a path and in-memory data
//   - [ErrUnsupportedFormat] — unknown format name
//   - [ErrSourceRead] — missing, unreadable or malformed source
//   - [ErrStructural] — rows of the wrong length or non-scalar cells
package textable
