package textable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// csvSeparator is fixed; CSV sources are semicolon separated.
const csvSeparator = ';'

func loadCSVFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer f.Close()

	t, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func loadCSVData(data any) (*Table, error) {
	if t, ok := asTable(data); ok {
		return normalizeTable(t)
	}
	records, ok := data.([][]string)
	if !ok {
		return nil, unsupportedData(CSV, data)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no header record", ErrConfiguration)
	}
	return recordsToTable(records[0], records[1:])
}

func readCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = csvSeparator
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no columns to parse", ErrSourceRead)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrSourceRead, line, len(rec), len(header))
		}
		records = append(records, rec)
	}
	return recordsToTable(header, records)
}

// recordsToTable types text records under header. Short records are padded
// with nulls; records wider than the header gain unnamed columns.
func recordsToTable(header []string, records [][]string) (*Table, error) {
	numCols := len(header)
	for _, rec := range records {
		if len(rec) > numCols {
			numCols = len(rec)
		}
	}
	raw := make([]string, numCols)
	copy(raw, header)
	return &Table{
		Columns: headerNames(raw),
		Rows:    inferColumns(numCols, records),
	}, nil
}
