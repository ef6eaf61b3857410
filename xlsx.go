package textable

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

func loadXLSXFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	defer f.Close()

	t, err := readWorkbook(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func loadXLSXData(data any) (*Table, error) {
	if t, ok := asTable(data); ok {
		return normalizeTable(t)
	}
	f, ok := data.(*excelize.File)
	if !ok || f == nil {
		return nil, unsupportedData(XLSX, data)
	}
	return readWorkbook(f)
}

// readWorkbook reads the first worksheet, taking its first row as the header.
func readWorkbook(f *excelize.File) (*Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSourceRead)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrSourceRead, sheets[0], err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return recordsToTable(rows[0], rows[1:])
}
