package textable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/Velocidex/ordereddict"
)

func loadJSONFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	t, err := decodeJSON(data)
	switch {
	case errors.Is(err, ErrSourceRead):
		return nil, fmt.Errorf("%s: %w", path, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRead, path, err)
	}
	return t, nil
}

func loadJSONData(data any) (*Table, error) {
	if t, ok := asTable(data); ok {
		return normalizeTable(t)
	}
	switch d := data.(type) {
	case []byte:
		return decodeJSON(d)
	case json.RawMessage:
		return decodeJSON(d)
	case *ordereddict.Dict:
		return recordsTable([]*ordereddict.Dict{d})
	case []*ordereddict.Dict:
		return recordsTable(d)
	case map[string]any:
		return recordsTable([]*ordereddict.Dict{dictFromMap(d)})
	case []map[string]any:
		records := make([]*ordereddict.Dict, len(d))
		for i, m := range d {
			records[i] = dictFromMap(m)
		}
		return recordsTable(records)
	case []any:
		records := make([]*ordereddict.Dict, len(d))
		for i, item := range d {
			switch rec := item.(type) {
			case *ordereddict.Dict:
				records[i] = rec
			case map[string]any:
				records[i] = dictFromMap(rec)
			default:
				return nil, fmt.Errorf("%w: record %d is %T, not an object", ErrConfiguration, i, item)
			}
		}
		return recordsTable(records)
	default:
		return nil, unsupportedData(JSON, data)
	}
}

// decodeJSON reads an array of flat objects, or a single object, keeping each
// object's key order.
func decodeJSON(data []byte) (*Table, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return decodeRecords([]json.RawMessage{data})
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected an array of objects: %w", ErrSourceRead, err)
	}
	return decodeRecords(raw)
}

func decodeRecords(raw []json.RawMessage) (*Table, error) {
	records := make([]*ordereddict.Dict, len(raw))
	for i, msg := range raw {
		if !bytes.HasPrefix(bytes.TrimSpace(msg), []byte("{")) {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrSourceRead, i)
		}
		rec := ordereddict.NewDict()
		if err := rec.UnmarshalJSON(msg); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrSourceRead, i, err)
		}
		records[i] = rec
	}
	return recordsTable(records)
}

// recordsTable aligns records into rows. Columns are the union of keys in
// order of first appearance; a key missing from a record is null.
func recordsTable(records []*ordereddict.Dict) (*Table, error) {
	var columns []string
	index := map[string]int{}
	for _, rec := range records {
		for _, key := range rec.Keys() {
			if _, ok := index[key]; !ok {
				index[key] = len(columns)
				columns = append(columns, key)
			}
		}
	}

	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(columns))
		for _, key := range rec.Keys() {
			v, _ := rec.Get(key)
			c, err := normalizeCell(v)
			if err != nil {
				return nil, fmt.Errorf("record %d key %q: %w", i, key, err)
			}
			row[index[key]] = c
		}
		rows[i] = row
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// dictFromMap orders a plain map's keys alphabetically since Go maps carry no
// order of their own.
func dictFromMap(m map[string]any) *ordereddict.Dict {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d := ordereddict.NewDict()
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}
