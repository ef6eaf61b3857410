package textable

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// normalizeCell converts a decoded or caller supplied value into one of the
// cell types a Table holds.
func normalizeCell(v any) (any, error) {
	switch c := v.(type) {
	case nil, string, bool, int64, float64:
		return c, nil
	case int:
		return int64(c), nil
	case int8:
		return int64(c), nil
	case int16:
		return int64(c), nil
	case int32:
		return int64(c), nil
	case uint:
		return uintCell(uint64(c)), nil
	case uint8:
		return int64(c), nil
	case uint16:
		return int64(c), nil
	case uint32:
		return int64(c), nil
	case uint64:
		return uintCell(c), nil
	case float32:
		return float64(c), nil
	case json.Number:
		if i, err := c.Int64(); err == nil {
			return i, nil
		}
		f, err := c.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrStructural, c.String())
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: non-scalar cell %T", ErrStructural, v)
	}
}

func uintCell(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

var naValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
	"#N/A": true,
	"<NA>": true,
}

var boolValues = map[string]bool{
	"true":  true,
	"True":  true,
	"TRUE":  true,
	"false": false,
	"False": false,
	"FALSE": false,
}

type columnKind int

const (
	kindInt columnKind = iota
	kindFloat
	kindBool
	kindString
)

// inferColumns types text records column by column. A column only becomes
// numeric or boolean when every non-null value in it parses that way; an
// integer column is preferred over float, and float over bool.
func inferColumns(numCols int, records [][]string) [][]any {
	kinds := make([]columnKind, numCols)
	for col := range kinds {
		kinds[col] = inferKind(col, records)
	}
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, numCols)
		for col := range row {
			if col >= len(rec) || naValues[rec[col]] {
				continue
			}
			row[col] = parseAs(kinds[col], rec[col])
		}
		rows[i] = row
	}
	return rows
}

func inferKind(col int, records [][]string) columnKind {
	for _, kind := range []columnKind{kindInt, kindFloat, kindBool} {
		if columnFits(kind, col, records) {
			return kind
		}
	}
	return kindString
}

func columnFits(kind columnKind, col int, records [][]string) bool {
	for _, rec := range records {
		if col >= len(rec) || naValues[rec[col]] {
			continue
		}
		if !fits(kind, rec[col]) {
			return false
		}
	}
	return true
}

func fits(kind columnKind, s string) bool {
	switch kind {
	case kindInt:
		_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return err == nil
	case kindFloat:
		_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return err == nil
	case kindBool:
		_, ok := boolValues[s]
		return ok
	default:
		return true
	}
}

func parseAs(kind columnKind, s string) any {
	switch kind {
	case kindInt:
		i, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return i
	case kindFloat:
		f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f
	case kindBool:
		return boolValues[s]
	default:
		return s
	}
}

// headerNames fills blank names and renames duplicates so every column is
// unique: "a", "a" becomes "a", "a.1".
func headerNames(raw []string) []string {
	names := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, name := range raw {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		if _, dup := seen[base]; dup {
			for n := seen[base]; ; n++ {
				candidate := fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[candidate]; !taken {
					name = candidate
					seen[base] = n + 1
					break
				}
			}
		}
		seen[name] = 1
		names[i] = name
	}
	return names
}
