// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package record

import (
	"database/sql/driver"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MapRow converts one raw row into a Record with one field per column, in
// column order. A row shorter than the column list has its missing cells
// treated as NULL; extra cells are ignored.
func MapRow(row []any, columns []Column) Record {
	fields := make([]Field, len(columns))
	for i, col := range columns {
		var cell any
		if i < len(row) {
			cell = row[i]
		}
		fields[i] = Field{Name: col.Name, Value: Coerce(col.Type, cell)}
	}
	return Record{fields: fields}
}

// MapRows maps every row, preserving order.
func MapRows(rows [][]any, columns []Column) []Record {
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = MapRow(row, columns)
	}
	return out
}

// Coerce renders a single cell as text according to its column type.
// NULL renders as "" for every type. A cell whose Go value does not match the
// column type falls back to text coercion instead of failing.
func Coerce(t ColumnType, v any) string {
	if v == nil {
		return ""
	}
	switch t {
	case Integer:
		return coerceInteger(v)
	case Boolean:
		return coerceBoolean(v)
	case Float:
		return coerceFloat(v)
	case Timestamp:
		return coerceTime(v, time.RFC3339Nano)
	case Date:
		return coerceTime(v, time.DateOnly)
	case Bytes:
		return coerceBytes(v)
	case UUID:
		return coerceUUID(v)
	default:
		return textValue(v)
	}
}

func coerceInteger(v any) string {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case []byte:
		return integerFromText(string(n))
	case string:
		return integerFromText(n)
	}
	return textValue(v)
}

// integerFromText handles drivers that return integers in their text form
// (MySQL's text protocol sends []byte).
func integerFromText(s string) string {
	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if u, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
		return strconv.FormatUint(u, 10)
	}
	return s
}

func coerceBoolean(v any) string {
	if b, ok := v.(bool); ok {
		return strconv.FormatBool(b)
	}
	return textValue(v)
}

func coerceFloat(v any) string {
	switch f := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(f), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return textValue(v)
}

func coerceTime(v any, layout string) string {
	if ts, ok := v.(time.Time); ok {
		return ts.Format(layout)
	}
	return textValue(v)
}

func coerceBytes(v any) string {
	if b, ok := v.([]byte); ok {
		if utf8.Valid(b) {
			return string(b)
		}
		return `\x` + hex.EncodeToString(b)
	}
	return textValue(v)
}

func coerceUUID(v any) string {
	switch u := v.(type) {
	case [16]byte:
		return uuid.UUID(u).String()
	case []byte:
		if id, err := uuid.FromBytes(u); err == nil {
			return id.String()
		}
	}
	return textValue(v)
}

// textValue is the native string representation used for Text, Unknown and
// every fallback.
func textValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case []byte:
		return string(s)
	case [16]byte:
		return uuid.UUID(s).String()
	case time.Time:
		return s.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return s.String()
	case map[string]any, []any:
		// decoded json documents and arrays
		if b, err := json.Marshal(s); err == nil {
			return string(b)
		}
	case driver.Valuer:
		inner, err := s.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		if _, again := inner.(driver.Valuer); again {
			return fmt.Sprint(inner)
		}
		return textValue(inner)
	}
	return fmt.Sprint(v)
}
