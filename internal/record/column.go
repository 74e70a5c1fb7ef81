// Copyright (c) 2025 The recbrowse Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package record

import "strings"

// ColumnType tells the mapper how a column's raw cells become text.
// It is resolved once per column from result-set metadata.
type ColumnType int

const (
	// Unknown covers every type name not listed below; cells use text coercion.
	Unknown ColumnType = iota
	Integer
	Text
	Boolean
	Float
	Timestamp
	Date
	Bytes
	UUID
)

var columnTypeNames = map[ColumnType]string{
	Unknown:   "unknown",
	Integer:   "integer",
	Text:      "text",
	Boolean:   "boolean",
	Float:     "float",
	Timestamp: "timestamp",
	Date:      "date",
	Bytes:     "bytes",
	UUID:      "uuid",
}

func (t ColumnType) String() string {
	if s, ok := columnTypeNames[t]; ok {
		return s
	}
	return "unknown"
}

// typeAliases maps lower-cased database type names from PostgreSQL, MySQL
// and SQLite metadata to a ColumnType.
var typeAliases = map[string]ColumnType{
	"int2": Integer, "int4": Integer, "int8": Integer,
	"smallint": Integer, "integer": Integer, "int": Integer, "bigint": Integer,
	"tinyint": Integer, "mediumint": Integer,
	"serial": Integer, "smallserial": Integer, "bigserial": Integer,
	"serial2": Integer, "serial4": Integer, "serial8": Integer,

	"text": Text, "varchar": Text, "character varying": Text,
	"char": Text, "character": Text, "bpchar": Text, "name": Text,
	"citext": Text, "tinytext": Text, "mediumtext": Text, "longtext": Text,
	"clob": Text, "enum": Text, "set": Text,

	"bool": Boolean, "boolean": Boolean,

	"float4": Float, "float8": Float, "real": Float, "float": Float,
	"double": Float, "double precision": Float, "numeric": Float, "decimal": Float,

	"timestamp": Timestamp, "timestamptz": Timestamp, "datetime": Timestamp,
	"timestamp with time zone": Timestamp, "timestamp without time zone": Timestamp,

	"date": Date,

	"bytea": Bytes, "blob": Bytes, "binary": Bytes, "varbinary": Bytes,
	"tinyblob": Bytes, "mediumblob": Bytes, "longblob": Bytes,

	"uuid": UUID,
}

// ParseColumnType resolves a database type name such as "int4",
// "VARCHAR(255)" or "UNSIGNED BIGINT". Unrecognized names yield Unknown.
func ParseColumnType(name string) ColumnType {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(n, '('); i >= 0 {
		n = strings.TrimSpace(n[:i])
	}
	n = strings.TrimPrefix(n, "unsigned ")
	n = strings.TrimSuffix(n, " unsigned")
	if t, ok := typeAliases[n]; ok {
		return t
	}
	return Unknown
}

// Column describes one result-set column.
type Column struct {
	Name string
	Type ColumnType
	// TypeName is the database's own name for the type, kept for diagnostics.
	TypeName string
}

// NewColumn builds a Column, resolving its type from typeName.
func NewColumn(name, typeName string) Column {
	return Column{Name: name, Type: ParseColumnType(typeName), TypeName: typeName}
}
