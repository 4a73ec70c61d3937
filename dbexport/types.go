package dbexport

import "strings"

// Rows is a minimal interface for *sql.Rows and test wrappers.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Columns() ([]string, error)
	Close() error
	Err() error
}

// Field type tags reported for each column. Only TypeString is written
// quoted.
const (
	TypeString   = "String"
	TypeInt16    = "Int16"
	TypeInt32    = "Int32"
	TypeInt64    = "Int64"
	TypeDecimal  = "Decimal"
	TypeSingle   = "Single"
	TypeDouble   = "Double"
	TypeBoolean  = "Boolean"
	TypeDateTime = "DateTime"
	TypeDate     = "Date"
	TypeTime     = "Time"
	TypeBinary   = "Binary"
	TypeGuid     = "Guid"
	TypeUnknown  = "Unknown"
)

var typeTags = map[string]string{
	"CHAR":      TypeString,
	"NCHAR":     TypeString,
	"VARCHAR":   TypeString,
	"NVARCHAR":  TypeString,
	"TEXT":      TypeString,
	"NTEXT":     TypeString,
	"CHARACTER": TypeString,
	"CLOB":      TypeString,
	"BPCHAR":    TypeString,
	"STRING":    TypeString,
	"SYSNAME":   TypeString,
	"XML":       TypeString,

	"TINYINT":  TypeInt16,
	"SMALLINT": TypeInt16,
	"INT2":     TypeInt16,

	"INT":       TypeInt32,
	"INT4":      TypeInt32,
	"INTEGER":   TypeInt32,
	"MEDIUMINT": TypeInt32,

	"BIGINT":  TypeInt64,
	"INT8":    TypeInt64,
	"HUGEINT": TypeInt64,

	"DECIMAL":    TypeDecimal,
	"NUMERIC":    TypeDecimal,
	"MONEY":      TypeDecimal,
	"SMALLMONEY": TypeDecimal,

	"REAL":   TypeSingle,
	"FLOAT4": TypeSingle,

	"FLOAT":  TypeDouble,
	"FLOAT8": TypeDouble,
	"DOUBLE": TypeDouble,

	"BIT":     TypeBoolean,
	"BOOL":    TypeBoolean,
	"BOOLEAN": TypeBoolean,

	"DATETIME":       TypeDateTime,
	"DATETIME2":      TypeDateTime,
	"SMALLDATETIME":  TypeDateTime,
	"DATETIMEOFFSET": TypeDateTime,
	"TIMESTAMP":      TypeDateTime,
	"TIMESTAMPTZ":    TypeDateTime,

	"DATE": TypeDate,
	"TIME": TypeTime,

	"BINARY":    TypeBinary,
	"VARBINARY": TypeBinary,
	"IMAGE":     TypeBinary,
	"BLOB":      TypeBinary,
	"BYTEA":     TypeBinary,

	"UNIQUEIDENTIFIER": TypeGuid,
	"UUID":             TypeGuid,
}

// TypeTag maps a driver's database type name, such as "NVARCHAR" or
// "VARCHAR(30)", to a field type tag.
func TypeTag(databaseTypeName string) string {
	t := strings.ToUpper(strings.TrimSpace(databaseTypeName))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	if tag, ok := typeTags[t]; ok {
		return tag
	}
	return TypeUnknown
}

// IsTextual reports whether values of the given type tag are written quoted.
func IsTextual(tag string) bool {
	return strings.EqualFold(tag, TypeString)
}
