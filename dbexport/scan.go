package dbexport

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/google/uuid"
	"github.com/marcboeker/go-duckdb"
)

// ScanRowStrings scans the current row of rows and returns its values as
// strings keyed by column name. tags and dbTypes are aligned with cols.
func ScanRowStrings(rows Rows, cols, tags, dbTypes []string) (map[string]string, error) {
	columns := make([]interface{}, len(cols))
	columnPointers := make([]interface{}, len(cols))
	for i := range columns {
		columnPointers[i] = &columns[i]
	}
	if err := rows.Scan(columnPointers...); err != nil {
		return nil, fmt.Errorf("error scanning row: %w", err)
	}
	values := make(map[string]string, len(cols))
	for i, colName := range cols {
		values[colName] = formatValue(columns[i], tags[i], dbTypes[i])
	}
	return values, nil
}

func formatValue(v interface{}, tag, dbType string) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		switch tag {
		case TypeDate:
			return t.Format("2006-01-02")
		case TypeTime:
			return t.Format("15:04:05")
		default:
			return t.Format("2006-01-02 15:04:05.999999999")
		}
	case []byte:
		if dbType == "UNIQUEIDENTIFIER" && len(t) == 16 {
			var id mssql.UniqueIdentifier
			if err := id.Scan(t); err == nil {
				return id.String()
			}
		}
		if tag == TypeGuid && len(t) == 16 {
			if id, err := uuid.FromBytes(t); err == nil {
				return id.String()
			}
		}
		if tag == TypeBinary || tag == TypeGuid {
			return hex.EncodeToString(t)
		}
		return string(t)
	case duckdb.Decimal:
		return formatDecimal(t.Value, int(t.Scale))
	case duckdb.UUID:
		return uuid.UUID(t).String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// formatDecimal writes an unscaled integer with exactly scale fractional
// digits: 12345 at scale 2 is "123.45", 5 at scale 3 is "0.005".
func formatDecimal(unscaled *big.Int, scale int) string {
	if unscaled == nil {
		return ""
	}
	digits := new(big.Int).Abs(unscaled).String()
	if scale > 0 {
		if len(digits) <= scale {
			digits = strings.Repeat("0", scale-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
	}
	if unscaled.Sign() < 0 {
		digits = "-" + digits
	}
	return digits
}
