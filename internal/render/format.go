package render

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"strings"
	"time"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// NullText is shown for SQL NULL values.
const NullText = "NULL"

// FormatValue renders a scanned DuckDB value for console output.
func FormatValue(value interface{}) string {
	return formatValue(value, false)
}

// formatValue renders value; nested values quote strings so struct and list
// contents stay unambiguous.
func formatValue(value interface{}, nested bool) string {
	switch v := value.(type) {
	case nil:
		return NullText
	case string:
		if nested {
			return quote(v)
		}
		return v
	case []byte:
		if nested {
			return quote(string(v))
		}
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatFloat(v, 64)
	case float32:
		return formatFloat(float64(v), 32)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case *big.Int:
		if v == nil {
			return NullText
		}
		return v.String()
	case time.Time:
		return v.Format(time.RFC3339)
	case duckdbdriver.UUID:
		return uuid.UUID(v).String()
	case *duckdbdriver.UUID:
		if v == nil {
			return NullText
		}
		return uuid.UUID(*v).String()
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, formatValue(item, true))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]interface{}:
		return formatStruct(v)
	case duckdbdriver.Map:
		return formatMap(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// formatFloat prints the shortest representation, keeping one decimal for
// integral values.
func formatFloat(v float64, bits int) string {
	if math.IsNaN(v) {
		return "nan"
	}
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'f', -1, bits)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

func formatStruct(v map[string]interface{}) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, quote(k)+": "+formatValue(v[k], true))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func formatMap(v duckdbdriver.Map) string {
	type pair struct{ key, value string }
	pairs := make([]pair, 0, len(v))
	for k, val := range v {
		pairs = append(pairs, pair{key: formatValue(k, false), value: formatValue(val, true)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.key+"="+p.value)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}

// rowCountLabel returns "(1 row)" or "(N rows)".
func rowCountLabel(n int) string {
	if n == 1 {
		return "(1 row)"
	}
	return fmt.Sprintf("(%d rows)", n)
}
