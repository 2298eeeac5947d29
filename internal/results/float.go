package results

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that always marshals with a decimal point, matching
// the upstream producer. DuckDB's JSON inference would otherwise type
// integral scores as BIGINT.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("unsupported float value %v", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return []byte(s), nil
}
