package render

import (
	"math/big"
	"testing"
	"time"

	duckdbdriver "github.com/duckdb/duckdb-go/v2"
)

// TestFormatValue verifies console rendering of scanned values.
func TestFormatValue(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "nil", value: nil, want: "NULL"},
		{name: "string", value: "agentA", want: "agentA"},
		{name: "integral float", value: 80.0, want: "80.0"},
		{name: "fractional float", value: 12.3, want: "12.3"},
		{name: "float32", value: float32(0.5), want: "0.5"},
		{name: "int64", value: int64(42), want: "42"},
		{name: "bool", value: true, want: "true"},
		{name: "bytes", value: []byte("raw"), want: "raw"},
		{name: "big int", value: big.NewInt(7), want: "7"},
		{name: "time", value: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), want: "2024-01-02T03:04:05Z"},
		{name: "list", value: []interface{}{"a", 1.0, nil}, want: "['a', 1.0, NULL]"},
		{
			name:  "struct",
			value: map[string]interface{}{"task_id": "t1", "reward": 1.0},
			want:  "{'reward': 1.0, 'task_id': 't1'}",
		},
		{
			name:  "map",
			value: duckdbdriver.Map{"b": 2.0, "a": []interface{}{1.0}},
			want:  "{a=[1.0], b=2.0}",
		},
		{
			name:  "uuid",
			value: duckdbdriver.UUID{0x12, 0x3e, 0x45, 0x67, 0xe8, 0x9b, 0x12, 0xd3, 0xa4, 0x56, 0x42, 0x66, 0x14, 0x17, 0x40, 0x00},
			want:  "123e4567-e89b-12d3-a456-426614174000",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.value); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestRowCountLabel(t *testing.T) {
	if got := rowCountLabel(1); got != "(1 row)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := rowCountLabel(3); got != "(3 rows)" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncate("abcdef", 0); got != "abcdef" {
		t.Fatalf("expected no truncation, got %q", got)
	}
	if got := singleLine("a\n  b"); got != "a b" {
		t.Fatalf("unexpected single line %q", got)
	}
}
