package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultOrder(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	want := []string{OverallPerformance, PerformanceBySplit, TaskSuccessRates, PassAtK}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	for _, entry := range c.Entries() {
		if !strings.Contains(entry.SQL, "FROM results") {
			t.Fatalf("%s: expected query over results table", entry.Name)
		}
		if !strings.Contains(entry.SQL, "ORDER BY") {
			t.Fatalf("%s: expected ORDER BY clause", entry.Name)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	c := MustDefault()
	_, err := c.Lookup("nope")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrUnknownQuery) {
		t.Fatalf("expected ErrUnknownQuery, got %v", err)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected name in error, got %q", err.Error())
	}
}

func TestLookupKnown(t *testing.T) {
	c := MustDefault()
	entry, err := c.Lookup(PassAtK)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.Contains(entry.SQL, `"Pass@2"`) {
		t.Fatalf("expected Pass@2 column, got %q", entry.SQL)
	}
}

func TestSplitNamesPreserved(t *testing.T) {
	c := MustDefault()
	for _, name := range []string{PerformanceBySplit, TaskSuccessRates} {
		entry, err := c.Lookup(name)
		if err != nil {
			t.Fatalf("lookup %s: %v", name, err)
		}
		for _, split := range []string{"base", "hallucination", "disambiguation"} {
			if !strings.Contains(entry.SQL, split) {
				t.Fatalf("%s: missing split %q", name, split)
			}
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]Entry{{Name: "a", SQL: "SELECT 1"}, {Name: "a", SQL: "SELECT 2"}})
	if err == nil {
		t.Fatalf("expected duplicate error")
	}
	_, err = New([]Entry{{Name: " ", SQL: "SELECT 1"}})
	if err == nil {
		t.Fatalf("expected empty name error")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := MustDefault()
	entries := c.Entries()
	entries[0].SQL = "mutated"
	entry, _ := c.Lookup(entries[0].Name)
	if entry.SQL == "mutated" {
		t.Fatalf("expected catalog to be unaffected by caller mutation")
	}
}
