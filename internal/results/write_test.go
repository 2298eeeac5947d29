package results

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWriteFileRoundTrip verifies records are written with upstream field names.
func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "agentA.json")
	record := Record{
		Participants: Participants{Agent: "agentA"},
		Results: []Run{
			NewRun(80, 12.3, []TaskOutcome{{TaskID: "t1", Reward: 1}}),
		},
	}
	if err := WriteFile(path, record); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, field := range []string{`"participants"`, `"pass_at_k_scores_by_split"`, `"Pass@1"`, `"hallucination"`} {
		if !strings.Contains(string(data), field) {
			t.Fatalf("expected %s in output", field)
		}
	}
	var loaded Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loaded.Participants.Agent != "agentA" {
		t.Fatalf("unexpected agent: %q", loaded.Participants.Agent)
	}
	if got := loaded.Results[0].PassAtKScores.Pass1; got != 0.8 {
		t.Fatalf("expected Pass@1 0.8, got %v", got)
	}
}

func TestNewRunPopulatesSplits(t *testing.T) {
	run := NewRun(50, 1, []TaskOutcome{{TaskID: "a", Reward: 1}, {TaskID: "b", Reward: 0}})
	if run.MaxScore != 2 {
		t.Fatalf("expected max score 2, got %d", run.MaxScore)
	}
	for _, split := range Splits {
		if len(run.DetailedResultsBySplit[split]) != 2 {
			t.Fatalf("split %s: expected 2 outcomes", split)
		}
		if run.PassAtKScoresBySplit[split].Pass1 != 0.5 {
			t.Fatalf("split %s: unexpected pass@1", split)
		}
	}
}

func TestWriteFileRequiresPath(t *testing.T) {
	if err := WriteFile("", Record{}); err == nil {
		t.Fatalf("expected error")
	}
}

// TestFloatMarshalKeepsDecimal verifies integral scores stay floating point in JSON.
func TestFloatMarshalKeepsDecimal(t *testing.T) {
	cases := map[Float]string{80: "80.0", 12.3: "12.3", 0: "0.0", -1.5: "-1.5"}
	for in, want := range cases {
		got, err := in.MarshalJSON()
		if err != nil {
			t.Fatalf("%v: marshal: %v", in, err)
		}
		if string(got) != want {
			t.Fatalf("%v: expected %s, got %s", in, want, got)
		}
	}
}
