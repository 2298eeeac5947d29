package results

// Split names used by the leaderboard queries.
const (
	SplitBase           = "base"
	SplitHallucination  = "hallucination"
	SplitDisambiguation = "disambiguation"
)

// Splits lists every split in display order.
var Splits = []string{SplitBase, SplitHallucination, SplitDisambiguation}

// Record is one benchmark results document as produced upstream.
type Record struct {
	Participants Participants `json:"participants"`
	Results      []Run        `json:"results"`
}

type Participants struct {
	Agent string `json:"agent"`
}

// Run is one evaluation run of an agent.
type Run struct {
	PassRate               Float                    `json:"pass_rate"`
	TimeUsed               Float                    `json:"time_used"`
	MaxScore               int                      `json:"max_score"`
	DetailedResultsBySplit map[string][]TaskOutcome `json:"detailed_results_by_split"`
	PassAtKScores          PassAtK                  `json:"pass_at_k_scores"`
	PassAtKScoresBySplit   map[string]PassAtK       `json:"pass_at_k_scores_by_split"`
}

type TaskOutcome struct {
	TaskID string `json:"task_id"`
	Reward Float  `json:"reward"`
}

// PassAtK holds pass@k fractions in [0, 1].
type PassAtK struct {
	Pass1 Float `json:"Pass@1"`
	Pass2 Float `json:"Pass@2"`
}
