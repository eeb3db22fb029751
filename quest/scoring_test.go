package quest

import (
	"strings"
	"testing"
)

func testConstants() ScoringConstants {
	return ScoringConstants{
		Weights: SignalWeights{RoleDefined: 40, TaskClear: 30, OutputDefined: 30},
		Keywords: SignalKeywords{
			RoleDefined: []string{"act as", "you are a"},
			TaskClear:   []string{"write", "generate", "create"},
		},
		MaxWordCount:  60,
		PassThreshold: 280,
		MaxLivesCap:   9,
	}
}

func TestScore_NoSignalsIsBase(t *testing.T) {
	c := testConstants()
	res := Score("please summarize this memo for me", c)
	if res.Value != BaseScore {
		t.Fatalf("expected base score %d, got %d", BaseScore, res.Value)
	}
	if res.Signals.RoleDefined || res.Signals.TaskClear {
		t.Fatalf("expected no signals, got %+v", res.Signals)
	}
}

func TestScore_SignalWeightsAdd(t *testing.T) {
	c := testConstants()
	cases := []struct {
		name        string
		text        string
		want        int
		roleDefined bool
		taskClear   bool
	}{
		{"role only", "act as a pirate and summarize", 140, true, false},
		{"task only", "write a summary", 130, false, true},
		{"both", "Act as a manager and write a summary", 170, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Score(tc.text, c)
			if res.Value != tc.want {
				t.Fatalf("score = %d, want %d", res.Value, tc.want)
			}
			if res.Signals.RoleDefined != tc.roleDefined || res.Signals.TaskClear != tc.taskClear {
				t.Fatalf("signals = %+v, want role=%v task=%v", res.Signals, tc.roleDefined, tc.taskClear)
			}
		})
	}
}

func TestScore_RoleWeightIsExactDelta(t *testing.T) {
	c := testConstants()
	without := Score("summarize the memo", c)
	with := Score("you are a teacher, summarize the memo", c)
	if with.Value-without.Value != c.Weights.RoleDefined {
		t.Fatalf("role delta = %d, want %d", with.Value-without.Value, c.Weights.RoleDefined)
	}
}

func TestScore_VerbosityPenaltyAppliesExactlyOnce(t *testing.T) {
	c := testConstants()

	atBudget := strings.Repeat("word ", c.MaxWordCount)
	if got := Score(atBudget, c).Value; got != BaseScore {
		t.Fatalf("at budget: score = %d, want %d", got, BaseScore)
	}

	overBudget := strings.Repeat("word ", c.MaxWordCount+1)
	if got := Score(overBudget, c).Value; got != BaseScore-VerbosityPenalty {
		t.Fatalf("one over budget: score = %d, want %d", got, BaseScore-VerbosityPenalty)
	}

	farOverBudget := strings.Repeat("word ", c.MaxWordCount*3)
	if got := Score(farOverBudget, c).Value; got != BaseScore-VerbosityPenalty {
		t.Fatalf("far over budget: score = %d, want %d (penalty must not stack)", got, BaseScore-VerbosityPenalty)
	}
}

func TestScore_EmptyTextScoresBase(t *testing.T) {
	c := testConstants()
	if got := Score("", c).Value; got != BaseScore {
		t.Fatalf("empty text: score = %d, want %d", got, BaseScore)
	}
}
