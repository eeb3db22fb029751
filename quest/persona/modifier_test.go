package persona

import (
	"testing"

	"promptmaster-lite/quest"
)

func scripter() *Persona {
	return &Persona{ID: "CHAR_06", Name: "The Scripter", Rank: 6, AbilityID: "SCRIPTER_SYNTAX_SHIELD"}
}

func analyst() *Persona {
	return &Persona{ID: "CHAR_04", Name: "The Analyst", Rank: 4, AbilityID: "ANALYST_CLARITY_FOCUS"}
}

func validator() *Persona {
	return &Persona{ID: "CHAR_05", Name: "The Validator", Rank: 5, AbilityID: "VALIDATOR_ROBUST_BONUS"}
}

func TestApplyModifier_SyntaxShield(t *testing.T) {
	res := quest.ScoreResult{Value: 130}
	q := &quest.Quest{ID: "S02-Q1", PassingThreshold: 285}

	out := ApplyModifier(scripter(), res, "write a Python 3.9 function", q)
	if out.FinalScore != 180 {
		t.Fatalf("syntax shield: score = %d, want 180", out.FinalScore)
	}
	if out.Message == "" {
		t.Fatalf("syntax shield should emit an activation message")
	}

	out = ApplyModifier(scripter(), res, "write a poem about autumn", q)
	if out.FinalScore != 130 || out.Message != "" {
		t.Fatalf("syntax shield without code keyword: got score=%d msg=%q", out.FinalScore, out.Message)
	}
}

func TestApplyModifier_SyntaxShieldOnlyForScripter(t *testing.T) {
	res := quest.ScoreResult{Value: 100}
	text := "javascript es6 react html css"

	for _, p := range []*Persona{analyst(), validator(), nil,
		{ID: "CHAR_08", AbilityID: "ORACLE_HIGH_CONTEXT"},
		{ID: "CHAR_99", AbilityID: "SOMETHING_UNKNOWN"}} {
		out := ApplyModifier(p, res, text, nil)
		if out.FinalScore != 100 {
			t.Fatalf("persona %+v got syntax shield bonus: %d", p, out.FinalScore)
		}
	}
}

func TestApplyModifier_ClarityFocusFloor(t *testing.T) {
	q := &quest.Quest{ID: "S01-Q1", PassingThreshold: 280}

	out := ApplyModifier(analyst(), quest.ScoreResult{Value: 170}, "act as a manager and write a summary", q)
	if out.FinalScore != 180 {
		t.Fatalf("clarity focus at 170: score = %d, want 180", out.FinalScore)
	}
	if out.Message == "" {
		t.Fatalf("clarity focus should emit an activation message")
	}

	out = ApplyModifier(analyst(), quest.ScoreResult{Value: 129}, "write something", q)
	if out.FinalScore != 129 || out.Message != "" {
		t.Fatalf("clarity focus below floor: got score=%d msg=%q", out.FinalScore, out.Message)
	}

	// Boundary: the floor itself qualifies.
	out = ApplyModifier(analyst(), quest.ScoreResult{Value: 130}, "write something", q)
	if out.FinalScore != 140 {
		t.Fatalf("clarity focus at floor: score = %d, want 140", out.FinalScore)
	}
}

func TestApplyModifier_RobustBonusRounding(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{200, 210}, // 200 * 1.05 = 210
		{111, 117}, // 111 * 1.05 = 116.55, rounds up
		{100, 105},
	}

	for _, tc := range cases {
		out := ApplyModifier(validator(), quest.ScoreResult{Value: tc.score}, "must include a try-except block", nil)
		if out.FinalScore != tc.want {
			t.Fatalf("robust bonus on %d: got %d, want %d", tc.score, out.FinalScore, tc.want)
		}
		if out.Message == "" {
			t.Fatalf("robust bonus should emit an activation message")
		}
	}

	out := ApplyModifier(validator(), quest.ScoreResult{Value: 200}, "no relevant keywords here", nil)
	if out.FinalScore != 200 || out.Message != "" {
		t.Fatalf("robust bonus without validation keyword: got score=%d msg=%q", out.FinalScore, out.Message)
	}
}

func TestApplyModifier_InertAbilitiesNeverFire(t *testing.T) {
	// Text crafted to hit every active keyword list at once.
	text := "try to catch the python error, fail validation, act as a js dev"
	res := quest.ScoreResult{Value: 150}

	inert := []string{
		"ORACLE_HIGH_CONTEXT",
		"ARCHITECT_FREE_HINT",
		"BARD_ROLE_IMMERSION",
		"WHISPERER_WORD_SAVER",
		"RESEARCHER_FRAG_BONUS",
	}
	for _, id := range inert {
		p := &Persona{ID: "X", AbilityID: id}
		out := ApplyModifier(p, res, text, nil)
		if out.FinalScore != 150 || out.Message != "" {
			t.Fatalf("ability %s should be inert: got score=%d msg=%q", id, out.FinalScore, out.Message)
		}
	}
}

func TestParseAbility(t *testing.T) {
	if got := ParseAbility("SCRIPTER_SYNTAX_SHIELD"); got != AbilitySyntaxShield {
		t.Fatalf("ParseAbility scripter = %v", got)
	}
	if got := ParseAbility("garbage"); got != AbilityNone {
		t.Fatalf("unknown ability id should parse to AbilityNone, got %v", got)
	}
	if !AbilitySyntaxShield.Active() || AbilityHighContext.Active() {
		t.Fatalf("Active() classification wrong")
	}
}
