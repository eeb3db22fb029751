package quest

// BaseScore is the starting value of every scoring attempt. Quest passing
// thresholds are expressed on a scale offset by this same value; see
// Evaluate.
const BaseScore = 100

// VerbosityPenalty is subtracted once when the prompt exceeds the configured
// word budget.
const VerbosityPenalty = 20

// Quest is a single scoring challenge. Immutable once loaded.
type Quest struct {
	ID                  string   `json:"quest_id"`
	Name                string   `json:"name"`
	BaseXPReward        int      `json:"base_xp_reward"`
	PassingThreshold    int      `json:"passing_threshold"`
	RequiredConstraints []string `json:"required_constraints"`
	OptimalPrompt       string   `json:"optimal_prompt,omitempty"`
}

// Signals records which clarity features fired during scoring. Downstream
// modifiers need these in addition to the raw value.
type Signals struct {
	RoleDefined bool `json:"role_defined"`
	TaskClear   bool `json:"task_clear"`
}

// ScoreResult is the output of the scoring rule set, before any character
// modifier is applied.
type ScoreResult struct {
	Value   int     `json:"value"`
	Signals Signals `json:"signals"`
}

// Submission is one quest attempt as received from the player.
type Submission struct {
	QuestID   string `json:"questId"`
	PersonaID string `json:"personaId"`
	Text      string `json:"text"`
}

// Outcome is the pass/fail decision for a submission.
type Outcome struct {
	Passed    bool   `json:"passed"`
	XPAwarded int    `json:"xpAwarded"`
	Message   string `json:"message"`
}
