package quest

import "fmt"

// SignalWeights are the additive weights applied when a clarity signal fires.
// OutputDefined is carried in the blueprint but has no keyword list, so it
// never fires through the current scoring path.
type SignalWeights struct {
	RoleDefined   int `json:"role_defined"`
	TaskClear     int `json:"task_clear"`
	OutputDefined int `json:"output_defined"`
}

// SignalKeywords are the phrase lists matched (lowercased, substring) against
// the submission text.
type SignalKeywords struct {
	RoleDefined []string `json:"role_defined"`
	TaskClear   []string `json:"task_clear"`
}

// ScoringConstants is the read-only scoring configuration, loaded once at
// startup.
type ScoringConstants struct {
	Weights  SignalWeights  `json:"CLARITY_WEIGHTS"`
	Keywords SignalKeywords `json:"CLARITY_KEYWORDS"`

	// MaxWordCount is the word budget before the verbosity penalty applies.
	MaxWordCount int `json:"MAX_WORD_COUNT"`

	// PassThreshold is the global nexus threshold. Individual quests carry
	// their own thresholds; this is the catalog default.
	PassThreshold int `json:"NEXUS_PASS_THRESHOLD"`

	// MaxLivesCap is loaded for catalog parity but unused by the scoring
	// path: attempts are unlimited.
	MaxLivesCap int `json:"MAX_LIVES_CAP"`
}

func (c ScoringConstants) Validate() error {
	if c.MaxWordCount <= 0 {
		return fmt.Errorf("MaxWordCount must be > 0")
	}
	if c.Weights.RoleDefined < 0 || c.Weights.TaskClear < 0 || c.Weights.OutputDefined < 0 {
		return fmt.Errorf("signal weights must be >= 0")
	}
	if c.PassThreshold <= 0 {
		return fmt.Errorf("PassThreshold must be > 0")
	}
	if c.MaxLivesCap < 0 {
		return fmt.Errorf("MaxLivesCap must be >= 0")
	}
	return nil
}
