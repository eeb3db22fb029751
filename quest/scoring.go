package quest

// Score runs the clarity rule set over a submission text.
//
// The score starts at BaseScore, gains each signal weight whose keyword list
// matches, and loses VerbosityPenalty once if the text exceeds the word
// budget. The result is not clamped; negative values are possible and left
// to the caller.
func Score(text string, c ScoringConstants) ScoreResult {
	res := ScoreResult{Value: BaseScore}

	if ContainsAny(text, c.Keywords.RoleDefined) {
		res.Value += c.Weights.RoleDefined
		res.Signals.RoleDefined = true
	}
	if ContainsAny(text, c.Keywords.TaskClear) {
		res.Value += c.Weights.TaskClear
		res.Signals.TaskClear = true
	}

	if WordCount(text) > c.MaxWordCount {
		res.Value -= VerbosityPenalty
	}

	return res
}
