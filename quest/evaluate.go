package quest

import "fmt"

// FailureMessage is the fixed refine-and-retry feedback for a failed attempt.
const FailureMessage = "FAILURE: Prompt alignment too low. Refine constraints and try again."

const successFormat = "SUCCESS: Prompt accepted by the Nexus. High fidelity output generated. +%d XP"

// Evaluate compares a final (post-modifier) score against the quest's
// threshold and issues the XP reward on a pass.
//
// Quest thresholds live on a scale offset by BaseScore from raw scores, so
// the threshold is shifted down before comparison. A quest with threshold
// 280 therefore passes at a final score of 180. This offset is part of the
// catalog contract; do not renormalize.
//
// Evaluate is the sole producer of XP awards and must be called at most once
// per submission.
func Evaluate(finalScore int, q *Quest) Outcome {
	adjusted := q.PassingThreshold - BaseScore
	if finalScore >= adjusted {
		return Outcome{
			Passed:    true,
			XPAwarded: q.BaseXPReward,
			Message:   fmt.Sprintf(successFormat, q.BaseXPReward),
		}
	}
	return Outcome{Message: FailureMessage}
}
