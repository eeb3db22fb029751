package persona

import (
	"math"

	"promptmaster-lite/quest"
)

// Keyword lists the active abilities match against. Substring containment,
// same semantics as the clarity signals.
var (
	codeKeywords       = []string{"python", "javascript", "js", "es6", "react", "java", "c++", "html", "css"}
	validationKeywords = []string{"try", "catch", "except", "error", "validation", "fail"}
)

// Activation messages shown to the player when an ability fires.
const (
	msgSyntaxShield = "SYNTAX SHIELD ACTIVE: Your Scripter ability automatically granted 100% Clarity for correctly specifying the language version."
	msgClarityFocus = "CLARITY FOCUS BONUS: Your Analyst precision boosted your Clarity score by +10 points."
	msgRobustBonus  = "ROBUSTNESS CHECK: Your Validator specialization applied a +5% total score bonus for including the Try-Except block."
)

// clarityFocusFloor is on the BaseScore-offset internal scale, not the 0-100
// "Clarity metric" the flavor text describes. The catalog prose and this
// implementation intentionally disagree on scale; the numeric behavior here
// is the contract.
const clarityFocusFloor = 130

// ModifierResult is the outcome of resolving a persona's ability against a
// scored attempt.
type ModifierResult struct {
	FinalScore int     `json:"finalScore"`
	Message    string  `json:"message,omitempty"`
	Ability    Ability `json:"-"`
}

// ApplyModifier applies at most one persona ability to a scored attempt.
// A nil persona, an inert ability, or an unmet condition leaves the score
// untouched and emits no message.
func ApplyModifier(p *Persona, res quest.ScoreResult, text string, q *quest.Quest) ModifierResult {
	out := ModifierResult{FinalScore: res.Value, Ability: p.Ability()}

	switch out.Ability {
	case AbilitySyntaxShield:
		if quest.ContainsAny(text, codeKeywords) {
			out.FinalScore += 50
			out.Message = msgSyntaxShield
		}
	case AbilityClarityFocus:
		if res.Value >= clarityFocusFloor {
			out.FinalScore += 10
			out.Message = msgClarityFocus
		}
	case AbilityRobustBonus:
		if quest.ContainsAny(text, validationKeywords) {
			out.FinalScore = int(math.Round(float64(res.Value) * 1.05))
			out.Message = msgRobustBonus
		}
	case AbilityNone, AbilityHighContext, AbilityFreeHint,
		AbilityRoleImmersion, AbilityWordSaver, AbilityFragBonus:
		// Inert: no score change, no message.
	}

	return out
}
