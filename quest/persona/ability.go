package persona

// Ability 角色技能类型 — the closed set of persona abilities known to the
// scoring engine. Only the first three alter scores; the rest are narrative
// abilities carried by the catalog that the scoring path never invokes.
type Ability byte

const (
	AbilityNone Ability = iota

	// Scoring abilities.
	AbilitySyntaxShield // Scripter: flat bonus when a code language is named
	AbilityClarityFocus // Analyst: small bonus on already-high scores
	AbilityRobustBonus  // Validator: multiplicative bonus for error handling

	// Declared-but-inert abilities. Flavor text describes effects (XP
	// bonuses, free hints, word-count extensions) that the engine does not
	// implement; they resolve to no-ops by contract.
	AbilityHighContext   // Oracle
	AbilityFreeHint      // Architect
	AbilityRoleImmersion // Bard
	AbilityWordSaver     // Whisperer
	AbilityFragBonus     // Researcher
)

var AbilityDictionary = map[Ability]string{
	AbilityNone:          "NONE",
	AbilitySyntaxShield:  "SCRIPTER_SYNTAX_SHIELD",
	AbilityClarityFocus:  "ANALYST_CLARITY_FOCUS",
	AbilityRobustBonus:   "VALIDATOR_ROBUST_BONUS",
	AbilityHighContext:   "ORACLE_HIGH_CONTEXT",
	AbilityFreeHint:      "ARCHITECT_FREE_HINT",
	AbilityRoleImmersion: "BARD_ROLE_IMMERSION",
	AbilityWordSaver:     "WHISPERER_WORD_SAVER",
	AbilityFragBonus:     "RESEARCHER_FRAG_BONUS",
}

var abilityByID = func() map[string]Ability {
	m := make(map[string]Ability, len(AbilityDictionary))
	for a, id := range AbilityDictionary {
		m[id] = a
	}
	return m
}()

// ParseAbility maps a catalog ability identifier to its Ability. Unknown
// identifiers resolve to AbilityNone: an unrecognized persona is inert, not
// an error.
func ParseAbility(id string) Ability {
	if a, ok := abilityByID[id]; ok {
		return a
	}
	return AbilityNone
}

func (a Ability) String() string {
	if s, ok := AbilityDictionary[a]; ok {
		return s
	}
	return "NONE"
}

// Active reports whether the ability participates in scoring.
func (a Ability) Active() bool {
	switch a {
	case AbilitySyntaxShield, AbilityClarityFocus, AbilityRobustBonus:
		return true
	}
	return false
}
