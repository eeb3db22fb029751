package persona

// Persona defines a selectable player character. Rank orders character
// strength in the select screen and is unrelated to the level table's rank
// titles. Description, origin and motivation are flavor text with no effect
// on scoring.
type Persona struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Specialty      string `json:"specialty"`
	Rank           int    `json:"rank"`
	Description    string `json:"description"`
	AbilityID      string `json:"ability_id"`
	StartingXP     int    `json:"starting_xp_bonus"`
	Asset          string `json:"asset,omitempty"`
	Origin         string `json:"origin,omitempty"`
	Motivation     string `json:"motivation,omitempty"`
	VisualDesc     string `json:"visual_description,omitempty"`
}

// Ability resolves the persona's catalog ability identifier.
func (p *Persona) Ability() Ability {
	if p == nil {
		return AbilityNone
	}
	return ParseAbility(p.AbilityID)
}
