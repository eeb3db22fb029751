// Package nexus runs quest attempts against the scoring engine and is the
// only writer of player progression. The gateway and any future transport
// call into it; they never touch XP or levels directly.
package nexus

import (
	"errors"
	"fmt"

	"promptmaster-lite/content"
	"promptmaster-lite/progression"
	"promptmaster-lite/quest"
	"promptmaster-lite/quest/persona"
)

var ErrUnknownPersona = errors.New("unknown persona")

// Service wires the quest catalog, persona registry, gear catalog and
// scoring constants into one attempt pipeline.
type Service struct {
	constants quest.ScoringConstants
	catalog   *content.QuestCatalog
	personas  *persona.Registry
	gear      content.GearCatalog
}

func New(constants quest.ScoringConstants, catalog *content.QuestCatalog, personas *persona.Registry, gear content.GearCatalog) (*Service, error) {
	if err := constants.Validate(); err != nil {
		return nil, fmt.Errorf("scoring constants: %w", err)
	}
	if catalog == nil || personas == nil {
		return nil, errors.New("catalog and personas are required")
	}
	return &Service{constants: constants, catalog: catalog, personas: personas, gear: gear}, nil
}

// Result is the full outcome of one submission: the raw signal score, the
// persona-adjusted final score, and the player's profile after any reward.
type Result struct {
	QuestID         string                      `json:"questId"`
	PersonaID       string                      `json:"personaId,omitempty"`
	Score           quest.ScoreResult           `json:"score"`
	FinalScore      int                         `json:"finalScore"`
	ModifierMessage string                      `json:"modifierMessage,omitempty"`
	Outcome         quest.Outcome               `json:"outcome"`
	LeveledUp       bool                        `json:"leveledUp"`
	Profile         progression.SessionSnapshot `json:"profile"`
}

// Submit evaluates one attempt. A submission is scored exactly once: XP is
// credited only on a pass, and only here. When sub.PersonaID is empty the
// session's selected persona applies.
//
// Free-form text is never rejected: empty or whitespace-only submissions
// score normally (base score, no signals). An unknown or stale persona
// identifier resolves to an inert modifier, not an error; the only lookup
// that can fail is the quest itself.
func (s *Service) Submit(sess *progression.Session, sub quest.Submission) (*Result, error) {
	q, err := s.catalog.Find(sub.QuestID)
	if err != nil {
		return nil, err
	}

	personaID := sub.PersonaID
	if personaID == "" {
		personaID = sess.PersonaID()
	}
	p := s.personas.Get(personaID) // nil is fine: inert

	score := quest.Score(sub.Text, s.constants)
	mod := persona.ApplyModifier(p, score, sub.Text, &q)
	outcome := quest.Evaluate(mod.FinalScore, &q)

	levelBefore := sess.Level()
	if outcome.Passed {
		sess.AddXP(outcome.XPAwarded)
		sess.MarkCompleted(q.ID)
	}

	return &Result{
		QuestID:         q.ID,
		PersonaID:       personaID,
		Score:           score,
		FinalScore:      mod.FinalScore,
		ModifierMessage: mod.Message,
		Outcome:         outcome,
		LeveledUp:       sess.Level() > levelBefore,
		Profile:         sess.Snapshot(),
	}, nil
}

// SelectPersona validates the persona exists before binding it to the session.
func (s *Service) SelectPersona(sess *progression.Session, personaID string) (*persona.Persona, error) {
	p := s.personas.Get(personaID)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPersona, personaID)
	}
	sess.SelectPersona(personaID)
	return p, nil
}

// Quests returns the full flattened quest listing.
func (s *Service) Quests() []content.SectorQuest {
	return s.catalog.All()
}

// Personas returns the playable cast.
func (s *Service) Personas() []*persona.Persona {
	return s.personas.All()
}

// AvailableGear filters the gear catalog against the session's completed
// quests, per slot. Locked items are omitted entirely; the Armory view
// renders what it receives.
func (s *Service) AvailableGear(sess *progression.Session) map[content.GearSlot][]content.GearItem {
	out := make(map[content.GearSlot][]content.GearItem, len(s.gear))
	for slot := range s.gear {
		out[slot] = s.gear.Available(slot, sess.HasCompleted)
	}
	return out
}
