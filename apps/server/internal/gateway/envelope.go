package gateway

import (
	"promptmaster-lite/apps/server/internal/nexus"
	"promptmaster-lite/content"
	"promptmaster-lite/progression"
	"promptmaster-lite/quest/persona"
)

// Client message types.
const (
	ClientHello         = "hello"
	ClientSelectPersona = "select_persona"
	ClientListQuests    = "list_quests"
	ClientListPersonas  = "list_personas"
	ClientListGear      = "list_gear"
	ClientProfile       = "profile"
	ClientSubmit        = "submit"
)

// Server message types.
const (
	ServerWelcome     = "welcome"
	ServerProfile     = "profile"
	ServerQuestList   = "quest_list"
	ServerPersonaList = "persona_list"
	ServerGearList    = "gear_list"
	ServerOutcome     = "outcome"
	ServerError       = "error"
)

// Error codes sent to clients.
const (
	CodeBadMessage    = 1
	CodeNoSession     = 2
	CodeUnknownEntity = 3
	CodeRejected      = 4
)

// ClientEnvelope is the single inbound frame shape; Type selects which
// fields are meaningful.
type ClientEnvelope struct {
	Type      string `json:"type"`
	Token     string `json:"token,omitempty"`
	PersonaID string `json:"personaId,omitempty"`
	QuestID   string `json:"questId,omitempty"`
	Text      string `json:"text,omitempty"`
}

type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServerEnvelope is the single outbound frame shape. ServerSeq orders
// frames per connection; ServerTsMs is the send timestamp.
type ServerEnvelope struct {
	Type       string                                  `json:"type"`
	ServerSeq  uint64                                  `json:"serverSeq"`
	ServerTsMs int64                                   `json:"serverTsMs"`
	Token      string                                  `json:"token,omitempty"`
	Profile    *progression.SessionSnapshot            `json:"profile,omitempty"`
	Quests     []content.SectorQuest                   `json:"quests,omitempty"`
	Personas   []*persona.Persona                      `json:"personas,omitempty"`
	Gear       map[content.GearSlot][]content.GearItem `json:"gear,omitempty"`
	Outcome    *nexus.Result                           `json:"outcome,omitempty"`
	Error      *ErrorPayload                           `json:"error,omitempty"`
}
