//go:build js && wasm

// scorewasm exposes the quest scoring pipeline to the browser SPA so
// attempts can be scored without a round trip. State (XP, level) stays on
// the JS side; this bridge is pure per-call.
package main

import (
	"encoding/json"
	"syscall/js"

	"promptmaster-lite/content"
	"promptmaster-lite/quest"
	"promptmaster-lite/quest/persona"
)

type scoreRequest struct {
	QuestID   string `json:"questId"`
	PersonaID string `json:"personaId"`
	Text      string `json:"text"`
}

type scoreResponse struct {
	OK              bool              `json:"ok"`
	Error           string            `json:"error,omitempty"`
	Score           quest.ScoreResult `json:"score"`
	FinalScore      int               `json:"finalScore"`
	ModifierMessage string            `json:"modifierMessage,omitempty"`
	Outcome         quest.Outcome     `json:"outcome"`
}

func main() {
	bp := content.DefaultBlueprint()

	catalog := content.NewQuestCatalog()
	catalog.RegisterSectors(bp.Quests)

	personas := persona.NewRegistry()
	personas.Register(bp.Characters...)

	js.Global().Set("__nexusScore", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 {
			return mustJSON(scoreResponse{Error: "missing request payload"})
		}
		return mustJSON(handleScore(args[0].String(), bp, catalog, personas))
	}))

	select {}
}

func handleScore(raw string, bp *content.Blueprint, catalog *content.QuestCatalog, personas *persona.Registry) scoreResponse {
	var req scoreRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		return scoreResponse{Error: "invalid request JSON: " + err.Error()}
	}

	q, err := catalog.Find(req.QuestID)
	if err != nil {
		return scoreResponse{Error: err.Error()}
	}

	score := quest.Score(req.Text, bp.Scoring)
	mod := persona.ApplyModifier(personas.Get(req.PersonaID), score, req.Text, &q)
	outcome := quest.Evaluate(mod.FinalScore, &q)

	return scoreResponse{
		OK:              true,
		Score:           score,
		FinalScore:      mod.FinalScore,
		ModifierMessage: mod.Message,
		Outcome:         outcome,
	}
}

func mustJSON(v scoreResponse) string {
	b, err := json.Marshal(v)
	if err != nil {
		b2, _ := json.Marshal(scoreResponse{Error: "marshal failed: " + err.Error()})
		return string(b2)
	}
	return string(b)
}
