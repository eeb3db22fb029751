package nexus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptmaster-lite/content"
	"promptmaster-lite/progression"
	"promptmaster-lite/quest"
	"promptmaster-lite/quest/persona"
)

func newTestService(t *testing.T) (*Service, *progression.Session) {
	t.Helper()

	bp := content.DefaultBlueprint()

	catalog := content.NewQuestCatalog()
	catalog.RegisterSectors(bp.Quests)

	personas := persona.NewRegistry()
	personas.Register(bp.Characters...)

	svc, err := New(bp.Scoring, catalog, personas, bp.Gear)
	require.NoError(t, err)

	table, err := progression.NewTable(bp.Levels)
	require.NoError(t, err)

	return svc, progression.NewSession(table, 1200)
}

func TestSubmitFailKeepsXP(t *testing.T) {
	svc, sess := newTestService(t)

	// Role + task signals only: 100 + 40 + 30 = 170, below the S01-Q1
	// adjusted bar of 180.
	res, err := svc.Submit(sess, quest.Submission{
		QuestID: "S01-Q1",
		Text:    "Act as a tour guide. Write a greeting for new visitors.",
	})
	require.NoError(t, err)

	assert.False(t, res.Outcome.Passed)
	assert.Equal(t, 170, res.FinalScore)
	assert.Equal(t, 0, res.Outcome.XPAwarded)
	assert.Equal(t, 1200, sess.XP())
	assert.False(t, sess.HasCompleted("S01-Q1"))
	assert.Empty(t, res.Profile.Completed)
}

func TestSubmitPassAwardsXPOnce(t *testing.T) {
	svc, sess := newTestService(t)

	// Scripter's syntax shield adds 50 on the python keyword: 170 + 50 = 220.
	res, err := svc.Submit(sess, quest.Submission{
		QuestID:   "S01-Q1",
		PersonaID: "CHAR_06",
		Text:      "Act as a senior engineer. Write a python function that parses logs.",
	})
	require.NoError(t, err)

	assert.True(t, res.Outcome.Passed)
	assert.Equal(t, 220, res.FinalScore)
	assert.Equal(t, 500, res.Outcome.XPAwarded)
	assert.NotEmpty(t, res.ModifierMessage)
	assert.Equal(t, 1700, sess.XP())
	assert.True(t, sess.HasCompleted("S01-Q1"))
	assert.Equal(t, []string{"S01-Q1"}, res.Profile.Completed)
	assert.False(t, res.LeveledUp)
}

func TestSubmitLevelUp(t *testing.T) {
	svc, sess := newTestService(t)
	require.Equal(t, 1, sess.Level())
	sess.AddXP(500) // 1700, one pass away from the 1800 tier

	res, err := svc.Submit(sess, quest.Submission{
		QuestID:   "S01-Q1",
		PersonaID: "CHAR_06",
		Text:      "Act as a senior engineer. Write a python function that parses logs.",
	})
	require.NoError(t, err)

	assert.True(t, res.Outcome.Passed)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, 5, res.Profile.Level)
	assert.Equal(t, "Efficiency Expert", res.Profile.RankTitle)
}

func TestSubmitUsesSelectedPersona(t *testing.T) {
	svc, sess := newTestService(t)

	_, err := svc.SelectPersona(sess, "CHAR_06")
	require.NoError(t, err)

	res, err := svc.Submit(sess, quest.Submission{
		QuestID: "S01-Q1",
		Text:    "Act as a senior engineer. Write a python function that parses logs.",
	})
	require.NoError(t, err)
	assert.Equal(t, "CHAR_06", res.PersonaID)
	assert.Equal(t, 220, res.FinalScore)
}

func TestSubmitEmptyTextScoresNormally(t *testing.T) {
	svc, sess := newTestService(t)
	_, err := svc.SelectPersona(sess, "CHAR_05") // Validator
	require.NoError(t, err)

	res, err := svc.Submit(sess, quest.Submission{QuestID: "S01-Q1", Text: ""})
	require.NoError(t, err)

	assert.Equal(t, 100, res.Score.Value)
	assert.Equal(t, 100, res.FinalScore, "no validation keywords in empty text")
	assert.Empty(t, res.ModifierMessage)
	assert.False(t, res.Outcome.Passed)
	assert.Equal(t, 0, res.Outcome.XPAwarded)
	assert.Equal(t, 1200, sess.XP())

	res, err = svc.Submit(sess, quest.Submission{QuestID: "S01-Q1", Text: "   \t\n"})
	require.NoError(t, err)
	assert.Equal(t, 100, res.FinalScore)
	assert.False(t, res.Outcome.Passed)
}

func TestSubmitUnknownPersonaIsInert(t *testing.T) {
	svc, sess := newTestService(t)

	res, err := svc.Submit(sess, quest.Submission{
		QuestID:   "S01-Q1",
		PersonaID: "CHAR_99",
		Text:      "Act as a senior engineer. Write a python function that parses logs.",
	})
	require.NoError(t, err)

	assert.Equal(t, 170, res.FinalScore, "no ability may fire for an unknown persona")
	assert.Empty(t, res.ModifierMessage)
	assert.False(t, res.Outcome.Passed)
	assert.Equal(t, 1200, sess.XP())
}

func TestSubmitRejections(t *testing.T) {
	svc, sess := newTestService(t)

	_, err := svc.Submit(sess, quest.Submission{QuestID: "S99-Q9", Text: "hello"})
	assert.ErrorIs(t, err, content.ErrQuestNotFound)

	_, err = svc.SelectPersona(sess, "CHAR_99")
	assert.ErrorIs(t, err, ErrUnknownPersona)
}

func TestAvailableGear(t *testing.T) {
	svc, sess := newTestService(t)

	gear := svc.AvailableGear(sess)
	assert.Len(t, gear[content.SlotArmor], 8, "only starter armor before any completion")
	assert.Len(t, gear[content.SlotWeapon], 8, "one tier-0 weapon per archetype")
	assert.Len(t, gear[content.SlotPower], 1)
	assert.Len(t, gear[content.SlotGadget], 8)

	sess.MarkCompleted("S01-Q50")
	gear = svc.AvailableGear(sess)
	assert.Len(t, gear[content.SlotArmor], 9, "S01 boss completion unlocks the Bias-Free Vest")
	assert.Len(t, gear[content.SlotPower], 2)
}

func TestListings(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Len(t, svc.Quests(), 3)
	assert.Len(t, svc.Personas(), 8)
}
