package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCard() *Card {
	return CharacterDef{Name: "Doji Whisperer", MilitarySkill: 1, PoliticalSkill: 3, Glory: 2}.NewCard("p1")
}

func TestCard_HonorAndMakeOrdinary(t *testing.T) {
	card := newTestCard()
	assert.True(t, card.IsOrdinary())

	card.Honor()
	require.True(t, card.IsHonored())
	ph := card.PersonalHonor()
	require.NotNil(t, ph)
	assert.Equal(t, TokenHonored, ph.Kind)
	assert.Equal(t, card.ID, ph.CardID)
	assert.Len(t, card.StatusTokens, 1)

	card.MakeOrdinary()
	assert.True(t, card.IsOrdinary())
	assert.Empty(t, card.StatusTokens)
	assert.Empty(t, card.PersonalHonorID)
}

func TestCard_HonorDishonoredBecomesOrdinary(t *testing.T) {
	card := newTestCard()
	card.Dishonor()
	require.True(t, card.IsDishonored())

	card.Honor()
	assert.True(t, card.IsOrdinary())
	assert.False(t, card.IsHonored())
}

func TestCard_DishonorHonoredBecomesOrdinary(t *testing.T) {
	card := newTestCard()
	card.Honor()
	card.Dishonor()
	assert.True(t, card.IsOrdinary())
}

func TestCard_RemovePersonalHonorClearsReference(t *testing.T) {
	card := newTestCard()
	card.Honor()
	ph := card.PersonalHonor()

	assert.True(t, card.RemoveStatusToken(&StatusToken{ID: ph.ID}))
	assert.True(t, card.IsOrdinary())
	assert.False(t, card.RemoveStatusToken(ph))
}

func TestCard_TaintIsNotPersonalHonor(t *testing.T) {
	card := newTestCard()
	card.Taint()
	card.Taint()

	assert.True(t, card.IsTainted())
	assert.True(t, card.IsOrdinary())
	assert.Len(t, card.StatusTokens, 1)
	assert.False(t, card.StatusTokens[0].IsPersonalHonorKind())
}

func TestCard_SkillTotals(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Card)
		military int
		politic  int
	}{
		{name: "ordinary", mutate: func(c *Card) {}, military: 1, politic: 3},
		{name: "honored", mutate: func(c *Card) { c.Honor() }, military: 3, politic: 5},
		{name: "dishonored floors at zero", mutate: func(c *Card) { c.Dishonor() }, military: 0, politic: 1},
		{name: "tainted", mutate: func(c *Card) { c.Taint() }, military: 3, politic: 5},
		{name: "honored and tainted", mutate: func(c *Card) { c.Honor(); c.Taint() }, military: 5, politic: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := newTestCard()
			tt.mutate(card)
			assert.Equal(t, tt.military, card.MilitarySkillTotal())
			assert.Equal(t, tt.politic, card.PoliticalSkillTotal())
		})
	}
}

func TestCard_PersonalHonorSurvivesJSON(t *testing.T) {
	card := newTestCard()
	card.Taint()
	card.Honor()

	raw, err := json.Marshal(card)
	require.NoError(t, err)

	var restored Card
	require.NoError(t, json.Unmarshal(raw, &restored))
	require.True(t, restored.IsHonored())
	assert.True(t, restored.PersonalHonor().SameAs(card.PersonalHonor()))
	assert.True(t, restored.IsTainted())
}

func TestCard_NilSafety(t *testing.T) {
	var card *Card
	assert.Nil(t, card.PersonalHonor())
	assert.False(t, card.InPlay())
	assert.False(t, card.RemoveStatusToken(&StatusToken{ID: "x"}))
	card.MakeOrdinary()

	var token *StatusToken
	assert.False(t, token.SameAs(token))
	assert.Equal(t, "", token.String())
}
