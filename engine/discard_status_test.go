package engine

import (
	"testing"

	"go-l5r/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCharacter(name string) *entities.Card {
	return entities.CharacterDef{Name: name, MilitarySkill: 2, PoliticalSkill: 2, Glory: 1}.NewCard("p1")
}

func TestDiscardStatus_PersonalHonorMakesOrdinary(t *testing.T) {
	card := newCharacter("Doji Whisperer")
	card.Honor()
	t1 := card.PersonalHonor()

	eng := New(zap.NewNop(), nil)
	res, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), t1), Context{Player: "p1"})
	require.NoError(t, err)

	assert.True(t, card.IsOrdinary())
	assert.Nil(t, card.StatusToken(t1.ID))
	require.Len(t, res.Resolved, 1)
	assert.Equal(t, EventOnStatusTokenDiscarded, res.Resolved[0].Name)
	assert.Equal(t, "p1: discard Honored Status Token on Doji Whisperer", res.Message)
}

func TestDiscardStatus_DishonoredTokenMakesOrdinary(t *testing.T) {
	card := newCharacter("Bayushi Kachiko")
	card.Dishonor()

	eng := New(zap.NewNop(), nil)
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p1"})
	require.NoError(t, err)
	assert.True(t, card.IsOrdinary())
}

func TestDiscardStatus_UnrelatedTokenKeepsHonor(t *testing.T) {
	card := newCharacter("Kakita Yoshi")
	card.Honor()
	card.Taint()
	t1 := card.PersonalHonor()
	var t2 *entities.StatusToken
	for _, tok := range card.StatusTokens {
		if tok.Kind == entities.TokenTainted {
			t2 = tok
		}
	}
	require.NotNil(t, t2)

	eng := New(zap.NewNop(), nil)
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), t2), Context{Player: "p1"})
	require.NoError(t, err)

	assert.False(t, card.IsOrdinary())
	assert.True(t, card.IsHonored())
	assert.True(t, card.PersonalHonor().SameAs(t1))
	assert.False(t, card.IsTainted())
}

func TestDiscardStatus_EventHandlerNilTokenIsNoop(t *testing.T) {
	card := newCharacter("Akodo Toturi")
	card.Honor()
	action := NewDiscardStatusAction(NewBoard(card))

	action.EventHandler(&GameEvent{Card: card})
	action.Handle(&GameEvent{Card: card})
	action.EventHandler(nil)
	action.Handle(nil)

	assert.True(t, card.IsHonored())
	assert.Len(t, card.StatusTokens, 1)
}

func TestDiscardStatus_TokenFromSerializedCopy(t *testing.T) {
	card := newCharacter("Shiba Tsukune")
	card.Honor()
	copied := &entities.StatusToken{ID: card.PersonalHonorID, Kind: entities.TokenHonored, CardID: card.ID}

	eng := New(zap.NewNop(), nil)
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), copied), Context{Player: "p1"})
	require.NoError(t, err)
	assert.True(t, card.IsOrdinary())
}

func TestDiscardStatus_NoLegalTarget(t *testing.T) {
	card := newCharacter("Hida Kisada")
	stray := entities.NewStatusToken(entities.TokenHonored, card.ID)
	missing := entities.NewStatusToken(entities.TokenTainted, "missing-card")

	eng := New(zap.NewNop(), nil)
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), stray, missing, nil), Context{Player: "p1"})
	require.ErrorIs(t, err, ErrNoLegalTarget)
}

func TestDiscardStatus_LeftPlayCannotBeAffected(t *testing.T) {
	card := newCharacter("Matsu Berserker")
	card.Honor()
	card.Location = entities.LocationDynastyDiscard

	eng := New(zap.NewNop(), nil)
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p1"})
	require.ErrorIs(t, err, ErrNoLegalTarget)
	assert.True(t, card.IsHonored())
}

func TestDiscardStatus_Metadata(t *testing.T) {
	card := newCharacter("Togashi Yokuni")
	card.Dishonor()
	action := NewDiscardStatusAction(NewBoard(card), card.PersonalHonor())

	assert.Equal(t, "discardStatus", action.Name())
	assert.Equal(t, EventOnStatusTokenDiscarded, action.EventName())
	assert.Equal(t, "discard Dishonored Status Token on Togashi Yokuni", action.EffectText())
	assert.Equal(t, "discarding Dishonored Status Token on Togashi Yokuni", action.CostText())
}
