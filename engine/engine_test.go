package engine

import (
	"testing"

	"go-l5r/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngine_NilAction(t *testing.T) {
	_, err := New(nil, nil).Resolve(nil, Context{})
	require.ErrorIs(t, err, ErrNilAction)
}

func TestEngine_InterruptCancelsEffect(t *testing.T) {
	card := newCharacter("Doji Whisperer")
	card.Honor()

	eng := New(zap.NewNop(), nil)
	eng.OnInterrupt(EventOnStatusTokenDiscarded, func(ev *GameEvent) {
		ev.Cancel()
	})
	reacted := 0
	eng.OnReaction(EventOnStatusTokenDiscarded, func(ev *GameEvent) { reacted++ })

	res, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p1"})
	require.NoError(t, err)

	assert.True(t, card.IsHonored())
	assert.Empty(t, res.Resolved)
	assert.Len(t, res.Cancelled, 1)
	assert.Zero(t, reacted)
}

func TestEngine_CostEventsCannotBeCancelled(t *testing.T) {
	card := newCharacter("Doji Whisperer")
	card.Honor()

	eng := New(zap.NewNop(), nil)
	eng.OnInterrupt(EventOnStatusTokenDiscarded, func(ev *GameEvent) {
		assert.False(t, ev.Cancel())
	})

	res, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p2", AsCost: true})
	require.NoError(t, err)

	assert.True(t, card.IsOrdinary())
	assert.Len(t, res.Resolved, 1)
	assert.Equal(t, "p2: discarding Honored Status Token on Doji Whisperer", res.Message)
}

func TestEngine_ReactionSeesOrdinaryCard(t *testing.T) {
	card := newCharacter("Kakita Yoshi")
	card.Honor()

	eng := New(zap.NewNop(), nil)
	var seen []string
	eng.OnReaction(EventOnStatusTokenDiscarded, func(ev *GameEvent) {
		assert.Nil(t, ev.Card.PersonalHonor())
		assert.Nil(t, ev.Card.StatusToken(ev.Token.ID))
		seen = append(seen, ev.CardID())
	})
	eng.OnReaction(EventOnCardHonored, func(ev *GameEvent) {
		t.Fatal("honor reaction must not fire for a discard")
	})

	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p1"})
	require.NoError(t, err)
	assert.Equal(t, []string{card.ID}, seen)
}

func TestEngine_HonorDishonorTaint(t *testing.T) {
	eng := New(zap.NewNop(), nil)

	card := newCharacter("Akodo Toturi")
	_, err := eng.Resolve(NewHonorAction(card), Context{Player: "p1"})
	require.NoError(t, err)
	assert.True(t, card.IsHonored())

	_, err = eng.Resolve(NewHonorAction(card), Context{Player: "p1"})
	require.ErrorIs(t, err, ErrNoLegalTarget)

	_, err = eng.Resolve(NewDishonorAction(card), Context{Player: "p2"})
	require.NoError(t, err)
	assert.True(t, card.IsOrdinary())

	_, err = eng.Resolve(NewDishonorAction(card), Context{Player: "p2"})
	require.NoError(t, err)
	assert.True(t, card.IsDishonored())

	_, err = eng.Resolve(NewDishonorAction(card), Context{Player: "p2"})
	require.ErrorIs(t, err, ErrNoLegalTarget)

	res, err := eng.Resolve(NewTaintAction(card), Context{Player: "p1"})
	require.NoError(t, err)
	assert.True(t, card.IsTainted())
	assert.True(t, card.IsDishonored())
	assert.Equal(t, "p1: taint Akodo Toturi", res.Message)

	_, err = eng.Resolve(NewTaintAction(card), Context{Player: "p1"})
	require.ErrorIs(t, err, ErrNoLegalTarget)
}

func TestEngine_MultipleTargets(t *testing.T) {
	a := newCharacter("Doji Whisperer")
	b := newCharacter("Otomo Courtier")
	b.Honor()

	res, err := New(zap.NewNop(), nil).Resolve(NewHonorAction(a, b, nil), Context{Player: "p1"})
	require.NoError(t, err)
	require.Len(t, res.Resolved, 1)
	assert.Equal(t, a.ID, res.Resolved[0].CardID())
	assert.Equal(t, "p1: honor Doji Whisperer, Otomo Courtier", res.Message)
}

func TestEngine_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	eng := New(zap.NewNop(), metrics)

	card := newCharacter("Shinjo Altansarnai")
	card.Honor()
	_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.PersonalHonor()), Context{Player: "p1"})
	require.NoError(t, err)
	_, err = eng.Resolve(NewDiscardStatusAction(NewBoard(card), entities.NewStatusToken(entities.TokenHonored, card.ID)), Context{Player: "p1"})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ActionsTotal.WithLabelValues("discardStatus", "resolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ActionsTotal.WithLabelValues("discardStatus", "no_target")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsTotal.WithLabelValues(string(EventOnStatusTokenDiscarded), "resolved")))
}

func TestTrackPersonalHonorLoss(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	eng := New(zap.NewNop(), metrics)
	TrackPersonalHonorLoss(eng, metrics)

	honored := newCharacter("Doji Hotaru")
	honored.Honor()
	shamed := newCharacter("Bayushi Kachiko")
	shamed.Dishonor()
	tainted := newCharacter("Kuni Yori")
	tainted.Taint()

	for _, card := range []*entities.Card{honored, shamed, tainted} {
		_, err := eng.Resolve(NewDiscardStatusAction(NewBoard(card), card.StatusTokens[0]), Context{Player: "p1", AsCost: true})
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PersonalHonorLost.WithLabelValues(string(entities.TokenHonored))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PersonalHonorLost.WithLabelValues(string(entities.TokenDishonored))))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PersonalHonorLost.WithLabelValues(string(entities.TokenTainted))))
	assert.True(t, honored.IsOrdinary())
	assert.True(t, shamed.IsOrdinary())
}
