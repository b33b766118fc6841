package engine

import (
	"go-l5r/entities"

	"github.com/google/uuid"
)

type EventName string

const (
	EventOnStatusTokenDiscarded EventName = "onStatusTokenDiscarded"
	EventOnCardHonored          EventName = "onCardHonored"
	EventOnCardDishonored       EventName = "onCardDishonored"
	EventOnCardTainted          EventName = "onCardTainted"
)

// GameEvent 一次动作对单个目标产生的事件
type GameEvent struct {
	ID        string                `json:"id"`
	Name      EventName             `json:"name"`
	Player    string                `json:"player"`
	Card      Card                  `json:"-"`
	Token     *entities.StatusToken `json:"token,omitempty"`
	AsCost    bool                  `json:"asCost"`
	Cancelled bool                  `json:"cancelled"`
}

func newEvent(name EventName, player string, card Card, token *entities.StatusToken, asCost bool) *GameEvent {
	return &GameEvent{
		ID:     uuid.New().String(),
		Name:   name,
		Player: player,
		Card:   card,
		Token:  token,
		AsCost: asCost,
	}
}

// Cancel 作为费用支付的事件不能被取消
func (e *GameEvent) Cancel() bool {
	if e == nil || e.AsCost {
		return false
	}
	e.Cancelled = true
	return true
}

// CardID 事件卡牌的 ID，用于日志和流水
func (e *GameEvent) CardID() string {
	if e == nil || e.Card == nil {
		return ""
	}
	return e.Card.CardID()
}
