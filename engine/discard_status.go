package engine

import "go-l5r/entities"

// DiscardStatusAction 弃掉卡牌上的一个状态标记。
// 如果弃掉的是该卡的个人荣誉标记，卡牌同时回到普通状态。
type DiscardStatusAction struct {
	TokenAction
}

func NewDiscardStatusAction(lookup CardLookup, tokens ...*entities.StatusToken) *DiscardStatusAction {
	return &DiscardStatusAction{
		TokenAction: NewTokenAction(TokenActionProperties{
			Name:      "discardStatus",
			EventName: EventOnStatusTokenDiscarded,
			Effect:    "discard {0}",
			Cost:      "discarding {0}",
			Tokens:    tokens,
			Lookup:    lookup,
		}),
	}
}

func (a *DiscardStatusAction) Handle(event *GameEvent) {
	a.EventHandler(event)
	a.TokenAction.Handle(event)
}

// EventHandler 先于标记移除执行，保证卡牌不会出现标记已移除但仍处于荣耀/耻辱的状态
func (a *DiscardStatusAction) EventHandler(event *GameEvent) {
	if event == nil || event.Token == nil || event.Card == nil {
		return
	}
	if event.Token.SameAs(event.Card.PersonalHonor()) {
		event.Card.MakeOrdinary()
	}
}
