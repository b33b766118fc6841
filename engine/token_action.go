package engine

import "go-l5r/entities"

// TokenActionProperties 以状态标记为目标的动作的公共属性
type TokenActionProperties struct {
	Name      string
	EventName EventName
	Effect    string // 例如 "discard {0}"
	Cost      string // 例如 "discarding {0}"
	Tokens    []*entities.StatusToken
	Lookup    CardLookup
}

// TokenAction 标记动作的基类，具体动作内嵌它并在 Handle 里先执行自己的逻辑
type TokenAction struct {
	props TokenActionProperties
}

func NewTokenAction(props TokenActionProperties) TokenAction {
	return TokenAction{props: props}
}

func (a *TokenAction) Name() string         { return a.props.Name }
func (a *TokenAction) EventName() EventName { return a.props.EventName }
func (a *TokenAction) EffectText() string   { return formatText(a.props.Effect, a.Targets()) }
func (a *TokenAction) CostText() string     { return formatText(a.props.Cost, a.Targets()) }

// Targets 通过 Lookup 把标记解析到所属卡牌
func (a *TokenAction) Targets() []Target {
	targets := make([]Target, 0, len(a.props.Tokens))
	for _, token := range a.props.Tokens {
		if token == nil {
			continue
		}
		var card Card
		if a.props.Lookup != nil {
			card = a.props.Lookup.FindCard(token.CardID)
		}
		targets = append(targets, Target{Card: card, Token: token})
	}
	return targets
}

func (a *TokenAction) CanAffect(target Target) bool {
	if target.Token == nil || target.Card == nil {
		return false
	}
	if !target.Card.InPlay() {
		return false
	}
	return target.Card.StatusToken(target.Token.ID) != nil
}

// Handle 从卡牌上移除事件指向的标记
func (a *TokenAction) Handle(event *GameEvent) {
	if event == nil || event.Token == nil || event.Card == nil {
		return
	}
	event.Card.RemoveStatusToken(event.Token)
}
