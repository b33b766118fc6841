package engine

import (
	"strings"

	"go-l5r/entities"
)

// Target 动作的单个目标：卡牌，或卡牌上的某个标记
type Target struct {
	Card  Card
	Token *entities.StatusToken
}

func (t Target) String() string {
	if t.Token != nil {
		if t.Card != nil {
			return t.Token.String() + " on " + t.Card.DisplayName()
		}
		return t.Token.String()
	}
	if t.Card != nil {
		return t.Card.DisplayName()
	}
	return ""
}

// Action 可由引擎结算的游戏动作
type Action interface {
	Name() string
	EventName() EventName
	EffectText() string
	CostText() string
	Targets() []Target
	CanAffect(target Target) bool
	Handle(event *GameEvent)
}

// formatText 把模板里的 {0} 替换为目标描述
func formatText(template string, targets []Target) string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		if s := t.String(); s != "" {
			names = append(names, s)
		}
	}
	return strings.ReplaceAll(template, "{0}", strings.Join(names, ", "))
}
