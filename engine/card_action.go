package engine

// CardActionProperties 以卡牌为目标的动作的公共属性
type CardActionProperties struct {
	Name      string
	EventName EventName
	Effect    string
	Cost      string
	Cards     []Card
}

type CardAction struct {
	props CardActionProperties
}

func NewCardAction(props CardActionProperties) CardAction {
	return CardAction{props: props}
}

func (a *CardAction) Name() string         { return a.props.Name }
func (a *CardAction) EventName() EventName { return a.props.EventName }
func (a *CardAction) EffectText() string   { return formatText(a.props.Effect, a.Targets()) }
func (a *CardAction) CostText() string     { return formatText(a.props.Cost, a.Targets()) }

func (a *CardAction) Targets() []Target {
	targets := make([]Target, 0, len(a.props.Cards))
	for _, c := range a.props.Cards {
		if c == nil {
			continue
		}
		targets = append(targets, Target{Card: c})
	}
	return targets
}

func (a *CardAction) CanAffect(target Target) bool {
	return target.Card != nil && target.Card.InPlay()
}

// HonorAction 授荣；已荣耀的卡不能再被授荣
type HonorAction struct {
	CardAction
}

func NewHonorAction(cards ...Card) *HonorAction {
	return &HonorAction{CardAction: NewCardAction(CardActionProperties{
		Name:      "honor",
		EventName: EventOnCardHonored,
		Effect:    "honor {0}",
		Cost:      "honoring {0}",
		Cards:     cards,
	})}
}

func (a *HonorAction) CanAffect(target Target) bool {
	return a.CardAction.CanAffect(target) && !target.Card.IsHonored()
}

func (a *HonorAction) Handle(event *GameEvent) {
	if event == nil || event.Card == nil {
		return
	}
	event.Card.Honor()
}

// DishonorAction 羞辱；已耻辱的卡不能再被羞辱
type DishonorAction struct {
	CardAction
}

func NewDishonorAction(cards ...Card) *DishonorAction {
	return &DishonorAction{CardAction: NewCardAction(CardActionProperties{
		Name:      "dishonor",
		EventName: EventOnCardDishonored,
		Effect:    "dishonor {0}",
		Cost:      "dishonoring {0}",
		Cards:     cards,
	})}
}

func (a *DishonorAction) CanAffect(target Target) bool {
	return a.CardAction.CanAffect(target) && !target.Card.IsDishonored()
}

func (a *DishonorAction) Handle(event *GameEvent) {
	if event == nil || event.Card == nil {
		return
	}
	event.Card.Dishonor()
}

type TaintAction struct {
	CardAction
}

func NewTaintAction(cards ...Card) *TaintAction {
	return &TaintAction{CardAction: NewCardAction(CardActionProperties{
		Name:      "taint",
		EventName: EventOnCardTainted,
		Effect:    "taint {0}",
		Cost:      "tainting {0}",
		Cards:     cards,
	})}
}

func (a *TaintAction) CanAffect(target Target) bool {
	return a.CardAction.CanAffect(target) && !target.Card.IsTainted()
}

func (a *TaintAction) Handle(event *GameEvent) {
	if event == nil || event.Card == nil {
		return
	}
	event.Card.Taint()
}
