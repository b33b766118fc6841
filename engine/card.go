package engine

import "go-l5r/entities"

// Card 引擎对卡牌的最小能力要求，entities.Card 实现该接口
type Card interface {
	CardID() string
	DisplayName() string
	InPlay() bool
	PersonalHonor() *entities.StatusToken
	StatusToken(tokenID string) *entities.StatusToken
	RemoveStatusToken(token *entities.StatusToken) bool
	MakeOrdinary()
	Honor()
	Dishonor()
	Taint()
	IsHonored() bool
	IsDishonored() bool
	IsTainted() bool
}

// CardLookup 按 ID 找到场上的卡
type CardLookup interface {
	FindCard(cardID string) Card
}

// Board 一组卡牌组成的简单 CardLookup
type Board map[string]*entities.Card

func NewBoard(cards ...*entities.Card) Board {
	b := make(Board, len(cards))
	for _, c := range cards {
		b[c.ID] = c
	}
	return b
}

func (b Board) FindCard(cardID string) Card {
	c, ok := b[cardID]
	if !ok || c == nil {
		return nil
	}
	return c
}

var _ Card = (*entities.Card)(nil)
