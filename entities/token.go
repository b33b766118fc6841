package entities

import "github.com/google/uuid"

type TokenKind string

const (
	TokenHonored    TokenKind = "honored"    // 荣耀
	TokenDishonored TokenKind = "dishonored" // 耻辱
	TokenTainted    TokenKind = "tainted"    // 污染
)

// StatusToken 挂在某张角色卡上的状态标记
type StatusToken struct {
	ID     string    `json:"id"`
	Kind   TokenKind `json:"kind"`
	CardID string    `json:"cardID"`
}

func NewStatusToken(kind TokenKind, cardID string) *StatusToken {
	return &StatusToken{
		ID:     uuid.New().String(),
		Kind:   kind,
		CardID: cardID,
	}
}

// IsPersonalHonorKind 荣耀/耻辱标记决定卡牌的个人荣誉状态
func (t *StatusToken) IsPersonalHonorKind() bool {
	if t == nil {
		return false
	}
	return t.Kind == TokenHonored || t.Kind == TokenDishonored
}

// SameAs 按 ID 比较，状态从 redis 反序列化后指针不再相同
func (t *StatusToken) SameAs(other *StatusToken) bool {
	if t == nil || other == nil {
		return false
	}
	return t.ID == other.ID
}

func (t *StatusToken) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TokenHonored:
		return "Honored Status Token"
	case TokenDishonored:
		return "Dishonored Status Token"
	case TokenTainted:
		return "Tainted Status Token"
	}
	return string(t.Kind)
}
