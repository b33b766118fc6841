package dto

import (
	"go-l5r/entities"
	"sync"

	"github.com/gorilla/websocket"
)

type ConnInterface interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// RealConn gorilla 连接同一时刻只允许一个写者
type RealConn struct {
	*websocket.Conn
	writeMu sync.Mutex
}

func (r *RealConn) WriteMessage(messageType int, data []byte) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return r.Conn.WriteMessage(messageType, data)
}

func (r *RealConn) Close() error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()
	return r.Conn.Close()
}

// 玩家连接对象结构体
type PlayerConn struct {
	PlayerID string
	Conn     ConnInterface
	Online   bool
}

// CardPayload honor / dishonor / taint 消息的 payload
type CardPayload struct {
	CardID string `mapstructure:"cardID"`
	AsCost bool   `mapstructure:"asCost"`
}

// DiscardStatusPayload discard_status 消息的 payload
type DiscardStatusPayload struct {
	CardID  string `mapstructure:"cardID"`
	TokenID string `mapstructure:"tokenID"`
	AsCost  bool   `mapstructure:"asCost"`
}

// CardView 同步给前端的卡牌信息，附带计算后的技能值
type CardView struct {
	*entities.Card
	Status         string `json:"status"`
	MilitaryTotal  int    `json:"militaryTotal"`
	PoliticalTotal int    `json:"politicalTotal"`
}

func NewCardView(c *entities.Card) CardView {
	status := "ordinary"
	switch {
	case c.IsHonored():
		status = "honored"
	case c.IsDishonored():
		status = "dishonored"
	}
	return CardView{
		Card:           c,
		Status:         status,
		MilitaryTotal:  c.MilitarySkillTotal(),
		PoliticalTotal: c.PoliticalSkillTotal(),
	}
}

type PlayerData struct {
	Ready bool       `json:"ready"`
	Cards []CardView `json:"cards"`
}
