package dto

type RoomPlayer struct {
	PlayerID string `json:"playerID"`
	Online   bool   `json:"online"`
}

type RoomInfo struct {
	RoomID     string       `json:"roomID"`
	UserID     string       `json:"userID"`
	MaxPlayers int          `json:"maxPlayers"`
	Status     bool         `json:"status"`
	GameStatus string       `json:"gameStatus"`
	RoomPlayer []RoomPlayer `json:"roomPlayer"`
}

type CreateRoomRequest struct {
	MaxPlayers int    `json:"maxPlayers" binding:"required,min=2,max=4"`
	UserID     string `json:"userID" binding:"required"`
}

type DeleteRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
}

type CreateRoomResponse struct {
	Room_id string `json:"room_id" binding:"required"`
	Token   string `json:"token"`
}

type JoinRoomRequest struct {
	RoomID string `json:"roomID" binding:"required"`
	UserID string `json:"userID" binding:"required"`
}

// JoinRoomResponse token 用于建立 /ws 连接
type JoinRoomResponse struct {
	RoomID string `json:"roomID"`
	UserID string `json:"userID"`
	Token  string `json:"token"`
}

type GetRoomList struct {
	Rooms        []RoomInfo `json:"rooms"`
	OnlinePlayer int        `json:"onlinePlayer"`
}
