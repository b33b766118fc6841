package service

import (
	"fmt"
	"go-l5r/dto"
	"go-l5r/entities"
	"go-l5r/repository"
	"go-l5r/utils"
	"go-l5r/ws"
	"sort"
	"strings"

	"github.com/google/uuid"
)

func CreateRoom(params dto.CreateRoomRequest) (string, error) {
	// 生成唯一 Room ID（8位）
	roomID := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]

	err := ws.SetRoomInfo(repository.Rdb, repository.Ctx, roomID, entities.RoomInfo{
		MaxPlayers: params.MaxPlayers,
		GameStatus: entities.RoomStatusWaiting,
		RoomStatus: false,
		UserID:     params.UserID,
	})
	if err != nil {
		return "", fmt.Errorf("初始化房间信息失败: %w", err)
	}

	ws.RegisterRoom(roomID)
	return roomID, nil
}

func DeleteRoom(params dto.DeleteRoomRequest) error {
	ctx := repository.Ctx
	rdb := repository.Rdb

	// 用 SCAN 查找所有以 room:{RoomID}: 开头的 key
	prefix := fmt.Sprintf("room:%s:", params.RoomID)
	var cursor uint64
	var keysToDelete []string
	for {
		keys, cur, err := rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描房间相关 key 失败: %w", err)
		}
		keysToDelete = append(keysToDelete, keys...)
		cursor = cur
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return ErrRoomNotFound
	}
	if _, err := rdb.Del(ctx, keysToDelete...).Result(); err != nil {
		return fmt.Errorf("删除房间相关 key 失败: %w", err)
	}
	ws.RemoveRoom(params.RoomID)
	return nil
}

func GetRoomList() ([]dto.RoomInfo, error) {
	rooms := make([]dto.RoomInfo, 0)
	for roomID, players := range ws.RoomSnapshot() {
		roomInfo, err := ws.GetRoomInfo(repository.Rdb, repository.Ctx, roomID)
		if err != nil {
			ws.RemoveRoom(roomID)
			continue
		}

		roomPlayers := make([]dto.RoomPlayer, 0, len(players))
		for _, player := range players {
			roomPlayers = append(roomPlayers, dto.RoomPlayer{
				PlayerID: player.PlayerID,
				Online:   player.Online,
			})
		}
		rooms = append(rooms, dto.RoomInfo{
			RoomID:     roomID,
			UserID:     roomInfo.UserID,
			MaxPlayers: roomInfo.MaxPlayers,
			Status:     roomInfo.RoomStatus,
			GameStatus: string(roomInfo.GameStatus),
			RoomPlayer: roomPlayers,
		})
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomID < rooms[j].RoomID })
	return rooms, nil
}

func GetOnlinePlayer() int {
	onlinePlayer := 0
	for _, room := range ws.RoomSnapshot() {
		for _, player := range room {
			if player.Online {
				onlinePlayer++
			}
		}
	}
	return onlinePlayer
}

// JoinRoom 为玩家签发进入房间的 token，已在房间里的玩家可以重新领取
func JoinRoom(params dto.JoinRoomRequest) (string, error) {
	roomInfo, err := ws.GetRoomInfo(repository.Rdb, repository.Ctx, params.RoomID)
	if err != nil {
		return "", ErrRoomNotFound
	}

	players := ws.RoomSnapshot()[params.RoomID]
	seated := false
	for _, p := range players {
		if p.PlayerID == params.UserID {
			seated = true
			break
		}
	}
	if !seated && len(players) >= roomInfo.MaxPlayers {
		return "", ErrRoomFull
	}

	token, err := utils.GenerateAccessToken(params.RoomID, params.UserID)
	if err != nil {
		return "", fmt.Errorf("签发 token 失败: %w", err)
	}
	return token, nil
}

// GetRoomCards 房间内的卡牌及其计算后的状态，playerID 非空时只返回该玩家的卡牌
func GetRoomCards(roomID, playerID string) ([]dto.CardView, error) {
	if _, err := ws.GetRoomInfo(repository.Rdb, repository.Ctx, roomID); err != nil {
		return nil, ErrRoomNotFound
	}
	var (
		cards []*entities.Card
		err   error
	)
	if playerID != "" {
		cards, err = ws.GetPlayerCards(repository.Rdb, repository.Ctx, roomID, playerID)
	} else {
		cards, err = ws.GetAllCards(repository.Rdb, repository.Ctx, roomID)
	}
	if err != nil {
		return nil, err
	}
	views := make([]dto.CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, dto.NewCardView(c))
	}
	return views, nil
}
