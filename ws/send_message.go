package ws

import (
	"encoding/json"
	"fmt"
	"go-l5r/dto"
	"go-l5r/entities"
	"go-l5r/repository"
	"os"
	"path"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WriteGameLog 把同步快照追加到对局日志文件
func WriteGameLog(roomID, playerID string, roomInfo *entities.RoomInfo, msg map[string]interface{}) {
	if gameLogDir == "" {
		return
	}
	startTime := time.Now()
	if s, err := repository.Rdb.Get(repository.Ctx, gameStartKey(roomID)).Result(); err == nil {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			startTime = t
		}
	}
	logPath := getGameLogFilePath(roomID, startTime)

	// 调用方持有房间广播锁，同一房间的日志按顺序追加
	if err := appendGameLog(logPath, playerID, roomInfo, msg); err != nil {
		zap.L().Warn("❌ 写入对局日志失败", zap.String("path", logPath), zap.Error(err))
	}
}

func appendGameLog(logPath, playerID string, roomInfo *entities.RoomInfo, msg map[string]interface{}) error {
	if err := os.MkdirAll(path.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	entry := map[string]interface{}{
		"timestamp":  time.Now().Format("2006-01-02 15:04:05"),
		"roomInfo":   roomInfo,
		"playerID":   playerID,
		"playerData": msg["playerData"],
		"roomData":   msg["roomData"],
	}
	jsonEntry, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("序列化日志 entry 失败: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("打开游戏日志文件失败: %w", err)
	}
	defer f.Close()

	jsonEntry = append(jsonEntry, ',', '\n')
	if _, err := f.Write(jsonEntry); err != nil {
		return fmt.Errorf("写入日志失败: %w", err)
	}
	return nil
}

// buildSyncMessage 组装某位玩家视角的完整同步消息
func buildSyncMessage(roomID, playerID string, players []dto.PlayerConn) (map[string]interface{}, *entities.RoomInfo, string, error) {
	rdb := repository.Rdb
	ctx := repository.Ctx

	currentPlayer, err := GetCurrentPlayer(rdb, ctx, roomID)
	if err != nil {
		return nil, nil, "", err
	}
	roomInfo, err := GetRoomInfo(rdb, ctx, roomID)
	if err != nil {
		return nil, nil, "", err
	}
	allCards, err := GetAllCards(rdb, ctx, roomID)
	if err != nil {
		return nil, nil, "", err
	}

	playersData := make(map[string]dto.PlayerData, len(players))
	lastActions := make(map[string]*LastAction, len(players))
	for _, pc := range players {
		ready, err := IsPlayerReady(rdb, ctx, roomID, pc.PlayerID)
		if err != nil {
			zap.L().Warn("获取准备状态失败", zap.String("playerID", pc.PlayerID), zap.Error(err))
		}
		playersData[pc.PlayerID] = dto.PlayerData{Ready: ready, Cards: []dto.CardView{}}
		last, err := GetLastData(rdb, ctx, roomID, pc.PlayerID)
		if err != nil {
			zap.L().Warn("获取最后动作失败", zap.String("playerID", pc.PlayerID), zap.Error(err))
		}
		if last != nil {
			lastActions[pc.PlayerID] = last
		}
	}
	for _, card := range allCards {
		data, ok := playersData[card.Owner]
		if !ok {
			continue
		}
		data.Cards = append(data.Cards, dto.NewCardView(card))
		playersData[card.Owner] = data
	}

	msg := map[string]interface{}{
		"type":       "sync",
		"playerId":   playerID,
		"playerData": playersData,
		"roomData": map[string]interface{}{
			"roomInfo":      roomInfo,
			"currentPlayer": currentPlayer,
			"lastActions":   lastActions,
		},
	}
	return msg, roomInfo, currentPlayer, nil
}

// SyncRoomMessage 向该客户端发送同步消息
func SyncRoomMessage(conn dto.ConnInterface, roomID, playerID string, players []dto.PlayerConn) error {
	msg, roomInfo, currentPlayer, err := buildSyncMessage(roomID, playerID, players)
	if err != nil {
		return fmt.Errorf("组装同步消息失败: %w", err)
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("编码 JSON 失败: %w", err)
	}
	if playerID == currentPlayer && roomInfo.GameStatus == entities.RoomStatusPlaying {
		WriteGameLog(roomID, playerID, roomInfo, msg)
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

// BroadcastToRoom 给房间内所有在线玩家发送各自的同步消息
func BroadcastToRoom(roomID string) {
	unlock := lockRoomBroadcast(roomID)
	defer unlock()

	players := roomPlayers(roomID)
	for _, pc := range players {
		if !pc.Online || pc.Conn == nil {
			continue
		}
		if err := SyncRoomMessage(pc.Conn, roomID, pc.PlayerID, players); err != nil {
			zap.L().Warn("广播失败，关闭连接", zap.String("playerID", pc.PlayerID), zap.Error(err))
			pc.Conn.Close()
		}
	}
}
