package ws

import (
	"context"
	"fmt"
	"go-l5r/dto"
	"go-l5r/entities"
	"go-l5r/repository"
	"go-l5r/utils"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
)

// 校验房间是否有空位，并将玩家加入房间（掉线玩家重连时替换连接）
func validateAndJoinRoom(roomID, playerID string, conn dto.ConnInterface) bool {
	roomInfo, err := GetRoomInfo(repository.Rdb, repository.Ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 无法获取房间信息", zap.String("roomID", roomID), zap.Error(err))
		return false
	}

	roomLock.Lock()
	defer roomLock.Unlock()

	for i, pc := range Rooms[roomID] {
		if pc.PlayerID == playerID {
			Rooms[roomID][i].Conn = conn
			Rooms[roomID][i].Online = true
			zap.L().Info("玩家重连成功", zap.String("roomID", roomID), zap.String("playerID", playerID))
			return true
		}
	}

	if len(Rooms[roomID]) >= roomInfo.MaxPlayers {
		return false
	}

	Rooms[roomID] = append(Rooms[roomID], dto.PlayerConn{
		PlayerID: playerID,
		Conn:     conn,
		Online:   true,
	})
	zap.L().Info("玩家加入房间", zap.String("roomID", roomID), zap.String("playerID", playerID))
	return true
}

// 获取房间中在线玩家数量
func getRoomOnlineCount(roomID string) int {
	onLineCount := 0
	for _, pc := range roomPlayers(roomID) {
		if pc.Online {
			onLineCount++
		}
	}
	return onLineCount
}

func handleReadyMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	ctx := repository.Ctx
	roomInfo, err := GetRoomInfo(rdb, ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 无法获取房间信息", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	if roomInfo.GameStatus == entities.RoomStatusPlaying {
		return
	}

	readyCount, err := SetPlayerReady(rdb, ctx, roomID, playerID)
	if err != nil {
		zap.L().Warn("❌ 设置准备失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	onlineCount := getRoomOnlineCount(roomID)
	zap.L().Info("玩家准备",
		zap.String("roomID", roomID),
		zap.String("playerID", playerID),
		zap.Int64("ready", readyCount),
		zap.Int("online", onlineCount),
		zap.Int("maxPlayers", roomInfo.MaxPlayers))

	if int(readyCount) == roomInfo.MaxPlayers && onlineCount == roomInfo.MaxPlayers {
		if err := startGame(rdb, ctx, roomID); err != nil {
			zap.L().Error("❌ 开始游戏失败", zap.String("roomID", roomID), zap.Error(err))
		}
	}
}

// startGame 给每位玩家发角色卡，随机选择先手
func startGame(rdb *redis.Client, ctx context.Context, roomID string) error {
	if err := ClearCards(rdb, ctx, roomID); err != nil {
		return err
	}
	if err := ClearLastData(rdb, ctx, roomID); err != nil {
		return err
	}

	players := roomPlayers(roomID)
	if len(players) == 0 {
		return fmt.Errorf("房间 %s 没有玩家", roomID)
	}
	var cards []*entities.Card
	for _, pc := range players {
		cards = append(cards, dealCharacters(pc.PlayerID, handSize)...)
	}
	if err := SetCards(rdb, ctx, roomID, cards...); err != nil {
		return err
	}

	rngMu.Lock()
	first := players[rng.Intn(len(players))].PlayerID
	rngMu.Unlock()
	if err := SetCurrentPlayer(rdb, ctx, roomID, first); err != nil {
		return err
	}

	startKey := gameStartKey(roomID)
	if err := rdb.Set(ctx, startKey, time.Now().Format(time.RFC3339), 0).Err(); err != nil {
		return err
	}
	if err := SetRoomStatus(rdb, ctx, roomID, true); err != nil {
		return err
	}
	return SetGameStatus(rdb, ctx, roomID, entities.RoomStatusPlaying)
}

// dealCharacters 从角色池里不重复地抽 n 张
func dealCharacters(playerID string, n int) []*entities.Card {
	rngMu.Lock()
	perm := rng.Perm(len(entities.StartingCharacters))
	rngMu.Unlock()

	picked := utils.SafeSlice(perm, n)
	cards := make([]*entities.Card, 0, len(picked))
	for _, idx := range picked {
		cards = append(cards, entities.StartingCharacters[idx].NewCard(playerID))
	}
	return cards
}

// isPlayersTurn 对局进行中且轮到该玩家
func isPlayersTurn(rdb *redis.Client, ctx context.Context, roomID, playerID string) bool {
	roomInfo, err := GetRoomInfo(rdb, ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 无法获取房间信息", zap.String("roomID", roomID), zap.Error(err))
		return false
	}
	if roomInfo.GameStatus != entities.RoomStatusPlaying {
		zap.L().Info("对局未开始", zap.String("roomID", roomID))
		return false
	}
	currentPlayer, err := GetCurrentPlayer(rdb, ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 获取当前玩家失败", zap.String("roomID", roomID), zap.Error(err))
		return false
	}
	if currentPlayer != playerID {
		zap.L().Info("❌ 不是当前玩家的回合", zap.String("roomID", roomID), zap.String("playerID", playerID))
		return false
	}
	return true
}

func handlePassMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	ctx := repository.Ctx
	if !isPlayersTurn(rdb, ctx, roomID, playerID) {
		return
	}
	if err := SetLastData(rdb, ctx, roomID, playerID, "pass", nil); err != nil {
		zap.L().Warn("❌ 保存最后动作失败", zap.Error(err))
	}
	if err := SwitchToNextPlayer(rdb, ctx, roomID, playerID); err != nil {
		zap.L().Warn("❌ 切换玩家失败", zap.Error(err))
	}
}

func handleRestartGameMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	ctx := repository.Ctx
	roomInfo, err := GetRoomInfo(rdb, ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 无法获取房间信息", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	if roomInfo.UserID != playerID {
		zap.L().Info("只有房主可以重开", zap.String("roomID", roomID), zap.String("playerID", playerID))
		return
	}
	if err := startGame(rdb, ctx, roomID); err != nil {
		zap.L().Error("❌ 重开游戏失败", zap.String("roomID", roomID), zap.Error(err))
	}
}

func gameStartKey(roomID string) string {
	return "room:" + roomID + ":game_start_time"
}
