package ws

import (
	"context"
	"fmt"
	"go-l5r/entities"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SetRoomInfo 设置房间的全部信息（Hash）
func SetRoomInfo(rdb *redis.Client, ctx context.Context, roomID string, info entities.RoomInfo) error {
	roomKey := fmt.Sprintf("room:%s:roomInfo", roomID)

	data := map[string]interface{}{
		"gameStatus": string(info.GameStatus),
		"roomStatus": strconv.FormatBool(info.RoomStatus),
		"maxPlayers": strconv.Itoa(info.MaxPlayers),
		"userID":     info.UserID,
	}

	if err := rdb.HSet(ctx, roomKey, data).Err(); err != nil {
		return fmt.Errorf("设置房间信息失败: %w", err)
	}
	return nil
}

// GetRoomInfo 获取房间的全部信息（Hash）
func GetRoomInfo(rdb *redis.Client, ctx context.Context, roomID string) (*entities.RoomInfo, error) {
	roomKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	roomInfoMap, err := rdb.HGetAll(ctx, roomKey).Result()
	if err != nil {
		return nil, fmt.Errorf("获取房间信息失败: %w", err)
	}
	if len(roomInfoMap) == 0 {
		return nil, fmt.Errorf("房间 %s 信息为空", roomID)
	}

	roomStatus, err := strconv.ParseBool(roomInfoMap["roomStatus"])
	if err != nil {
		return nil, fmt.Errorf("roomStatus 字段解析失败: %w", err)
	}
	roomInfo := &entities.RoomInfo{
		RoomStatus: roomStatus,
		GameStatus: entities.RoomStatus(roomInfoMap["gameStatus"]),
		UserID:     roomInfoMap["userID"],
	}
	if maxPlayersStr := roomInfoMap["maxPlayers"]; maxPlayersStr != "" {
		if val, err := strconv.Atoi(maxPlayersStr); err == nil {
			roomInfo.MaxPlayers = val
		} else {
			zap.L().Warn("⚠️ maxPlayers 转换失败", zap.String("roomID", roomID), zap.Error(err))
		}
	}
	return roomInfo, nil
}

func SetGameStatus(rdb *redis.Client, ctx context.Context, roomID string, status entities.RoomStatus) error {
	roomInfoKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	if err := rdb.HSet(ctx, roomInfoKey, "gameStatus", string(status)).Err(); err != nil {
		return fmt.Errorf("更新游戏状态失败: %w", err)
	}
	zap.L().Info("房间状态已更新", zap.String("roomID", roomID), zap.String("gameStatus", string(status)))
	return nil
}

func SetRoomStatus(rdb *redis.Client, ctx context.Context, roomID string, status bool) error {
	roomInfoKey := fmt.Sprintf("room:%s:roomInfo", roomID)
	if err := rdb.HSet(ctx, roomInfoKey, "roomStatus", strconv.FormatBool(status)).Err(); err != nil {
		return fmt.Errorf("更新房间状态失败: %w", err)
	}
	return nil
}

// SetCurrentPlayer 设置当前玩家
func SetCurrentPlayer(rdb *redis.Client, ctx context.Context, roomID, playerID string) error {
	key := fmt.Sprintf("room:%s:currentPlayer", roomID)
	if err := rdb.Set(ctx, key, playerID, 0).Err(); err != nil {
		return fmt.Errorf("设置当前玩家失败: %w", err)
	}
	zap.L().Info("✅ 当前玩家已设置", zap.String("roomID", roomID), zap.String("playerID", playerID))
	return nil
}

// GetCurrentPlayer 获取当前玩家，未设置时返回空字符串
func GetCurrentPlayer(rdb *redis.Client, ctx context.Context, roomID string) (string, error) {
	key := fmt.Sprintf("room:%s:currentPlayer", roomID)
	playerID, err := rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("获取当前玩家失败: %w", err)
	}
	return playerID, nil
}

// SetPlayerReady 记录玩家已准备，返回已准备人数
func SetPlayerReady(rdb *redis.Client, ctx context.Context, roomID, playerID string) (int64, error) {
	key := fmt.Sprintf("room:%s:ready", roomID)
	if err := rdb.SAdd(ctx, key, playerID).Err(); err != nil {
		return 0, fmt.Errorf("设置玩家准备失败: %w", err)
	}
	count, err := rdb.SCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("获取准备人数失败: %w", err)
	}
	return count, nil
}

func IsPlayerReady(rdb *redis.Client, ctx context.Context, roomID, playerID string) (bool, error) {
	key := fmt.Sprintf("room:%s:ready", roomID)
	return rdb.SIsMember(ctx, key, playerID).Result()
}

func ClearReady(rdb *redis.Client, ctx context.Context, roomID string) error {
	return rdb.Del(ctx, fmt.Sprintf("room:%s:ready", roomID)).Err()
}
