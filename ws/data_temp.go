package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

type LastAction struct {
	Action   string          `json:"action"` // honor / dishonor / taint / discardStatus
	PlayerID string          `json:"playerID"`
	Payload  json.RawMessage `json:"payload"` // 原始 JSON 数据，延迟反序列化
}

// SetLastData 保存玩家最近一次动作
func SetLastData(rdb *redis.Client, ctx context.Context, roomID, playerID, action string, payload interface{}) error {
	lastDataKey := fmt.Sprintf("room:%s:last_data", roomID)

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化 Payload 失败: %w", err)
	}
	bytes, err := json.Marshal(LastAction{
		Action:   action,
		PlayerID: playerID,
		Payload:  raw,
	})
	if err != nil {
		return fmt.Errorf("序列化 LastAction 失败: %w", err)
	}

	field := fmt.Sprintf("player:%s", playerID)
	return rdb.HSet(ctx, lastDataKey, field, bytes).Err()
}

func GetLastData(rdb *redis.Client, ctx context.Context, roomID, playerID string) (*LastAction, error) {
	lastDataKey := fmt.Sprintf("room:%s:last_data", roomID)
	field := fmt.Sprintf("player:%s", playerID)

	val, err := rdb.HGet(ctx, lastDataKey, field).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var action LastAction
	if err := json.Unmarshal([]byte(val), &action); err != nil {
		return nil, fmt.Errorf("反序列化 LastAction 失败: %w", err)
	}
	return &action, nil
}

func ClearLastData(rdb *redis.Client, ctx context.Context, roomID string) error {
	return rdb.Del(ctx, fmt.Sprintf("room:%s:last_data", roomID)).Err()
}
