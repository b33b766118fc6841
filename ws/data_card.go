package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"go-l5r/entities"
	"sort"

	"github.com/go-redis/redis/v8"
)

func cardKey(roomID string) string {
	return fmt.Sprintf("room:%s:card", roomID)
}

// SetCards 批量写回卡牌（JSON 存在 room:<id>:card 哈希里）
func SetCards(rdb *redis.Client, ctx context.Context, roomID string, cards ...*entities.Card) error {
	if len(cards) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(cards))
	for _, card := range cards {
		cardJSON, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("卡牌 %s 序列化失败: %w", card.ID, err)
		}
		values[card.ID] = cardJSON
	}
	if err := rdb.HSet(ctx, cardKey(roomID), values).Err(); err != nil {
		return fmt.Errorf("保存卡牌失败: %w", err)
	}
	return nil
}

func GetCard(rdb *redis.Client, ctx context.Context, roomID, cardID string) (*entities.Card, error) {
	result, err := rdb.HGet(ctx, cardKey(roomID), cardID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("卡牌 %s 不存在", cardID)
		}
		return nil, fmt.Errorf("获取卡牌失败: %w", err)
	}

	var card entities.Card
	if err := json.Unmarshal([]byte(result), &card); err != nil {
		return nil, fmt.Errorf("卡牌解析失败: %w", err)
	}
	return &card, nil
}

// GetAllCards 返回房间内所有卡牌，按玩家和名字排序
func GetAllCards(rdb *redis.Client, ctx context.Context, roomID string) ([]*entities.Card, error) {
	result, err := rdb.HGetAll(ctx, cardKey(roomID)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取所有卡牌失败: %w", err)
	}

	cards := make([]*entities.Card, 0, len(result))
	for cardID, cardJSON := range result {
		var card entities.Card
		if err := json.Unmarshal([]byte(cardJSON), &card); err != nil {
			return nil, fmt.Errorf("卡牌 %s 反序列化失败: %w", cardID, err)
		}
		cards = append(cards, &card)
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Owner != cards[j].Owner {
			return cards[i].Owner < cards[j].Owner
		}
		if cards[i].Name != cards[j].Name {
			return cards[i].Name < cards[j].Name
		}
		return cards[i].ID < cards[j].ID
	})
	return cards, nil
}

func GetPlayerCards(rdb *redis.Client, ctx context.Context, roomID, playerID string) ([]*entities.Card, error) {
	all, err := GetAllCards(rdb, ctx, roomID)
	if err != nil {
		return nil, err
	}
	cards := make([]*entities.Card, 0)
	for _, c := range all {
		if c.Owner == playerID {
			cards = append(cards, c)
		}
	}
	return cards, nil
}

func ClearCards(rdb *redis.Client, ctx context.Context, roomID string) error {
	return rdb.Del(ctx, cardKey(roomID)).Err()
}
