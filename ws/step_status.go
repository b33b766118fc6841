package ws

import (
	"context"
	"go-l5r/dto"
	"go-l5r/engine"
	"go-l5r/entities"
	"go-l5r/repository"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func handleHonorMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	handleCardAction(rdb, roomID, playerID, msgMap, func(card *entities.Card) engine.Action {
		return engine.NewHonorAction(card)
	})
}

func handleDishonorMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	handleCardAction(rdb, roomID, playerID, msgMap, func(card *entities.Card) engine.Action {
		return engine.NewDishonorAction(card)
	})
}

func handleTaintMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	handleCardAction(rdb, roomID, playerID, msgMap, func(card *entities.Card) engine.Action {
		return engine.NewTaintAction(card)
	})
}

func handleCardAction(rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}, build func(*entities.Card) engine.Action) {
	ctx := repository.Ctx
	if !isPlayersTurn(rdb, ctx, roomID, playerID) {
		return
	}

	var payload dto.CardPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		zap.L().Warn("❌ 消息格式错误", zap.Error(err))
		return
	}
	card, err := GetCard(rdb, ctx, roomID, payload.CardID)
	if err != nil {
		zap.L().Warn("❌ 获取卡牌失败", zap.String("cardID", payload.CardID), zap.Error(err))
		return
	}
	resolveAction(rdb, ctx, roomID, playerID, build(card), payload.AsCost, card)
}

func handleDiscardStatusMessage(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{}) {
	ctx := repository.Ctx
	if !isPlayersTurn(rdb, ctx, roomID, playerID) {
		return
	}

	var payload dto.DiscardStatusPayload
	if err := decodePayload(msgMap["payload"], &payload); err != nil {
		zap.L().Warn("❌ 消息格式错误", zap.Error(err))
		return
	}
	card, err := GetCard(rdb, ctx, roomID, payload.CardID)
	if err != nil {
		zap.L().Warn("❌ 获取卡牌失败", zap.String("cardID", payload.CardID), zap.Error(err))
		return
	}
	token := card.StatusToken(payload.TokenID)
	if token == nil {
		zap.L().Info("卡牌上没有该标记", zap.String("cardID", card.ID), zap.String("tokenID", payload.TokenID))
		return
	}

	action := engine.NewDiscardStatusAction(engine.NewBoard(card), token)
	resolveAction(rdb, ctx, roomID, playerID, action, payload.AsCost, card)
}

// resolveAction 结算动作，写回卡牌，记录流水并轮到下一位玩家
func resolveAction(rdb *redis.Client, ctx context.Context, roomID, playerID string, action engine.Action, asCost bool, cards ...*entities.Card) {
	result, err := gameEngine.Resolve(action, engine.Context{Player: playerID, AsCost: asCost})
	if err != nil {
		zap.L().Info("动作无法结算", zap.String("roomID", roomID), zap.String("action", action.Name()), zap.Error(err))
		return
	}

	if err := SetCards(rdb, ctx, roomID, cards...); err != nil {
		zap.L().Error("❌ 保存卡牌失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	if err := SetLastData(rdb, ctx, roomID, playerID, action.Name(), result); err != nil {
		zap.L().Warn("❌ 保存最后动作失败", zap.Error(err))
	}
	if err := journal.Record(ctx, journalEntries(roomID, result, time.Now())); err != nil {
		zap.L().Warn("❌ 写入动作流水失败", zap.String("roomID", roomID), zap.Error(err))
	}
	if err := SwitchToNextPlayer(rdb, ctx, roomID, playerID); err != nil {
		zap.L().Warn("❌ 切换玩家失败", zap.Error(err))
	}
}
