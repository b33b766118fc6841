package ws

import (
	"errors"
	"fmt"
	"go-l5r/utils"
)

var errMissingToken = errors.New("缺少 token")

// authenticatePlayer 从 token 里取玩家身份；userID 参数只用于核对
func authenticatePlayer(roomID, userID, token string) (string, error) {
	if roomID == "" {
		return "", errors.New("缺少 roomID")
	}
	if token == "" {
		return "", errMissingToken
	}
	claims, err := utils.ParseAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("token 校验失败: %w", err)
	}
	if claims.RoomID != roomID {
		return "", fmt.Errorf("token 不属于房间 %s", roomID)
	}
	if userID != "" && userID != claims.UserID {
		return "", fmt.Errorf("userID %s 与 token 不一致", userID)
	}
	return claims.UserID, nil
}
