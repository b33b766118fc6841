package ws

import (
	"fmt"
	"go-l5r/dto"
	"net/http"
	"path"
	"reflect"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// 将 HTTP 请求升级为 WebSocket 连接
func upgradeConnection(c *gin.Context) (*websocket.Conn, error) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("WebSocket 升级失败", zap.Error(err))
	}
	return conn, err
}

// 前端有时把布尔值发成字符串
func stringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Kind, to reflect.Kind, data interface{}) (interface{}, error) {
		if from == reflect.String && to == reflect.Bool {
			s := data.(string)
			if s == "" {
				return false, nil
			}
			return strconv.ParseBool(s)
		}
		return data, nil
	}
}

// decodePayload 把消息里的 payload 解码到结构体
func decodePayload(raw interface{}, out interface{}) error {
	if raw == nil {
		return fmt.Errorf("payload 为空")
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToBoolHookFunc(),
		Result:           out,
		WeaklyTypedInput: false,
	})
	if err != nil {
		return fmt.Errorf("创建解码器失败: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("payload 解码失败: %w", err)
	}
	return nil
}

// getConn 用于根据 roomID 和 playerID 获取对应的 WebSocket 连接
func getConn(roomID string, playerID string) (dto.ConnInterface, error) {
	roomLock.Lock()
	defer roomLock.Unlock()

	players, ok := Rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("房间[%s]不存在", roomID)
	}
	for _, p := range players {
		if p.PlayerID == playerID {
			return p.Conn, nil
		}
	}
	return nil, fmt.Errorf("玩家[%s]不在房间[%s]", playerID, roomID)
}

func getGameLogFilePath(roomID string, startTime time.Time) string {
	fileName := fmt.Sprintf("%s_%s.json", roomID, startTime.Format("20060102_150405"))
	return path.Join(gameLogDir, fileName)
}
