package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"go-l5r/dto"
	"go-l5r/engine"
	"go-l5r/repository"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// 房间内的所有连接
var Rooms = make(map[string][]dto.PlayerConn)
var roomLock sync.Mutex

// 每个房间的动作串行执行
var actionLocks sync.Map

// 每个房间的广播串行执行
var broadcastLocks sync.Map

var (
	gameEngine         = engine.New(nil, nil)
	journal    Journal = NopJournal{}
	gameLogDir         = "" // 为空时不写对局日志
	handSize           = 3
)

type Options struct {
	Engine     *engine.Engine
	Journal    Journal
	GameLogDir string
	HandSize   int
}

// Setup 在启动 HTTP 服务前调用
func Setup(opts Options) {
	if opts.Engine != nil {
		gameEngine = opts.Engine
	}
	if opts.Journal != nil {
		journal = opts.Journal
	}
	gameLogDir = opts.GameLogDir
	if opts.HandSize > 0 {
		handSize = opts.HandSize
	}
}

func lockRoomActions(roomID string) func() {
	v, _ := actionLocks.LoadOrStore(roomID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func lockRoomBroadcast(roomID string) func() {
	v, _ := broadcastLocks.LoadOrStore(roomID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// roomPlayers 返回房间玩家的快照
func roomPlayers(roomID string) []dto.PlayerConn {
	roomLock.Lock()
	defer roomLock.Unlock()
	players := make([]dto.PlayerConn, len(Rooms[roomID]))
	copy(players, Rooms[roomID])
	return players
}

func SwitchToNextPlayer(rdb *redis.Client, ctx context.Context, roomID, currentID string) error {
	players := roomPlayers(roomID)
	if len(players) == 0 {
		return fmt.Errorf("房间 %s 没有玩家", roomID)
	}

	currentIndex := -1
	for i, pc := range players {
		if pc.PlayerID == currentID {
			currentIndex = i
			break
		}
	}
	if currentIndex == -1 {
		return fmt.Errorf("未找到当前玩家 %s", currentID)
	}

	// 下一个玩家索引（循环）
	nextPlayerID := players[(currentIndex+1)%len(players)].PlayerID
	if err := SetCurrentPlayer(rdb, ctx, roomID, nextPlayerID); err != nil {
		return fmt.Errorf("切换当前玩家失败: %w", err)
	}
	return nil
}

// 玩家断开连接后，标记为离线
func cleanupOnDisconnect(roomID, playerID string, conn dto.ConnInterface) {
	roomLock.Lock()
	for i, pc := range Rooms[roomID] {
		if pc.PlayerID == playerID {
			if pc.Conn == conn {
				Rooms[roomID][i].Online = false
				Rooms[roomID][i].Conn = nil
				zap.L().Info("玩家标记为离线", zap.String("roomID", roomID), zap.String("playerID", playerID))
			}
			break
		}
	}
	roomLock.Unlock()

	roomInfo, err := GetRoomInfo(repository.Rdb, repository.Ctx, roomID)
	if err != nil {
		zap.L().Warn("❌ 获取房间信息失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	if roomInfo.RoomStatus {
		if err := SetRoomStatus(repository.Rdb, repository.Ctx, roomID, false); err != nil {
			zap.L().Warn("❌ 更新房间状态失败", zap.String("roomID", roomID), zap.Error(err))
		}
	}
	BroadcastToRoom(roomID)
}

// 消息处理函数类型
type messageHandler func(conn ReadWriteConn, rdb *redis.Client, roomID, playerID string, msgMap map[string]interface{})

// 消息处理函数映射
var messageHandlers = map[string]messageHandler{
	"ready":          handleReadyMessage,
	"honor":          handleHonorMessage,
	"dishonor":       handleDishonorMessage,
	"taint":          handleTaintMessage,
	"discard_status": handleDiscardStatusMessage,
	"pass":           handlePassMessage,
	"restart_game":   handleRestartGameMessage,
}

type WriteOnlyConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// 读写接口，供真实客户端连接用，支持读取消息
type ReadWriteConn interface {
	WriteOnlyConn
	ReadMessage() (messageType int, p []byte, err error)
}

// handleMessage 分发一条客户端消息，处理完成后广播同步
func handleMessage(conn ReadWriteConn, roomID, playerID string, msg []byte) {
	msgMap := make(map[string]interface{})
	if err := json.Unmarshal(msg, &msgMap); err != nil {
		zap.L().Warn("消息解析失败", zap.String("roomID", roomID), zap.Error(err))
		return
	}
	msgType, ok := msgMap["type"].(string)
	if !ok {
		zap.L().Warn("消息缺少 type", zap.String("roomID", roomID))
		return
	}
	handler, found := messageHandlers[msgType]
	if !found {
		zap.L().Warn("⚠️ 未知的消息类型", zap.String("type", msgType))
		return
	}

	unlock := lockRoomActions(roomID)
	handler(conn, repository.Rdb, roomID, playerID, msgMap)
	unlock()

	BroadcastToRoom(roomID)
}

func listenAndBroadcastMessages(conn ReadWriteConn, roomID, playerID string) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			zap.L().Info("读取消息失败", zap.String("playerID", playerID), zap.Error(err))
			break
		}
		handleMessage(conn, roomID, playerID, msg)
	}
}

// WebSocket 主入口（处理每个连接）
func HandleWebSocket(c *gin.Context) {
	conn, err := upgradeConnection(c)
	if err != nil {
		return
	}
	defer conn.Close()

	roomID := c.Query("roomID")
	playerID, err := authenticatePlayer(roomID, c.Query("userID"), c.Query("token"))
	if err != nil {
		zap.L().Warn("❌ 连接鉴权失败", zap.String("roomID", roomID), zap.Error(err))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"未授权"}`))
		return
	}

	rc := &dto.RealConn{Conn: conn}
	if !validateAndJoinRoom(roomID, playerID, rc) {
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"房间已满"}`))
		return
	}
	BroadcastToRoom(roomID)
	// 离开时清理资源
	defer cleanupOnDisconnect(roomID, playerID, rc)
	listenAndBroadcastMessages(rc, roomID, playerID)
}

// RegisterRoom 新建房间时登记一个空的连接列表
func RegisterRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	if _, ok := Rooms[roomID]; !ok {
		Rooms[roomID] = []dto.PlayerConn{}
	}
}

func RemoveRoom(roomID string) {
	roomLock.Lock()
	defer roomLock.Unlock()
	delete(Rooms, roomID)
	actionLocks.Delete(roomID)
	broadcastLocks.Delete(roomID)
}

// RoomSnapshot 所有房间连接列表的拷贝
func RoomSnapshot() map[string][]dto.PlayerConn {
	roomLock.Lock()
	defer roomLock.Unlock()
	snapshot := make(map[string][]dto.PlayerConn, len(Rooms))
	for id, players := range Rooms {
		cp := make([]dto.PlayerConn, len(players))
		copy(cp, players)
		snapshot[id] = cp
	}
	return snapshot
}
