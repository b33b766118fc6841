package router

import (
	"go-l5r/controller"
	"go-l5r/middleware"
	"go-l5r/ws"
	"net/http"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine, adminToken string, metrics http.Handler) {
	// 房间接口路由
	api := r.Group("/room")
	{
		api.POST("/create", controller.CreateRoom)
		api.POST("/join", controller.JoinRoom)
		api.POST("/delete", middleware.AdminAuth(adminToken), controller.DeleteRoom)
		api.GET("/list", controller.GetRoomList)
		api.GET("/:roomID/cards", controller.GetRoomCards)
	}

	r.GET("/healthz", controller.Healthz)
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	// WebSocket 路由
	r.GET("/ws", ws.HandleWebSocket)
}
