package controller

import (
	"go-l5r/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetRoomCards 可选 ?playerID= 只看某位玩家的卡牌
func GetRoomCards(c *gin.Context) {
	roomID := c.Param("roomID")
	cards, err := service.GetRoomCards(roomID, c.Query("playerID"))
	if err != nil {
		failure(c, err)
		return
	}
	success(c, "获取成功", gin.H{
		"roomID": roomID,
		"cards":  cards,
	})
}

func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
