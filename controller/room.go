package controller

import (
	"go-l5r/dto"
	"go-l5r/service"

	"github.com/gin-gonic/gin"
)

// CreateRoom 建房并给房主签发 token
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	roomID, err := service.CreateRoom(req)
	if err != nil {
		failure(c, err)
		return
	}
	token, err := service.JoinRoom(dto.JoinRoomRequest{RoomID: roomID, UserID: req.UserID})
	if err != nil {
		failure(c, err)
		return
	}
	success(c, "房间创建成功", dto.CreateRoomResponse{Room_id: roomID, Token: token})
}

func JoinRoom(c *gin.Context) {
	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	token, err := service.JoinRoom(req)
	if err != nil {
		failure(c, err)
		return
	}
	success(c, "加入成功", dto.JoinRoomResponse{RoomID: req.RoomID, UserID: req.UserID, Token: token})
}

func DeleteRoom(c *gin.Context) {
	var req dto.DeleteRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := service.DeleteRoom(req); err != nil {
		failure(c, err)
		return
	}
	success(c, "房间删除成功", nil)
}

func GetRoomList(c *gin.Context) {
	rooms, err := service.GetRoomList()
	if err != nil {
		failure(c, err)
		return
	}
	success(c, "获取成功", dto.GetRoomList{
		Rooms:        rooms,
		OnlinePlayer: service.GetOnlinePlayer(),
	})
}
