package controller

import (
	"errors"
	"go-l5r/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func success(c *gin.Context, msg string, data interface{}) {
	body := gin.H{
		"status_code": http.StatusOK,
		"msg":         msg,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(http.StatusOK, body)
}

// failure 按业务错误映射 HTTP 状态码
func failure(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrRoomFull):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"status_code": status, "msg": err.Error()})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"status_code": http.StatusBadRequest, "msg": "缺少必要字段"})
}
