package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth 校验 Authorization 头；未配置 token 时拒绝所有请求
func AdminAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if adminToken == "" || token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte("Bearer "+adminToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"status_code": http.StatusUnauthorized, "msg": "未授权"})
			c.Abort()
			return
		}
		c.Next()
	}
}
