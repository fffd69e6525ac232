package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey 是加载后的用户ID在Gin上下文中的键名
	UserIDKey = "userID"
)

// RequireUserMiddleware 校验路径参数 :userId 指向一个真实存在的用户。
// 不存在时直接以404结束请求，业务Handler因此无需再做存在性检查。
func RequireUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("userId")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "Invalid user ID: " + idStr})
			return
		}

		known, err := IsUserKnown(uint(id))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to look up user: " + err.Error()})
			return
		}
		if !known {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "User not found with ID: " + idStr})
			return
		}

		c.Set(UserIDKey, uint(id))
		c.Next()
	}
}

// IDFromContext 读取RequireUserMiddleware放入上下文的用户ID。
func IDFromContext(c *gin.Context) uint {
	return c.GetUint(UserIDKey)
}
