package dashboard

import (
	"net/http"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GetDashboard 返回用户首页需要的全部数据。
func GetDashboard(c *gin.Context) {
	data, err := GetDashboardData(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetStats 返回用户本周的统计数据。
func GetStats(c *gin.Context) {
	stats, err := GetDashboardStats(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard stats: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HealthCheck 是面向前端的简单存活检查。
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"message":   "Dashboard service is running",
		"timestamp": time.Now().UnixMilli(),
	})
}
