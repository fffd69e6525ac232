package analytics

import (
	"net/http"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GetAnalytics 返回用户的完整分析报告。
func GetAnalytics(c *gin.Context) {
	report, err := BuildReport(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch analytics data: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
