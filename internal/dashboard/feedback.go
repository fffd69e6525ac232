package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FeedbackEntry 是一条治疗师反馈。
type FeedbackEntry struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Score   int    `json:"score"`
}

// 反馈功能还没有独立的数据来源，先返回固定的示例列表
var cannedFeedback = []FeedbackEntry{
	{
		ID:      1,
		Type:    "positive",
		Message: "Great progress on pronunciation! Your 'th' sound is much clearer now.",
		Date:    "2024-01-15",
		Score:   85,
	},
	{
		ID:      2,
		Type:    "suggestion",
		Message: "Try slowing down your speech slightly to improve clarity.",
		Date:    "2024-01-14",
		Score:   72,
	},
	{
		ID:      3,
		Type:    "positive",
		Message: "Excellent work on the tongue twister exercise!",
		Date:    "2024-01-13",
		Score:   90,
	},
}

// GetFeedback 返回用户的反馈列表。
func GetFeedback(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"feedback":     cannedFeedback,
		"total":        len(cannedFeedback),
		"averageScore": 82.3,
	})
}
