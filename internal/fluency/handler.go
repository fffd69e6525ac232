package fluency

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/analytics"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// 日期范围查询使用不带时区的ISO格式
const rangeDateLayout = "2006-01-02T15:04:05"

// AnalyzeAudio 接收一段录音并返回模拟分析结果。
// 携带合法userId时会把结果落库为一条流畅度记录。
func AnalyzeAudio(c *gin.Context) {
	if _, err := c.FormFile("audio"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Audio file is required"})
		return
	}

	result := DefaultAnalyzer.Analyze()
	recordForRequestUser(c, result)

	c.JSON(http.StatusOK, analysisResponse(result))
}

// QuickAnalyze 按练习类型和目标文本返回模拟分析结果，不需要上传录音。
func QuickAnalyze(c *gin.Context) {
	result := DefaultAnalyzer.Analyze()
	recordForRequestUser(c, result)

	c.JSON(http.StatusOK, analysisResponse(result))
}

// GetFluencyAnalysis 返回用户全部会话的流畅度趋势分析。
func GetFluencyAnalysis(c *gin.Context) {
	scores, err := FindScoresByUser(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fluency analysis: " + err.Error()})
		return
	}

	if len(scores) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No fluency data available yet",
			"scores":  scores,
			"count":   0,
		})
		return
	}

	trends := analytics.FluencyTrends(TrendSamples(scores))
	c.JSON(http.StatusOK, gin.H{
		"averages":        trends.Averages,
		"trends":          trends.Labels,
		"issues":          trends.Issues,
		"recommendations": trends.Recommendations,
		"recentScores":    scores,
		"totalSessions":   len(scores),
		"message":         "Fluency analysis retrieved successfully",
	})
}

// GetFluencyRange 返回用户在指定日期区间内的流畅度记录。
// 日期格式非法时返回400。
func GetFluencyRange(c *gin.Context) {
	start, err := time.ParseInLocation(rangeDateLayout, c.Query("start"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Please use ISO format (yyyy-MM-ddTHH:mm:ss)"})
		return
	}
	end, err := time.ParseInLocation(rangeDateLayout, c.Query("end"), time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format. Please use ISO format (yyyy-MM-ddTHH:mm:ss)"})
		return
	}

	scores, err := FindScoresInRange(user.IDFromContext(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch fluency analysis: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scores":    scores,
		"count":     len(scores),
		"dateRange": gin.H{"start": c.Query("start"), "end": c.Query("end")},
		"message":   "Fluency analysis range retrieved successfully",
	})
}

// recordForRequestUser 在请求携带合法userId时把分析结果落库。
// 落库失败只打警告，分析结果仍然正常返回。
func recordForRequestUser(c *gin.Context, result AnalysisResult) {
	userIDStr := c.Query("userId")
	if userIDStr == "" {
		userIDStr = c.PostForm("userId")
	}
	if userIDStr == "" {
		return
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return
	}
	known, err := user.IsUserKnown(uint(userID))
	if err != nil || !known {
		return
	}

	if _, err := RecordAnalysis(uint(userID), result); err != nil {
		fmt.Printf("警告: 无法保存用户 %d 的流畅度记录: %v\n", userID, err)
	}
}

func analysisResponse(result AnalysisResult) gin.H {
	return gin.H{
		"overallScore":    result.OverallScore,
		"score":           result.OverallScore,
		"detailedScores":  result.DetailedScores,
		"feedback":        result.Feedback,
		"improvements":    result.Improvements,
		"recommendations": result.Recommendations,
	}
}
