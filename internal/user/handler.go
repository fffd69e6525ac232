package user

import (
	"net/http"

	"github.com/SlpAus/speech-therapy-backend/pkg/token"
	"github.com/gin-gonic/gin"
)

// LoginRequestBody 定义了登录请求体的JSON结构
type LoginRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoalsRequestBody 定义了更新练习目标请求体的JSON结构
type GoalsRequestBody struct {
	DailyGoal  int `json:"dailyGoal"`
	WeeklyGoal int `json:"weeklyGoal"`
}

// Login 处理演示版登录。
// 按邮箱查找用户，不存在时创建；任何非空密码都被接受（演示语义，见设计文档）。
func Login(c *gin.Context) {
	var body LoginRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	u, err := GetUserByEmail(body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in: " + err.Error()})
		return
	}
	if u == nil {
		u, err = CreateUser("New User", body.Email, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in: " + err.Error()})
			return
		}
	}

	sessionToken, err := token.IssueSessionToken(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue session token: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   sessionToken,
		"user":    u,
	})
}

// GetProfile 返回用户档案，包含由连续打卡天数推导的当前水平。
func GetProfile(c *gin.Context) {
	u, err := GetUserByID(IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user profile: " + err.Error()})
		return
	}

	rank, totalRanked, _ := PointsRank(u.ID)

	c.JSON(http.StatusOK, gin.H{
		"id":           u.ID,
		"name":         u.Name,
		"email":        u.Email,
		"dailyGoal":    u.DailyGoal,
		"weeklyGoal":   u.WeeklyGoal,
		"streakDays":   u.StreakDays,
		"weeklyStreak": u.WeeklyStreak,
		"totalPoints":  u.TotalPoints,
		"level":        DetermineLevel(u.StreakDays),
		"pointsRank":   rank,
		"rankedUsers":  totalRanked,
		"joinDate":     u.CreatedAt,
	})
}

// GetSettings 返回用户偏好设置。
// 源系统没有设置存储，这里返回固定的默认档位。
func GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications":     true,
		"aiVoice":           "Female",
		"speechSpeed":       "Normal",
		"practiceReminders": true,
		"weeklyReports":     true,
		"soundEffects":      true,
	})
}

// UpdateSettings 接受设置更新请求。
// 与源系统一致：确认用户存在后应答成功，但不持久化任何内容。
func UpdateSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Settings updated successfully",
		"status":  "success",
	})
}

// UpdateGoalsHandler 更新用户的每日/每周练习目标。
func UpdateGoalsHandler(c *gin.Context) {
	var body GoalsRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid goals payload: " + err.Error()})
		return
	}

	u, err := UpdateGoals(IDFromContext(c), body.DailyGoal, body.WeeklyGoal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update goals: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Goals updated successfully",
		"user":    u,
	})
}
