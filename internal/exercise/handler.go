package exercise

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GetAllExercises 返回用户的全部练习。
func GetAllExercises(c *gin.Context) {
	exercises, err := ListByUser(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch exercises: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercises": exercises,
		"count":     len(exercises),
		"message":   "Exercises retrieved successfully",
	})
}

// GetExercisesByFilter 按难度档位和大类筛选用户的练习。
func GetExercisesByFilter(c *gin.Context) {
	category := c.Param("category")
	exerciseType := c.Param("type")

	exercises, err := ListByCategoryAndType(user.IDFromContext(c), category, exerciseType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch exercises: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercises": exercises,
		"category":  category,
		"type":      exerciseType,
		"count":     len(exercises),
		"message":   "Exercises retrieved successfully",
	})
}

// GetRecommendations 返回接下来应该做的练习清单。
func GetRecommendations(c *gin.Context) {
	exercises, err := ListByUser(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch exercise recommendations: " + err.Error()})
		return
	}

	recommendations := Recommend(exercises)
	c.JSON(http.StatusOK, gin.H{
		"recommendations": recommendations,
		"count":           len(recommendations),
		"message":         "Exercise recommendations retrieved successfully",
	})
}

// CompleteExercise 标记一次练习完成。
// userId来自查询参数；score和feedback可选。
func CompleteExercise(c *gin.Context) {
	exerciseID, err := strconv.ParseUint(c.Param("exerciseId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid exercise ID: " + c.Param("exerciseId")})
		return
	}

	userID, err := strconv.ParseUint(c.Query("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or missing userId parameter"})
		return
	}

	known, err := user.IsUserKnown(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to look up user: " + err.Error()})
		return
	}
	if !known {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found with ID: " + c.Query("userId")})
		return
	}

	var score *int
	if scoreStr := c.Query("score"); scoreStr != "" {
		parsed, err := strconv.Atoi(scoreStr)
		if err != nil || parsed < 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Score must be an integer between 0 and 100"})
			return
		}
		score = &parsed
	}

	result, err := Complete(uint(exerciseID), uint(userID), score, c.Query("feedback"))
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Exercise not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to complete exercise: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            "Well done! You have completed this exercise",
		"exercise":           result.Exercise,
		"progressPercentage": result.ProgressPercentage,
		"completedCount":     result.CompletedCount,
		"totalCount":         result.TotalCount,
		"pointsEarned":       result.PointsEarned,
	})
}

// GetProgress 返回用户练习目录的整体与分档位完成进度。
func GetProgress(c *gin.Context) {
	overall, byCategory, err := OverallProgress(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch progress: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overallProgress":    overall.Percent,
		"totalExercises":     overall.Total,
		"completedExercises": overall.Completed,
		"categoryProgress":   byCategory,
	})
}
