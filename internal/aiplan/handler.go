package aiplan

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"github.com/gin-gonic/gin"
)

// GenerateExerciseHandler 为用户生成一条个性化练习。
func GenerateExerciseHandler(c *gin.Context) {
	exerciseType := c.Query("exerciseType")
	if exerciseType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing exerciseType parameter"})
		return
	}

	exercise, err := GenerateExercise(user.IDFromContext(c), exerciseType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate exercise: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercise": exercise,
		"message":  "Exercise generated successfully",
	})
}

// GenerateWeeklyPlanHandler 为用户生成一周的练习计划。
func GenerateWeeklyPlanHandler(c *gin.Context) {
	plan, err := GenerateWeeklyPlan(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate weekly plan: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weeklyPlan": plan,
		"message":    "Weekly plan generated successfully",
	})
}

// GetUserExercises 返回用户的全部AI练习。
func GetUserExercises(c *gin.Context) {
	exercises, err := FindExercisesByUser(user.IDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch AI exercises: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercises": exercises,
		"count":     len(exercises),
		"message":   "AI exercises retrieved successfully",
	})
}

// GetActiveExercises 返回用户未完成且未过期的AI练习。
func GetActiveExercises(c *gin.Context) {
	exercises, err := FindActiveExercisesByUser(user.IDFromContext(c), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch active exercises: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activeExercises": exercises,
		"count":           len(exercises),
		"message":         "Active exercises retrieved successfully",
	})
}

// CompleteExerciseHandler 将一条AI练习标记为完成。
func CompleteExerciseHandler(c *gin.Context) {
	exerciseID, err := strconv.ParseUint(c.Param("exerciseId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid exercise ID: " + c.Param("exerciseId")})
		return
	}

	var score *int
	if scoreStr := c.Query("performanceScore"); scoreStr != "" {
		parsed, err := strconv.Atoi(scoreStr)
		if err != nil || parsed < 0 || parsed > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Performance score must be an integer between 0 and 100"})
			return
		}
		score = &parsed
	}

	exercise, err := CompleteExercise(uint(exerciseID), score)
	if err != nil {
		if errors.Is(err, ErrAIExerciseNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Exercise not found with ID: " + c.Param("exerciseId")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to complete exercise: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercise": exercise,
		"message":  "Exercise marked as completed",
	})
}
