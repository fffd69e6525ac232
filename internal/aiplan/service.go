package aiplan

import (
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"gorm.io/gorm"
)

// ErrAIExerciseNotFound 在AI练习不存在时返回，由Handler映射为404。
var ErrAIExerciseNotFound = errors.New("AI练习不存在")

// GenerateExercise 为用户生成并保存一条个性化练习。
func GenerateExercise(userID uint, exerciseType string) (*AIExercise, error) {
	u, err := user.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	exercise := buildExercise(u, exerciseType, time.Now())
	if err := database.DB.Create(&exercise).Error; err != nil {
		return nil, fmt.Errorf("无法在SQLite中保存AI练习: %w", err)
	}
	return &exercise, nil
}

// GenerateWeeklyPlan 为用户生成并保存一周的练习计划。
func GenerateWeeklyPlan(userID uint) ([]AIExercise, error) {
	u, err := user.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	plan := buildWeeklyPlan(u, time.Now())
	if err := database.DB.Create(&plan).Error; err != nil {
		return nil, fmt.Errorf("无法在SQLite中保存周计划: %w", err)
	}
	return plan, nil
}

// CompleteExercise 将一条AI练习标记为完成，可附带表现得分。
func CompleteExercise(exerciseID uint, performanceScore *int) (*AIExercise, error) {
	var exercise AIExercise
	if err := database.DB.First(&exercise, exerciseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAIExerciseNotFound
		}
		return nil, fmt.Errorf("无法从SQLite加载AI练习 %d: %w", exerciseID, err)
	}

	now := time.Now()
	exercise.IsCompleted = true
	exercise.CompletedAt = &now
	if performanceScore != nil {
		exercise.PerformanceScore = performanceScore
	}

	if err := database.DB.Save(&exercise).Error; err != nil {
		return nil, fmt.Errorf("无法更新AI练习 %d: %w", exerciseID, err)
	}
	return &exercise, nil
}
