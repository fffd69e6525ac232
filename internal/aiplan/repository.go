package aiplan

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// FindExercisesByUser 返回用户的全部AI练习，创建时间从新到旧。
func FindExercisesByUser(userID uint) ([]AIExercise, error) {
	var exercises []AIExercise
	err := database.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载AI练习: %w", err)
	}
	return exercises, nil
}

// FindActiveExercisesByUser 返回用户未完成且未过期的AI练习。
func FindActiveExercisesByUser(userID uint, now time.Time) ([]AIExercise, error) {
	var exercises []AIExercise
	err := database.DB.
		Where("user_id = ? AND is_completed = ? AND expires_at > ?", userID, false, now).
		Order("created_at desc").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载活跃AI练习: %w", err)
	}
	return exercises, nil
}
