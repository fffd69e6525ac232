package fluency

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// FindScoresByUser 返回用户的全部分析记录，会话时间从新到旧。
func FindScoresByUser(userID uint) ([]FluencyScore, error) {
	var scores []FluencyScore
	err := database.DB.
		Where("user_id = ?", userID).
		Order("session_date desc").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载流畅度记录: %w", err)
	}
	return scores, nil
}

// FindScoresInRange 返回用户在[start, end]闭区间内的分析记录，会话时间从新到旧。
func FindScoresInRange(userID uint, start, end time.Time) ([]FluencyScore, error) {
	var scores []FluencyScore
	err := database.DB.
		Where("user_id = ? AND session_date BETWEEN ? AND ?", userID, start, end).
		Order("session_date desc").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载流畅度记录: %w", err)
	}
	return scores, nil
}
