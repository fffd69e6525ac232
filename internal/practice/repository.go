package practice

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// FindCompletionsInRange 返回用户在[start, end]闭区间内的完成事实。
// 排序契约：完成时间从新到旧。分析引擎依赖这个顺序。
func FindCompletionsInRange(userID uint, start, end time.Time) ([]CompletedExercise, error) {
	var records []CompletedExercise
	err := database.DB.
		Where("user_id = ? AND practice_date BETWEEN ? AND ?", userID, start, end).
		Order("completed_at desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载完成记录: %w", err)
	}
	return records, nil
}

// FindAllCompletions 返回用户的全部完成事实，完成时间从新到旧。
func FindAllCompletions(userID uint) ([]CompletedExercise, error) {
	var records []CompletedExercise
	err := database.DB.
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载完成记录: %w", err)
	}
	return records, nil
}

// FindRecentCompletions 返回用户最近的limit条完成事实，用于仪表盘展示。
func FindRecentCompletions(userID uint, limit int) ([]CompletedExercise, error) {
	var records []CompletedExercise
	err := database.DB.
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载最近完成记录: %w", err)
	}
	return records, nil
}

// TotalPracticeSeconds 返回用户在[start, end]闭区间内的累计练习秒数。
func TotalPracticeSeconds(userID uint, start, end time.Time) (int, error) {
	var total *int64
	err := database.DB.Model(&CompletedExercise{}).
		Select("SUM(duration_seconds)").
		Where("user_id = ? AND practice_date BETWEEN ? AND ?", userID, start, end).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("无法统计练习时长: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return int(*total), nil
}

// CountCompletionsOnDate 返回用户在某一天完成的练习数量。
func CountCompletionsOnDate(userID uint, date time.Time) (int64, error) {
	var count int64
	err := database.DB.Model(&CompletedExercise{}).
		Where("user_id = ? AND practice_date = ?", userID, Midnight(date)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("无法统计当日完成数量: %w", err)
	}
	return count, nil
}

// FindProgressInRange 返回用户在[start, end]闭区间内的每日进度汇总。
// 排序契约：日期从新到旧。PerformanceTrend的新旧索引依赖这个顺序。
func FindProgressInRange(userID uint, start, end time.Time) ([]UserProgress, error) {
	var progress []UserProgress
	err := database.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date desc").
		Find(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载进度汇总: %w", err)
	}
	return progress, nil
}

// Midnight 将时间戳对齐到当天零点（服务器本地时间）。
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
