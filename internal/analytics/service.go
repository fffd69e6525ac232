package analytics

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/practice"
)

// BuildReport 为用户生成一份完整的分析报告。
// Redis健康时优先读缓存，未命中再从完成事实重新聚合。
func BuildReport(userID uint) (*Report, error) {
	if database.IsRedisHealthy() {
		cached, err := GetReportCache(userID)
		if err != nil {
			fmt.Printf("警告: 读取用户 %d 的报告缓存失败，回源重算: %v\n", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	report, err := computeReport(userID, time.Now())
	if err != nil {
		return nil, err
	}

	if database.IsRedisHealthy() {
		if err := SetReportCache(userID, report); err != nil {
			fmt.Printf("警告: 写入用户 %d 的报告缓存失败: %v\n", userID, err)
		}
	}
	return report, nil
}

// computeReport 按固定窗口从数据库聚合一份报告。
// 窗口：周=最近7天，月=最近30天，趋势对比再往前推30天。
func computeReport(userID uint, now time.Time) (*Report, error) {
	today := practice.Midnight(now)
	weekStart := today.AddDate(0, 0, -6)
	monthStart := today.AddDate(0, 0, -29)
	prevMonthStart := monthStart.AddDate(0, 0, -30)
	prevMonthEnd := monthStart.AddDate(0, 0, -1)

	weeklyRecords, err := practice.FindCompletionsInRange(userID, weekStart, today)
	if err != nil {
		return nil, err
	}
	monthlyRecords, err := practice.FindCompletionsInRange(userID, monthStart, today)
	if err != nil {
		return nil, err
	}
	previousRecords, err := practice.FindCompletionsInRange(userID, prevMonthStart, prevMonthEnd)
	if err != nil {
		return nil, err
	}
	allRecords, err := practice.FindAllCompletions(userID)
	if err != nil {
		return nil, err
	}
	recentProgress, err := practice.FindProgressInRange(userID, today.AddDate(0, 0, -30), today)
	if err != nil {
		return nil, err
	}

	return &Report{
		WeeklyData:         WeeklyStats(weeklyRecords, weekStart, today),
		MonthlyData:        MonthlyStats(monthlyRecords, monthStart, today, previousRecords),
		ExerciseTypes:      TypeDistribution(allRecords),
		DifficultyProgress: DifficultyDistribution(allRecords),
		PerformanceTrends:  PerformanceTrend(recentProgress),
	}, nil
}
