package practice

import (
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompletionPoints 计算一次完成可获得的积分：基础10分，每练习一分钟加1分。
func CompletionPoints(durationSeconds int) int {
	return 10 + durationSeconds/60
}

// NextStreak 计算一天结算后的连续打卡天数。
// 达成目标则加一，未达成则清零。
func NextStreak(current int, goalMet bool) int {
	if goalMet {
		return current + 1
	}
	return 0
}

// RecordCompletion 在调用方的事务中追加一条完成事实，并联动更新用户的
// 累计完成数、积分和当天的进度汇总。事实本身写入后不再变更。
func RecordCompletion(tx *gorm.DB, userID uint, exerciseName, exerciseType, difficultyLevel string, durationSeconds int, score *int, now time.Time) (*CompletedExercise, error) {
	fact := CompletedExercise{
		UserID:          userID,
		ExerciseName:    exerciseName,
		ExerciseType:    exerciseType,
		DifficultyLevel: difficultyLevel,
		PracticeDate:    Midnight(now),
		DurationSeconds: durationSeconds,
		CompletedAt:     now,
	}
	if err := tx.Create(&fact).Error; err != nil {
		return nil, fmt.Errorf("无法写入完成记录: %w", err)
	}

	err := tx.Model(&user.User{}).Where("id = ?", userID).
		UpdateColumn("exercises_completed", gorm.Expr("exercises_completed + 1")).Error
	if err != nil {
		return nil, fmt.Errorf("无法更新用户累计完成数: %w", err)
	}

	if err := user.AwardPoints(tx, userID, CompletionPoints(durationSeconds)); err != nil {
		return nil, err
	}

	if err := upsertDailyProgress(tx, userID, fact.PracticeDate, score, durationSeconds); err != nil {
		return nil, err
	}

	return &fact, nil
}

// upsertDailyProgress 增量维护当天的进度汇总行。
// 行级锁保证同一用户并发完成时平均分不丢更新。
func upsertDailyProgress(tx *gorm.DB, userID uint, day time.Time, score *int, durationSeconds int) error {
	var progress UserProgress
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ?", userID, day).
		First(&progress).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("无法加载当日进度汇总: %w", err)
		}
		progress = UserProgress{UserID: userID, Date: day}
	}

	progress.ExercisesCompleted++
	progress.TotalPracticeSeconds += durationSeconds
	if score != nil {
		// 运行中的算术平均：sum = avg*n + score, n = n+1
		sum := progress.AverageScore*float64(progress.ScoredCount) + float64(*score)
		progress.ScoredCount++
		progress.AverageScore = sum / float64(progress.ScoredCount)
	}

	if err := tx.Save(&progress).Error; err != nil {
		return fmt.Errorf("无法保存当日进度汇总: %w", err)
	}
	return nil
}

// SettleDay 对某个用户结算指定日期：从事实表重算汇总数字、
// 判定目标达成并更新连续打卡天数。由夜间任务对全量用户调用。
func SettleDay(userID uint, day time.Time) error {
	day = Midnight(day)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		var u user.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&u, userID).Error; err != nil {
			return fmt.Errorf("无法加载用户 %d: %w", userID, err)
		}

		// 从事实表兜底重算，纠正增量路径可能遗漏的数字
		var count int64
		if err := tx.Model(&CompletedExercise{}).
			Where("user_id = ? AND practice_date = ?", userID, day).
			Count(&count).Error; err != nil {
			return fmt.Errorf("无法统计当日完成数量: %w", err)
		}
		var seconds *int64
		if err := tx.Model(&CompletedExercise{}).
			Select("SUM(duration_seconds)").
			Where("user_id = ? AND practice_date = ?", userID, day).
			Scan(&seconds).Error; err != nil {
			return fmt.Errorf("无法统计当日练习时长: %w", err)
		}
		totalSeconds := 0
		if seconds != nil {
			totalSeconds = int(*seconds)
		}

		goalMet := totalSeconds/60 >= u.DailyGoal

		var progress UserProgress
		err := tx.Where("user_id = ? AND date = ?", userID, day).First(&progress).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("无法加载当日进度汇总: %w", err)
			}
			progress = UserProgress{UserID: userID, Date: day}
		}
		progress.ExercisesCompleted = int(count)
		progress.TotalPracticeSeconds = totalSeconds
		progress.GoalsMet = goalMet
		if err := tx.Save(&progress).Error; err != nil {
			return fmt.Errorf("无法保存当日进度汇总: %w", err)
		}

		u.StreakDays = NextStreak(u.StreakDays, goalMet)
		if err := tx.Save(&u).Error; err != nil {
			return fmt.Errorf("无法更新用户连续打卡天数: %w", err)
		}
		return nil
	})
}
