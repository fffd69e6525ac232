package exercise

import (
	"errors"
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
	"github.com/SlpAus/speech-therapy-backend/internal/practice"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrExerciseNotFound 在练习不存在时返回，由Handler映射为404。
var ErrExerciseNotFound = errors.New("练习不存在")

// CompletionResult 是完成一次练习后返回给Handler的数据包。
type CompletionResult struct {
	Exercise           *Exercise
	ProgressPercentage int
	CompletedCount     int64
	TotalCount         int64
	PointsEarned       int
}

// ListByUser 返回用户的全部练习，最近完成的在前。
func ListByUser(userID uint) ([]Exercise, error) {
	var exercises []Exercise
	err := database.DB.
		Where("user_id = ?", userID).
		Order("completed_at desc").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载练习列表: %w", err)
	}
	return exercises, nil
}

// ListByCategoryAndType 返回用户在指定难度档位和大类下的练习。
func ListByCategoryAndType(userID uint, category, exerciseType string) ([]Exercise, error) {
	var exercises []Exercise
	err := database.DB.
		Where("user_id = ? AND category = ? AND type = ?", userID, category, exerciseType).
		Order("completed_at desc").
		Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("无法从SQLite加载练习列表: %w", err)
	}
	return exercises, nil
}

// applyCompletion 对练习实施一次完成状态迁移。纯函数，只改内存中的结构体：
// 尝试次数加一、刷新时间戳、置完成标记；有评分时更新总分并抬升最高分；
// 有反馈时整体覆盖。重复完成是允许的，completed标记保持幂等。
func applyCompletion(ex *Exercise, score *int, feedback string, now time.Time) {
	ex.AttemptsCount++
	ex.LastAttemptDate = &now
	ex.Completed = true
	ex.CompletedAt = &now

	if score != nil {
		ex.OverallScore = score
		if *score > ex.BestScore {
			ex.BestScore = *score
		}
	}
	if feedback != "" {
		ex.Feedback = feedback
	}
}

// cohortProgressPercentage 计算(Category, Type)组内的完成百分比，整数截断。
func cohortProgressPercentage(completedCount, totalCount int64) int {
	if totalCount == 0 {
		return 0
	}
	return int(completedCount * 100 / totalCount)
}

// Complete 完成一次练习。整个流程在一个事务中执行：
// 行锁定位练习、实施状态迁移、重算组内完成百分比、追加完成事实并计分。
// 组内百分比的读-算-写通过行锁串行化，避免同组并发完成时丢更新。
func Complete(exerciseID, userID uint, score *int, feedback string) (*CompletionResult, error) {
	now := time.Now()
	result := &CompletionResult{}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var ex Exercise
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND user_id = ?", exerciseID, userID).
			First(&ex).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExerciseNotFound
			}
			return fmt.Errorf("无法加载练习 %d: %w", exerciseID, err)
		}

		applyCompletion(&ex, score, feedback, now)

		// 组内兄弟练习也加锁，保证百分比的分子分母来自一致快照
		var cohort []Exercise
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND category = ? AND type = ?", userID, ex.Category, ex.Type).
			Find(&cohort).Error
		if err != nil {
			return fmt.Errorf("无法加载同组练习: %w", err)
		}

		var completedCount int64
		for _, sibling := range cohort {
			if sibling.ID == ex.ID || sibling.Completed {
				completedCount++
			}
		}
		totalCount := int64(len(cohort))
		ex.ProgressPercentage = cohortProgressPercentage(completedCount, totalCount)

		if err := tx.Save(&ex).Error; err != nil {
			return fmt.Errorf("无法保存练习 %d: %w", exerciseID, err)
		}

		durationSeconds := ex.Duration * 60
		if _, err := practice.RecordCompletion(tx, userID, ex.Name, ex.Type, ex.Category, durationSeconds, score, now); err != nil {
			return err
		}

		result.Exercise = &ex
		result.ProgressPercentage = ex.ProgressPercentage
		result.CompletedCount = completedCount
		result.TotalCount = totalCount
		result.PointsEarned = practice.CompletionPoints(durationSeconds)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CategoryProgress 是单个难度档位的完成进度。
type CategoryProgress struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Percent   int   `json:"percent"`
}

// OverallProgress 汇总用户练习目录的整体与分档位完成进度。
func OverallProgress(userID uint) (overall CategoryProgress, byCategory map[string]CategoryProgress, err error) {
	exercises, err := ListByUser(userID)
	if err != nil {
		return CategoryProgress{}, nil, err
	}

	byCategory = map[string]CategoryProgress{
		CategoryBeginner:     {},
		CategoryIntermediate: {},
		CategoryAdvanced:     {},
	}

	for _, ex := range exercises {
		overall.Total++
		cp := byCategory[ex.Category]
		cp.Total++
		if ex.Completed {
			overall.Completed++
			cp.Completed++
		}
		byCategory[ex.Category] = cp
	}

	overall.Percent = cohortProgressPercentage(overall.Completed, overall.Total)
	for category, cp := range byCategory {
		cp.Percent = cohortProgressPercentage(cp.Completed, cp.Total)
		byCategory[category] = cp
	}
	return overall, byCategory, nil
}
