package practice

import (
	"time"

	"gorm.io/gorm"
)

// CompletedExercise 是一条不可变的练习完成事实。
// 它在练习被完成时追加写入，之后只被分析模块读取，从不更新。
type CompletedExercise struct {
	gorm.Model

	// UserID 标识这条事实归属的用户
	UserID uint `gorm:"index;not null" json:"userId"`

	// ExerciseName 是被完成练习的名称快照
	ExerciseName string `json:"exerciseName"`

	// ExerciseType 是练习的类型，例如 "Body" 或 "Speech"
	ExerciseType string `gorm:"index" json:"exerciseType"`

	// DifficultyLevel 是练习的难度档位
	DifficultyLevel string `json:"difficultyLevel"`

	// PracticeDate 是练习发生的日期（对齐到天，服务器本地时间）
	PracticeDate time.Time `gorm:"index" json:"practiceDate"`

	// DurationSeconds 是本次练习的时长，单位为秒
	DurationSeconds int `json:"durationSeconds"`

	// CompletedAt 是完成的精确时间戳
	CompletedAt time.Time `json:"completedAt"`
}

// UserProgress 是按天汇总的进度记录，供趋势分析使用。
// 每个用户每天至多一行，由完成流程增量更新、由夜间任务兜底重算。
type UserProgress struct {
	gorm.Model

	// UserID 标识这条汇总归属的用户
	UserID uint `gorm:"index;not null;uniqueIndex:idx_user_date" json:"userId"`

	// Date 是汇总对应的日期（对齐到天）
	Date time.Time `gorm:"uniqueIndex:idx_user_date" json:"date"`

	// AverageScore 是当天所有计分练习的平均总分
	AverageScore float64 `json:"averageScore"`

	// ScoredCount 是当天参与平均的计分练习次数
	ScoredCount int `json:"scoredCount"`

	// ExercisesCompleted 是当天完成的练习总数
	ExercisesCompleted int `json:"exercisesCompleted"`

	// TotalPracticeSeconds 是当天的累计练习时长（秒）
	TotalPracticeSeconds int `json:"totalPracticeSeconds"`

	// GoalsMet 标记当天是否达成了每日练习目标
	GoalsMet bool `json:"goalsMet"`
}
