package exercise

import (
	"time"

	"gorm.io/gorm"
)

// 练习的三个难度档位。推荐排序依赖这里的顺序定义。
const (
	CategoryBeginner     = "Beginner"
	CategoryIntermediate = "Intermediate"
	CategoryAdvanced     = "Advanced"
)

// 练习的两个大类
const (
	TypeBody   = "Body"
	TypeSpeech = "Speech"
)

// Exercise 定义了练习在SQLite数据库中的数据结构。
// 与源系统一致，它同时承担目录条目和该用户的完成状态两个角色；
// 分析统计不读这张表，而是读practice包的完成事实表。
type Exercise struct {
	gorm.Model

	// UserID 标识这条练习归属的用户
	UserID uint `gorm:"index;not null" json:"userId"`

	// Name 是练习名称，例如 "Deep Breathing Exercise"
	Name string `gorm:"not null" json:"name"`

	// Category 是难度档位: Beginner / Intermediate / Advanced
	Category string `gorm:"index;not null" json:"category"`

	// Type 是练习大类: Body / Speech
	Type string `gorm:"index;not null" json:"type"`

	// Duration 是预计练习时长，单位为分钟
	Duration int `json:"duration"`

	// Instructions 是分步练习指引
	Instructions string `gorm:"type:text" json:"instructions"`

	// --- 以下是单次尝试的评分字段，0-100，未评分时为空 ---

	OverallScore  *int `json:"overallScore"`
	AccuracyScore *int `json:"accuracyScore"`
	ClarityScore  *int `json:"clarityScore"`
	FluencyScore  *int `json:"fluencyScore"`

	// Feedback 是最近一次尝试的文字反馈，新反馈会整体覆盖旧值
	Feedback string `json:"feedback"`

	// --- 以下是进度跟踪字段 ---

	// Completed 标记练习是否已被完成过
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// LastAttemptDate 是最近一次尝试的时间
	LastAttemptDate *time.Time `json:"lastAttemptDate"`

	// AttemptsCount 是累计尝试次数，只增不减
	AttemptsCount int `json:"attemptsCount"`

	// BestScore 是历史最高总分，只升不降
	BestScore int `json:"bestScore"`

	// ProgressPercentage 是所在(Category, Type)组内的完成百分比
	ProgressPercentage int `json:"progressPercentage"`

	// CompletedAt 是首次完成的时间戳，再次完成时会被刷新
	CompletedAt *time.Time `json:"completedAt"`
}
