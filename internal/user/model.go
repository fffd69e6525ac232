package user

import (
	"time"

	"gorm.io/gorm"
)

// User 定义了用户在SQLite数据库中的持久化模型。
type User struct {
	// ID 是用户的自增主键，所有事实记录都通过它归属用户。
	ID uint `gorm:"primarykey" json:"id"`

	// Name 是用户的显示名称
	Name string `gorm:"not null" json:"name"`

	// Email 是用户的唯一标识，登录时按它查找用户
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	// Age 是用户的年龄（可选，用于个性化练习生成）
	Age int `json:"age"`

	// DailyGoal 是每日练习目标，单位为分钟
	DailyGoal int `json:"dailyGoal"`

	// WeeklyGoal 是每周练习目标，单位为分钟
	WeeklyGoal int `json:"weeklyGoal"`

	// StreakDays 记录了用户连续达成每日目标的天数
	StreakDays int `json:"streakDays"`

	// WeeklyStreak 记录了用户连续达成每周目标的周数
	WeeklyStreak int `json:"weeklyStreak"`

	// TotalPoints 是用户累计获得的积分
	TotalPoints int `json:"totalPoints"`

	// ExercisesCompleted 是用户累计完成的练习次数
	ExercisesCompleted int `json:"exercisesCompleted"`

	// DifficultyLevel 是用户当前的练习难度档位
	DifficultyLevel string `json:"difficultyLevel"`

	// 部分gorm.Model，由GORM自动管理
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
