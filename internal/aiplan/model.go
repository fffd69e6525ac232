package aiplan

import (
	"time"

	"gorm.io/gorm"
)

// AIExercise 对应数据库中的一条AI生成练习。
// 生成的练习有有效期，过期后不再出现在活跃列表中。
type AIExercise struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`

	ExerciseType    string `gorm:"not null" json:"exerciseType"`
	Title           string `gorm:"not null" json:"title"`
	Content         string `gorm:"type:text" json:"content"`
	DifficultyLevel string `json:"difficultyLevel"`
	DurationMinutes int    `json:"durationMinutes"`
	FocusArea       string `json:"focusArea"`

	IsCompleted      bool       `gorm:"default:false" json:"isCompleted"`
	PerformanceScore *int       `json:"performanceScore"`
	ExpiresAt        time.Time  `json:"expiresAt"`
	CompletedAt      *time.Time `json:"completedAt"`
}
