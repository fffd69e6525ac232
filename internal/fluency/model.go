package fluency

import (
	"time"

	"gorm.io/gorm"
)

// FluencyScore 对应数据库中的一次语音分析会话记录。
// 各项细分得分允许缺失，聚合时按0处理。
type FluencyScore struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`

	// 细分得分，范围0-100
	PronunciationScore  *int `json:"pronunciationScore"`
	RhythmScore         *int `json:"rhythmScore"`
	PaceScore           *int `json:"paceScore"`
	ExpressionScore     *int `json:"expressionScore"`
	OverallFluencyScore *int `json:"overallFluencyScore"`

	StutterDetected bool      `json:"stutterDetected"`
	EmotionDetected string    `json:"emotionDetected"`
	SessionDate     time.Time `gorm:"not null;index" json:"sessionDate"`
}
