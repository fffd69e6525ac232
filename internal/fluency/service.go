package fluency

import (
	"fmt"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/analytics"
	"github.com/SlpAus/speech-therapy-backend/internal/platform/database"
)

// RecordAnalysis 将一次分析结果落库为FluencyScore记录。
func RecordAnalysis(userID uint, result AnalysisResult) (*FluencyScore, error) {
	score := scoreFromResult(userID, result)
	if err := database.DB.Create(&score).Error; err != nil {
		return nil, fmt.Errorf("无法在SQLite中保存流畅度记录: %w", err)
	}
	return &score, nil
}

// scoreFromResult 把分析结果映射成数据库记录。
// 节奏分取自流畅度细项：模拟分析器不单独产出节奏维度。
func scoreFromResult(userID uint, result AnalysisResult) FluencyScore {
	pronunciation := result.DetailedScores.Pronunciation
	rhythm := result.DetailedScores.Fluency
	pace := result.DetailedScores.Pace
	expression := result.DetailedScores.Expression
	overall := result.OverallScore

	return FluencyScore{
		UserID:              userID,
		PronunciationScore:  &pronunciation,
		RhythmScore:         &rhythm,
		PaceScore:           &pace,
		ExpressionScore:     &expression,
		OverallFluencyScore: &overall,
		StutterDetected:     result.StutterDetected,
		EmotionDetected:     result.EmotionDetected,
		SessionDate:         time.Now(),
	}
}

// TrendSamples 将数据库记录转换成分析引擎的输入样本，保持原有顺序。
func TrendSamples(scores []FluencyScore) []analytics.FluencySample {
	samples := make([]analytics.FluencySample, 0, len(scores))
	for _, s := range scores {
		samples = append(samples, analytics.FluencySample{
			Pronunciation:   s.PronunciationScore,
			Rhythm:          s.RhythmScore,
			Pace:            s.PaceScore,
			Expression:      s.ExpressionScore,
			Overall:         s.OverallFluencyScore,
			StutterDetected: s.StutterDetected,
			Emotion:         s.EmotionDetected,
		})
	}
	return samples
}
