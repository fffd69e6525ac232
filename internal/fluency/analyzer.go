package fluency

import "math/rand"

// DetailedScores 是一次分析的各维度得分。
type DetailedScores struct {
	Pronunciation int `json:"pronunciation"`
	Clarity       int `json:"clarity"`
	Fluency       int `json:"fluency"`
	Pace          int `json:"pace"`
	Expression    int `json:"expression"`
}

// AnalysisResult 是分析器的完整输出。
type AnalysisResult struct {
	OverallScore    int            `json:"overallScore"`
	DetailedScores  DetailedScores `json:"detailedScores"`
	Feedback        string         `json:"feedback"`
	Improvements    []string       `json:"improvements"`
	Recommendations []string       `json:"recommendations"`
	StutterDetected bool           `json:"stutterDetected"`
	EmotionDetected string         `json:"emotionDetected"`
}

// Analyzer 抽象语音分析能力。
// 当前实现是打分范围固定的模拟分析器；接入真实的
// 信号处理服务时只需要替换这个接口的实现。
type Analyzer interface {
	Analyze() AnalysisResult
}

// DefaultAnalyzer 是包级使用的分析器实例。
var DefaultAnalyzer Analyzer = mockAnalyzer{}

type mockAnalyzer struct{}

var mockEmotions = []string{"calm", "confident", "neutral", "nervous"}

// Analyze 生成一次模拟分析结果。
// 各维度的取值范围是固定的：总分75-95、发音70-95、清晰度75-95、
// 流畅度70-95、语速80-95、表达75-95。
func (mockAnalyzer) Analyze() AnalysisResult {
	overall := 75 + rand.Intn(20)

	return AnalysisResult{
		OverallScore: overall,
		DetailedScores: DetailedScores{
			Pronunciation: 70 + rand.Intn(25),
			Clarity:       75 + rand.Intn(20),
			Fluency:       70 + rand.Intn(25),
			Pace:          80 + rand.Intn(15),
			Expression:    75 + rand.Intn(20),
		},
		Feedback: feedbackForScore(overall),
		Improvements: []string{
			"Clear articulation of consonants",
			"Good breathing control",
			"Consistent speaking pace",
		},
		Recommendations: []string{
			"Practice tongue twisters to improve articulation",
			"Record yourself and listen for clarity",
			"Take deep breaths before speaking",
		},
		StutterDetected: rand.Intn(10) == 0,
		EmotionDetected: mockEmotions[rand.Intn(len(mockEmotions))],
	}
}

// feedbackForScore 按总分分档生成反馈文案。
func feedbackForScore(overall int) string {
	feedback := "Good effort! "
	switch {
	case overall >= 90:
		feedback += "Excellent speech clarity and pronunciation. Keep up the great work!"
	case overall >= 80:
		feedback += "Very good speech with minor areas for improvement."
	case overall >= 70:
		feedback += "Good progress! Focus on clear pronunciation and steady pace."
	default:
		feedback += "Keep practicing! Focus on slowing down and enunciating clearly."
	}
	return feedback
}
