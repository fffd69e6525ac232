package fluency

import (
	"strings"
	"testing"
)

func TestMockAnalyzerScoreRanges(t *testing.T) {
	checkRange := func(t *testing.T, name string, value, min, max int) {
		t.Helper()
		if value < min || value > max {
			t.Errorf("%s = %d, want within [%d, %d]", name, value, min, max)
		}
	}

	for i := 0; i < 200; i++ {
		result := DefaultAnalyzer.Analyze()
		checkRange(t, "OverallScore", result.OverallScore, 75, 95)
		checkRange(t, "Pronunciation", result.DetailedScores.Pronunciation, 70, 95)
		checkRange(t, "Clarity", result.DetailedScores.Clarity, 75, 95)
		checkRange(t, "Fluency", result.DetailedScores.Fluency, 70, 95)
		checkRange(t, "Pace", result.DetailedScores.Pace, 80, 95)
		checkRange(t, "Expression", result.DetailedScores.Expression, 75, 95)
	}
}

func TestMockAnalyzerAlwaysGivesGuidance(t *testing.T) {
	result := DefaultAnalyzer.Analyze()

	if result.Feedback == "" {
		t.Error("feedback must not be empty")
	}
	if len(result.Improvements) == 0 {
		t.Error("improvements must not be empty")
	}
	if len(result.Recommendations) == 0 {
		t.Error("recommendations must not be empty")
	}
	if result.EmotionDetected == "" {
		t.Error("emotion must not be empty")
	}
}

func TestFeedbackForScoreBands(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, "Excellent speech clarity"},
		{90, "Excellent speech clarity"},
		{89, "Very good speech"},
		{80, "Very good speech"},
		{79, "Good progress!"},
		{70, "Good progress!"},
		{69, "Keep practicing!"},
	}

	for _, tt := range tests {
		got := feedbackForScore(tt.score)
		if !strings.Contains(got, tt.want) {
			t.Errorf("feedbackForScore(%d) = %q, want substring %q", tt.score, got, tt.want)
		}
		if !strings.HasPrefix(got, "Good effort! ") {
			t.Errorf("feedbackForScore(%d) = %q, want %q prefix", tt.score, got, "Good effort! ")
		}
	}
}

func TestRecordMappingKeepsDetailScores(t *testing.T) {
	result := AnalysisResult{
		OverallScore: 88,
		DetailedScores: DetailedScores{
			Pronunciation: 82,
			Clarity:       85,
			Fluency:       78,
			Pace:          90,
			Expression:    86,
		},
		EmotionDetected: "calm",
	}

	samples := TrendSamples([]FluencyScore{scoreFromResult(7, result)})
	if len(samples) != 1 {
		t.Fatalf("sample count = %d, want 1", len(samples))
	}
	s := samples[0]
	if s.Pronunciation == nil || *s.Pronunciation != 82 {
		t.Errorf("Pronunciation = %v, want 82", s.Pronunciation)
	}
	if s.Rhythm == nil || *s.Rhythm != 78 {
		t.Errorf("Rhythm = %v, want fluency detail 78", s.Rhythm)
	}
	if s.Pace == nil || *s.Pace != 90 {
		t.Errorf("Pace = %v, want 90", s.Pace)
	}
	if s.Overall == nil || *s.Overall != 88 {
		t.Errorf("Overall = %v, want 88", s.Overall)
	}
	if s.Emotion != "calm" {
		t.Errorf("Emotion = %q, want %q", s.Emotion, "calm")
	}
}
