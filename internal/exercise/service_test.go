package exercise

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestApplyCompletionFirstTime(t *testing.T) {
	now := time.Now()
	ex := Exercise{}

	applyCompletion(&ex, intPtr(80), "nice pacing", now)

	if !ex.Completed {
		t.Error("exercise should be marked completed")
	}
	if ex.AttemptsCount != 1 {
		t.Errorf("AttemptsCount = %d, want 1", ex.AttemptsCount)
	}
	if ex.BestScore != 80 {
		t.Errorf("BestScore = %d, want 80", ex.BestScore)
	}
	if ex.OverallScore == nil || *ex.OverallScore != 80 {
		t.Errorf("OverallScore = %v, want 80", ex.OverallScore)
	}
	if ex.Feedback != "nice pacing" {
		t.Errorf("Feedback = %q, want %q", ex.Feedback, "nice pacing")
	}
	if ex.CompletedAt == nil || !ex.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", ex.CompletedAt, now)
	}
}

func TestApplyCompletionTwiceIncrementsAttempts(t *testing.T) {
	now := time.Now()
	ex := Exercise{}

	applyCompletion(&ex, intPtr(70), "", now)
	applyCompletion(&ex, intPtr(90), "", now.Add(time.Hour))

	if ex.AttemptsCount != 2 {
		t.Errorf("AttemptsCount = %d, want 2", ex.AttemptsCount)
	}
	if !ex.Completed {
		t.Error("completed flag must stay true across repeated completions")
	}
}

func TestApplyCompletionBestScoreNeverDecreases(t *testing.T) {
	now := time.Now()
	ex := Exercise{}

	scores := []int{60, 95, 40, 80}
	for _, s := range scores {
		applyCompletion(&ex, intPtr(s), "", now)
	}

	if ex.BestScore != 95 {
		t.Errorf("BestScore = %d, want 95", ex.BestScore)
	}
	// 最近一次的总分仍然被记录，即使低于历史最高
	if ex.OverallScore == nil || *ex.OverallScore != 80 {
		t.Errorf("OverallScore = %v, want 80", ex.OverallScore)
	}
}

func TestApplyCompletionWithoutScoreOrFeedback(t *testing.T) {
	now := time.Now()
	ex := Exercise{BestScore: 50, Feedback: "keep it up"}

	applyCompletion(&ex, nil, "", now)

	if ex.BestScore != 50 {
		t.Errorf("BestScore = %d, want unchanged 50", ex.BestScore)
	}
	if ex.OverallScore != nil {
		t.Errorf("OverallScore = %v, want nil", ex.OverallScore)
	}
	if ex.Feedback != "keep it up" {
		t.Errorf("Feedback = %q, want previous value preserved", ex.Feedback)
	}
}

func TestCohortProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      int
	}{
		{"empty cohort", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"half completed", 2, 4, 50},
		{"truncates down", 1, 3, 33},
		{"two thirds truncates", 2, 3, 66},
		{"all completed", 3, 3, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cohortProgressPercentage(tt.completed, tt.total); got != tt.want {
				t.Errorf("cohortProgressPercentage(%d, %d) = %d, want %d", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}
