package analytics

import (
	"testing"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/practice"
)

func day(offset int) time.Time {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	return base.AddDate(0, 0, offset)
}

func completion(exerciseType, difficulty string, seconds int) practice.CompletedExercise {
	return practice.CompletedExercise{
		ExerciseType:    exerciseType,
		DifficultyLevel: difficulty,
		DurationSeconds: seconds,
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     string
	}{
		{"both zero", 0, 0, "0%"},
		{"from zero", 5, 0, "+100%"},
		{"increase", 150, 100, "+50%"},
		{"decrease", 50, 100, "-50%"},
		{"unchanged", 100, 100, "+0%"},
		{"rounding", 1, 3, "-67%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("PercentChange(%d, %d) = %q, want %q", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestWeeklyStatsSevenDailySessions(t *testing.T) {
	var records []practice.CompletedExercise
	for i := 0; i < 7; i++ {
		records = append(records, completion("Speech", "Beginner", 600))
	}

	got := WeeklyStats(records, day(0), day(6))

	if got.TotalExercises != 7 {
		t.Errorf("TotalExercises = %d, want 7", got.TotalExercises)
	}
	if got.TotalMinutes != 70 {
		t.Errorf("TotalMinutes = %d, want 70", got.TotalMinutes)
	}
	if got.AveragePerDay != 1.0 {
		t.Errorf("AveragePerDay = %v, want 1.0", got.AveragePerDay)
	}
	if got.TypeBreakdown["Speech"] != 7 {
		t.Errorf("TypeBreakdown[Speech] = %d, want 7", got.TypeBreakdown["Speech"])
	}
}

func TestWeeklyStatsEmptyWindow(t *testing.T) {
	got := WeeklyStats(nil, day(0), day(6))

	if got.TotalExercises != 0 || got.TotalMinutes != 0 || got.AveragePerDay != 0 {
		t.Errorf("empty window must aggregate to zeros, got %+v", got)
	}
	if len(got.TypeBreakdown) != 0 {
		t.Errorf("TypeBreakdown = %v, want empty", got.TypeBreakdown)
	}
}

func TestMonthlyStatsTrendAndWeeklyAverage(t *testing.T) {
	var current []practice.CompletedExercise
	for i := 0; i < 15; i++ {
		current = append(current, completion("Body", "Beginner", 300))
	}
	previous := []practice.CompletedExercise{
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
		completion("Body", "Beginner", 300),
	}

	got := MonthlyStats(current, day(0), day(29), previous)

	if got.TotalExercises != 15 {
		t.Errorf("TotalExercises = %d, want 15", got.TotalExercises)
	}
	if got.TotalMinutes != 75 {
		t.Errorf("TotalMinutes = %d, want 75", got.TotalMinutes)
	}
	// 30天窗口按5周折算
	if got.AveragePerWeek != 3.0 {
		t.Errorf("AveragePerWeek = %v, want 3.0", got.AveragePerWeek)
	}
	if got.Trend != "+50%" {
		t.Errorf("Trend = %q, want +50%%", got.Trend)
	}
}

func TestTypeDistribution(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := TypeDistribution(nil)
		if got.MostPracticed != "None" {
			t.Errorf("MostPracticed = %q, want None", got.MostPracticed)
		}
		if len(got.Distribution) != 0 {
			t.Errorf("Distribution = %v, want empty", got.Distribution)
		}
	})

	t.Run("counts and winner", func(t *testing.T) {
		got := TypeDistribution([]practice.CompletedExercise{
			completion("Speech", "Beginner", 60),
			completion("Body", "Beginner", 60),
			completion("Speech", "Beginner", 60),
		})
		if got.MostPracticed != "Speech" {
			t.Errorf("MostPracticed = %q, want Speech", got.MostPracticed)
		}
		if got.Distribution["Speech"] != 2 || got.Distribution["Body"] != 1 {
			t.Errorf("Distribution = %v, want Speech:2 Body:1", got.Distribution)
		}
	})

	t.Run("tie goes to first seen", func(t *testing.T) {
		got := TypeDistribution([]practice.CompletedExercise{
			completion("Body", "Beginner", 60),
			completion("Speech", "Beginner", 60),
			completion("Speech", "Beginner", 60),
			completion("Body", "Beginner", 60),
		})
		if got.MostPracticed != "Body" {
			t.Errorf("MostPracticed = %q, want first-seen Body on tie", got.MostPracticed)
		}
	})
}

func TestDifficultyDistributionDefaultsToBeginner(t *testing.T) {
	got := DifficultyDistribution(nil)
	if got.CurrentLevel != "Beginner" {
		t.Errorf("CurrentLevel = %q, want Beginner", got.CurrentLevel)
	}

	got = DifficultyDistribution([]practice.CompletedExercise{
		completion("Speech", "Intermediate", 60),
		completion("Speech", "Intermediate", 60),
		completion("Speech", "Advanced", 60),
	})
	if got.CurrentLevel != "Intermediate" {
		t.Errorf("CurrentLevel = %q, want Intermediate", got.CurrentLevel)
	}
}

func TestPerformanceTrend(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := PerformanceTrend(nil)
		if got.Trend != "No data available" {
			t.Errorf("Trend = %q, want %q", got.Trend, "No data available")
		}
		if got.Improvement != 0 {
			t.Errorf("Improvement = %v, want 0", got.Improvement)
		}
	})

	t.Run("single record", func(t *testing.T) {
		got := PerformanceTrend([]practice.UserProgress{{AverageScore: 72}})
		if got.Trend != "Insufficient data" {
			t.Errorf("Trend = %q, want %q", got.Trend, "Insufficient data")
		}
		if got.Improvement != 0 {
			t.Errorf("Improvement = %v, want 0", got.Improvement)
		}
		if got.AverageScore != 72 {
			t.Errorf("AverageScore = %v, want 72", got.AverageScore)
		}
	})

	t.Run("improving, newest first", func(t *testing.T) {
		got := PerformanceTrend([]practice.UserProgress{
			{AverageScore: 80}, // 最新
			{AverageScore: 70},
			{AverageScore: 60}, // 最旧
		})
		if got.Trend != "Improving" {
			t.Errorf("Trend = %q, want Improving", got.Trend)
		}
		if got.Improvement != 20.0 {
			t.Errorf("Improvement = %v, want 20.0", got.Improvement)
		}
		if got.AverageScore != 70.0 {
			t.Errorf("AverageScore = %v, want 70.0", got.AverageScore)
		}
	})

	t.Run("declining", func(t *testing.T) {
		got := PerformanceTrend([]practice.UserProgress{
			{AverageScore: 60},
			{AverageScore: 80},
		})
		if got.Trend != "Declining" {
			t.Errorf("Trend = %q, want Declining", got.Trend)
		}
		if got.Improvement != -20.0 {
			t.Errorf("Improvement = %v, want -20.0", got.Improvement)
		}
	})

	t.Run("stable", func(t *testing.T) {
		got := PerformanceTrend([]practice.UserProgress{
			{AverageScore: 75},
			{AverageScore: 75},
		})
		if got.Trend != "Stable" {
			t.Errorf("Trend = %q, want Stable", got.Trend)
		}
	})
}

func sample(pronunciation, rhythm, pace, expression, overall int) FluencySample {
	return FluencySample{
		Pronunciation: &pronunciation,
		Rhythm:        &rhythm,
		Pace:          &pace,
		Expression:    &expression,
		Overall:       &overall,
	}
}

func TestFluencyTrendsLabelBoundaries(t *testing.T) {
	// 均值86/80/70分别落在三个档位；>85和>75是严格边界
	got := FluencyTrends([]FluencySample{
		sample(86, 80, 70, 85, 80),
	})

	if got.Labels.Pronunciation != "excellent" {
		t.Errorf("pronunciation label = %q, want excellent", got.Labels.Pronunciation)
	}
	if got.Labels.Rhythm != "good" {
		t.Errorf("rhythm label = %q, want good", got.Labels.Rhythm)
	}
	if got.Labels.Pace != "needs improvement" {
		t.Errorf("pace label = %q, want needs improvement", got.Labels.Pace)
	}
	// 85不大于85，落在good档
	if got.Labels.Expression != "good" {
		t.Errorf("expression label = %q, want good", got.Labels.Expression)
	}
}

func TestFluencyTrendsAveragesAndMissingScores(t *testing.T) {
	missing := FluencySample{Emotion: "calm"}
	got := FluencyTrends([]FluencySample{
		sample(80, 80, 80, 80, 80),
		missing, // 缺失得分按0计入均值
	})

	if got.Averages.Pronunciation != 40.0 {
		t.Errorf("Averages.Pronunciation = %v, want 40.0", got.Averages.Pronunciation)
	}
	if got.Averages.Overall != 40.0 {
		t.Errorf("Averages.Overall = %v, want 40.0", got.Averages.Overall)
	}
}

func TestFluencyTrendsRecommendationOrder(t *testing.T) {
	nervous := func() FluencySample {
		s := sample(60, 60, 60, 60, 60)
		s.Emotion = "nervous"
		s.StutterDetected = true
		return s
	}

	got := FluencyTrends([]FluencySample{nervous(), nervous(), nervous()})

	want := []string{
		"Focus on pronunciation exercises",
		"Practice rhythm and intonation",
		"Work on speaking pace and flow",
		"Improve emotional expression in speech",
		"Consider stuttering-specific exercises",
		"Practice confidence-building exercises",
	}
	if len(got.Recommendations) != len(want) {
		t.Fatalf("recommendation count = %d, want %d: %v", len(got.Recommendations), len(want), got.Recommendations)
	}
	for i, w := range want {
		if got.Recommendations[i] != w {
			t.Errorf("Recommendations[%d] = %q, want %q", i, got.Recommendations[i], w)
		}
	}

	if got.Issues.StutterDetected != 3 || got.Issues.NervousSessions != 3 {
		t.Errorf("Issues = %+v, want 3/3", got.Issues)
	}
}

func TestFluencyTrendsNervousThreshold(t *testing.T) {
	nervous := sample(90, 90, 90, 90, 90)
	nervous.Emotion = "nervous"

	// 两次紧张还不触发建议，第三次才触发
	got := FluencyTrends([]FluencySample{nervous, nervous})
	if len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty below threshold", got.Recommendations)
	}

	got = FluencyTrends([]FluencySample{nervous, nervous, nervous})
	if len(got.Recommendations) != 1 || got.Recommendations[0] != "Practice confidence-building exercises" {
		t.Errorf("Recommendations = %v, want confidence-building only", got.Recommendations)
	}
}

func TestFluencyTrendsEmptyInput(t *testing.T) {
	got := FluencyTrends(nil)
	if got.Recommendations == nil || len(got.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty non-nil slice", got.Recommendations)
	}
	if got.Averages != (FluencyAverages{}) {
		t.Errorf("Averages = %+v, want zero value", got.Averages)
	}
}

func TestWindowDays(t *testing.T) {
	if got := windowDays(day(0), day(6)); got != 7 {
		t.Errorf("windowDays one week = %d, want 7", got)
	}
	if got := windowDays(day(0), day(0)); got != 1 {
		t.Errorf("windowDays same day = %d, want 1", got)
	}
	if got := windowDays(day(5), day(0)); got != 1 {
		t.Errorf("windowDays inverted = %d, want clamped 1", got)
	}
}
