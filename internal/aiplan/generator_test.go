package aiplan

import (
	"testing"
	"time"

	"github.com/SlpAus/speech-therapy-backend/internal/user"
)

func demoUser(level string) *user.User {
	u := &user.User{Name: "Test User", DifficultyLevel: level}
	u.ID = 42
	return u
}

func TestBuildExerciseUsesUserLevel(t *testing.T) {
	tests := []struct {
		level        string
		wantLevel    string
		wantDuration int
	}{
		{"Beginner", "Beginner", 5},
		{"Intermediate", "Intermediate", 10},
		{"Advanced", "Advanced", 15},
		{"", "Beginner", 5},
		{"Expert", "Beginner", 5},
	}

	now := time.Now()
	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			got := buildExercise(demoUser(tt.level), "Speech", now)
			if got.DifficultyLevel != tt.wantLevel {
				t.Errorf("DifficultyLevel = %q, want %q", got.DifficultyLevel, tt.wantLevel)
			}
			if got.DurationMinutes != tt.wantDuration {
				t.Errorf("DurationMinutes = %d, want %d", got.DurationMinutes, tt.wantDuration)
			}
		})
	}
}

func TestBuildExerciseFallsBackToSpeechTemplates(t *testing.T) {
	now := time.Now()
	got := buildExercise(demoUser("Beginner"), "Meditation", now)

	if got.ExerciseType != "Speech" {
		t.Errorf("ExerciseType = %q, want Speech fallback", got.ExerciseType)
	}
	if got.Title == "" || got.Content == "" || got.FocusArea == "" {
		t.Errorf("template fields must be filled, got %+v", got)
	}
	if !got.ExpiresAt.After(now) {
		t.Errorf("ExpiresAt = %v, want after %v", got.ExpiresAt, now)
	}
}

func TestBuildExerciseBindsUser(t *testing.T) {
	got := buildExercise(demoUser("Beginner"), "Body", time.Now())
	if got.UserID != 42 {
		t.Errorf("UserID = %d, want 42", got.UserID)
	}
	if got.IsCompleted {
		t.Error("new exercise must start incomplete")
	}
}

func TestBuildWeeklyPlan(t *testing.T) {
	now := time.Now()
	plan := buildWeeklyPlan(demoUser("Intermediate"), now)

	if len(plan) != 7 {
		t.Fatalf("plan length = %d, want 7", len(plan))
	}
	for i, ex := range plan {
		wantType := "Speech"
		if i%2 == 1 {
			wantType = "Body"
		}
		if ex.ExerciseType != wantType {
			t.Errorf("plan[%d].ExerciseType = %q, want %q", i, ex.ExerciseType, wantType)
		}
		if i > 0 && !plan[i].ExpiresAt.After(plan[i-1].ExpiresAt) {
			t.Errorf("plan[%d].ExpiresAt = %v, want after plan[%d]", i, plan[i].ExpiresAt, i-1)
		}
	}
}
