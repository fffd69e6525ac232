package practice

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	tests := []struct {
		name    string
		current int
		goalMet bool
		want    int
	}{
		{"first goal met", 0, true, 1},
		{"streak continues", 5, true, 6},
		{"missed day resets", 5, false, 0},
		{"missed day from zero", 0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStreak(tt.current, tt.goalMet); got != tt.want {
				t.Errorf("NextStreak(%d, %v) = %d, want %d", tt.current, tt.goalMet, got, tt.want)
			}
		})
	}
}

func TestCompletionPoints(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    int
	}{
		{"zero duration earns base points", 0, 10},
		{"under a minute earns base points", 59, 10},
		{"ten minutes", 600, 20},
		{"partial minute truncates", 90, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPoints(tt.seconds); got != tt.want {
				t.Errorf("CompletionPoints(%d) = %d, want %d", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 535, time.Local)
	got := Midnight(ts)
	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Midnight(%v) = %v, want %v", ts, got, want)
	}
}
