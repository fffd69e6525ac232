package dashboard

import (
	"testing"

	"github.com/SlpAus/speech-therapy-backend/internal/practice"
)

func TestCountByKind(t *testing.T) {
	records := []practice.CompletedExercise{
		{ExerciseType: "Body"},
		{ExerciseType: "body"},
		{ExerciseType: "Jaw"},
		{ExerciseType: "Facial"},
		{ExerciseType: "Speech"},
		{ExerciseType: "Articulation"},
	}

	body, speech := countByKind(records)
	if body != 4 {
		t.Errorf("body = %d, want 4", body)
	}
	if speech != 2 {
		t.Errorf("speech = %d, want 2", speech)
	}
}

func TestCountByKindEmpty(t *testing.T) {
	body, speech := countByKind(nil)
	if body != 0 || speech != 0 {
		t.Errorf("counts = %d/%d, want 0/0", body, speech)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{82.345, 82.35},
		{82.344, 82.34},
		{0, 0},
		{100, 100},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
