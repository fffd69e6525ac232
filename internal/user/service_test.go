package user

import "testing"

func TestDetermineLevel(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		want   string
	}{
		{"zero streak", 0, "Beginner"},
		{"six days still beginner", 6, "Beginner"},
		{"seven days promotes", 7, "Intermediate"},
		{"twenty days intermediate", 20, "Intermediate"},
		{"twenty-one days advanced", 21, "Advanced"},
		{"long streak", 100, "Advanced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineLevel(tt.streak); got != tt.want {
				t.Errorf("DetermineLevel(%d) = %q, want %q", tt.streak, got, tt.want)
			}
		})
	}
}
