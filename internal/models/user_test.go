package models

import (
	"testing"
	"time"
)

func TestAgeAt(t *testing.T) {
	user := User{BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC)}

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"day before birthday", time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC), 33},
		{"on birthday", time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), 34},
		{"day after birthday", time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), 34},
		{"earlier month", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), 33},
		{"later month", time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC), 34},
		{"before birth", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := user.AgeAt(tt.now); got != tt.want {
				t.Errorf("AgeAt(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}
