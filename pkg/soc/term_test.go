package soc

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestIsSpring(t *testing.T) {
	tests := []struct {
		date time.Time
		want bool
	}{
		{date(2026, time.February, 20), false},
		{date(2026, time.February, 21), true},
		{date(2026, time.April, 15), true},
		{date(2026, time.September, 21), true},
		{date(2026, time.September, 22), false},
		{date(2026, time.December, 1), false},
		{date(2026, time.January, 10), false},
	}

	for _, tt := range tests {
		if got := IsSpring(tt.date); got != tt.want {
			t.Errorf("IsSpring(%s) = %v, want %v", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestClosestTermID(t *testing.T) {
	// During spring the fall listing is up, and vice versa
	if got := ClosestTermID(date(2026, time.March, 1)); got != "202608" {
		t.Errorf("ClosestTermID in March = %s, want 202608", got)
	}
	if got := ClosestTermID(date(2026, time.October, 1)); got != "202601" {
		t.Errorf("ClosestTermID in October = %s, want 202601", got)
	}
}
